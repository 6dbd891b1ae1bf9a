package application

import "expvar"

// stats is published under "dashboard" on /api/debug/vars.
var stats = expvar.NewMap("dashboard")

const (
	statSignups          = "signups"
	statLogins           = "logins"
	statLoginFailures    = "login_failures"
	statLogouts          = "logouts"
	statMarksSubmitted   = "marks_submitted"
	statMarksDuplicates  = "marks_duplicates"
	statReportsGenerated = "reports_generated"
)

func count(name string) { stats.Add(name, 1) }
