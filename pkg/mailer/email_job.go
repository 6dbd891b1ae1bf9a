package mailer

import (
	"errors"
	"strings"

	"github.com/oksasatya/student-marks-dashboard/pkg/mailer/templates"
)

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either Template+Data or Subject+Text (HTML optional) must be set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // "welcome" or "marks_submitted"
	Data     map[string]any `json:"data,omitempty"`
}

var ErrEmptyJob = errors.New("email job has neither template nor subject")

// Compose resolves the final subject and bodies of a job, rendering the
// template when one is named.
func Compose(job EmailJob) (subject, text, html string, err error) {
	if strings.TrimSpace(job.To) == "" {
		return "", "", "", errors.New("email job has no recipient")
	}
	if job.Template != "" {
		return templates.Render(job.Template, job.Data)
	}
	if job.Subject == "" {
		return "", "", "", ErrEmptyJob
	}
	return job.Subject, job.Text, job.HTML, nil
}
