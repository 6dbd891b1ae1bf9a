package templates

import (
	"time"

	"github.com/oksasatya/student-marks-dashboard/config"
)

type Option func(*EmailData)

func WithIP(ip string) Option        { return func(d *EmailData) { d.IP = ip } }
func WithUserAgent(ua string) Option { return func(d *EmailData) { d.UserAgent = ua } }
func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

// WithScores lists scores in the given subject order.
func WithScores(subjects []string, scores map[string]int) Option {
	return func(d *EmailData) {
		d.Scores = make([]ScoreLine, 0, len(subjects))
		d.Total = 0
		for _, s := range subjects {
			d.Scores = append(d.Scores, ScoreLine{Subject: s, Score: scores[s]})
			d.Total += scores[s]
		}
	}
}

// NewBaseEmailData fills the common fields from config, then applies opts.
func NewBaseEmailData(cfg *config.Config, typ, name, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:           name,
		Email:          email,
		RecipientEmail: email,
		Type:           typ,

		CompanyName:  cfg.CompanyName,
		AppName:      cfg.AppName,
		SupportURL:   cfg.SupportURL,
		DashboardURL: cfg.DashboardURL,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewWelcomeData(cfg *config.Config, name, email string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(cfg, Welcome, name, email, opts...))
}

func NewMarksSubmittedData(cfg *config.Config, name, email string, subjects []string, scores map[string]int, opts ...Option) map[string]any {
	opts = append([]Option{WithScores(subjects, scores)}, opts...)
	return ToMap(NewBaseEmailData(cfg, MarksSubmitted, name, email, opts...))
}
