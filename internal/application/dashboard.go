package application

import (
	"context"

	"github.com/oksasatya/student-marks-dashboard/internal/domain/entity"
)

type Screen string

const (
	ScreenAuth       Screen = "auth"
	ScreenSubmission Screen = "submission"
	ScreenReport     Screen = "report"
)

// View is the screen to show for the current session plus what it needs.
type View struct {
	Screen   Screen       `json:"screen"`
	Username string       `json:"username,omitempty"`
	Subjects []string     `json:"subjects,omitempty"`
	Defaults entity.Marks `json:"defaults,omitempty"`
	Report   *Report      `json:"report,omitempty"`
}

// Dashboard picks the screen from session and stored state. It keeps no
// state of its own, so every request recomputes the view.
type Dashboard struct {
	Marks *MarksService
}

func NewDashboard(marks *MarksService) *Dashboard {
	return &Dashboard{Marks: marks}
}

func (d *Dashboard) Resolve(ctx context.Context, sess *Session) (*View, error) {
	if sess == nil || sess.Username == "" {
		return &View{Screen: ScreenAuth}, nil
	}
	ok, err := d.Marks.Exists(ctx, sess.Username)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &View{
			Screen:   ScreenSubmission,
			Username: sess.Username,
			Subjects: entity.Subjects,
			Defaults: entity.DefaultMarks(),
		}, nil
	}
	rep, err := d.Marks.Report(ctx, sess.Username)
	if err != nil {
		return nil, err
	}
	return &View{
		Screen:   ScreenReport,
		Username: sess.Username,
		Subjects: rep.Table.Subjects,
		Report:   rep,
	}, nil
}
