package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-marks-dashboard/internal/domain/entity"
	repo "github.com/oksasatya/student-marks-dashboard/internal/domain/repository"
	mailtpl "github.com/oksasatya/student-marks-dashboard/pkg/mailer/templates"
)

var ErrMarksNotFound = errors.New("marks not found")

type MarksService struct {
	Marks     repo.MarksRepository
	Students  repo.StudentRepository
	Notifier  *Notifier
	Directory *Directory
	Logger    *logrus.Logger
}

func NewMarksService(marks repo.MarksRepository, students repo.StudentRepository, notifier *Notifier, dir *Directory, logger *logrus.Logger) *MarksService {
	return &MarksService{Marks: marks, Students: students, Notifier: notifier, Directory: dir, Logger: logger}
}

func (s *MarksService) Exists(ctx context.Context, username string) (bool, error) {
	ok, err := s.Marks.Exists(ctx, username)
	if err != nil {
		return false, fmt.Errorf("marks exists: %w", err)
	}
	return ok, nil
}

// Submit stores m once. A second submission is a silent no-op reported
// through created=false.
func (s *MarksService) Submit(ctx context.Context, username string, m entity.Marks, opts ...mailtpl.Option) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}
	created, err := s.Marks.Save(ctx, username, m)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", username).Error("save marks failed")
		}
		return false, fmt.Errorf("submit marks: %w", err)
	}
	if !created {
		count(statMarksDuplicates)
		return false, nil
	}
	count(statMarksSubmitted)

	if s.Notifier.enabled() || s.Directory.enabled() {
		st, err := s.Students.Get(ctx, username)
		if err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("username", username).Warn("load student for notifications failed")
			}
			return true, nil
		}
		s.Notifier.MarksSubmitted(ctx, st, m, opts...)
		s.Directory.upsertQuietly(ctx, st, m)
	}
	return true, nil
}

func (s *MarksService) Load(ctx context.Context, username string) (*entity.MarksTable, error) {
	tbl, err := s.Marks.Load(ctx, username)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrMarksNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load marks: %w", err)
	}
	return tbl, nil
}

func (s *MarksService) Report(ctx context.Context, username string) (*Report, error) {
	tbl, err := s.Load(ctx, username)
	if err != nil {
		return nil, err
	}
	count(statReportsGenerated)
	return BuildReport(tbl), nil
}
