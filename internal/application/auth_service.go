package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-marks-dashboard/internal/domain/entity"
	repo "github.com/oksasatya/student-marks-dashboard/internal/domain/repository"
	mailtpl "github.com/oksasatya/student-marks-dashboard/pkg/mailer/templates"
)

var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type SignupInput struct {
	Username    string
	Phone       string
	DateOfBirth time.Time
	Email       string
	Password    string
}

func (in SignupInput) complete() bool {
	return strings.TrimSpace(in.Username) != "" &&
		strings.TrimSpace(in.Phone) != "" &&
		!in.DateOfBirth.IsZero() &&
		strings.TrimSpace(in.Email) != "" &&
		in.Password != ""
}

type AuthService struct {
	Students  repo.StudentRepository
	Marks     repo.MarksRepository
	Sessions  *SessionStore
	Notifier  *Notifier
	Directory *Directory
	Logger    *logrus.Logger
}

func NewAuthService(students repo.StudentRepository, marks repo.MarksRepository, sessions *SessionStore, notifier *Notifier, dir *Directory, logger *logrus.Logger) *AuthService {
	return &AuthService{
		Students:  students,
		Marks:     marks,
		Sessions:  sessions,
		Notifier:  notifier,
		Directory: dir,
		Logger:    logger,
	}
}

// Signup stores the record, overwriting any previous one for the same
// username, and opens a session for it.
func (s *AuthService) Signup(ctx context.Context, in SignupInput, opts ...mailtpl.Option) (*Session, error) {
	if !in.complete() {
		return nil, ErrMissingFields
	}
	st := &entity.Student{
		Username:    in.Username,
		Phone:       in.Phone,
		DateOfBirth: in.DateOfBirth,
		Email:       in.Email,
		Password:    in.Password,
	}
	if err := s.Students.Save(ctx, st); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", in.Username).Error("save student failed")
		}
		return nil, fmt.Errorf("signup: %w", err)
	}

	sess, err := s.Sessions.Create(ctx, st.Username)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", st.Username).Error("create session failed")
		}
		return nil, fmt.Errorf("signup session: %w", err)
	}
	count(statSignups)

	s.Notifier.Welcome(ctx, st, opts...)
	s.Directory.upsertQuietly(ctx, st, s.latestMarks(ctx, st.Username))
	return sess, nil
}

// Login succeeds iff a record exists for username and its password is
// byte-equal to password.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, ErrMissingFields
	}
	st, err := s.Students.Get(ctx, username)
	if errors.Is(err, repo.ErrNotFound) || errors.Is(err, repo.ErrInvalidKey) {
		count(statLoginFailures)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", username).Error("load student failed")
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if st.Password != password {
		count(statLoginFailures)
		return nil, ErrInvalidCredentials
	}

	sess, err := s.Sessions.Create(ctx, st.Username)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", st.Username).Error("create session failed")
		}
		return nil, fmt.Errorf("login session: %w", err)
	}
	count(statLogins)
	return sess, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	count(statLogouts)
	return nil
}

// latestMarks is best-effort: a re-signup keeps the directory's marks flag.
func (s *AuthService) latestMarks(ctx context.Context, username string) entity.Marks {
	if s.Marks == nil || !s.Directory.enabled() {
		return nil
	}
	tbl, err := s.Marks.Load(ctx, username)
	if err != nil {
		return nil
	}
	return tbl.Latest()
}
