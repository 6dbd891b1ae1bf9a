package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-marks-dashboard/config"
	"github.com/oksasatya/student-marks-dashboard/internal/domain/entity"
	"github.com/oksasatya/student-marks-dashboard/pkg/mailer"
	mailtpl "github.com/oksasatya/student-marks-dashboard/pkg/mailer/templates"
)

// JobPublisher is satisfied by helpers.RabbitPublisher.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// Notifier enqueues email jobs. Failures are logged and never returned:
// mail is a side effect of signup and submission, not part of them.
type Notifier struct {
	Pub    JobPublisher
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewNotifier(pub JobPublisher, cfg *config.Config, logger *logrus.Logger) *Notifier {
	return &Notifier{Pub: pub, Cfg: cfg, Logger: logger}
}

func (n *Notifier) enabled() bool {
	return n != nil && n.Pub != nil && n.Cfg != nil && n.Cfg.MailSendEnabled
}

func (n *Notifier) Welcome(ctx context.Context, s *entity.Student, opts ...mailtpl.Option) {
	if !n.enabled() || s.Email == "" {
		return
	}
	opts = append([]mailtpl.Option{mailtpl.WithTime(time.Now())}, opts...)
	n.publish(ctx, mailer.EmailJob{
		To:       s.Email,
		Template: mailtpl.Welcome,
		Data:     mailtpl.NewWelcomeData(n.Cfg, s.Username, s.Email, opts...),
	})
}

func (n *Notifier) MarksSubmitted(ctx context.Context, s *entity.Student, m entity.Marks, opts ...mailtpl.Option) {
	if !n.enabled() || s == nil || s.Email == "" {
		return
	}
	opts = append([]mailtpl.Option{mailtpl.WithTime(time.Now())}, opts...)
	n.publish(ctx, mailer.EmailJob{
		To:       s.Email,
		Template: mailtpl.MarksSubmitted,
		Data:     mailtpl.NewMarksSubmittedData(n.Cfg, s.Username, s.Email, entity.Subjects, m, opts...),
	})
}

func (n *Notifier) publish(ctx context.Context, job mailer.EmailJob) {
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := n.Pub.PublishJSON(c, job); err != nil && n.Logger != nil {
		n.Logger.WithError(err).WithField("template", job.Template).Warn("enqueue email failed")
	}
}
