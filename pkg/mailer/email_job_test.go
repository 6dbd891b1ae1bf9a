package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/student-marks-dashboard/pkg/mailer/templates"
)

func TestComposeTemplate(t *testing.T) {
	job := EmailJob{
		To:       "a@x.com",
		Template: templates.Welcome,
		Data:     map[string]any{"Name": "alice", "AppName": "Marks", "Time": "", "IP": "", "DashboardURL": "", "SupportURL": "", "CompanyName": ""},
	}
	subject, text, html, err := Compose(job)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Marks, alice", subject)
	assert.Contains(t, text, "Hi alice")
	assert.Contains(t, html, "Welcome, alice")
}

func TestComposeRaw(t *testing.T) {
	subject, text, html, err := Compose(EmailJob{To: "a@x.com", Subject: "s", Text: "t"})
	require.NoError(t, err)
	assert.Equal(t, "s", subject)
	assert.Equal(t, "t", text)
	assert.Empty(t, html)
}

func TestComposeRejects(t *testing.T) {
	_, _, _, err := Compose(EmailJob{Subject: "s"})
	assert.Error(t, err)

	_, _, _, err = Compose(EmailJob{To: "a@x.com"})
	assert.ErrorIs(t, err, ErrEmptyJob)
}

type senderMock struct{ mock.Mock }

func (m *senderMock) Send(ctx context.Context, to, subject, text, html string) error {
	return m.Called(ctx, to, subject, text, html).Error(0)
}

func TestDeliver(t *testing.T) {
	s := &senderMock{}
	s.On("Send", mock.Anything, "a@x.com", "s", "t", "").Return(nil).Once()

	require.NoError(t, Deliver(context.Background(), s, EmailJob{To: "a@x.com", Subject: "s", Text: "t"}))
	s.AssertExpectations(t)
}

func TestDeliverSkipsSendOnComposeError(t *testing.T) {
	s := &senderMock{}

	err := Deliver(context.Background(), s, EmailJob{To: "a@x.com", Template: "missing"})
	assert.Error(t, err)
	s.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
