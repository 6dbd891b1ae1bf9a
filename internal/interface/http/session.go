package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/student-marks-dashboard/internal/application"
	"github.com/oksasatya/student-marks-dashboard/internal/interface/middleware"
	"github.com/oksasatya/student-marks-dashboard/pkg/helpers"
	mailtpl "github.com/oksasatya/student-marks-dashboard/pkg/mailer/templates"
)

// SessionCookies binds server-side sessions to the browser cookie.
type SessionCookies struct {
	JWT     *helpers.JWTManager
	Cookies *helpers.Manager
}

func NewSessionCookies(jwt *helpers.JWTManager, cookieDomain string, cookieSecure bool) *SessionCookies {
	return &SessionCookies{JWT: jwt, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

func (s *SessionCookies) Issue(c *gin.Context, sess *application.Session) error {
	token, exp, err := s.JWT.GenerateSessionToken(sess.Username, sess.ID)
	if err != nil {
		return err
	}
	s.Cookies.SetSession(c, token, exp)
	return nil
}

func (s *SessionCookies) Clear(c *gin.Context) {
	s.Cookies.Clear(c)
}

// requestMeta tags outgoing email with where the request came from.
func requestMeta(c *gin.Context) []mailtpl.Option {
	return []mailtpl.Option{
		mailtpl.WithIP(middleware.ClientIP(c)),
		mailtpl.WithUserAgent(c.Request.UserAgent()),
	}
}
