package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-marks-dashboard/internal/application"
	"github.com/oksasatya/student-marks-dashboard/pkg/helpers"
	"github.com/oksasatya/student-marks-dashboard/pkg/response"
)

const (
	ctxSession  = "session"
	ctxUsername = "username"
)

// SessionReader is satisfied by application.SessionStore.
type SessionReader interface {
	Get(ctx context.Context, id string) (*application.Session, error)
}

// LoadSession resolves the session cookie into the Gin context.
// It never rejects: a missing, forged or expired cookie just leaves the
// request logged out.
func LoadSession(store SessionReader, jwt *helpers.JWTManager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}
		claims, err := jwt.ParseSessionToken(token)
		if err != nil {
			c.Next()
			return
		}
		sess, err := store.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			if !errors.Is(err, application.ErrSessionNotFound) && logger != nil {
				logger.WithError(err).WithField("sid", claims.SessionID).Warn("session lookup failed")
			}
			c.Next()
			return
		}
		if sess.Username != claims.Username {
			c.Next()
			return
		}
		c.Set(ctxSession, sess)
		c.Set(ctxUsername, sess.Username)
		c.Next()
	}
}

// RequireSession rejects requests without a loaded session.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) == nil {
			response.Abort(c, http.StatusUnauthorized, "login required", nil)
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session loaded by LoadSession, or nil.
func CurrentSession(c *gin.Context) *application.Session {
	v, ok := c.Get(ctxSession)
	if !ok {
		return nil
	}
	sess, _ := v.(*application.Session)
	return sess
}

func CurrentUsername(c *gin.Context) string {
	return c.GetString(ctxUsername)
}
