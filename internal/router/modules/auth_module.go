package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/student-marks-dashboard/internal/interface/http"
	"github.com/oksasatya/student-marks-dashboard/internal/interface/middleware"
)

// AuthModule: POST /signup, POST /login, POST /logout (session).
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/signup", m.Handler.Signup)
	rg.POST("/login", m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.RequireSession())
	{
		auth.POST("/logout", m.Handler.Logout)
	}
}
