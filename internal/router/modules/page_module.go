package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/student-marks-dashboard/internal/interface/http"
)

// PageModule serves the browser dashboard at the site root.
type PageModule struct {
	Handler *handlers.PageHandler
}

func NewPageModule(h *handlers.PageHandler) *PageModule {
	return &PageModule{Handler: h}
}

func (m *PageModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Index)
	rg.POST("/signup", m.Handler.Signup)
	rg.POST("/login", m.Handler.Login)
	rg.POST("/marks", m.Handler.SubmitMarks)
	rg.POST("/signout", m.Handler.Signout)
	rg.GET("/charts", m.Handler.Charts)
}
