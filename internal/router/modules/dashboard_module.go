package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/student-marks-dashboard/internal/interface/http"
)

// DashboardModule exposes the controller state; the session is optional.
type DashboardModule struct {
	Handler *handlers.DashboardHandler
}

func NewDashboardModule(h *handlers.DashboardHandler) *DashboardModule {
	return &DashboardModule{Handler: h}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	rg.GET("/view", m.Handler.View)
}
