package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/student-marks-dashboard/internal/interface/http"
	"github.com/oksasatya/student-marks-dashboard/internal/interface/middleware"
)

type MarksModule struct {
	Handler *handlers.MarksHandler
}

func NewMarksModule(h *handlers.MarksHandler) *MarksModule {
	return &MarksModule{Handler: h}
}

func (m *MarksModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/marks")
	g.Use(middleware.RequireSession())
	{
		g.GET("", m.Handler.Get)
		g.POST("", m.Handler.Submit)
		g.GET("/report", m.Handler.Report)
	}
}
