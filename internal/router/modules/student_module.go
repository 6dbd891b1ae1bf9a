package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/student-marks-dashboard/internal/interface/http"
	"github.com/oksasatya/student-marks-dashboard/internal/interface/middleware"
)

// StudentModule serves the directory search for signed-in students.
type StudentModule struct {
	Handler *handlers.StudentHandler
}

func NewStudentModule(h *handlers.StudentHandler) *StudentModule {
	return &StudentModule{Handler: h}
}

func (m *StudentModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/students")
	auth.Use(middleware.RequireSession())
	{
		auth.GET("/search", m.Handler.Search)
	}
}
