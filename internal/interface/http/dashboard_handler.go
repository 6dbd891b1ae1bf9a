package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-marks-dashboard/internal/application"
	"github.com/oksasatya/student-marks-dashboard/internal/interface/middleware"
	"github.com/oksasatya/student-marks-dashboard/pkg/response"
)

type DashboardHandler struct {
	Dashboard *application.Dashboard
	Logger    *logrus.Logger
}

func NewDashboardHandler(d *application.Dashboard, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{Dashboard: d, Logger: logger}
}

// View reports which screen the current session should see.
func (h *DashboardHandler) View(c *gin.Context) {
	v, err := h.Dashboard.Resolve(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, v, string(v.Screen), nil)
}
