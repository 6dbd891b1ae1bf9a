package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-marks-dashboard/internal/application"
	"github.com/oksasatya/student-marks-dashboard/internal/domain/entity"
	"github.com/oksasatya/student-marks-dashboard/internal/interface/middleware"
	"github.com/oksasatya/student-marks-dashboard/pkg/response"
)

const (
	msgMarksSubmitted   = "Marks submitted successfully!"
	msgAlreadySubmitted = "You have already submitted your marks."
)

type MarksHandler struct {
	Svc    *application.MarksService
	Logger *logrus.Logger
}

func NewMarksHandler(svc *application.MarksService, logger *logrus.Logger) *MarksHandler {
	return &MarksHandler{Svc: svc, Logger: logger}
}

type submitMarksRequest struct {
	Marks map[string]int `json:"marks" binding:"required,dive,score"`
}

type submitMarksResponse struct {
	Created bool `json:"created"`
}

func (h *MarksHandler) Get(c *gin.Context) {
	tbl, err := h.Svc.Load(c.Request.Context(), middleware.CurrentUsername(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, tbl, "marks", nil)
}

// Submit acknowledges duplicates with 200 and leaves the stored marks alone.
func (h *MarksHandler) Submit(c *gin.Context) {
	var req submitMarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	created, err := h.Svc.Submit(c.Request.Context(), middleware.CurrentUsername(c), entity.Marks(req.Marks), requestMeta(c)...)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if !created {
		response.Success(c, http.StatusOK, submitMarksResponse{Created: false}, msgAlreadySubmitted, nil)
		return
	}
	response.Success(c, http.StatusCreated, submitMarksResponse{Created: true}, msgMarksSubmitted, nil)
}

func (h *MarksHandler) Report(c *gin.Context) {
	rep, err := h.Svc.Report(c.Request.Context(), middleware.CurrentUsername(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, rep, "report", nil)
}
