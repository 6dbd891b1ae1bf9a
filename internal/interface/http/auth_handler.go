package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-marks-dashboard/internal/application"
	"github.com/oksasatya/student-marks-dashboard/internal/interface/middleware"
	"github.com/oksasatya/student-marks-dashboard/pkg/response"
	"github.com/oksasatya/student-marks-dashboard/pkg/validation"
)

type AuthHandler struct {
	Svc      *application.AuthService
	Sessions *SessionCookies
	Logger   *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, sessions *SessionCookies, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Sessions: sessions, Logger: logger}
}

type signupRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Phone    string `json:"phone" form:"phone" binding:"required"`
	DOB      string `json:"dob" form:"dob" binding:"required,dob"`
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

func (r signupRequest) input() (application.SignupInput, error) {
	dob, err := validation.ParseDOB(r.DOB)
	if err != nil {
		return application.SignupInput{}, err
	}
	return application.SignupInput{
		Username:    r.Username,
		Phone:       r.Phone,
		DateOfBirth: dob,
		Email:       r.Email,
		Password:    r.Password,
	}, nil
}

type loginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type sessionResponse struct {
	Username string `json:"username"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	in, err := req.input()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"dob": err.Error()})
		return
	}
	sess, err := h.Svc.Signup(c.Request.Context(), in, requestMeta(c)...)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if err := h.Sessions.Issue(c, sess); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, sessionResponse{Username: sess.Username}, "Signup successful for "+sess.Username+"!", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	sess, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if err := h.Sessions.Issue(c, sess); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, sessionResponse{Username: sess.Username}, "Welcome, "+sess.Username+"!", nil)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if sess := middleware.CurrentSession(c); sess != nil {
		if err := h.Svc.Logout(c.Request.Context(), sess.ID); err != nil {
			writeError(c, h.Logger, err)
			return
		}
	}
	h.Sessions.Clear(c)
	response.Success[any](c, http.StatusOK, map[string]any{"logged_out": true}, "You have been signed out.", nil)
}
