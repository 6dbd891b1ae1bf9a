package handlers

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-marks-dashboard/internal/application"
	"github.com/oksasatya/student-marks-dashboard/internal/domain/entity"
	"github.com/oksasatya/student-marks-dashboard/internal/interface/middleware"
	"github.com/oksasatya/student-marks-dashboard/pkg/charts"
	"github.com/oksasatya/student-marks-dashboard/pkg/validation"
)

//go:embed views/*.html
var viewsFS embed.FS

// Templates parses the server-rendered pages for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(viewsFS, "views/*.html"))
}

const (
	menuLogin  = "login"
	menuSignup = "signup"
)

// PageHandler serves the browser dashboard. Every action redirects back to
// "/" so the screen is always recomputed from session and stored state.
type PageHandler struct {
	AppName   string
	Auth      *application.AuthService
	Marks     *application.MarksService
	Dashboard *application.Dashboard
	Sessions  *SessionCookies
	Logger    *logrus.Logger
}

func NewPageHandler(appName string, auth *application.AuthService, marks *application.MarksService, dash *application.Dashboard, sessions *SessionCookies, logger *logrus.Logger) *PageHandler {
	return &PageHandler{AppName: appName, Auth: auth, Marks: marks, Dashboard: dash, Sessions: sessions, Logger: logger}
}

type pageData struct {
	AppName  string
	View     *application.View
	Menu     string
	Notice   string
	Error    string
	MinDOB   string
	MaxDOB   string
	MinScore int
	MaxScore int
}

func (h *PageHandler) Index(c *gin.Context) {
	h.render(c, http.StatusOK, c.Query("menu"), h.notice(c, c.Query("notice")), "")
}

func (h *PageHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, http.StatusBadRequest, menuSignup, "", formError(err))
		return
	}
	in, err := req.input()
	if err != nil {
		h.render(c, http.StatusBadRequest, menuSignup, "", "dob must be YYYY-MM-DD")
		return
	}
	sess, err := h.Auth.Signup(c.Request.Context(), in, requestMeta(c)...)
	if err != nil {
		h.fail(c, menuSignup, err)
		return
	}
	if err := h.Sessions.Issue(c, sess); err != nil {
		h.fail(c, menuSignup, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/?notice=signup")
}

func (h *PageHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, http.StatusBadRequest, menuLogin, "", formError(err))
		return
	}
	sess, err := h.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(c, menuLogin, err)
		return
	}
	if err := h.Sessions.Issue(c, sess); err != nil {
		h.fail(c, menuLogin, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/?notice=login")
}

// SubmitMarks reads one integer field per subject.
func (h *PageHandler) SubmitMarks(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	m := make(entity.Marks, len(entity.Subjects))
	for _, s := range entity.Subjects {
		raw := strings.TrimSpace(c.PostForm(s))
		if raw == "" {
			h.render(c, http.StatusBadRequest, "", "", msgFieldsRequired)
			return
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			h.render(c, http.StatusBadRequest, "", "", s+" must be a whole number")
			return
		}
		m[s] = v
	}
	created, err := h.Marks.Submit(c.Request.Context(), sess.Username, m, requestMeta(c)...)
	if err != nil {
		h.fail(c, "", err)
		return
	}
	if !created {
		c.Redirect(http.StatusSeeOther, "/?notice=duplicate")
		return
	}
	c.Redirect(http.StatusSeeOther, "/?notice=submitted")
}

func (h *PageHandler) Signout(c *gin.Context) {
	if sess := middleware.CurrentSession(c); sess != nil {
		if err := h.Auth.Logout(c.Request.Context(), sess.ID); err != nil && h.Logger != nil {
			h.Logger.WithError(err).WithField("username", sess.Username).Warn("logout failed")
		}
	}
	h.Sessions.Clear(c)
	c.Redirect(http.StatusSeeOther, "/?notice=signedout")
}

// Charts renders the bar, line and pie charts of the current student.
func (h *PageHandler) Charts(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	rep, err := h.Marks.Report(c.Request.Context(), sess.Username)
	if errors.Is(err, application.ErrMarksNotFound) {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("username", sess.Username).Error("build report failed")
		}
		c.String(http.StatusInternalServerError, msgInternal)
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := charts.RenderPage(c.Writer, sess.Username+" marks", reportCharts(rep)...); err != nil && h.Logger != nil {
		h.Logger.WithError(err).Error("render charts failed")
	}
}

func reportCharts(rep *application.Report) []components.Charter {
	avg := make([]charts.Point, len(rep.Averages))
	for i, a := range rep.Averages {
		avg[i] = charts.Point{Label: a.Subject, Value: a.Average}
	}
	return []components.Charter{
		charts.Bar("Average Marks per Subject", "Average", avg),
		charts.Line("Marks by Subject", "Marks", scorePoints(rep.Sequence)),
		charts.Pie("Latest Marks Distribution", "Marks", scorePoints(rep.Latest)),
	}
}

func scorePoints(scores []application.SubjectScore) []charts.Point {
	out := make([]charts.Point, len(scores))
	for i, s := range scores {
		out[i] = charts.Point{Label: s.Subject, Value: float64(s.Score)}
	}
	return out
}

func (h *PageHandler) fail(c *gin.Context, menu string, err error) {
	status, msg := classify(err)
	if status >= http.StatusInternalServerError && h.Logger != nil {
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}
	if errors.Is(err, application.ErrInvalidCredentials) {
		msg = "Invalid Username or Password."
	}
	h.render(c, status, menu, "", msg)
}

func (h *PageHandler) notice(c *gin.Context, key string) string {
	username := middleware.CurrentUsername(c)
	switch key {
	case "signup", "login":
		if username == "" {
			return ""
		}
		if key == "signup" {
			return "Signup successful for " + username + "!"
		}
		return "Welcome, " + username + "!"
	case "submitted":
		return msgMarksSubmitted
	case "duplicate":
		return msgAlreadySubmitted
	case "signedout":
		return "You have been signed out."
	default:
		return ""
	}
}

func (h *PageHandler) render(c *gin.Context, status int, menu, notice, errMsg string) {
	v, err := h.Dashboard.Resolve(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("resolve view failed")
		}
		c.String(http.StatusInternalServerError, msgInternal)
		return
	}
	if menu != menuSignup {
		menu = menuLogin
	}
	c.HTML(status, "index.html", pageData{
		AppName:  h.AppName,
		View:     v,
		Menu:     menu,
		Notice:   notice,
		Error:    errMsg,
		MinDOB:   validation.MinDateOfBirth.Format(entity.DateLayout),
		MaxDOB:   time.Now().Format(entity.DateLayout),
		MinScore: entity.MinScore,
		MaxScore: entity.MaxScore,
	})
}

// formError turns a form binding error into one line for the page.
func formError(err error) string {
	if validation.MissingFields(err) {
		return msgFieldsRequired
	}
	details := validation.ToDetails(err)
	parts := make([]string, 0, len(details))
	for field, msg := range details {
		parts = append(parts, field+" "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
