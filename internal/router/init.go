package router

import (
	"github.com/oksasatya/student-marks-dashboard/internal/application"
	"github.com/oksasatya/student-marks-dashboard/internal/container"
	handlers "github.com/oksasatya/student-marks-dashboard/internal/interface/http"
	"github.com/oksasatya/student-marks-dashboard/internal/router/modules"
)

// Deps is the service graph shared by every module.
type Deps struct {
	Sessions  *application.SessionStore
	Auth      *application.AuthService
	Marks     *application.MarksService
	Dashboard *application.Dashboard
	Directory *application.Directory
	Cookies   *handlers.SessionCookies
}

// BuildDeps wires services from the container singletons.
func BuildDeps() Deps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	stores := container.GetStores()

	notifier := application.NewNotifier(container.GetRabbitPub(), cfg, logger)
	var dir *application.Directory
	if cfg.SearchEnabled {
		dir = application.NewDirectory(container.GetES(), cfg.ESStudentsIndex, logger)
	}

	sessions := application.NewSessionStore(container.GetRedis(), cfg.SessionTTL)
	auth := application.NewAuthService(stores.Students, stores.Marks, sessions, notifier, dir, logger)
	marks := application.NewMarksService(stores.Marks, stores.Students, notifier, dir, logger)

	return Deps{
		Sessions:  sessions,
		Auth:      auth,
		Marks:     marks,
		Dashboard: application.NewDashboard(marks),
		Directory: dir,
		Cookies:   handlers.NewSessionCookies(container.GetJWT(), cfg.CookieDomain, cfg.CookieSecure),
	}
}

// InitModules registers all modules with the registry.
// Call once during startup, after the container is populated.
func InitModules(r *Registry, d Deps) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(d.Auth, d.Cookies, logger)))
	r.Add(modules.NewMarksModule(handlers.NewMarksHandler(d.Marks, logger)))
	r.Add(modules.NewDashboardModule(handlers.NewDashboardHandler(d.Dashboard, logger)))
	r.Add(modules.NewStudentModule(handlers.NewStudentHandler(d.Directory, logger)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}

	r.AddPage(modules.NewPageModule(handlers.NewPageHandler(cfg.AppName, d.Auth, d.Marks, d.Dashboard, d.Cookies, logger)))
}
