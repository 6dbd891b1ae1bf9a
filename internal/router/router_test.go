package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/student-marks-dashboard/config"
	"github.com/oksasatya/student-marks-dashboard/internal/container"
	"github.com/oksasatya/student-marks-dashboard/internal/infrastructure/persistence"
	handlers "github.com/oksasatya/student-marks-dashboard/internal/interface/http"
	"github.com/oksasatya/student-marks-dashboard/internal/interface/middleware"
	"github.com/oksasatya/student-marks-dashboard/pkg/helpers"
)

func TestRegistryWiresAllModules(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		AppName:             "Marks",
		StorageDriver:       config.StorageFS,
		StorageRoot:         t.TempDir(),
		SessionTTL:          time.Hour,
		DebugMetricsEnabled: true,
	}
	stores, err := persistence.Open(context.Background(), cfg, nil)
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	jwt := helpers.NewJWTManager("secret", time.Hour)
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetStores(stores)
	container.SetRedis(rdb)
	container.SetJWT(jwt)

	deps := BuildDeps()
	assert.Nil(t, deps.Directory)

	r := gin.New()
	r.Use(middleware.LoadSession(deps.Sessions, jwt, logger))
	r.SetHTMLTemplate(handlers.Templates())
	reg := NewRegistry(r)
	InitModules(reg, deps)
	reg.RegisterAll()

	routes := map[string]bool{}
	for _, ri := range r.Routes() {
		routes[ri.Method+" "+ri.Path] = true
	}
	for _, want := range []string{
		"POST /api/signup", "POST /api/login", "POST /api/logout",
		"GET /api/view", "GET /api/marks", "POST /api/marks", "GET /api/marks/report",
		"GET /api/students/search", "GET /api/debug/vars",
		"GET /", "POST /signup", "POST /login", "POST /marks", "POST /signout", "GET /charts",
	} {
		assert.True(t, routes[want], want)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/debug/vars", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"dashboard"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/marks", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
