package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/student-marks-dashboard/internal/application"
	"github.com/oksasatya/student-marks-dashboard/pkg/helpers"
)

func init() { gin.SetMode(gin.TestMode) }

func newStore(t *testing.T) *application.SessionStore {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return application.NewSessionStore(rdb, time.Hour)
}

func sessionEngine(store *application.SessionStore, jwt *helpers.JWTManager) *gin.Engine {
	r := gin.New()
	r.Use(LoadSession(store, jwt, nil))
	r.GET("/whoami", func(c *gin.Context) { c.String(http.StatusOK, CurrentUsername(c)) })
	r.GET("/private", RequireSession(), func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: helpers.SessionCookie, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoadSession(t *testing.T) {
	store := newStore(t)
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := sessionEngine(store, jwt)

	sess, err := store.Create(context.Background(), "alice")
	require.NoError(t, err)
	token, _, err := jwt.GenerateSessionToken("alice", sess.ID)
	require.NoError(t, err)

	w := get(r, "/whoami", token)
	assert.Equal(t, "alice", w.Body.String())

	w = get(r, "/private", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoadSessionRejectsBadCookies(t *testing.T) {
	store := newStore(t)
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := sessionEngine(store, jwt)

	sess, err := store.Create(context.Background(), "alice")
	require.NoError(t, err)

	forged, _, err := helpers.NewJWTManager("other", time.Hour).GenerateSessionToken("alice", sess.ID)
	require.NoError(t, err)
	mismatched, _, err := jwt.GenerateSessionToken("mallory", sess.ID)
	require.NoError(t, err)
	unknown, _, err := jwt.GenerateSessionToken("alice", "missing")
	require.NoError(t, err)

	for name, token := range map[string]string{"none": "", "garbage": "x.y.z", "forged": forged, "mismatched": mismatched, "unknown": unknown} {
		w := get(r, "/whoami", token)
		assert.Empty(t, w.Body.String(), name)

		w = get(r, "/private", token)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
		assert.Contains(t, w.Body.String(), `"success":false`, name)
	}

	require.NoError(t, store.Delete(context.Background(), sess.ID))
	valid, _, err := jwt.GenerateSessionToken("alice", sess.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/private", valid).Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := get(r, "/", "")
	assert.Len(t, w.Body.String(), 36)
	assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "7d444840-9dc0-11d1-b245-5ffdce74fad2")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "7d444840-9dc0-11d1-b245-5ffdce74fad2", w.Body.String())
}

func TestRealIP(t *testing.T) {
	r := gin.New()
	r.Use(RealIP())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, ClientIP(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "203.0.113.7", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("CF-Connecting-IP", "198.51.100.2")
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "198.51.100.2", w.Body.String())
}
