package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"STORAGE_DRIVER", "STORAGE_ROOT", "SESSION_TTL", "MAIL_SEND_ENABLED", "PORT"} {
		t.Setenv(k, "")
	}

	c := Load()
	require.NotNil(t, c)

	assert.Equal(t, StorageFS, c.StorageDriver)
	assert.Equal(t, "users", c.StorageRoot)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.False(t, c.MailSendEnabled)
	assert.Equal(t, "students", c.ESStudentsIndex)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("DB_MAX_CONNS", "25")

	c := Load()

	assert.Equal(t, StoragePostgres, c.StorageDriver)
	assert.Equal(t, 90*time.Minute, c.SessionTTL)
	assert.True(t, c.CookieSecure)
	assert.Equal(t, int32(25), c.DBMaxConns)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("COOKIE_SECURE", "maybe")
	t.Setenv("REDIS_DB", "x")

	c := Load()

	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.False(t, c.CookieSecure)
	assert.Equal(t, 0, c.RedisDB)
}

func TestPostgresDSN(t *testing.T) {
	c := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5433", DBName: "d", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5433/d?sslmode=disable", c.PostgresDSN())
}

func TestSplitLists(t *testing.T) {
	c := &Config{CORSAllowedOrigins: " http://a , ,http://b", ElasticsearchAddrs: ""}
	assert.Equal(t, []string{"http://a", "http://b"}, c.CORSOrigins())
	assert.Empty(t, c.ESAddrs())
}
