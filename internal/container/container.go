package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-marks-dashboard/config"
	"github.com/oksasatya/student-marks-dashboard/internal/application"
	"github.com/oksasatya/student-marks-dashboard/internal/infrastructure/persistence"
	"github.com/oksasatya/student-marks-dashboard/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router auto-wires modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	stores      *persistence.Stores
	redisClient *redis.Client

	jwtManager *helpers.JWTManager

	rabbitPub *helpers.RabbitPublisher
	esClient  *elasticsearch.Client
)

func SetConfig(c *config.Config)              { cfg = c }
func GetConfig() *config.Config               { return cfg }
func SetLogger(l *logrus.Logger)              { logger = l }
func GetLogger() *logrus.Logger               { return logger }
func SetStores(s *persistence.Stores)         { stores = s }
func GetStores() *persistence.Stores          { return stores }
func SetRedis(r *redis.Client)                { redisClient = r }
func GetRedis() *redis.Client                 { return redisClient }
func SetJWT(m *helpers.JWTManager)            { jwtManager = m }
func GetJWT() *helpers.JWTManager             { return jwtManager }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func SetES(c *elasticsearch.Client)           { esClient = c }
func GetES() *elasticsearch.Client            { return esClient }

// GetRabbitPub returns nil when no publisher was configured, so a nil
// *RabbitPublisher never turns into a non-nil interface.
func GetRabbitPub() application.JobPublisher {
	if rabbitPub == nil {
		return nil
	}
	return rabbitPub
}
