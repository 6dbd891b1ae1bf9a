// Package persistence opens the student and marks repositories for the
// configured storage driver.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/golang-migrate/migrate/v4"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-marks-dashboard/config"
	repo "github.com/oksasatya/student-marks-dashboard/internal/domain/repository"
	"github.com/oksasatya/student-marks-dashboard/internal/infrastructure/partition"
	pginfra "github.com/oksasatya/student-marks-dashboard/internal/infrastructure/postgres"
	"github.com/oksasatya/student-marks-dashboard/pkg/helpers"
)

// Stores holds the repositories and the clients behind them.
type Stores struct {
	Students repo.StudentRepository
	Marks    repo.MarksRepository
	DB       *sql.DB
	GCS      *storage.Client
}

// Open builds the repositories for cfg.StorageDriver. For postgres it also
// applies pending migrations.
func Open(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Stores, error) {
	switch cfg.StorageDriver {
	case config.StorageFS:
		b := partition.NewLocalBucket(cfg.StorageRoot)
		return &Stores{Students: partition.NewStudentRepository(b), Marks: partition.NewMarksRepository(b)}, nil

	case config.StorageGCS:
		if cfg.GCSBucket == "" {
			return nil, errors.New("GCS_BUCKET is required for the gcs storage driver")
		}
		client, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			return nil, fmt.Errorf("gcs client: %w", err)
		}
		b := partition.NewGCSBucket(client, cfg.GCSBucket, cfg.StorageRoot)
		return &Stores{Students: partition.NewStudentRepository(b), Marks: partition.NewMarksRepository(b), GCS: client}, nil

	case config.StoragePostgres:
		db, err := pginfra.OpenDB(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		if err := RunMigrations(db, cfg.MigrationsDir, logger); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			_ = db.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
		return &Stores{Students: pginfra.NewStudentRepository(db), Marks: pginfra.NewMarksRepository(db), DB: db}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func (s *Stores) Close() {
	if s == nil {
		return
	}
	if s.DB != nil {
		_ = s.DB.Close()
	}
	if s.GCS != nil {
		_ = s.GCS.Close()
	}
}
