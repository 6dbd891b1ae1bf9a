package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/student-marks-dashboard/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a partition holds no record of the requested kind.
	ErrNotFound = errors.New("not found")
	// ErrInvalidKey is returned when a username cannot name a storage partition.
	ErrInvalidKey = errors.New("invalid partition key")
)

// StudentRepository persists one credentials record per username.
// Save overwrites any previous record for the same username.
type StudentRepository interface {
	Save(ctx context.Context, s *entity.Student) error
	Get(ctx context.Context, username string) (*entity.Student, error)
}
