package repository

import (
	"context"

	"github.com/oksasatya/student-marks-dashboard/internal/domain/entity"
)

// MarksRepository persists a write-once marks table per username.
// Save reports created=false, without error, when marks already exist.
type MarksRepository interface {
	Exists(ctx context.Context, username string) (bool, error)
	Save(ctx context.Context, username string, m entity.Marks) (created bool, err error)
	Load(ctx context.Context, username string) (*entity.MarksTable, error)
}
