package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oksasatya/student-marks-dashboard/internal/domain/entity"
	"github.com/oksasatya/student-marks-dashboard/internal/domain/repository"
)

type MarksRepository struct {
	db DBTX
}

func NewMarksRepository(db DBTX) *MarksRepository {
	return &MarksRepository{db: db}
}

func (r *MarksRepository) Exists(ctx context.Context, username string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM marks WHERE username = $1)`, username).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("marks exists: %w", err)
	}
	return ok, nil
}

// Save inserts the submission unless one is already stored for username.
func (r *MarksRepository) Save(ctx context.Context, username string, m entity.Marks) (bool, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return false, err
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO marks (username, scores)
		VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING
	`, username, b)
	if err != nil {
		return false, fmt.Errorf("save marks: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("save marks: %w", err)
	}
	return n == 1, nil
}

func (r *MarksRepository) Load(ctx context.Context, username string) (*entity.MarksTable, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT scores FROM marks WHERE username = $1 ORDER BY submitted_at
	`, username)
	if err != nil {
		return nil, fmt.Errorf("load marks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	t := &entity.MarksTable{Subjects: append([]string(nil), entity.Subjects...)}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("load marks: %w", err)
		}
		var m entity.Marks
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("decode marks: %w", err)
		}
		t.Rows = append(t.Rows, entity.NewMarksTable(m).Rows[0])
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load marks: %w", err)
	}
	if len(t.Rows) == 0 {
		return nil, repository.ErrNotFound
	}
	return t, nil
}

var _ repository.MarksRepository = (*MarksRepository)(nil)
