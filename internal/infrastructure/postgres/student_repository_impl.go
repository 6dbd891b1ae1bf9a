package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/oksasatya/student-marks-dashboard/internal/domain/entity"
	"github.com/oksasatya/student-marks-dashboard/internal/domain/repository"
)

type StudentRepository struct {
	db DBTX
}

func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{db: db}
}

// Save upserts the whole record; a repeated signup replaces every field.
func (r *StudentRepository) Save(ctx context.Context, s *entity.Student) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO students (username, phone, date_of_birth, email, password)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO UPDATE
		SET phone = EXCLUDED.phone, date_of_birth = EXCLUDED.date_of_birth,
		    email = EXCLUDED.email, password = EXCLUDED.password, updated_at = now()
	`, s.Username, s.Phone, s.DateOfBirth, s.Email, s.Password)
	if err != nil {
		return fmt.Errorf("save student: %w", err)
	}
	return nil
}

func (r *StudentRepository) Get(ctx context.Context, username string) (*entity.Student, error) {
	s := &entity.Student{}
	row := r.db.QueryRowContext(ctx, `
		SELECT username, phone, date_of_birth, email, password
		FROM students
		WHERE username = $1
	`, username)
	if err := row.Scan(&s.Username, &s.Phone, &s.DateOfBirth, &s.Email, &s.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get student: %w", err)
	}
	return s, nil
}

var _ repository.StudentRepository = (*StudentRepository)(nil)
