package partition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/oksasatya/student-marks-dashboard/internal/domain/entity"
	"github.com/oksasatya/student-marks-dashboard/internal/domain/repository"
)

// credentials is the on-disk layout of Credentials.json.
type credentials struct {
	Username string `json:"Username"`
	Phone    string `json:"Phone"`
	DOB      string `json:"DOB"`
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

type StudentRepository struct {
	bucket Bucket
}

func NewStudentRepository(b Bucket) *StudentRepository {
	return &StudentRepository{bucket: b}
}

func (r *StudentRepository) Save(ctx context.Context, s *entity.Student) error {
	key, err := objectKey(s.Username, credentialsFile)
	if err != nil {
		return err
	}
	b, err := json.Marshal(credentials{
		Username: s.Username,
		Phone:    s.Phone,
		DOB:      s.DateOfBirth.Format(entity.DateLayout),
		Email:    s.Email,
		Password: s.Password,
	})
	if err != nil {
		return err
	}
	return r.bucket.Write(ctx, key, b)
}

func (r *StudentRepository) Get(ctx context.Context, username string) (*entity.Student, error) {
	key, err := objectKey(username, credentialsFile)
	if err != nil {
		return nil, err
	}
	b, err := r.bucket.Read(ctx, key)
	if errors.Is(err, ErrObjectNotExist) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var c credentials
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	s := &entity.Student{
		Username: c.Username,
		Phone:    c.Phone,
		Email:    c.Email,
		Password: c.Password,
	}
	if c.DOB != "" {
		dob, err := time.Parse(entity.DateLayout, c.DOB)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		s.DateOfBirth = dob
	}
	return s, nil
}

var _ repository.StudentRepository = (*StudentRepository)(nil)
