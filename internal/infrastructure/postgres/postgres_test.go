package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/student-marks-dashboard/internal/domain/entity"
	"github.com/oksasatya/student-marks-dashboard/internal/domain/repository"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestStudentRepository_SaveUpserts(t *testing.T) {
	db, mock := newMock(t)
	repo := NewStudentRepository(db)
	dob := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`(?s)INSERT INTO students .* ON CONFLICT \(username\) DO UPDATE`).
		WithArgs("alice", "555", dob, "a@x.com", "pw1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), &entity.Student{
		Username: "alice", Phone: "555", DateOfBirth: dob, Email: "a@x.com", Password: "pw1",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepository_Get(t *testing.T) {
	db, mock := newMock(t)
	repo := NewStudentRepository(db)
	dob := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)SELECT username, phone, date_of_birth, email, password\s+FROM students`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"username", "phone", "date_of_birth", "email", "password"}).
			AddRow("alice", "555", dob, "a@x.com", "pw1"))

	got, err := repo.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "pw1", got.Password)
	assert.Equal(t, dob, got.DateOfBirth)
}

func TestStudentRepository_GetNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewStudentRepository(db)

	mock.ExpectQuery(`FROM students`).WithArgs("bob").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "bob")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStudentRepository_GetDBError(t *testing.T) {
	db, mock := newMock(t)
	repo := NewStudentRepository(db)

	mock.ExpectQuery(`FROM students`).WithArgs("bob").WillReturnError(errors.New("db down"))

	_, err := repo.Get(context.Background(), "bob")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
	assert.Contains(t, err.Error(), "db down")
}

func TestMarksRepository_SaveOnlyOnce(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMarksRepository(db)
	m := entity.Marks{"FOML": 70, "AAI": 80, "VCC": 90, "BDMS": 60, "DHV": 50}

	mock.ExpectExec(`(?s)INSERT INTO marks .* ON CONFLICT \(username\) DO NOTHING`).
		WithArgs("alice", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`(?s)INSERT INTO marks .* ON CONFLICT \(username\) DO NOTHING`).
		WithArgs("alice", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	created, err := repo.Save(context.Background(), "alice", m)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Save(context.Background(), "alice", m)
	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarksRepository_Exists(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMarksRepository(db)

	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMarksRepository_Load(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMarksRepository(db)

	mock.ExpectQuery(`SELECT scores FROM marks`).WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"scores"}).
			AddRow([]byte(`{"FOML":70,"AAI":80,"VCC":90,"BDMS":60,"DHV":50}`)))

	table, err := repo.Load(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, entity.Subjects, table.Subjects)
	assert.Equal(t, [][]int{{70, 80, 90, 60, 50}}, table.Rows)
}

func TestMarksRepository_LoadEmpty(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMarksRepository(db)

	mock.ExpectQuery(`SELECT scores FROM marks`).WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"scores"}))

	_, err := repo.Load(context.Background(), "alice")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
