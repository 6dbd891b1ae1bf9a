package partition

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/oksasatya/student-marks-dashboard/internal/domain/entity"
	"github.com/oksasatya/student-marks-dashboard/internal/domain/repository"
)

type MarksRepository struct {
	bucket Bucket
}

func NewMarksRepository(b Bucket) *MarksRepository {
	return &MarksRepository{bucket: b}
}

func (r *MarksRepository) Exists(ctx context.Context, username string) (bool, error) {
	key, err := objectKey(username, marksFile)
	if err != nil {
		return false, err
	}
	return r.bucket.Exists(ctx, key)
}

// Save writes marks.csv only when the partition has none yet.
func (r *MarksRepository) Save(ctx context.Context, username string, m entity.Marks) (bool, error) {
	key, err := objectKey(username, marksFile)
	if err != nil {
		return false, err
	}
	data, err := encodeTable(entity.NewMarksTable(m))
	if err != nil {
		return false, err
	}
	return r.bucket.Create(ctx, key, data)
}

func (r *MarksRepository) Load(ctx context.Context, username string) (*entity.MarksTable, error) {
	key, err := objectKey(username, marksFile)
	if err != nil {
		return nil, err
	}
	data, err := r.bucket.Read(ctx, key)
	if errors.Is(err, ErrObjectNotExist) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t, err := decodeTable(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return t, nil
}

func encodeTable(t *entity.MarksTable) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Subjects); err != nil {
		return nil, err
	}
	for _, row := range t.Rows {
		rec := make([]string, len(row))
		for i, v := range row {
			rec[i] = strconv.Itoa(v)
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func decodeTable(data []byte) (*entity.MarksTable, error) {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("missing header row")
	}
	t := &entity.MarksTable{Subjects: records[0], Rows: make([][]int, 0, len(records)-1)}
	for n, rec := range records[1:] {
		row := make([]int, len(rec))
		for i, v := range rec {
			score, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", n+1, t.Subjects[i], err)
			}
			row[i] = score
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

var _ repository.MarksRepository = (*MarksRepository)(nil)
