package application

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-marks-dashboard/internal/domain/entity"
	"github.com/oksasatya/student-marks-dashboard/pkg/helpers"
)

const studentIndexMapping = `{
  "mappings": {
    "properties": {
      "username":   {"type": "text", "fields": {"keyword": {"type": "keyword"}}},
      "email":      {"type": "text", "fields": {"keyword": {"type": "keyword"}}},
      "has_marks":  {"type": "boolean"},
      "average":    {"type": "float"},
      "updated_at": {"type": "date"}
    }
  }
}`

// StudentDoc is what the directory index stores and search returns.
// Password, phone and date of birth stay in the student store.
type StudentDoc struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	HasMarks  bool      `json:"has_marks"`
	Average   float64   `json:"average,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Directory is an optional Elasticsearch-backed student lookup.
// A nil Directory or nil client turns every call into a no-op.
type Directory struct {
	ES     *elasticsearch.Client
	Index  string
	Logger *logrus.Logger
}

func NewDirectory(es *elasticsearch.Client, index string, logger *logrus.Logger) *Directory {
	return &Directory{ES: es, Index: index, Logger: logger}
}

func (d *Directory) enabled() bool {
	return d != nil && d.ES != nil && d.Index != ""
}

// EnsureIndex creates the directory index with its mapping if missing.
func (d *Directory) EnsureIndex(ctx context.Context) error {
	if !d.enabled() {
		return nil
	}
	return helpers.EnsureESIndex(ctx, d.ES, d.Index, studentIndexMapping)
}

// Upsert indexes s. marks may be nil when none were submitted yet.
func (d *Directory) Upsert(ctx context.Context, s *entity.Student, marks entity.Marks) error {
	if !d.enabled() || s == nil {
		return nil
	}
	doc := StudentDoc{
		Username:  s.Username,
		Email:     s.Email,
		UpdatedAt: time.Now().UTC(),
	}
	if marks != nil {
		doc.HasMarks = true
		doc.Average = marks.Average()
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{Index: d.Index, DocumentID: s.Username, Body: bytes.NewReader(b), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, d.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index: %s", res.Status())
	}
	return nil
}

// upsertQuietly is Upsert for side-effect call sites.
func (d *Directory) upsertQuietly(ctx context.Context, s *entity.Student, marks entity.Marks) {
	if err := d.Upsert(ctx, s, marks); err != nil && d.Logger != nil {
		d.Logger.WithError(err).WithField("username", s.Username).Warn("directory index failed")
	}
}

// Search runs a multi_match over username and email.
func (d *Directory) Search(ctx context.Context, q string, size int) ([]StudentDoc, error) {
	if !d.enabled() {
		return []StudentDoc{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"username^2", "email"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := d.ES.Search(d.ES.Search.WithContext(c), d.ES.Search.WithIndex(d.Index), d.ES.Search.WithBody(bytes.NewReader(b)))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source StudentDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]StudentDoc, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
