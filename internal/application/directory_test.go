package application

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/student-marks-dashboard/internal/domain/entity"
)

// fakeES records indexed documents and answers every search with them.
func fakeES(t *testing.T) (*elasticsearch.Client, map[string]map[string]any) {
	t.Helper()
	docs := map[string]map[string]any{}
	created := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodHead && r.URL.Path == "/students":
			if !created {
				w.WriteHeader(http.StatusNotFound)
			}
		case r.Method == http.MethodPut && r.URL.Path == "/students":
			created = true
			_, _ = w.Write([]byte(`{"acknowledged":true}`))
		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/students/_doc/"):
			var doc map[string]any
			b, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(b, &doc)
			docs[strings.TrimPrefix(r.URL.Path, "/students/_doc/")] = doc
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"result":"created"}`))
		case strings.HasSuffix(r.URL.Path, "/_search"):
			hits := make([]map[string]any, 0, len(docs))
			for _, d := range docs {
				hits = append(hits, map[string]any{"_source": d})
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"hits": map[string]any{"hits": hits}})
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return es, docs
}

func TestDirectoryUpsertAndSearch(t *testing.T) {
	es, docs := fakeES(t)
	dir := NewDirectory(es, "students", nil)
	ctx := context.Background()

	st := &entity.Student{
		Username:    "alice",
		Phone:       "555",
		DateOfBirth: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		Email:       "a@x.com",
		Password:    "pw1",
	}
	require.NoError(t, dir.Upsert(ctx, st, aliceMarks()))

	require.Contains(t, docs, "alice")
	assert.Equal(t, "a@x.com", docs["alice"]["email"])
	assert.NotContains(t, docs["alice"], "phone")
	assert.NotContains(t, docs["alice"], "date_of_birth")
	assert.Equal(t, true, docs["alice"]["has_marks"])
	assert.NotContains(t, docs["alice"], "password")

	hits, err := dir.Search(ctx, "ali", 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "alice", hits[0].Username)
	assert.InDelta(t, 70.0, hits[0].Average, 1e-9)
}

func TestDirectoryEnsureIndex(t *testing.T) {
	es, _ := fakeES(t)
	dir := NewDirectory(es, "students", nil)

	require.NoError(t, dir.EnsureIndex(context.Background()))
	// second call sees the index and skips creation
	require.NoError(t, dir.EnsureIndex(context.Background()))
}

func TestDirectoryDisabled(t *testing.T) {
	var dir *Directory
	require.NoError(t, dir.Upsert(context.Background(), &entity.Student{Username: "a"}, nil))

	require.NoError(t, dir.EnsureIndex(context.Background()))

	hits, err := dir.Search(context.Background(), "a", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
