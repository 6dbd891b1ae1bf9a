package partition

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

// conditionNotMetServer answers every request like a bucket whose object
// already exists under an ifGenerationMatch=0 write.
func conditionNotMetServer(t *testing.T) (*storage.Client, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPreconditionFailed)
		_, _ = w.Write([]byte(`{"error":{"code":412,"message":"At least one of the pre-conditions you specified did not hold.","errors":[{"reason":"conditionNotMet"}]}}`))
	}))
	t.Cleanup(srv.Close)

	client, err := storage.NewClient(context.Background(),
		option.WithEndpoint(srv.URL+"/storage/v1/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, &calls
}

func TestGCSBucket_CreateLostRaceIsNotCreated(t *testing.T) {
	client, calls := conditionNotMetServer(t)
	b := NewGCSBucket(client, "marks", "users")

	created, err := b.Create(context.Background(), "alice/marks.csv", []byte("FOML,AAI,VCC,BDMS,DHV\n1,2,3,4,5\n"))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Positive(t, atomic.LoadInt32(calls))
}

func TestGCSBucket_ObjectPrefix(t *testing.T) {
	assert.Equal(t, "users/alice/marks.csv", NewGCSBucket(nil, "b", "users").object("alice/marks.csv"))
	assert.Equal(t, "alice/marks.csv", NewGCSBucket(nil, "b", "").object("alice/marks.csv"))
}
