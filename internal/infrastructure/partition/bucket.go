// Package partition stores each student's data under a per-username prefix
// of a Bucket: Credentials.json for the account and marks.csv for the
// write-once marks table. The same repositories run on a local directory or
// on a Google Cloud Storage bucket.
package partition

import (
	"context"
	"errors"
	"strings"

	"github.com/oksasatya/student-marks-dashboard/internal/domain/repository"
)

const (
	credentialsFile = "Credentials.json"
	marksFile       = "marks.csv"
)

// ErrObjectNotExist is returned by Bucket.Read for a missing key.
var ErrObjectNotExist = errors.New("object does not exist")

// Bucket is a flat key/value blob store addressed by slash-separated keys.
type Bucket interface {
	// Read returns the object bytes or ErrObjectNotExist.
	Read(ctx context.Context, key string) ([]byte, error)
	// Write stores data under key, replacing any previous object.
	Write(ctx context.Context, key string, data []byte) error
	// Create stores data only if key is absent and reports whether it did.
	Create(ctx context.Context, key string, data []byte) (bool, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// maxKeyLen is the longest username that still fits a single path element.
const maxKeyLen = 255

// objectKey returns "<username>/<name>" after checking that username can
// name a single partition.
func objectKey(username, name string) (string, error) {
	if username == "" || username == "." || username == ".." || len(username) > maxKeyLen ||
		strings.ContainsAny(username, "/\\\x00") {
		return "", repository.ErrInvalidKey
	}
	return username + "/" + name, nil
}
