package partition

import (
	"bytes"
	"context"
	"errors"
	"path"

	"cloud.google.com/go/storage"

	"github.com/oksasatya/student-marks-dashboard/pkg/helpers"
)

// GCSBucket keeps objects in a Cloud Storage bucket below Prefix.
type GCSBucket struct {
	Client *storage.Client
	Bucket string
	Prefix string
}

func NewGCSBucket(client *storage.Client, bucket, prefix string) *GCSBucket {
	return &GCSBucket{Client: client, Bucket: bucket, Prefix: prefix}
}

func (b *GCSBucket) object(key string) string {
	if b.Prefix == "" {
		return key
	}
	return path.Join(b.Prefix, key)
}

func (b *GCSBucket) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := helpers.ReadObject(ctx, b.Client, b.Bucket, b.object(key))
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, ErrObjectNotExist
	}
	return data, err
}

func (b *GCSBucket) Write(ctx context.Context, key string, data []byte) error {
	return helpers.UploadObject(ctx, b.Client, b.Bucket, b.object(key), contentType(key), bytes.NewReader(data), false)
}

func (b *GCSBucket) Create(ctx context.Context, key string, data []byte) (bool, error) {
	err := helpers.UploadObject(ctx, b.Client, b.Bucket, b.object(key), contentType(key), bytes.NewReader(data), true)
	if helpers.IsPreconditionFailed(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (b *GCSBucket) Exists(ctx context.Context, key string) (bool, error) {
	return helpers.ObjectExists(ctx, b.Client, b.Bucket, b.object(key))
}

func contentType(key string) string {
	switch path.Ext(key) {
	case ".json":
		return "application/json"
	case ".csv":
		return "text/csv"
	}
	return "application/octet-stream"
}

var _ Bucket = (*GCSBucket)(nil)
