package helpers

import (
	"cloud.google.com/go/storage"
	"context"
	"errors"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"io"
	"net/http"
)

// NewGCSClient creates a Google Cloud Storage client. If credsPath is empty, ADC is used.
func NewGCSClient(ctx context.Context, credsPath string) (*storage.Client, error) {
	if credsPath == "" {
		return storage.NewClient(ctx)
	}
	return storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
}

// UploadObject uploads bytes from r into bucket/objectPath with the provided contentType.
// With onlyIfAbsent the write is conditioned on the object not existing yet;
// a lost race surfaces as a precondition error (see IsPreconditionFailed).
func UploadObject(ctx context.Context, client *storage.Client, bucket, objectPath, contentType string, r io.Reader, onlyIfAbsent bool) error {
	obj := client.Bucket(bucket).Object(objectPath)
	if onlyIfAbsent {
		obj = obj.If(storage.Conditions{DoesNotExist: true})
	}
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.ChunkSize = 0 // disable chunking for small files
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}

// ReadObject downloads bucket/objectPath. A missing object yields storage.ErrObjectNotExist.
func ReadObject(ctx context.Context, client *storage.Client, bucket, objectPath string) ([]byte, error) {
	rc, err := client.Bucket(bucket).Object(objectPath).NewReader(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}

// ObjectExists reports whether bucket/objectPath is present
func ObjectExists(ctx context.Context, client *storage.Client, bucket, objectPath string) (bool, error) {
	_, err := client.Bucket(bucket).Object(objectPath).Attrs(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// IsPreconditionFailed reports whether err is a GCS 412 from a conditional write
func IsPreconditionFailed(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusPreconditionFailed
}
