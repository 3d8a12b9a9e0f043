// Package uploader sends product images to the external object storage and
// returns their public URLs.
package uploader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"time"

	"admin-console/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxFileSize is the storage collaborator's hard limit per object
const MaxFileSize = 10 << 20 // 10 MiB

// File is one image selected for upload
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadError is surfaced for any upload failure: oversize file, transport
// error, or a storage-side rejection.
type UploadError struct {
	Message string
	Cause   error
}

func (e *UploadError) Error() string {
	return e.Message
}

func (e *UploadError) Unwrap() error {
	return e.Cause
}

// Uploader is the object-storage collaborator contract
type Uploader interface {
	Upload(ctx context.Context, f File) (string, error)
}

// StorageUploader posts files to an HTTP object store and derives public URLs
// from the bucket layout.
type StorageUploader struct {
	endpoint   string
	bucket     string
	key        string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewStorageUploader creates an uploader for the given storage endpoint and bucket
func NewStorageUploader(endpoint, bucket, key string) *StorageUploader {
	return &StorageUploader{
		endpoint:   endpoint,
		bucket:     bucket,
		key:        key,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     util.GetLogger(),
	}
}

// Upload stores one file and returns its public URL. Files over MaxFileSize
// are rejected before any network call.
func (u *StorageUploader) Upload(ctx context.Context, f File) (string, error) {
	ctx, span := util.StartSpan(ctx, "StorageUploader.Upload")
	defer span.End()

	if len(f.Data) > MaxFileSize {
		util.ImageUploadsFailedTotal.WithLabelValues("too_large").Inc()
		return "", &UploadError{Message: "file exceeds the 10MB limit"}
	}

	name := objectName(f.Name)
	target := fmt.Sprintf("%s/object/%s/%s", u.endpoint, u.bucket, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(f.Data))
	if err != nil {
		util.ImageUploadsFailedTotal.WithLabelValues("request").Inc()
		return "", &UploadError{Message: "failed to build upload request", Cause: err}
	}

	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	if u.key != "" {
		req.Header.Set("Authorization", "Bearer "+u.key)
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		util.ImageUploadsFailedTotal.WithLabelValues("transport").Inc()
		u.logger.Warn("Image upload failed", zap.String("object", name), zap.Error(err))
		return "", &UploadError{Message: "upload failed: " + err.Error(), Cause: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		util.ImageUploadsFailedTotal.WithLabelValues("storage").Inc()
		u.logger.Warn("Storage rejected upload",
			zap.String("object", name),
			zap.Int("status", resp.StatusCode))
		return "", &UploadError{Message: fmt.Sprintf("storage rejected upload: status %d", resp.StatusCode)}
	}

	util.ImageUploadsTotal.Inc()
	publicURL := fmt.Sprintf("%s/object/public/%s/%s", u.endpoint, u.bucket, name)
	u.logger.Debug("Image uploaded", zap.String("url", publicURL))
	return publicURL, nil
}

// objectName builds a collision-free object name from the original file name,
// keeping only its extension.
func objectName(original string) string {
	ext := path.Ext(original)
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
}
