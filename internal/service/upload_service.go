package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/storage"
	"go.uber.org/zap"
)

var (
	errFileTooLarge    = errors.New("file exceeds the size limit")
	errUnsupportedType = errors.New("unsupported file type")
)

// FileUpload is one file of a multipart batch
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// UploadResult reports a batch. Only successful uploads have a URL.
type UploadResult struct {
	URLs   []string
	Failed []*UploadError
}

func (r *UploadResult) Uploaded() int { return len(r.URLs) }

func (r *UploadResult) FailedCount() int { return len(r.Failed) }

// UploadService stores files one after another. A failing file is logged and skipped;
// it never aborts the rest of the batch.
type UploadService struct {
	storage  storage.Storage
	maxBytes int64
	logger   *zap.Logger
}

func NewUploadService(store storage.Storage, maxBytes int64, logger *zap.Logger) *UploadService {
	return &UploadService{
		storage:  store,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// UploadBatch uploads files sequentially under prefix. With imagesOnly set, files whose
// content type is not an image are rejected individually.
func (s *UploadService) UploadBatch(ctx context.Context, prefix string, files []FileUpload, imagesOnly bool) *UploadResult {
	result := &UploadResult{}
	for _, file := range files {
		url, err := s.uploadOne(ctx, prefix, file, imagesOnly)
		if err != nil {
			uploadErr := &UploadError{Name: file.Name, Err: err}
			result.Failed = append(result.Failed, uploadErr)
			s.logger.Warn("failed to upload file",
				zap.String("prefix", prefix),
				zap.String("filename", file.Name),
				zap.Int64("size", file.Size),
				zap.Error(err),
			)
			continue
		}
		result.URLs = append(result.URLs, url)
	}
	return result
}

func (s *UploadService) uploadOne(ctx context.Context, prefix string, file FileUpload, imagesOnly bool) (string, error) {
	if s.maxBytes > 0 && file.Size > s.maxBytes {
		return "", errFileTooLarge
	}
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if imagesOnly && !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: %s", errUnsupportedType, contentType)
	}

	rc, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer rc.Close()

	key := storage.ObjectKey(prefix, file.Name, path.Ext(file.Name))
	obj, err := s.storage.Put(ctx, key, contentType, rc)
	if err != nil {
		return "", err
	}
	return obj.URL, nil
}

// UploadDocument stores an in-memory document and returns its object
func (s *UploadService) UploadDocument(ctx context.Context, prefix, base, ext, contentType string, data []byte) (*storage.Object, error) {
	key := storage.ObjectKey(prefix, base, ext)
	obj, err := s.storage.Put(ctx, key, contentType, bytes.NewReader(data))
	if err != nil {
		return nil, &UploadError{Name: path.Base(key), Err: err}
	}
	return obj, nil
}
