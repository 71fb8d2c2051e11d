package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"go.uber.org/zap"
)

// AzureBlobStorage stores objects in one Azure Blob container (the "presupuestos" bucket)
type AzureBlobStorage struct {
	client    *azblob.Client
	container string
	baseURL   string
	logger    *zap.Logger
}

// NewAzureBlobStorage connects with a connection string and makes sure the container exists
func NewAzureBlobStorage(connectionString, container, publicBaseURL string, logger *zap.Logger) (*AzureBlobStorage, error) {
	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}

	_, err = client.CreateContainer(context.Background(), container, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	base := publicBaseURL
	if base == "" {
		base = strings.TrimRight(client.URL(), "/") + "/" + container
	}

	logger.Info("Azure Blob Storage initialized", zap.String("container", container))

	return &AzureBlobStorage{
		client:    client,
		container: container,
		baseURL:   strings.TrimRight(base, "/"),
		logger:    logger,
	}, nil
}

// Put uploads the object with its content type
func (s *AzureBlobStorage) Put(ctx context.Context, key, contentType string, data io.Reader) (*Object, error) {
	reader := &countingReader{r: data}
	_, err := s.client.UploadStream(ctx, s.container, key, reader, &azblob.UploadStreamOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload blob: %w", err)
	}

	s.logger.Debug("Blob uploaded",
		zap.String("key", key),
		zap.String("content_type", contentType),
		zap.Int64("size", reader.count),
	)
	return &Object{Key: key, URL: s.URL(key), Size: reader.count}, nil
}

type countingReader struct {
	r     io.Reader
	count int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.count += int64(n)
	return n, err
}

// Open streams the blob body
func (s *AzureBlobStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	resp, err := s.client.DownloadStream(ctx, s.container, key, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to download blob: %w", err)
	}
	return resp.Body, nil
}

// Delete removes the blob; missing blobs are not an error
func (s *AzureBlobStorage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteBlob(ctx, s.container, key, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.BlobNotFound) {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

// URL returns the public blob URL
func (s *AzureBlobStorage) URL(key string) string {
	return s.baseURL + "/" + escapeKey(key)
}
