package service_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/notify"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/service"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/storage"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBaseURL = "http://localhost:8080/files"

var errStorageDown = errors.New("storage unavailable")

func newTestStorage(t *testing.T) *storage.LocalStorage {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir(), testBaseURL)
	require.NoError(t, err)
	return store
}

func newUploadService(t *testing.T, store storage.Storage) *service.UploadService {
	t.Helper()
	return service.NewUploadService(store, 1<<20, zap.NewNop())
}

// flakyStorage fails every Put whose key contains failOn
type flakyStorage struct {
	storage.Storage
	failOn string
}

func (s *flakyStorage) Put(ctx context.Context, key, contentType string, data io.Reader) (*storage.Object, error) {
	if s.failOn == "" || strings.Contains(key, s.failOn) {
		return nil, errStorageDown
	}
	return s.Storage.Put(ctx, key, contentType, data)
}

type recordingSender struct {
	mu       sync.Mutex
	messages []notify.Message
}

func (s *recordingSender) Send(msg notify.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

func (s *recordingSender) sent() []notify.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notify.Message(nil), s.messages...)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(eventType string, _ interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
}

func (p *recordingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

func fileUpload(name, contentType, content string) service.FileUpload {
	return service.FileUpload{
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}
