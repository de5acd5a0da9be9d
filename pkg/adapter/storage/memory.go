package storage

import (
	"bytes"
	"context"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/interfaces"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
)

// MemoryClient keeps objects in memory. It backs the archive in tests and in
// console mode.
type MemoryClient struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

var _ interfaces.StorageClient = &MemoryClient{}

func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		objects: make(map[string][]byte),
	}
}

func (m *MemoryClient) PutObject(ctx context.Context, object string) io.WriteCloser {
	return &memoryWriter{
		client: m,
		object: object,
		buffer: &bytes.Buffer{},
	}
}

func (m *MemoryClient) GetObject(ctx context.Context, object string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, exists := m.objects[object]
	if !exists {
		return nil, goerr.New("object not found",
			goerr.T(errs.TagNotFound),
			goerr.TV(errutil.ObjectKey, object))
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *MemoryClient) Close(ctx context.Context) {}

// Objects returns the names of stored objects with prefix, sorted.
func (m *MemoryClient) Objects(prefix string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var names []string
	for name := range m.objects {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// memoryWriter publishes the object on Close, like a bucket upload.
type memoryWriter struct {
	client *MemoryClient
	object string
	buffer *bytes.Buffer
	closed bool
	mu     sync.Mutex
}

func (w *memoryWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, goerr.New("writer is closed", goerr.TV(errutil.ObjectKey, w.object))
	}

	return w.buffer.Write(p)
}

func (w *memoryWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}

	w.client.mu.Lock()
	defer w.client.mu.Unlock()

	w.client.objects[w.object] = bytes.Clone(w.buffer.Bytes())
	w.closed = true

	return nil
}
