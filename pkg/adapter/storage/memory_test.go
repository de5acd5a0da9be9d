package storage_test

import (
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/adapter/storage"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func readAll(t *testing.T, client *storage.MemoryClient, object string) []byte {
	t.Helper()
	rc, err := client.GetObject(t.Context(), object)
	gt.NoError(t, err).Required()
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	gt.NoError(t, err).Required()
	return data
}

func TestMemoryClient(t *testing.T) {
	ctx := t.Context()

	t.Run("object is visible only after close", func(t *testing.T) {
		client := storage.NewMemoryClient()
		w := client.PutObject(ctx, "v1/a.json")
		_, err := w.Write([]byte("hello"))
		gt.NoError(t, err)

		_, err = client.GetObject(ctx, "v1/a.json")
		gt.True(t, goerr.HasTag(err, errs.TagNotFound))

		gt.NoError(t, w.Close())
		gt.Equal(t, string(readAll(t, client, "v1/a.json")), "hello")
	})

	t.Run("overwrite existing object", func(t *testing.T) {
		client := storage.NewMemoryClient()
		for _, data := range []string{"first", "second"} {
			w := client.PutObject(ctx, "obj")
			_, err := w.Write([]byte(data))
			gt.NoError(t, err)
			gt.NoError(t, w.Close())
		}
		gt.Equal(t, string(readAll(t, client, "obj")), "second")
	})

	t.Run("write after close fails and close is idempotent", func(t *testing.T) {
		client := storage.NewMemoryClient()
		w := client.PutObject(ctx, "obj")
		gt.NoError(t, w.Close())
		gt.NoError(t, w.Close())

		_, err := w.Write([]byte("late"))
		gt.Error(t, err)
	})

	t.Run("Objects filters by prefix", func(t *testing.T) {
		client := storage.NewMemoryClient()
		for _, name := range []string{"b/2", "a/1", "b/1"} {
			w := client.PutObject(ctx, name)
			gt.NoError(t, w.Close())
		}
		gt.A(t, client.Objects("b/")).Equal([]string{"b/1", "b/2"})
		gt.A(t, client.Objects("")).Length(3)
	})

	t.Run("concurrent writers", func(t *testing.T) {
		client := storage.NewMemoryClient()
		var wg sync.WaitGroup
		for i := range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := client.PutObject(ctx, fmt.Sprintf("object-%d", i))
				_, _ = w.Write([]byte(fmt.Sprintf("data-%d", i)))
				_ = w.Close()
			}()
		}
		wg.Wait()

		for i := range 10 {
			gt.Equal(t, string(readAll(t, client, fmt.Sprintf("object-%d", i))), fmt.Sprintf("data-%d", i))
		}
	})
}
