package storage_test

import (
	"io"
	"testing"
	"time"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/adapter/storage"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/test"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestClient(t *testing.T) {
	vars := test.NewEnvVars(t, "TEST_STORAGE_BUCKET")
	prefix := "prodbot-test-" + time.Now().Format("20060102150405") + "/"

	ctx := t.Context()
	client, err := storage.New(ctx, vars.Get("TEST_STORAGE_BUCKET"))
	gt.NoError(t, err).Required()
	defer client.Close(ctx)

	objectName := prefix + "record.json"
	testData := []byte(`{"operator":"test"}`)

	t.Run("PutObject", func(t *testing.T) {
		w := client.PutObject(ctx, objectName)
		_, err := w.Write(testData)
		gt.NoError(t, err).Required()
		gt.NoError(t, w.Close())
	})

	t.Run("GetObject", func(t *testing.T) {
		rc, err := client.GetObject(ctx, objectName)
		gt.NoError(t, err).Required()
		defer func() {
			_ = rc.Close()
		}()

		data, err := io.ReadAll(rc)
		gt.NoError(t, err)
		gt.A(t, data).Equal(testData)
	})

	t.Run("GetObject not found", func(t *testing.T) {
		_, err := client.GetObject(ctx, prefix+"missing.json")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, errs.TagNotFound))
	})
}
