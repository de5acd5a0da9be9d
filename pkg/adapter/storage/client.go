package storage

import (
	"context"
	"errors"
	"io"
	"path"

	"cloud.google.com/go/storage"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/interfaces"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

// Client reads and writes objects of one Cloud Storage bucket.
type Client struct {
	client *storage.Client
	bucket string
}

var _ interfaces.StorageClient = &Client{}

func New(ctx context.Context, bucket string, opts ...option.ClientOption) (*Client, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client",
			goerr.T(errs.TagExternal),
			goerr.V("bucket", bucket))
	}

	return &Client{
		client: client,
		bucket: bucket,
	}, nil
}

// PutObject returns a writer that uploads on Close. JSON objects get a JSON content type.
func (x *Client) PutObject(ctx context.Context, object string) io.WriteCloser {
	w := x.client.Bucket(x.bucket).Object(object).NewWriter(ctx)
	if path.Ext(object) == ".json" {
		w.ContentType = "application/json"
	}
	return w
}

func (x *Client) GetObject(ctx context.Context, object string) (io.ReadCloser, error) {
	rc, err := x.client.Bucket(x.bucket).Object(object).NewReader(ctx)
	if err != nil {
		opts := []goerr.Option{
			goerr.V("bucket", x.bucket),
			goerr.TV(errutil.ObjectKey, object),
		}
		if errors.Is(err, storage.ErrObjectNotExist) {
			opts = append(opts, goerr.T(errs.TagNotFound))
		} else {
			opts = append(opts, goerr.T(errs.TagExternal))
		}
		return nil, goerr.Wrap(err, "failed to create reader", opts...)
	}

	return rc, nil
}

func (x *Client) Close(ctx context.Context) {
	safe.Close(ctx, x.client)
}
