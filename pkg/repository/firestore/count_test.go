package firestore_test

import (
	"testing"

	fs "cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/repository/firestore"
	"github.com/m-mizutani/gt"
)

func TestExtractCount(t *testing.T) {
	t.Run("int64", func(t *testing.T) {
		n, err := firestore.ExtractCount(fs.AggregationResult{"total": int64(7)}, "total")
		gt.NoError(t, err)
		gt.Equal(t, n, 7)
	})

	t.Run("protobuf integer", func(t *testing.T) {
		v := &firestorepb.Value{ValueType: &firestorepb.Value_IntegerValue{IntegerValue: 4}}
		n, err := firestore.ExtractCount(fs.AggregationResult{"total": v}, "total")
		gt.NoError(t, err)
		gt.Equal(t, n, 4)
	})

	t.Run("protobuf non-integer", func(t *testing.T) {
		v := &firestorepb.Value{ValueType: &firestorepb.Value_StringValue{StringValue: "4"}}
		_, err := firestore.ExtractCount(fs.AggregationResult{"total": v}, "total")
		gt.Error(t, err)
	})

	t.Run("missing alias", func(t *testing.T) {
		_, err := firestore.ExtractCount(fs.AggregationResult{}, "total")
		gt.Error(t, err)
	})
}
