package cli_test

import (
	"testing"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/cli"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/m-mizutani/fireconf"
	"github.com/m-mizutani/gt"
)

func TestDefineFirestoreIndexes(t *testing.T) {
	schemas := record.DefaultSchemas()
	config := cli.DefineFirestoreIndexes(schemas)

	gt.Value(t, config).NotNil()
	gt.A(t, config.Collections).Length(3)

	var names []string
	for _, col := range config.Collections {
		names = append(names, col.Name)

		gt.A(t, col.Indexes).Length(1)
		idx := col.Indexes[0]
		gt.Equal(t, idx.QueryScope, fireconf.QueryScopeCollection)
		gt.A(t, idx.Fields).Length(3)
		gt.Equal(t, idx.Fields[0].Path, record.ColumnOperator)
		gt.Equal(t, idx.Fields[0].Order, fireconf.OrderAscending)
		gt.Equal(t, idx.Fields[1].Path, "created_at")
		gt.Equal(t, idx.Fields[1].Order, fireconf.OrderDescending)
		gt.Equal(t, idx.Fields[2].Path, "__name__")
	}
	gt.A(t, names).Equal([]string{"Timing", "Blanks", "Other"})

	t.Run("renamed tables are indexed", func(t *testing.T) {
		renamed := record.DefaultSchemas()
		renamed.Timing.Table = "Chrono"

		config := cli.DefineFirestoreIndexes(renamed)
		gt.Equal(t, config.Collections[0].Name, "Chrono")
	})
}
