package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/interfaces"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
)

// RecordGateway stores tables as in-memory row lists. It is used by the console
// mode and by tests.
type RecordGateway struct {
	mu      sync.RWMutex
	schemas record.Schemas
	headers map[string][]string
	tables  map[string][][]any

	// Call counter for tracking method invocations
	callCounts map[string]int
	callMu     sync.RWMutex

	eb *goerr.Builder
}

var _ interfaces.RecordGateway = &RecordGateway{}

func NewRecordGateway(schemas record.Schemas) *RecordGateway {
	return &RecordGateway{
		schemas:    schemas,
		headers:    make(map[string][]string),
		tables:     make(map[string][][]any),
		callCounts: make(map[string]int),
		eb:         goerr.NewBuilder(goerr.TV(errutil.BackendKey, "memory")),
	}
}

func (r *RecordGateway) incrementCallCount(methodName string) {
	r.callMu.Lock()
	defer r.callMu.Unlock()
	r.callCounts[methodName]++
}

// GetCallCount returns the number of times a method has been called
func (r *RecordGateway) GetCallCount(methodName string) int {
	r.callMu.RLock()
	defer r.callMu.RUnlock()
	return r.callCounts[methodName]
}

func (r *RecordGateway) EnsureSchema(ctx context.Context) error {
	r.incrementCallCount("EnsureSchema")

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.schemas.All() {
		if _, ok := r.headers[s.Table]; ok {
			continue
		}
		r.headers[s.Table] = s.Header()
		r.tables[s.Table] = nil
	}
	return nil
}

func (r *RecordGateway) Append(ctx context.Context, rec record.Record) error {
	r.incrementCallCount("Append")

	row, err := record.Row(rec)
	if err != nil {
		return r.eb.Wrap(err, "failed to render record", goerr.T(errs.TagValidation))
	}
	table := r.schemas.Of(rec.Kind()).Table

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.headers[table]; !ok {
		return r.eb.New("table does not exist",
			goerr.T(errs.TagNotFound),
			goerr.TV(errutil.TableKey, table))
	}
	r.tables[table] = append(r.tables[table], row)
	return nil
}

// Header returns the header row of table, or nil if the table does not exist.
func (r *RecordGateway) Header(table string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.headers[table])
}

// Rows returns a copy of the data rows of table.
func (r *RecordGateway) Rows(table string) [][]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([][]any, len(r.tables[table]))
	for i, row := range r.tables[table] {
		rows[i] = slices.Clone(row)
	}
	return rows
}

// Tables returns the names of existing tables.
func (r *RecordGateway) Tables() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name := range r.headers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
