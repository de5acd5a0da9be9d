package usecase

import (
	"context"
	"sync"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/interfaces"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/repository/memory"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/service/dialog"
	"github.com/m-mizutani/goerr/v2"
)

type UseCases struct {
	gateway  interfaces.RecordGateway
	sessions interfaces.SessionStore
	machine  *dialog.Machine
	profiles interfaces.ProfileResolver

	schemaOnce sync.Once
	schemaErr  error
}

var _ interfaces.DialogUsecases = &UseCases{}
var _ interfaces.SchemaUsecases = &UseCases{}

type Option func(*UseCases)

func WithRecordGateway(gateway interfaces.RecordGateway) Option {
	return func(u *UseCases) {
		u.gateway = gateway
	}
}

func WithSessionStore(sessions interfaces.SessionStore) Option {
	return func(u *UseCases) {
		u.sessions = sessions
	}
}

func WithMachine(machine *dialog.Machine) Option {
	return func(u *UseCases) {
		u.machine = machine
	}
}

// WithProfileResolver sets the lookup of operator names. Without it the
// operator name comes from the request context.
func WithProfileResolver(profiles interfaces.ProfileResolver) Option {
	return func(u *UseCases) {
		u.profiles = profiles
	}
}

func New(opts ...Option) *UseCases {
	u := &UseCases{
		gateway:  memory.NewRecordGateway(record.DefaultSchemas()),
		sessions: memory.NewSessionStore(),
		machine:  dialog.New(nil),
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}

// EnsureSchema prepares the record tables right away. It is independent of the
// lazy preparation done at the first dialog start.
func (u *UseCases) EnsureSchema(ctx context.Context) error {
	if err := u.gateway.EnsureSchema(ctx); err != nil {
		return goerr.Wrap(err, "failed to prepare record tables", goerr.T(errs.TagExternal))
	}
	return nil
}

// ensureSchemaOnce prepares tables on the first dialog start. A failure is not
// retried; every later start sees the same error.
func (u *UseCases) ensureSchemaOnce(ctx context.Context) error {
	u.schemaOnce.Do(func() {
		if err := u.gateway.EnsureSchema(ctx); err != nil {
			u.schemaErr = goerr.Wrap(err, "failed to prepare record tables", goerr.T(errs.TagExternal))
			errs.Handle(ctx, u.schemaErr)
		}
	})
	return u.schemaErr
}
