package repository

import (
	"context"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/interfaces"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Mirror writes to a primary gateway and copies every stored record to
// secondary gateways. Only the primary decides success; mirror failures are
// reported and otherwise ignored.
type Mirror struct {
	primary interfaces.RecordGateway
	mirrors []mirror
}

type mirror struct {
	name string
	gw   interfaces.RecordGateway
}

var _ interfaces.RecordGateway = &Mirror{}

type MirrorOption func(*Mirror)

func WithMirror(name string, gw interfaces.RecordGateway) MirrorOption {
	return func(m *Mirror) {
		m.mirrors = append(m.mirrors, mirror{name: name, gw: gw})
	}
}

func NewMirror(primary interfaces.RecordGateway, opts ...MirrorOption) *Mirror {
	m := &Mirror{primary: primary}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Mirror) EnsureSchema(ctx context.Context) error {
	if err := m.primary.EnsureSchema(ctx); err != nil {
		return err
	}

	for _, x := range m.mirrors {
		if err := x.gw.EnsureSchema(ctx); err != nil {
			errs.Handle(ctx, goerr.Wrap(err, "failed to prepare mirror", goerr.TV(errutil.BackendKey, x.name)))
		}
	}
	return nil
}

// Append stores rec in the primary first. Mirrors receive only records the
// primary accepted.
func (m *Mirror) Append(ctx context.Context, rec record.Record) error {
	if err := m.primary.Append(ctx, rec); err != nil {
		return err
	}

	for _, x := range m.mirrors {
		if err := x.gw.Append(ctx, rec); err != nil {
			errs.Handle(ctx, goerr.Wrap(err, "failed to mirror record",
				goerr.TV(errutil.BackendKey, x.name),
				goerr.TV(errutil.KindKey, rec.Kind().String())))
			continue
		}
		logging.From(ctx).Debug("record mirrored", "mirror", x.name, "kind", rec.Kind())
	}
	return nil
}
