package clock

import (
	"context"
	"time"
)

type ctxClockKey struct{}

type Clock func() time.Time

// Now returns the record timestamp source. Tests inject a fixed clock with With.
func Now(ctx context.Context) time.Time {
	clock, ok := ctx.Value(ctxClockKey{}).(Clock)
	if !ok {
		return time.Now().In(Timezone(ctx))
	}
	return clock().In(Timezone(ctx))
}

func Since(ctx context.Context, t time.Time) time.Duration {
	return Now(ctx).Sub(t)
}

func With(ctx context.Context, clock Clock) context.Context {
	return context.WithValue(ctx, ctxClockKey{}, clock)
}

type ctxTimezoneKey struct{}

// WithTimezone sets the zone record timestamps are rendered in.
func WithTimezone(ctx context.Context, location *time.Location) context.Context {
	return context.WithValue(ctx, ctxTimezoneKey{}, location)
}

func Timezone(ctx context.Context) *time.Location {
	location, ok := ctx.Value(ctxTimezoneKey{}).(*time.Location)
	if !ok || location == nil {
		return time.Local
	}
	return location
}
