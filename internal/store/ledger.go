package store

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/hyppe-labs/scoriz/internal/model"
)

// Ledger enforces the daily analysis quota over a Store. The count
// resets on the first touch of a new calendar day; nothing needs to
// fire at midnight.
type Ledger struct {
	store Store
	limit int
	now   func() time.Time
}

// NewLedger creates a Ledger allowing limit analyses per day.
func NewLedger(store Store, limit int) *Ledger {
	return &Ledger{store: store, limit: limit, now: time.Now}
}

// Check reports the current quota without consuming it. A failed
// usage read counts as an unused quota: a broken ledger must not take
// the analysis endpoint down with it.
func (l *Ledger) Check(ctx context.Context) model.Quota {
	u, err := l.store.GetUsage(ctx)
	if err != nil {
		zap.L().Warn("ledger: usage read failed, treating quota as unused", zap.Error(err))
		u = model.Usage{}
	}
	count := u.Count
	if !sameDay(u.LastReset, l.now()) {
		count = 0
	}
	remaining := l.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return model.Quota{
		Allowed:   remaining > 0,
		Remaining: remaining,
		Limit:     l.limit,
	}
}

// Consume records one analysis against today's quota, resetting the
// count first when the stored state is from a previous day.
func (l *Ledger) Consume(ctx context.Context) error {
	u, err := l.store.GetUsage(ctx)
	if err != nil {
		return eris.Wrap(err, "ledger: read usage")
	}
	now := l.now()
	if !sameDay(u.LastReset, now) {
		u = model.Usage{LastReset: now}
	}
	u.Count++
	return eris.Wrap(l.store.PutUsage(ctx, u), "ledger: write usage")
}

// sameDay reports whether a and b fall on the same UTC calendar day.
func sameDay(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
