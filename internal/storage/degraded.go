package storage

import (
	"context"

	"github.com/mssbox/blindboxctl/internal/logging"
)

// Degraded wraps a Store so that infrastructure failures never reach the UI:
// failed reads report the key as absent, failed writes are logged and
// swallowed. A session simply cannot be established while the store is down,
// which matches treating the values as absent.
type Degraded struct {
	inner Store
	log   logging.Logger
}

func NewDegraded(inner Store, log logging.Logger) *Degraded {
	return &Degraded{inner: inner, log: log}
}

func (d *Degraded) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := d.inner.Get(ctx, key)
	if err != nil {
		d.log.Warn(ctx, "session store read failed, treating as absent", "key", key, "error", err)
		return "", false, nil
	}
	return v, ok, nil
}

func (d *Degraded) Set(ctx context.Context, key string, value string) error {
	if err := d.inner.Set(ctx, key, value); err != nil {
		d.log.Warn(ctx, "session store write failed", "key", key, "error", err)
	}
	return nil
}

func (d *Degraded) Delete(ctx context.Context, key string) error {
	if err := d.inner.Delete(ctx, key); err != nil {
		d.log.Warn(ctx, "session store delete failed", "key", key, "error", err)
	}
	return nil
}

func (d *Degraded) Clear(ctx context.Context) error {
	if err := d.inner.Clear(ctx); err != nil {
		d.log.Warn(ctx, "session store clear failed", "error", err)
	}
	return nil
}
