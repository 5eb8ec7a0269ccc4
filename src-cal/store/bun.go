package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"moncal/src-cal/model"

	"github.com/uptrace/bun"
)

// Bun stores values as rows of the kv_entries table. When the metric
// channels are set, read/write latency is reported without ever blocking
// the caller.
type Bun struct {
	DB        bun.IDB
	ReadChan  chan<- float64
	WriteChan chan<- float64
}

func (s *Bun) Get(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()

	entry := new(model.KVEntry)
	err := s.DB.NewSelect().
		Model(entry).
		Where("key = ?", key).
		Scan(ctx)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("(*Bun).Get: %w", err)
	}

	s.report(s.ReadChan, start)
	return entry.Value, true, nil
}

func (s *Bun) Set(ctx context.Context, key string, value string) error {
	start := time.Now()

	entry := model.KVEntry{
		Key:   key,
		Value: value,
	}
	if err := entry.Upsert(ctx, s.DB); err != nil {
		return fmt.Errorf("(*Bun).Set: %w", err)
	}

	s.report(s.WriteChan, start)
	return nil
}

func (s *Bun) report(ch chan<- float64, start time.Time) {
	if ch == nil {
		return
	}
	select {
	case ch <- float64(time.Since(start).Microseconds()):
	default: // nobody draining, drop the sample
	}
}
