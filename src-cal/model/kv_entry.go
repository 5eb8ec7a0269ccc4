package model

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// KVEntry is one row of the single-key value table the event collection is
// persisted in.
type KVEntry struct {
	bun.BaseModel `bun:"table:kv_entries"`

	Key   string `bun:"key,pk"` // required
	Value string `bun:"value,notnull"`
}

// Insert-or-replace by key.
func (e *KVEntry) Upsert(ctx context.Context, db bun.IDB) error {
	if e.Key == "" {
		return fmt.Errorf("(*KVEntry).Upsert: key is blank")
	}
	if _, err := db.NewInsert().
		Model(e).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx); err != nil {
		return fmt.Errorf("(*KVEntry).Upsert: %w", err)
	}
	return nil
}
