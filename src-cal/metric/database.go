package metric

import (
	"context"
	"time"

	"moncal/src-cal/model"
	"moncal/src-cal/utils"
)

// probe measures an indexed miss against the kv table, bypassing the store
// layer so the sample does not also feed the read gauge.
func probe(as *utils.AppState) (time.Duration, error) {
	start := time.Now()
	if _, err := as.BunDB.NewSelect().
		Model((*model.KVEntry)(nil)).
		Where("key = ?", "").
		Exists(context.Background()); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}
