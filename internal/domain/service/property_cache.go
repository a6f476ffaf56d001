package service

import (
	"context"

	"stayscape/internal/domain/entity"
)

// PropertyCache is a read-through cache for single-property lookups.
// Misses and backend errors both report ok == false; the caller falls back to the store.
type PropertyCache interface {
	Get(ctx context.Context, id int64) (property *entity.Property, ok bool)
	Set(ctx context.Context, property *entity.Property)
	Invalidate(ctx context.Context, id int64)
}
