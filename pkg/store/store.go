// Package store provides whole-collection persistence for entity records.
//
// Every collection is always read and written in full: an operation loads the
// complete record set, computes a new state in memory and overwrites the
// backing resource. There are no partial updates and no caching between
// calls; the stored collection is the single source of truth on every load.
package store

import (
	"context"

	"innkeep/pkg/logger"
)

// Record is a loosely-typed field bag as read from the backing resource,
// prior to validation.
type Record = map[string]any

// Backend persists raw record collections. Implementations must return the
// full collection on Load and replace the full collection on Save.
type Backend interface {
	Load(ctx context.Context) ([]Record, error)
	Save(ctx context.Context, records []Record) error
}

// Codec converts between raw records and validated entities. Decode must
// reject records that fail entity validation.
type Codec[T any] struct {
	Decode func(Record) (T, error)
	Encode func(T) Record
}

// Collection is a validated view over a Backend. Load drops records that
// fail validation individually, and both load and save failures degrade to
// an empty or unchanged view with a logged diagnostic rather than a fatal
// error; callers proceed against the in-memory result either way.
type Collection[T any] struct {
	name    string
	backend Backend
	codec   Codec[T]
	log     *logger.Logger
}

func NewCollection[T any](name string, backend Backend, codec Codec[T], log *logger.Logger) *Collection[T] {
	return &Collection[T]{
		name:    name,
		backend: backend,
		codec:   codec,
		log:     log,
	}
}

// Load returns all valid entities in the collection. An unreadable or
// structurally invalid backing resource yields an empty result; a caller
// cannot distinguish "nothing stored" from "storage degraded" here.
func (c *Collection[T]) Load(ctx context.Context) []T {
	records, err := c.backend.Load(ctx)
	if err != nil {
		c.log.Error("Failed to load collection, continuing with empty state",
			"collection", c.name,
			"error", err,
		)
		return nil
	}

	entities := make([]T, 0, len(records))
	for _, record := range records {
		entity, err := c.codec.Decode(record)
		if err != nil {
			c.log.Warn("Dropping invalid record",
				"collection", c.name,
				"error", err,
			)
			continue
		}
		entities = append(entities, entity)
	}
	return entities
}

// Save overwrites the backing resource with the given entities. A write
// failure is logged, not raised: the caller has already computed its result
// and durable state simply lags behind until the next successful save.
func (c *Collection[T]) Save(ctx context.Context, entities []T) {
	records := make([]Record, 0, len(entities))
	for _, entity := range entities {
		records = append(records, c.codec.Encode(entity))
	}

	if err := c.backend.Save(ctx, records); err != nil {
		c.log.Error("Failed to save collection, durable state unchanged",
			"collection", c.name,
			"error", err,
		)
	}
}
