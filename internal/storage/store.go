// Package storage implements the device-local message registry. The
// whole collection lives under one named key and every write replaces
// the full document, so a successful write always leaves the registry
// in a state consistent with "this message plus everything before it".
package storage

import (
	"context"

	"github.com/argossea/courier/internal/models"
)

// Store describes the durable, device-local message collection.
//
// Append calls against a single Store must be serialized by the caller:
// the contract is read-modify-write over the whole collection, and two
// racing appends without external sequencing can lose one write.
// Concurrent appends from independent processes sharing a database file
// are unsupported.
type Store interface {
	// LoadAll returns the persisted collection newest-first, or an
	// empty sequence if nothing has ever been written. Missing state
	// is not an error.
	LoadAll(ctx context.Context) ([]models.Message, error)

	// Append prepends m to the collection and persists the result as
	// one atomic replace, returning the new full sequence. On failure
	// the previously persisted state is unchanged.
	Append(ctx context.Context, m models.Message) ([]models.Message, error)

	// ReplaceAll swaps the entire collection for msgs in the order
	// given. Used by restore.
	ReplaceAll(ctx context.Context, msgs []models.Message) error

	// Clear removes the whole collection, leaving the store as if
	// never written. Clearing an empty store succeeds silently.
	Clear(ctx context.Context) error

	// Snapshot returns a deterministic, pretty-printed serialization
	// of LoadAll's result without mutating the store. An empty store
	// yields an empty-array document.
	Snapshot(ctx context.Context) ([]byte, error)
}
