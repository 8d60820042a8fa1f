package repositories

import (
	"context"

	"github.com/aminfam/family_wallet_app/internal/core/domain"
)

// EntryReader defines read operations over the entry log.
type EntryReader interface {
	// ListAllEntries streams the entire log, newest first. Every aggregation
	// reads the full log; there is no pagination or snapshot isolation.
	ListAllEntries(ctx context.Context) ([]domain.Entry, error)
}

// EntryWriter defines append and reset operations. The log is append-only:
// there is no update and no per-entry delete.
type EntryWriter interface {
	// SaveEntry appends a single entry.
	SaveEntry(ctx context.Context, entry domain.Entry) error

	// SaveEntryPair appends both halves of a transfer atomically. Either both
	// rows are persisted or neither is.
	SaveEntryPair(ctx context.Context, out domain.Entry, in domain.Entry) error

	// DeleteAllEntries wipes the log in a single statement so readers never
	// observe a partially deleted log.
	DeleteAllEntries(ctx context.Context) error
}

// EntryRepositoryFacade combines all entry repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
