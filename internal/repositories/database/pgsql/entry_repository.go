package pgsql

import (
	"context"

	"github.com/aminfam/family_wallet_app/internal/apperrors"
	"github.com/aminfam/family_wallet_app/internal/core/domain"
	portsrepo "github.com/aminfam/family_wallet_app/internal/core/ports/repositories"
	"github.com/aminfam/family_wallet_app/internal/models"
	"github.com/aminfam/family_wallet_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates the repository for the append-only entry log.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepositoryFacade
var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

const insertEntryQuery = `
	INSERT INTO entries (entry_id, transfer_id, item, amount, category, account, kind, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

// SaveEntry appends a single entry to the log.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	m := mapping.ToModelEntry(entry)
	_, err := r.Pool.Exec(ctx, insertEntryQuery,
		m.EntryID, m.TransferID, m.Item, m.Amount, m.Category, m.Account, m.Kind, m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert entry "+m.EntryID, err)
	}
	return nil
}

// SaveEntryPair appends both halves of a transfer inside one database
// transaction so a crash can never leave an orphaned half.
func (r *PgxEntryRepository) SaveEntryPair(ctx context.Context, out domain.Entry, in domain.Entry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	for _, entry := range []domain.Entry{out, in} {
		m := mapping.ToModelEntry(entry)
		if _, err := tx.Exec(ctx, insertEntryQuery,
			m.EntryID, m.TransferID, m.Item, m.Amount, m.Category, m.Account, m.Kind, m.CreatedAt,
		); err != nil {
			return apperrors.NewAppError(500, "failed to insert transfer half "+m.EntryID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// ListAllEntries returns the full log, newest first.
func (r *PgxEntryRepository) ListAllEntries(ctx context.Context) ([]domain.Entry, error) {
	query := `
		SELECT entry_id, transfer_id, item, amount, category, account, kind, created_at
		FROM entries
		ORDER BY created_at DESC, entry_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries", err)
	}
	defer rows.Close()

	var modelEntries []models.Entry
	for rows.Next() {
		var m models.Entry
		if err := rows.Scan(
			&m.EntryID, &m.TransferID, &m.Item, &m.Amount, &m.Category, &m.Account, &m.Kind, &m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry row", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry rows", err)
	}

	return mapping.ToDomainEntrySlice(modelEntries), nil
}

// DeleteAllEntries wipes the log in a single statement, so concurrent readers
// see either the full log or an empty one, never a partial delete.
func (r *PgxEntryRepository) DeleteAllEntries(ctx context.Context) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM entries;`); err != nil {
		return apperrors.NewAppError(500, "failed to delete entries", err)
	}
	return nil
}
