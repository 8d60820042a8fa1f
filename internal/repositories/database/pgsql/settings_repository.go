package pgsql

import (
	"context"
	"errors"

	"github.com/aminfam/family_wallet_app/internal/apperrors"
	portsrepo "github.com/aminfam/family_wallet_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates the single-key-value settings store.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// Get returns the value for key, or found=false when the key is absent.
func (r *PgxSettingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.Pool.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1;`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, apperrors.NewAppError(500, "failed to read setting "+key, err)
	}
	return value, true, nil
}

// Set overwrites the value for key unconditionally, last write wins.
func (r *PgxSettingsRepository) Set(ctx context.Context, key string, value string) error {
	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;
	`
	if _, err := r.Pool.Exec(ctx, query, key, value); err != nil {
		return apperrors.NewAppError(500, "failed to write setting "+key, err)
	}
	return nil
}
