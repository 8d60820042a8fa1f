package pgsql

import (
	portsrepo "github.com/aminfam/family_wallet_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EntryRepo:    newPgxEntryRepository(dbPool),
		SettingsRepo: newPgxSettingsRepository(dbPool),
	}
}
