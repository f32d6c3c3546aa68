package pgsql

import (
	portsrepo "github.com/shifttally/shift_tally_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		CurrencyRepo: newPgxCurrencyRepository(dbPool),
		JobRepo:      newPgxJobRepository(dbPool),
		ShiftRepo:    newPgxShiftRepository(dbPool),
		RecordRepo:   newPgxRecordRepository(dbPool),
		SettingsRepo: newPgxSettingsRepository(dbPool),
	}
}
