package repositories

import (
	"context"
	"time"

	"github.com/shifttally/shift_tally_app/internal/core/domain"
)

// MoneyRecordReader defines read operations for income/expense records
type MoneyRecordReader interface {
	// FindRecordByID retrieves a specific record by its ID.
	FindRecordByID(ctx context.Context, recordID string) (*domain.MoneyRecord, error)

	// FindRecordsByUser retrieves a user's records within a date range,
	// newest first. A zero from/to means unbounded on that side.
	FindRecordsByUser(ctx context.Context, userID string, from, to time.Time, limit int, offset int) ([]domain.MoneyRecord, error)

	// SumByCategory aggregates a user's records per category within a date
	// range, separately for the given record type.
	SumByCategory(ctx context.Context, userID string, recordType domain.RecordType, from, to time.Time) ([]domain.CategoryTotal, error)
}

// MoneyRecordWriter defines write operations for income/expense records
type MoneyRecordWriter interface {
	// SaveRecord persists a new record.
	SaveRecord(ctx context.Context, record domain.MoneyRecord) error

	// UpdateRecord updates an existing record.
	UpdateRecord(ctx context.Context, record domain.MoneyRecord) error

	// MarkRecordDeleted marks a record as deleted (soft delete).
	MarkRecordDeleted(ctx context.Context, recordID string, deletedAt time.Time, deletedBy string) error
}

// MoneyRecordRepositoryFacade combines all record-related repository interfaces
type MoneyRecordRepositoryFacade interface {
	MoneyRecordReader
	MoneyRecordWriter
}
