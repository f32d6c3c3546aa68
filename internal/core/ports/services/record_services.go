package services

import (
	"context"
	"time"

	"github.com/shifttally/shift_tally_app/internal/core/domain"
	"github.com/shifttally/shift_tally_app/internal/dto"
)

// MoneyRecordReaderSvc defines read operations for income/expense records
type MoneyRecordReaderSvc interface {
	// GetRecordByID retrieves a record, enforcing that the requester owns it.
	GetRecordByID(ctx context.Context, recordID string, requestingUserID string) (*domain.MoneyRecord, error)

	// ListRecords retrieves the requester's records within a date range.
	ListRecords(ctx context.Context, params dto.ListRecordsParams, requestingUserID string) ([]domain.MoneyRecord, error)

	// GetCategoryTotals aggregates the requester's records per category.
	GetCategoryTotals(ctx context.Context, recordType domain.RecordType, from, to time.Time, requestingUserID string) ([]domain.CategoryTotal, error)
}

// MoneyRecordWriterSvc defines write operations for income/expense records
type MoneyRecordWriterSvc interface {
	// CreateRecord logs a new income or expense record.
	CreateRecord(ctx context.Context, req dto.CreateMoneyRecordRequest, creatorUserID string) (*domain.MoneyRecord, error)

	// UpdateRecord updates a record the requester owns.
	UpdateRecord(ctx context.Context, recordID string, req dto.UpdateMoneyRecordRequest, requestingUserID string) (*domain.MoneyRecord, error)

	// DeleteRecord soft-deletes a record the requester owns.
	DeleteRecord(ctx context.Context, recordID string, requestingUserID string) error
}

// MoneyRecordSvcFacade combines all record-related service interfaces
type MoneyRecordSvcFacade interface {
	MoneyRecordReaderSvc
	MoneyRecordWriterSvc
}
