package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shifttally/shift_tally_app/internal/apperrors"
	"github.com/shifttally/shift_tally_app/internal/core/domain"
	portsrepo "github.com/shifttally/shift_tally_app/internal/core/ports/repositories"
	portssvc "github.com/shifttally/shift_tally_app/internal/core/ports/services"
	"github.com/shifttally/shift_tally_app/internal/dto"
	"github.com/shifttally/shift_tally_app/internal/utils/currencyfmt"
	"github.com/google/uuid"
)

// recordService handles business logic related to income/expense records.
type recordService struct {
	BaseService
	recordRepo   portsrepo.MoneyRecordRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewRecordService creates a new recordService. The settings repository
// supplies the user's preferred currency when a record omits one.
func NewRecordService(recordRepo portsrepo.MoneyRecordRepositoryFacade, settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.MoneyRecordSvcFacade {
	return &recordService{recordRepo: recordRepo, settingsRepo: settingsRepo}
}

var _ portssvc.MoneyRecordSvcFacade = (*recordService)(nil)

// defaultCurrencyFor resolves the currency to use when a request omits one:
// the user's settings currency when present, otherwise the global default.
func (s *recordService) defaultCurrencyFor(ctx context.Context, userID string) string {
	settings, err := s.settingsRepo.FindSettingsByUser(ctx, userID)
	if err == nil && settings != nil && settings.CurrencyCode != "" {
		return settings.CurrencyCode
	}
	return currencyfmt.DefaultCurrencyCode
}

// CreateRecord logs a new income or expense record.
func (s *recordService) CreateRecord(ctx context.Context, req dto.CreateMoneyRecordRequest, creatorUserID string) (*domain.MoneyRecord, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	currencyCode := req.CurrencyCode
	if currencyCode == "" {
		currencyCode = s.defaultCurrencyFor(ctx, creatorUserID)
	}
	if !currencyfmt.IsSupportedCurrency(currencyCode) {
		return nil, fmt.Errorf("%w: unsupported currency code %s", apperrors.ErrValidation, currencyCode)
	}

	now := time.Now()
	record := domain.MoneyRecord{
		RecordID:     uuid.NewString(),
		UserID:       creatorUserID,
		RecordType:   req.RecordType,
		Amount:       req.Amount,
		CurrencyCode: currencyCode,
		Category:     req.Category,
		Notes:        req.Notes,
		OccurredOn:   req.OccurredOn,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.recordRepo.SaveRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save money record", slog.String("user_id", creatorUserID))
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	s.LogInfo(ctx, "Money record created", slog.String("record_id", record.RecordID), slog.String("record_type", string(record.RecordType)))
	return &record, nil
}

// GetRecordByID retrieves a record the requester owns.
func (s *recordService) GetRecordByID(ctx context.Context, recordID string, requestingUserID string) (*domain.MoneyRecord, error) {
	record, err := s.recordRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get record by ID: %w", err)
	}
	if record.UserID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}
	return record, nil
}

func (s *recordService) ListRecords(ctx context.Context, params dto.ListRecordsParams, requestingUserID string) ([]domain.MoneyRecord, error) {
	records, err := s.recordRepo.FindRecordsByUser(ctx, requestingUserID, params.From, params.To, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	if records == nil {
		return []domain.MoneyRecord{}, nil
	}
	return records, nil
}

// GetCategoryTotals aggregates the requester's records per category.
func (s *recordService) GetCategoryTotals(ctx context.Context, recordType domain.RecordType, from, to time.Time, requestingUserID string) ([]domain.CategoryTotal, error) {
	if !recordType.IsValid() {
		return nil, fmt.Errorf("%w: unknown record type %s", apperrors.ErrValidation, recordType)
	}

	totals, err := s.recordRepo.SumByCategory(ctx, requestingUserID, recordType, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category totals: %w", err)
	}
	if totals == nil {
		return []domain.CategoryTotal{}, nil
	}
	return totals, nil
}

// UpdateRecord applies the allowed changes to a record the requester owns.
func (s *recordService) UpdateRecord(ctx context.Context, recordID string, req dto.UpdateMoneyRecordRequest, requestingUserID string) (*domain.MoneyRecord, error) {
	record, err := s.GetRecordByID(ctx, recordID, requestingUserID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
		}
		record.Amount = *req.Amount
	}
	if req.CurrencyCode != nil {
		if !currencyfmt.IsSupportedCurrency(*req.CurrencyCode) {
			return nil, fmt.Errorf("%w: unsupported currency code %s", apperrors.ErrValidation, *req.CurrencyCode)
		}
		record.CurrencyCode = *req.CurrencyCode
	}
	if req.Category != nil {
		record.Category = *req.Category
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}
	if req.OccurredOn != nil {
		record.OccurredOn = *req.OccurredOn
	}

	record.LastUpdatedAt = time.Now()
	record.LastUpdatedBy = requestingUserID

	if err := s.recordRepo.UpdateRecord(ctx, *record); err != nil {
		s.LogError(ctx, err, "Failed to update money record", slog.String("record_id", recordID))
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	return record, nil
}

// DeleteRecord soft-deletes a record the requester owns.
func (s *recordService) DeleteRecord(ctx context.Context, recordID string, requestingUserID string) error {
	if _, err := s.GetRecordByID(ctx, recordID, requestingUserID); err != nil {
		return err
	}

	if err := s.recordRepo.MarkRecordDeleted(ctx, recordID, time.Now(), requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to mark money record deleted", slog.String("record_id", recordID))
		return fmt.Errorf("failed to delete record: %w", err)
	}

	s.LogInfo(ctx, "Money record deleted", slog.String("record_id", recordID))
	return nil
}
