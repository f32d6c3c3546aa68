package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shifttally/shift_tally_app/internal/apperrors"
	"github.com/shifttally/shift_tally_app/internal/core/domain"
	portsrepo "github.com/shifttally/shift_tally_app/internal/core/ports/repositories"
	"github.com/shifttally/shift_tally_app/internal/models"
	"github.com/shifttally/shift_tally_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const recordColumns = `record_id, user_id, record_type, amount, currency_code, category, notes, occurred_on, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

type PgxRecordRepository struct {
	BaseRepository
}

// newPgxRecordRepository creates a new repository for income/expense records.
func newPgxRecordRepository(pool *pgxpool.Pool) portsrepo.MoneyRecordRepositoryFacade {
	return &PgxRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MoneyRecordRepositoryFacade = (*PgxRecordRepository)(nil)

func scanRecord(row pgx.Row) (models.MoneyRecord, error) {
	var m models.MoneyRecord
	err := row.Scan(
		&m.RecordID,
		&m.UserID,
		&m.RecordType,
		&m.Amount,
		&m.CurrencyCode,
		&m.Category,
		&m.Notes,
		&m.OccurredOn,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

func (r *PgxRecordRepository) SaveRecord(ctx context.Context, record domain.MoneyRecord) error {
	modelRecord := mapping.ToModelMoneyRecord(record)
	query := `
		INSERT INTO money_records (record_id, user_id, record_type, amount, currency_code, category, notes, occurred_on, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelRecord.RecordID,
		modelRecord.UserID,
		modelRecord.RecordType,
		modelRecord.Amount,
		modelRecord.CurrencyCode,
		modelRecord.Category,
		modelRecord.Notes,
		modelRecord.OccurredOn,
		modelRecord.CreatedAt,
		modelRecord.CreatedBy,
		modelRecord.LastUpdatedAt,
		modelRecord.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save money record: %w", err)
	}
	return nil
}

func (r *PgxRecordRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.MoneyRecord, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM money_records
		WHERE record_id = $1 AND deleted_at IS NULL;
	`
	modelRecord, err := scanRecord(r.Pool.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find record by ID %s: %w", recordID, err)
	}

	domainRecord := mapping.ToDomainMoneyRecord(modelRecord)
	return &domainRecord, nil
}

func (r *PgxRecordRepository) FindRecordsByUser(ctx context.Context, userID string, from, to time.Time, limit int, offset int) ([]domain.MoneyRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + recordColumns + `
		FROM money_records
		WHERE user_id = $1 AND deleted_at IS NULL
	`
	args := []any{userID}

	if !from.IsZero() {
		args = append(args, from)
		query += fmt.Sprintf(" AND occurred_on >= $%d", len(args))
	}
	if !to.IsZero() {
		args = append(args, to)
		query += fmt.Sprintf(" AND occurred_on <= $%d", len(args))
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY occurred_on DESC, created_at DESC LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelRecords, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MoneyRecord, error) {
		return scanRecord(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan records: %w", err)
	}

	return mapping.ToDomainMoneyRecordSlice(modelRecords), nil
}

// SumByCategory aggregates a user's records per category within a date range.
func (r *PgxRecordRepository) SumByCategory(ctx context.Context, userID string, recordType domain.RecordType, from, to time.Time) ([]domain.CategoryTotal, error) {
	query := `
		SELECT category, COALESCE(SUM(amount), 0), COUNT(*)
		FROM money_records
		WHERE user_id = $1 AND record_type = $2 AND deleted_at IS NULL
	`
	args := []any{userID, string(recordType)}

	if !from.IsZero() {
		args = append(args, from)
		query += fmt.Sprintf(" AND occurred_on >= $%d", len(args))
	}
	if !to.IsZero() {
		args = append(args, to)
		query += fmt.Sprintf(" AND occurred_on <= $%d", len(args))
	}

	query += " GROUP BY category ORDER BY SUM(amount) DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate records for user %s: %w", userID, err)
	}
	defer rows.Close()

	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CategoryTotal, error) {
		var t domain.CategoryTotal
		err := row.Scan(&t.Category, &t.Total, &t.Count)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan category totals: %w", err)
	}

	return totals, nil
}

func (r *PgxRecordRepository) UpdateRecord(ctx context.Context, record domain.MoneyRecord) error {
	modelRecord := mapping.ToModelMoneyRecord(record)
	query := `
		UPDATE money_records
		SET amount = $2, currency_code = $3, category = $4, notes = $5, occurred_on = $6, last_updated_at = $7, last_updated_by = $8
		WHERE record_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelRecord.RecordID,
		modelRecord.Amount,
		modelRecord.CurrencyCode,
		modelRecord.Category,
		modelRecord.Notes,
		modelRecord.OccurredOn,
		modelRecord.LastUpdatedAt,
		modelRecord.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update record %s: %w", record.RecordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxRecordRepository) MarkRecordDeleted(ctx context.Context, recordID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE money_records
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE record_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, recordID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark record %s deleted: %w", recordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
