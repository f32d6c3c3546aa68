package mapping

import (
	"github.com/shifttally/shift_tally_app/internal/core/domain"
	"github.com/shifttally/shift_tally_app/internal/models"
)

// ToModelMoneyRecord converts a domain MoneyRecord to a model MoneyRecord
func ToModelMoneyRecord(d domain.MoneyRecord) models.MoneyRecord {
	return models.MoneyRecord{
		RecordID:     d.RecordID,
		UserID:       d.UserID,
		RecordType:   string(d.RecordType),
		Amount:       d.Amount,
		CurrencyCode: d.CurrencyCode,
		Category:     d.Category,
		Notes:        d.Notes,
		OccurredOn:   d.OccurredOn,
		AuditFields:  ToModelAuditFields(d.AuditFields),
		DeletedAt:    d.DeletedAt,
	}
}

// ToDomainMoneyRecord converts a model MoneyRecord to a domain MoneyRecord
func ToDomainMoneyRecord(m models.MoneyRecord) domain.MoneyRecord {
	return domain.MoneyRecord{
		RecordID:     m.RecordID,
		UserID:       m.UserID,
		RecordType:   domain.RecordType(m.RecordType),
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		Category:     m.Category,
		Notes:        m.Notes,
		OccurredOn:   m.OccurredOn,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
		DeletedAt:    m.DeletedAt,
	}
}

// ToDomainMoneyRecordSlice converts a slice of model MoneyRecords to domain MoneyRecords
func ToDomainMoneyRecordSlice(ms []models.MoneyRecord) []domain.MoneyRecord {
	ds := make([]domain.MoneyRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMoneyRecord(m)
	}
	return ds
}
