package mapping

import (
	"github.com/shifttally/shift_tally_app/internal/core/domain"
	"github.com/shifttally/shift_tally_app/internal/models"
)

// ToModelUserSettings converts domain UserSettings to a model UserSettings
func ToModelUserSettings(d domain.UserSettings) models.UserSettings {
	return models.UserSettings{
		UserID:       d.UserID,
		CurrencyCode: d.CurrencyCode,
		Language:     d.Language,
		WeekStartDay: d.WeekStartDay,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUserSettings converts a model UserSettings to domain UserSettings
func ToDomainUserSettings(m models.UserSettings) domain.UserSettings {
	return domain.UserSettings{
		UserID:       m.UserID,
		CurrencyCode: m.CurrencyCode,
		Language:     m.Language,
		WeekStartDay: m.WeekStartDay,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
