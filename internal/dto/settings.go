package dto

import (
	"github.com/shifttally/shift_tally_app/internal/core/domain"
)

// UpdateSettingsRequest defines the data allowed for updating user settings.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateSettingsRequest struct {
	CurrencyCode *string `json:"currencyCode" binding:"omitempty,uppercase,len=3"`
	Language     *string `json:"language" binding:"omitempty,min=2,max=10"`
	WeekStartDay *int    `json:"weekStartDay" binding:"omitempty,min=0,max=6"`
}

// SettingsResponse defines the data returned for a user's settings.
type SettingsResponse struct {
	UserID       string `json:"userID"`
	CurrencyCode string `json:"currencyCode"`
	Language     string `json:"language"`
	WeekStartDay int    `json:"weekStartDay"`
}

// ToSettingsResponse converts domain.UserSettings to DTO.
func ToSettingsResponse(s *domain.UserSettings) SettingsResponse {
	return SettingsResponse{
		UserID:       s.UserID,
		CurrencyCode: s.CurrencyCode,
		Language:     s.Language,
		WeekStartDay: s.WeekStartDay,
	}
}
