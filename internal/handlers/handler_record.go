package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/shifttally/shift_tally_app/internal/apperrors"
	"github.com/shifttally/shift_tally_app/internal/core/domain"
	portssvc "github.com/shifttally/shift_tally_app/internal/core/ports/services"
	"github.com/shifttally/shift_tally_app/internal/dto"
	"github.com/shifttally/shift_tally_app/internal/middleware"
	"github.com/shifttally/shift_tally_app/internal/utils/currencyfmt"
	"github.com/gin-gonic/gin"
)

// recordHandler holds the money record service plus the settings service,
// which supplies the display currency for category totals.
type recordHandler struct {
	recordService   portssvc.MoneyRecordSvcFacade
	settingsService portssvc.SettingsSvcFacade
}

func newRecordHandler(rs portssvc.MoneyRecordSvcFacade, ss portssvc.SettingsSvcFacade) *recordHandler {
	return &recordHandler{recordService: rs, settingsService: ss}
}

// registerRecordRoutes registers income/expense record endpoints.
func registerRecordRoutes(rg *gin.RouterGroup, rs portssvc.MoneyRecordSvcFacade, ss portssvc.SettingsSvcFacade) {
	h := newRecordHandler(rs, ss)
	records := rg.Group("/records")
	{
		records.POST("", h.createRecord)
		records.GET("", h.listRecords)
		records.GET("/totals", h.getCategoryTotals)
		records.GET("/:record_id", h.getRecord)
		records.PUT("/:record_id", h.updateRecord)
		records.DELETE("/:record_id", h.deleteRecord)
	}
}

// respondRecordError maps record service errors to HTTP responses.
func respondRecordError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Record belongs to another user"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// createRecord godoc
// @Summary Log income/expense record
// @Description Logs a new income or expense entry.
// @Tags records
// @Accept json
// @Produce json
// @Param record body dto.CreateMoneyRecordRequest true "Record details"
// @Success 201 {object} dto.MoneyRecordResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /records [post]
func (h *recordHandler) createRecord(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateMoneyRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	record, err := h.recordService.CreateRecord(c.Request.Context(), req, userID)
	if err != nil {
		respondRecordError(c, err, "create record")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMoneyRecordResponse(record))
}

// listRecords godoc
// @Summary List records
// @Description Lists the authenticated user's records, newest first, optionally filtered by type and date range.
// @Tags records
// @Produce json
// @Param recordType query string false "income or expense"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.ListMoneyRecordsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /records [get]
func (h *recordHandler) listRecords(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	records, err := h.recordService.ListRecords(c.Request.Context(), params, userID)
	if err != nil {
		respondRecordError(c, err, "list records")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMoneyRecordsResponse(records))
}

// categoryTotalsParams defines filters for the per-category aggregation.
type categoryTotalsParams struct {
	RecordType string    `form:"recordType" binding:"required,oneof=income expense"`
	From       time.Time `form:"from" time_format:"2006-01-02"`
	To         time.Time `form:"to" time_format:"2006-01-02"`
}

// getCategoryTotals godoc
// @Summary Category totals
// @Description Aggregates the user's records per category, formatted in the user's display currency.
// @Tags records
// @Produce json
// @Param recordType query string true "income or expense"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.CategoryTotalResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /records/totals [get]
func (h *recordHandler) getCategoryTotals(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params categoryTotalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	totals, err := h.recordService.GetCategoryTotals(c.Request.Context(), domain.RecordType(params.RecordType), params.From, params.To, userID)
	if err != nil {
		respondRecordError(c, err, "aggregate records")
		return
	}

	// Totals are rendered in the user's display currency.
	currencyCode := currencyfmt.DefaultCurrencyCode
	if settings, err := h.settingsService.GetSettings(c.Request.Context(), userID); err == nil && settings.CurrencyCode != "" {
		currencyCode = settings.CurrencyCode
	}

	c.JSON(http.StatusOK, dto.ToCategoryTotalsResponse(totals, currencyCode))
}

// getRecord godoc
// @Summary Get record by ID
// @Description Returns one of the authenticated user's records.
// @Tags records
// @Produce json
// @Param record_id path string true "Record ID"
// @Success 200 {object} dto.MoneyRecordResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /records/{record_id} [get]
func (h *recordHandler) getRecord(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.recordService.GetRecordByID(c.Request.Context(), c.Param("record_id"), userID)
	if err != nil {
		respondRecordError(c, err, "get record")
		return
	}

	c.JSON(http.StatusOK, dto.ToMoneyRecordResponse(record))
}

// updateRecord godoc
// @Summary Update record
// @Description Updates an income or expense entry.
// @Tags records
// @Accept json
// @Produce json
// @Param record_id path string true "Record ID"
// @Param record body dto.UpdateMoneyRecordRequest true "Fields to update"
// @Success 200 {object} dto.MoneyRecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /records/{record_id} [put]
func (h *recordHandler) updateRecord(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateMoneyRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	record, err := h.recordService.UpdateRecord(c.Request.Context(), c.Param("record_id"), req, userID)
	if err != nil {
		respondRecordError(c, err, "update record")
		return
	}

	c.JSON(http.StatusOK, dto.ToMoneyRecordResponse(record))
}

// deleteRecord godoc
// @Summary Delete record
// @Description Soft-deletes an income or expense entry.
// @Tags records
// @Produce json
// @Param record_id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /records/{record_id} [delete]
func (h *recordHandler) deleteRecord(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.recordService.DeleteRecord(c.Request.Context(), c.Param("record_id"), userID); err != nil {
		respondRecordError(c, err, "delete record")
		return
	}

	c.Status(http.StatusNoContent)
}
