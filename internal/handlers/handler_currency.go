package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shifttally/shift_tally_app/internal/apperrors"
	portssvc "github.com/shifttally/shift_tally_app/internal/core/ports/services"
	"github.com/shifttally/shift_tally_app/internal/dto"
	"github.com/shifttally/shift_tally_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: cs}
}

// registerCurrencyRoutes registers the read-only currency reference endpoints.
func registerCurrencyRoutes(rg *gin.RouterGroup, cs portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(cs)
	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/options", h.listCurrencyOptions)
		currencies.GET("/:currency_code", h.getCurrency)
	}
}

// listCurrencies godoc
// @Summary List currencies
// @Description Lists all supported currencies with their formatting rules.
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// listCurrencyOptions godoc
// @Summary List currency picker options
// @Description Lists currencies as display options ("US Dollar ($)" / "USD ($)") for selection UIs.
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyOptionResponse
// @Security BearerAuth
// @Router /currencies/options [get]
func (h *currencyHandler) listCurrencyOptions(c *gin.Context) {
	options := h.currencyService.ListCurrencyOptions(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToCurrencyOptionsResponse(options))
}

// getCurrency godoc
// @Summary Get currency by code
// @Description Returns one currency's formatting rules by its ISO 4217 code.
// @Tags currencies
// @Produce json
// @Param currency_code path string true "Currency code (e.g. USD)"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{currency_code} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	code := strings.ToUpper(c.Param("currency_code"))

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to get currency", slog.String("error", err.Error()), slog.String("currency_code", code))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get currency"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}
