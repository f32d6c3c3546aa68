package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/shifttally/shift_tally_app/internal/apperrors"
	portssvc "github.com/shifttally/shift_tally_app/internal/core/ports/services"
	"github.com/shifttally/shift_tally_app/internal/dto"
	"github.com/shifttally/shift_tally_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type shiftHandler struct {
	shiftService portssvc.ShiftSvcFacade
}

func newShiftHandler(ss portssvc.ShiftSvcFacade) *shiftHandler {
	return &shiftHandler{shiftService: ss}
}

// registerShiftRoutes registers shift endpoints addressed by shift ID.
// Creation and listing live under /jobs/{job_id}/shifts.
func registerShiftRoutes(rg *gin.RouterGroup, ss portssvc.ShiftSvcFacade) {
	h := newShiftHandler(ss)
	shifts := rg.Group("/shifts")
	{
		shifts.GET("/:shift_id", h.getShift)
		shifts.PUT("/:shift_id", h.updateShift)
		shifts.DELETE("/:shift_id", h.deleteShift)
		shifts.GET("/:shift_id/earnings", h.getShiftEarnings)
	}
}

// respondShiftError maps shift service errors to HTTP responses.
func respondShiftError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Shift belongs to another user"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// getShift godoc
// @Summary Get shift by ID
// @Description Returns one of the authenticated user's shifts.
// @Tags shifts
// @Produce json
// @Param shift_id path string true "Shift ID"
// @Success 200 {object} dto.ShiftResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /shifts/{shift_id} [get]
func (h *shiftHandler) getShift(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	shift, err := h.shiftService.GetShiftByID(c.Request.Context(), c.Param("shift_id"), userID)
	if err != nil {
		respondShiftError(c, err, "get shift")
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// updateShift godoc
// @Summary Update shift
// @Description Updates a logged shift's hours, type, or rate overrides.
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift_id path string true "Shift ID"
// @Param shift body dto.UpdateShiftRequest true "Fields to update"
// @Success 200 {object} dto.ShiftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /shifts/{shift_id} [put]
func (h *shiftHandler) updateShift(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	shift, err := h.shiftService.UpdateShift(c.Request.Context(), c.Param("shift_id"), req, userID)
	if err != nil {
		respondShiftError(c, err, "update shift")
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// deleteShift godoc
// @Summary Delete shift
// @Description Permanently removes a logged shift.
// @Tags shifts
// @Produce json
// @Param shift_id path string true "Shift ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /shifts/{shift_id} [delete]
func (h *shiftHandler) deleteShift(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.shiftService.DeleteShift(c.Request.Context(), c.Param("shift_id"), userID); err != nil {
		respondShiftError(c, err, "delete shift")
		return
	}

	c.Status(http.StatusNoContent)
}

// getShiftEarnings godoc
// @Summary Shift earnings
// @Description Computes the effective rate and pay for one shift.
// @Tags shifts
// @Produce json
// @Param shift_id path string true "Shift ID"
// @Success 200 {object} dto.ShiftEarningsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /shifts/{shift_id}/earnings [get]
func (h *shiftHandler) getShiftEarnings(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	earnings, err := h.shiftService.GetShiftEarnings(c.Request.Context(), c.Param("shift_id"), userID)
	if err != nil {
		respondShiftError(c, err, "compute shift earnings")
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftEarningsResponse(earnings))
}
