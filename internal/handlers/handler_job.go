package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/shifttally/shift_tally_app/internal/apperrors"
	portssvc "github.com/shifttally/shift_tally_app/internal/core/ports/services"
	"github.com/shifttally/shift_tally_app/internal/dto"
	"github.com/shifttally/shift_tally_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// jobHandler holds the job and shift service dependencies. Shift endpoints
// nested under a job (logging, listing, earnings summary) live here too.
type jobHandler struct {
	jobService   portssvc.JobSvcFacade
	shiftService portssvc.ShiftSvcFacade
}

func newJobHandler(js portssvc.JobSvcFacade, ss portssvc.ShiftSvcFacade) *jobHandler {
	return &jobHandler{jobService: js, shiftService: ss}
}

// registerJobRoutes registers job endpoints on the authenticated v1 group.
func registerJobRoutes(rg *gin.RouterGroup, js portssvc.JobSvcFacade, ss portssvc.ShiftSvcFacade) {
	h := newJobHandler(js, ss)
	jobs := rg.Group("/jobs")
	{
		jobs.POST("", h.createJob)
		jobs.GET("", h.listJobs)
		jobs.GET("/:job_id", h.getJob)
		jobs.PUT("/:job_id", h.updateJob)
		jobs.DELETE("/:job_id", h.deleteJob)

		jobs.POST("/:job_id/shifts", h.createShift)
		jobs.GET("/:job_id/shifts", h.listShifts)
		jobs.GET("/:job_id/earnings", h.getEarningsSummary)
	}
}

// respondJobError maps service errors to HTTP responses.
func respondJobError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Job belongs to another user"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// createJob godoc
// @Summary Create job
// @Description Creates a new job with its pay configuration.
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body dto.CreateJobRequest true "Job details"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /jobs [post]
func (h *jobHandler) createJob(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), req, userID)
	if err != nil {
		respondJobError(c, err, "create job")
		return
	}

	c.JSON(http.StatusCreated, dto.ToJobResponse(job))
}

// listJobs godoc
// @Summary List jobs
// @Description Lists the authenticated user's jobs.
// @Tags jobs
// @Produce json
// @Success 200 {object} dto.ListJobsResponse
// @Security BearerAuth
// @Router /jobs [get]
func (h *jobHandler) listJobs(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobs, err := h.jobService.ListJobs(c.Request.Context(), userID)
	if err != nil {
		respondJobError(c, err, "list jobs")
		return
	}

	c.JSON(http.StatusOK, dto.ToListJobsResponse(jobs))
}

// getJob godoc
// @Summary Get job by ID
// @Description Returns one of the authenticated user's jobs.
// @Tags jobs
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /jobs/{job_id} [get]
func (h *jobHandler) getJob(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	job, err := h.jobService.GetJobByID(c.Request.Context(), c.Param("job_id"), userID)
	if err != nil {
		respondJobError(c, err, "get job")
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// updateJob godoc
// @Summary Update job
// @Description Updates a job's details or pay configuration.
// @Tags jobs
// @Accept json
// @Produce json
// @Param job_id path string true "Job ID"
// @Param job body dto.UpdateJobRequest true "Fields to update"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /jobs/{job_id} [put]
func (h *jobHandler) updateJob(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), c.Param("job_id"), req, userID)
	if err != nil {
		respondJobError(c, err, "update job")
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// deleteJob godoc
// @Summary Delete job
// @Description Soft-deletes a job. Its logged shifts remain but earn nothing.
// @Tags jobs
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /jobs/{job_id} [delete]
func (h *jobHandler) deleteJob(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.jobService.DeleteJob(c.Request.Context(), c.Param("job_id"), userID); err != nil {
		respondJobError(c, err, "delete job")
		return
	}

	c.Status(http.StatusNoContent)
}

// createShift godoc
// @Summary Log shift
// @Description Logs a new shift against the job.
// @Tags shifts
// @Accept json
// @Produce json
// @Param job_id path string true "Job ID"
// @Param shift body dto.CreateShiftRequest true "Shift details"
// @Success 201 {object} dto.ShiftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /jobs/{job_id}/shifts [post]
func (h *jobHandler) createShift(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	// The path is authoritative for which job the shift belongs to.
	req.JobID = c.Param("job_id")

	shift, err := h.shiftService.CreateShift(c.Request.Context(), req, userID)
	if err != nil {
		respondShiftError(c, err, "log shift")
		return
	}

	c.JSON(http.StatusCreated, dto.ToShiftResponse(shift))
}

// listShifts godoc
// @Summary List shifts
// @Description Lists the job's shifts newest first, cursor-paginated.
// @Tags shifts
// @Produce json
// @Param job_id path string true "Job ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param limit query int false "Page size (default 50)"
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListShiftsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /jobs/{job_id}/shifts [get]
func (h *jobHandler) listShifts(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListShiftsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	shifts, nextToken, err := h.shiftService.ListShifts(c.Request.Context(), c.Param("job_id"), params, userID)
	if err != nil {
		respondShiftError(c, err, "list shifts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListShiftsResponse(shifts, nextToken))
}

// earningsSummaryParams defines the date range for the earnings summary.
type earningsSummaryParams struct {
	From time.Time `form:"from" time_format:"2006-01-02"`
	To   time.Time `form:"to" time_format:"2006-01-02"`
}

// getEarningsSummary godoc
// @Summary Earnings summary
// @Description Aggregates the job's earnings, hours, and shift count over a date range.
// @Tags shifts
// @Produce json
// @Param job_id path string true "Job ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.EarningsSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /jobs/{job_id}/earnings [get]
func (h *jobHandler) getEarningsSummary(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params earningsSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.shiftService.GetEarningsSummary(c.Request.Context(), c.Param("job_id"), params.From, params.To, userID)
	if err != nil {
		respondShiftError(c, err, "summarize earnings")
		return
	}

	c.JSON(http.StatusOK, dto.ToEarningsSummaryResponse(summary))
}
