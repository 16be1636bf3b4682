package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	errLoadSeries    = "failed to build series"
	errLoadLifecycle = "failed to build lifecycle breakdown"
	errLoadInsights  = "failed to build insights"

	defaultRangeDays = 30
)

// parseRangeDays reads ?range_days=N; invalid or missing values fall
// back to the default window.
func parseRangeDays(c *gin.Context) int {
	if qs := c.Query("range_days"); qs != "" {
		if v, err := strconv.Atoi(qs); err == nil && v > 0 {
			return v
		}
	}
	return defaultRangeDays
}

// @Summary      Get emission snapshot
// @Description  Scope 1/2/3 totals with resource, material and logistics summaries, recomputed from the profile and recent history.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.CoreSnapshot
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/snapshot [get]
// @Security     BearerAuth
func (h *Handler) getSnapshot(c *gin.Context) {
	ctx := c.Request.Context()
	snap, err := h.services.Snapshot(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadSnapshot, "snapshot_failed", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Get emission time series
// @Description  Bucket granularity follows the window: daily up to 45 days, weekly up to 180, monthly beyond.
// @Tags         dashboard
// @Produce      json
// @Param        range_days  query  int  false  "Window size in days"  default(30)
// @Success      200  {object}  models.TimeSeries
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/series [get]
// @Security     BearerAuth
func (h *Handler) getSeries(c *gin.Context) {
	ctx := c.Request.Context()
	series, err := h.services.TimeSeries(ctx, parseRangeDays(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadSeries, "series_failed", err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// @Summary      Get per-category series
// @Tags         dashboard
// @Produce      json
// @Param        range_days  query  int  false  "Window size in days"  default(30)
// @Success      200  {object}  models.TimeSeries
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/series/categories [get]
// @Security     BearerAuth
func (h *Handler) getCategorySeries(c *gin.Context) {
	ctx := c.Request.Context()
	series, err := h.services.CategorySeries(ctx, parseRangeDays(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadSeries, "category_series_failed", err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// @Summary      Get lifecycle breakdown
// @Description  Decomposes the current footprint across the five fixed stages. Stage weights are independent, so the stage sum is not the carbon total.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "stages"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/lifecycle [get]
// @Security     BearerAuth
func (h *Handler) getLifecycle(c *gin.Context) {
	ctx := c.Request.Context()
	stages, err := h.services.AllocateLifecycle(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadLifecycle, "lifecycle_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stages": stages})
}

// @Summary      Get insights and action plan
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.InsightReport
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/insights [get]
// @Security     BearerAuth
func (h *Handler) getInsights(c *gin.Context) {
	ctx := c.Request.Context()
	report, err := h.services.GenerateInsights(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadInsights, "insights_failed", err)
		return
	}
	c.JSON(http.StatusOK, report)
}
