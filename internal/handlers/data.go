package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	errLoadReadings  = "failed to load source readings"
	errLoadBreakdown = "failed to build breakdown"
)

// @Summary      List external source readings
// @Description  Returns the latest reading per connected source; pass ?source= to filter.
// @Tags         data
// @Produce      json
// @Param        source  query  string  false  "Source name"  Enums(smart-meter,grocery,travel)
// @Success      200  {object}  map[string]interface{}  "count, readings"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/data/sources [get]
// @Security     BearerAuth
func (h *Handler) getSourceReadings(c *gin.Context) {
	ctx := c.Request.Context()
	readings, err := h.services.Readings(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadReadings, "data_sources_failed", err)
		return
	}

	if want := strings.ToLower(strings.TrimSpace(c.Query("source"))); want != "" {
		for _, r := range readings {
			if r.Source == want {
				c.JSON(http.StatusOK, r)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown source"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(readings),
		"readings": readings,
	})
}

// @Summary      Category impact breakdown
// @Description  Recent history totals per category, overridden by live source readings where available.
// @Tags         data
// @Produce      json
// @Success      200  {object}  models.CategoryTotals
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/data/breakdown [get]
// @Security     BearerAuth
func (h *Handler) getBreakdown(c *gin.Context) {
	ctx := c.Request.Context()
	totals, err := h.services.Breakdown(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadBreakdown, "data_breakdown_failed", err)
		return
	}
	c.JSON(http.StatusOK, totals)
}
