package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	errLoadHistory = "failed to load history"
	errRecordEntry = "failed to record entry"
)

// RecordEntryRequest is an exported model for Swagger docs of the history payload.
type RecordEntryRequest struct {
	// Category of the entry. Allowed: home, food, travel
	Category string `json:"category" example:"travel"`
	// Estimated emissions in kg CO2e
	Kilograms float64 `json:"kilograms" example:"12"`
	// Free-form calculator inputs kept for display
	Metadata map[string]any `json:"metadata,omitempty"`
}

// @Summary      List calculation history
// @Description  Entries are returned oldest first; at most the 500 most recent are kept.
// @Tags         history
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, entries"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/history [get]
// @Security     BearerAuth
func (h *Handler) getHistory(c *gin.Context) {
	ctx := c.Request.Context()
	entries, err := h.services.Entries(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadHistory, "history_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"entries": entries,
	})
}

// @Summary      Record a calculation
// @Description  Non-positive or non-finite kilograms are silently dropped; the call still succeeds.
// @Tags         history
// @Accept       json
// @Produce      json
// @Param        body  body   RecordEntryRequest  true  "Entry payload"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/history [post]
// @Security     BearerAuth
func (h *Handler) recordEntry(c *gin.Context) {
	var req RecordEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	if err := h.services.Record(ctx, req.Category, req.Kilograms, req.Metadata); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errRecordEntry, "history_record_failed", err, "category", req.Category)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusRecorded})
}
