package handlers

import (
	"errors"
	"net/http"

	"ecotrack/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errLoadStreaks = "failed to load habit streaks"
	errLogHabit    = "failed to log habit"
)

// LogHabitRequest is an exported model for Swagger docs of the habit payload.
type LogHabitRequest struct {
	// Action slug, e.g. biked_to_work
	Action string `json:"action" example:"biked_to_work"`
	// How many times; omitted or zero counts as 1
	Count float64 `json:"count,omitempty" example:"2"`
}

// @Summary      Weekly habit streaks
// @Description  Sums logged action counts over the last 7 days, highest first.
// @Tags         habits
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, streaks"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/habits [get]
// @Security     BearerAuth
func (h *Handler) getHabitStreaks(c *gin.Context) {
	ctx := c.Request.Context()
	streaks, err := h.services.Streaks(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadStreaks, "habits_streaks_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(streaks),
		"streaks": streaks,
	})
}

// @Summary      Log an eco-action
// @Tags         habits
// @Accept       json
// @Produce      json
// @Param        body  body   LogHabitRequest  true  "Habit payload"
// @Success      200   {object}  map[string]interface{}  "status, log"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/habits [post]
// @Security     BearerAuth
func (h *Handler) logHabit(c *gin.Context) {
	var req LogHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	log, err := h.services.LogHabit(ctx, req.Action, req.Count)
	if err != nil {
		if errors.Is(err, service.ErrEmptyHabitAction) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errLogHabit, "habits_log_failed", err, "action", req.Action)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusLogged, "log": log})
}
