package handlers

import (
	"errors"
	"net/http"

	"ecotrack/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errLoadGoals  = "failed to load goals"
	errPledgeGoal = "failed to pledge goal"
)

// PledgeGoalRequest is an exported model for Swagger docs of the goal payload.
type PledgeGoalRequest struct {
	// Goal title, required
	Title string `json:"title" example:"Cut commute emissions"`
	// Target reduction in percent, clamped to 0..100
	TargetPct float64 `json:"target_pct" example:"20"`
	// Optional due date, YYYY-MM-DD
	Due string `json:"due,omitempty" example:"2026-12-31"`
}

// @Summary      List goals
// @Tags         goals
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, goals"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/goals [get]
// @Security     BearerAuth
func (h *Handler) listGoals(c *gin.Context) {
	ctx := c.Request.Context()
	goals, err := h.services.ListGoals(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadGoals, "goals_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(goals),
		"goals": goals,
	})
}

// @Summary      Pledge a reduction goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Param        body  body   PledgeGoalRequest  true  "Goal payload"
// @Success      200   {object}  map[string]interface{}  "status, goal"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/goals [post]
// @Security     BearerAuth
func (h *Handler) pledgeGoal(c *gin.Context) {
	var req PledgeGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	goal, err := h.services.PledgeGoal(ctx, req.Title, req.TargetPct, req.Due)
	if err != nil {
		if errors.Is(err, service.ErrEmptyGoalTitle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errPledgeGoal, "goals_pledge_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusPledged, "goal": goal})
}
