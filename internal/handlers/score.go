package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	errLoadScore        = "failed to compute score"
	errLoadGamification = "failed to build gamification view"
)

// @Summary      Get eco-credit score
// @Description  Score on a 0..1000 scale derived from the recent category breakdown, with level and mood.
// @Tags         score
// @Produce      json
// @Success      200  {object}  models.ScoreReport
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/score [get]
// @Security     BearerAuth
func (h *Handler) getScore(c *gin.Context) {
	ctx := c.Request.Context()
	report, err := h.services.ScoreReport(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadScore, "score_failed", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary      Get gamification view
// @Description  Level, earned badges and the local leaderboard.
// @Tags         score
// @Produce      json
// @Success      200  {object}  models.Gamification
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/gamification [get]
// @Security     BearerAuth
func (h *Handler) getGamification(c *gin.Context) {
	ctx := c.Request.Context()
	view, err := h.services.Gamification(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadGamification, "gamification_failed", err)
		return
	}
	c.JSON(http.StatusOK, view)
}
