package handlers

import (
	"net/http"

	"ecotrack/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	errRunScenario  = "failed to run scenario"
	errLoadScenario = "failed to load scenario"
)

// RunScenarioRequest is an exported model for Swagger docs of the scenario payload.
type RunScenarioRequest struct {
	// Energy lever. Allowed: grid, renewable
	Energy string `json:"energy" example:"renewable"`
	// Materials lever. Allowed: virgin, recycled
	Materials string `json:"materials" example:"recycled"`
	// Logistics lever. Allowed: truck, rail, ship
	Logistics string `json:"logistics" example:"rail"`
	// Commute lever. Allowed: private, public, remote
	Commute string `json:"commute" example:"public"`
}

// @Summary      Run a what-if scenario
// @Description  Reductions are additive per lever and capped. Unknown lever values fall back to the zero-reduction default. The result overwrites the previously saved one.
// @Tags         scenario
// @Accept       json
// @Produce      json
// @Param        body  body   RunScenarioRequest  true  "Lever selection"
// @Success      200   {object}  models.ScenarioResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/scenario [post]
// @Security     BearerAuth
func (h *Handler) runScenario(c *gin.Context) {
	var req RunScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	result, err := h.services.RunScenario(ctx, models.ScenarioChoice{
		Energy:    req.Energy,
		Materials: req.Materials,
		Logistics: req.Logistics,
		Commute:   req.Commute,
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errRunScenario, "scenario_run_failed", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary      Get last saved scenario
// @Tags         scenario
// @Produce      json
// @Success      200  {object}  models.ScenarioResult
// @Success      204  "no scenario saved yet"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/scenario [get]
// @Security     BearerAuth
func (h *Handler) getSavedScenario(c *gin.Context) {
	ctx := c.Request.Context()
	result, err := h.services.SavedScenario(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadScenario, "scenario_load_failed", err)
		return
	}
	if result == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, result)
}
