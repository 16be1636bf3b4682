package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const errRunCalc = "failed to run calculator"

// CalcTravelRequest is an exported model for Swagger docs of the travel calculator payload.
type CalcTravelRequest struct {
	// Distance travelled in kilometers
	Km float64 `json:"km" example:"120"`
	// Travel mode. Allowed: car, bus, train, plane; anything else uses a generic factor
	Mode string `json:"mode" example:"car"`
}

// CalcDietRequest is an exported model for Swagger docs of the diet calculator payload.
type CalcDietRequest struct {
	// Meals per week
	Meals float64 `json:"meals" example:"14"`
	// Diet type. Allowed: omnivore, vegetarian, vegan; anything else uses a generic factor
	Diet string `json:"diet" example:"vegetarian"`
}

// CalcHomeRequest is an exported model for Swagger docs of the home calculator payload.
type CalcHomeRequest struct {
	// Electricity use in kWh per month
	Kwh float64 `json:"kwh" example:"300"`
}

// @Summary      Travel emissions calculator
// @Description  Converts distance and mode to kg CO2e and appends the result to the history.
// @Tags         calc
// @Accept       json
// @Produce      json
// @Param        body  body   CalcTravelRequest  true  "Travel inputs"
// @Success      200   {object}  models.CalcOutcome
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/calc/travel [post]
// @Security     BearerAuth
func (h *Handler) calcTravel(c *gin.Context) {
	var req CalcTravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	out, err := h.services.CalcTravel(ctx, req.Km, req.Mode)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errRunCalc, "calc_travel_failed", err, "mode", req.Mode)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Diet emissions calculator
// @Tags         calc
// @Accept       json
// @Produce      json
// @Param        body  body   CalcDietRequest  true  "Diet inputs"
// @Success      200   {object}  models.CalcOutcome
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/calc/diet [post]
// @Security     BearerAuth
func (h *Handler) calcDiet(c *gin.Context) {
	var req CalcDietRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	out, err := h.services.CalcDiet(ctx, req.Meals, req.Diet)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errRunCalc, "calc_diet_failed", err, "diet", req.Diet)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Home energy emissions calculator
// @Tags         calc
// @Accept       json
// @Produce      json
// @Param        body  body   CalcHomeRequest  true  "Home inputs"
// @Success      200   {object}  models.CalcOutcome
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/calc/home [post]
// @Security     BearerAuth
func (h *Handler) calcHome(c *gin.Context) {
	var req CalcHomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	out, err := h.services.CalcHome(ctx, req.Kwh)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errRunCalc, "calc_home_failed", err)
		return
	}
	c.JSON(http.StatusOK, out)
}
