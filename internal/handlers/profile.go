package handlers

import (
	"net/http"

	"ecotrack/internal/models"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK       = "ok"
	statusSaved    = "saved"
	statusRecorded = "recorded"
	statusPosted   = "posted"
	statusPledged  = "pledged"
	statusLogged   = "logged"

	errLoadProfile  = "failed to load profile"
	errSaveProfile  = "failed to save profile"
	errLoadSnapshot = "failed to build snapshot"

	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// SaveProfileRequest is an exported model for Swagger docs of the profile payload.
type SaveProfileRequest struct {
	ElectricityKwh float64 `json:"electricity_kwh" example:"300"`
	WaterM3        float64 `json:"water_m3" example:"18"`
	FuelLiters     float64 `json:"fuel_liters" example:"45"`
	WasteKg        float64 `json:"waste_kg" example:"28"`
	// Recycled share of waste, percent 0..100
	RecycleRate   float64 `json:"recycle_rate" example:"35"`
	MaterialsKg   float64 `json:"materials_kg" example:"120"`
	LogisticsKm   float64 `json:"logistics_km" example:"900"`
	CommuteKmWeek float64 `json:"commute_km_week" example:"80"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Get baseline profile
// @Description  Returns the stored profile, or documented defaults when none was saved yet.
// @Tags         profile
// @Produce      json
// @Success      200  {object}  models.BaselineProfile
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/profile [get]
// @Security     BearerAuth
func (h *Handler) getProfile(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := h.services.GetProfile(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadProfile, "profile_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Save baseline profile
// @Description  Unusable fields (negative, NaN, out of range) are replaced with defaults before storing.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body   SaveProfileRequest  true  "Profile payload"
// @Success      200   {object}  map[string]interface{}  "status, profile"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/profile [put]
// @Security     BearerAuth
func (h *Handler) saveProfile(c *gin.Context) {
	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	saved, err := h.services.SaveProfile(ctx, models.BaselineProfile{
		ElectricityKwh: req.ElectricityKwh,
		WaterM3:        req.WaterM3,
		FuelLiters:     req.FuelLiters,
		WasteKg:        req.WasteKg,
		RecycleRate:    req.RecycleRate,
		MaterialsKg:    req.MaterialsKg,
		LogisticsKm:    req.LogisticsKm,
		CommuteKmWeek:  req.CommuteKmWeek,
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errSaveProfile, "profile_save_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusSaved, "profile": saved})
}
