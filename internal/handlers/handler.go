package handlers

import (
	"ecotrack/internal/logger"
	"ecotrack/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Live snapshot push over WebSocket (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		api.GET("/profile", h.getProfile)
		api.PUT("/profile", h.saveProfile)

		api.GET("/history", h.getHistory)
		api.POST("/history", h.recordEntry)

		api.GET("/snapshot", h.getSnapshot)
		api.GET("/series", h.getSeries)
		api.GET("/series/categories", h.getCategorySeries)

		api.POST("/scenario", h.runScenario)
		api.GET("/scenario", h.getSavedScenario)

		api.GET("/lifecycle", h.getLifecycle)
		api.GET("/insights", h.getInsights)

		api.GET("/score", h.getScore)
		api.GET("/gamification", h.getGamification)

		h.registerCalcRoutes(api)
		h.registerDataRoutes(api)

		api.GET("/community", h.getCommunityBoard)
		api.POST("/community", h.postCommunityStory)

		api.GET("/goals", h.listGoals)
		api.POST("/goals", h.pledgeGoal)

		api.GET("/habits", h.getHabitStreaks)
		api.POST("/habits", h.logHabit)
	}
}

func (h *Handler) registerCalcRoutes(api *gin.RouterGroup) {
	calc := api.Group("/calc")
	{
		// Body example: {"km":120,"mode":"train"}
		calc.POST("/travel", h.calcTravel)
		calc.POST("/diet", h.calcDiet)
		calc.POST("/home", h.calcHome)
	}
}

func (h *Handler) registerDataRoutes(api *gin.RouterGroup) {
	data := api.Group("/data")
	{
		data.GET("/sources", h.getSourceReadings)
		data.GET("/breakdown", h.getBreakdown)
	}
}
