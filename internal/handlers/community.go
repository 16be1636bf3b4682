package handlers

import (
	"errors"
	"net/http"

	"ecotrack/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errLoadBoard = "failed to load community board"
	errPostStory = "failed to post story"
)

// PostStoryRequest is an exported model for Swagger docs of the community payload.
type PostStoryRequest struct {
	// Display name; empty posts as Anonymous
	Name string `json:"name,omitempty" example:"Sam"`
	// Story text, required
	Text string `json:"text" example:"Switched to cycling to work"`
	// Optional avoided-CO2 claim in kg
	ImpactKg float64 `json:"impact_kg,omitempty" example:"14"`
}

// @Summary      Get community board
// @Description  The 50 newest stories plus the combined avoided-impact total.
// @Tags         community
// @Produce      json
// @Success      200  {object}  models.CommunityBoard
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/community [get]
// @Security     BearerAuth
func (h *Handler) getCommunityBoard(c *gin.Context) {
	ctx := c.Request.Context()
	board, err := h.services.Board(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadBoard, "community_board_failed", err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// @Summary      Post a community story
// @Tags         community
// @Accept       json
// @Produce      json
// @Param        body  body   PostStoryRequest  true  "Story payload"
// @Success      200   {object}  map[string]interface{}  "status, story"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/community [post]
// @Security     BearerAuth
func (h *Handler) postCommunityStory(c *gin.Context) {
	var req PostStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	story, err := h.services.PostStory(ctx, req.Name, req.Text, req.ImpactKg)
	if err != nil {
		if errors.Is(err, service.ErrEmptyStory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errPostStory, "community_post_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusPosted, "story": story})
}
