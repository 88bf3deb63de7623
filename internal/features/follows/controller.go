package follows

import (
	"errors"
	"net/http"

	users_middleware "safetybot-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FollowController struct {
	service *FollowService
}

func (c *FollowController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/follows/:userId/toggle", c.ToggleFollow)
	router.GET("/follows/:userId/status", c.IsFollowing)
	router.GET("/follows", c.GetFollowing)
	router.GET("/follows/feed", c.GetFollowingFeed)
}

// ToggleFollow
// @Summary Follow or unfollow a user
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User to follow/unfollow"
// @Success 200 {object} ToggleFollowResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /follows/{userId}/toggle [post]
func (c *FollowController) ToggleFollow(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	targetID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	following, err := c.service.ToggleFollow(user.ID, targetID)
	if err != nil {
		if errors.Is(err, ErrSelfFollow) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
			return
		}
		if errors.Is(err, ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle follow"})
		return
	}

	ctx.JSON(http.StatusOK, ToggleFollowResponseDTO{Following: following})
}

// IsFollowing
// @Summary Whether the current user follows another user
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} IsFollowingResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /follows/{userId}/status [get]
func (c *FollowController) IsFollowing(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	targetID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	following, err := c.service.IsFollowing(user.ID, targetID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check follow status"})
		return
	}

	ctx.JSON(http.StatusOK, IsFollowingResponseDTO{Following: following})
}

// GetFollowing
// @Summary List IDs of users the current user follows
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Success 200 {object} FollowingListResponseDTO
// @Failure 401 {object} map[string]string
// @Router /follows [get]
func (c *FollowController) GetFollowing(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ids, err := c.service.GetFollowingIDs(user.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list following"})
		return
	}

	ctx.JSON(http.StatusOK, FollowingListResponseDTO{UserIDs: ids})
}

// GetFollowingFeed
// @Summary Posts authored by followed users, newest first
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Success 200 {object} FeedResponseDTO
// @Failure 401 {object} map[string]string
// @Router /follows/feed [get]
func (c *FollowController) GetFollowingFeed(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	posts, err := c.service.GetFollowingFeed(user.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feed"})
		return
	}

	ctx.JSON(http.StatusOK, FeedResponseDTO{Posts: posts})
}
