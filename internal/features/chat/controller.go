package chat

import (
	"encoding/json"
	"io"
	"net/http"

	users_middleware "safetybot-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	service *ChatService
	proxy   *ChatProxy
}

func (c *ChatController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/chat", c.ForwardChat)
	router.POST("/chat/history", c.AppendMessage)
	router.GET("/chat/history", c.GetHistory)
	router.DELETE("/chat/history", c.ClearHistory)
}

// ForwardChat
// @Summary Forward a chat request to the report generation chatbot
// @Description Body is forwarded verbatim; authId is required
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /chat [post]
func (c *ChatController) ForwardChat(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	if !json.Valid(body) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be valid JSON"})
		return
	}

	if !hasAuthID(body) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "authId is required"})
		return
	}

	status, upstreamBody, err := c.proxy.Forward(body)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to reach chat service"})
		return
	}

	if !json.Valid(upstreamBody) {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Invalid response from chat service"})
		return
	}

	ctx.Data(status, "application/json", upstreamBody)
}

// AppendMessage
// @Summary Append a message to the encrypted chat history
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AppendMessageRequestDTO true "Message data"
// @Success 200 {object} MessageDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /chat/history [post]
func (c *ChatController) AppendMessage(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request AppendMessageRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Message and role are required"})
		return
	}

	message, err := c.service.AppendMessage(user, &request)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store message"})
		return
	}

	ctx.JSON(http.StatusOK, message)
}

// GetHistory
// @Summary Get the decrypted chat history, oldest first
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} HistoryResponseDTO
// @Failure 401 {object} map[string]string
// @Router /chat/history [get]
func (c *ChatController) GetHistory(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	history, err := c.service.GetHistory(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve history"})
		return
	}

	ctx.JSON(http.StatusOK, history)
}

// ClearHistory
// @Summary Delete the current user's chat history
// @Tags chat
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /chat/history [delete]
func (c *ChatController) ClearHistory(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := c.service.ClearHistory(user); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear history"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Chat history cleared"})
}
