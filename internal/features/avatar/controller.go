package avatar

import (
	"net/http"

	users_middleware "safetybot-backend/internal/features/users/middleware"
	users_services "safetybot-backend/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type AvatarController struct {
	userService  *users_services.UserService
	questionBank *QuestionBankClient
	model        string
	liveURL      string
	apiKey       string
	upgrader     websocket.Upgrader
}

func NewAvatarController(
	userService *users_services.UserService,
	questionBank *QuestionBankClient,
	model, liveURL, apiKey string,
) *AvatarController {
	return &AvatarController{
		userService:  userService,
		questionBank: questionBank,
		model:        model,
		liveURL:      liveURL,
		apiKey:       apiKey,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1 << 16,
			WriteBufferSize: 1 << 16,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (c *AvatarController) RegisterRoutes(router gin.IRoutes) {
	router.GET("/avatar/live", c.LiveSession)
	router.GET("/avatar/progress", c.GetProgress)
}

// LiveSession
// @Summary Open a live voice session with the safety avatar
// @Description Upgrades to a websocket carrying audio frames and transcript events
// @Tags avatar
// @Security BearerAuth
// @Success 101
// @Failure 401 {object} map[string]string
// @Router /avatar/live [get]
func (c *AvatarController) LiveSession(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// Upgrade already wrote the error response
		return
	}
	defer conn.Close()

	session := NewSession(user, c.userService, c.questionBank, c.model, c.liveURL, c.apiKey, conn)
	session.Run(ctx.Request.Context())
}

// GetProgress
// @Summary Interview progress for the current user
// @Tags avatar
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProgressResponseDTO
// @Failure 401 {object} map[string]string
// @Router /avatar/progress [get]
func (c *AvatarController) GetProgress(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	total := QuestionCount()
	complete := user.Progress+1 >= total

	ctx.JSON(http.StatusOK, ProgressResponseDTO{
		Progress:       user.Progress,
		TotalQuestions: total,
		Complete:       complete,
	})
}

type ProgressResponseDTO struct {
	Progress       int  `json:"progress"`
	TotalQuestions int  `json:"totalQuestions"`
	Complete       bool `json:"complete"`
}
