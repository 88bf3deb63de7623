package uploads

import (
	"errors"
	"net/http"

	users_middleware "safetybot-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	service *UploadService
}

func (c *UploadController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/uploads/images", c.UploadImage)
}

// UploadImage
// @Summary Upload an image for blog covers or avatars
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file (max 10 MB)"
// @Success 200 {object} UploadResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /uploads/images [post]
func (c *UploadController) UploadImage(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if c.service == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Uploads are not configured"})
		return
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "A file field is required"})
		return
	}

	url, err := c.service.UploadImage(ctx.Request.Context(), user.ID, header)
	if err != nil {
		if errors.Is(err, ErrFileTooLarge) || errors.Is(err, ErrUnsupportedType) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	ctx.JSON(http.StatusOK, UploadResponseDTO{URL: url})
}

type UploadResponseDTO struct {
	URL string `json:"url"`
}
