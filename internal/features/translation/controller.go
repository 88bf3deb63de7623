package translation

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TranslationController struct {
	service *TranslationService
}

func (c *TranslationController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/translation", c.Translate)
}

// Translate
// @Summary Translate a text snippet
// @Description Proxies to the translation API; text must be 1-5000 characters
// @Tags translation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TranslateRequestDTO true "Translation request"
// @Success 200 {object} TranslationDTO
// @Failure 400 {object} ErrorResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 502 {object} ErrorResponseDTO
// @Router /translation [post]
func (c *TranslationController) Translate(ctx *gin.Context) {
	var request TranslateRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponseDTO{Error: "Invalid request body"})
		return
	}

	result, err := c.service.Translate(&request)
	if err != nil {
		if errors.Is(err, ErrTextLength) || errors.Is(err, ErrTargetRequired) {
			ctx.JSON(http.StatusBadRequest, ErrorResponseDTO{Error: err.Error()})
			return
		}

		var upstreamErr *UpstreamError
		if errors.As(err, &upstreamErr) {
			status := http.StatusBadGateway
			if upstreamErr.Status >= 400 && upstreamErr.Status < 500 {
				status = upstreamErr.Status
			}
			ctx.JSON(status, ErrorResponseDTO{
				Error:   "Translation failed",
				Details: upstreamErr.Details,
			})
			return
		}

		ctx.JSON(http.StatusInternalServerError, ErrorResponseDTO{Error: "Translation failed"})
		return
	}

	ctx.JSON(http.StatusOK, result)
}
