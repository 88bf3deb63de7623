package worklog

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	service *ReportService
}

func (c *ReportController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/worklog/report", c.GetReport)
}

// GetReport
// @Summary Fetch a worklog report from the report generation service
// @Description numdays must be a JSON number between 1 and 365
// @Tags worklog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 502 {object} ErrorResponseDTO
// @Failure 503 {object} ErrorResponseDTO
// @Router /worklog/report [post]
func (c *ReportController) GetReport(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponseDTO{
			Error:     "Internal server error",
			ErrorCode: CodeInternalError,
			Message:   "An unexpected error occurred while processing your request",
		})
		return
	}

	var request map[string]any
	if err := json.Unmarshal(body, &request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:     "Invalid request format",
			ErrorCode: CodeParseError,
			Message:   "Invalid JSON in request body",
		})
		return
	}

	authID, _ := request["authId"].(string)
	email, _ := request["email"].(string)
	if authID == "" || email == "" || request["numdays"] == nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:     "Missing required fields",
			ErrorCode: CodeValidationError,
			Message:   "authId, email, and numdays are required",
		})
		return
	}

	// numdays must arrive as a JSON number, not a quoted string
	numDaysRaw, ok := request["numdays"].(float64)
	if !ok || numDaysRaw < 1 || numDaysRaw > 365 {
		ctx.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:     "Invalid numdays value",
			ErrorCode: CodeValidationError,
			Message:   "numdays must be a number between 1 and 365",
		})
		return
	}

	status, upstreamBody, err := c.service.FetchReport(authID, email, int(numDaysRaw))
	if err != nil {
		var networkErr *NetworkError
		if errors.As(err, &networkErr) {
			ctx.JSON(http.StatusServiceUnavailable, ErrorResponseDTO{
				Error:     "Failed to connect to external service",
				ErrorCode: CodeNetworkError,
				Message:   "Unable to reach the report generation service. Please try again later.",
			})
			return
		}

		var parseErr *UpstreamParseError
		if errors.As(err, &parseErr) {
			ctx.JSON(http.StatusBadGateway, ErrorResponseDTO{
				Error:     "Invalid response from external service",
				ErrorCode: CodeExternalAPIError,
				Message:   "Failed to parse response from external service",
			})
			return
		}

		ctx.JSON(http.StatusInternalServerError, ErrorResponseDTO{
			Error:     "Internal server error",
			ErrorCode: CodeInternalError,
			Message:   "An unexpected error occurred while processing your request",
		})
		return
	}

	// upstream errors are forwarded with their own status and JSON body
	ctx.Data(status, "application/json", upstreamBody)
}
