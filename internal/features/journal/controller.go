package journal

import (
	"errors"
	"net/http"
	"strconv"

	users_middleware "safetybot-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JournalController struct {
	service *JournalService
}

func (c *JournalController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/journal/entries", c.CreateEntry)
	router.GET("/journal/entries", c.GetEntries)
	router.GET("/journal/entries/:id", c.GetEntry)
	router.PUT("/journal/entries/:id", c.UpdateEntry)
	router.DELETE("/journal/entries/:id", c.DeleteEntry)
	router.GET("/journal/calendar", c.GetEntriesByMonth)
}

// CreateEntry
// @Summary Create a journal entry
// @Description Title and content are encrypted at rest under the owner's secret
// @Tags journal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SaveEntryRequestDTO true "Entry data"
// @Success 200 {object} EntryResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /journal/entries [post]
func (c *JournalController) CreateEntry(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request SaveEntryRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	response, err := c.service.CreateEntry(user, &request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetEntries
// @Summary List journal entries, newest first
// @Tags journal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListEntriesResponseDTO
// @Failure 401 {object} map[string]string
// @Router /journal/entries [get]
func (c *JournalController) GetEntries(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.service.GetEntries(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal entries"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetEntry
// @Summary Get a single journal entry
// @Tags journal
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} EntryResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /journal/entries/{id} [get]
func (c *JournalController) GetEntry(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return
	}

	response, err := c.service.GetEntry(user, entryID)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal entry"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateEntry
// @Summary Update a journal entry
// @Description Replaces the stored envelopes entirely
// @Tags journal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body SaveEntryRequestDTO true "Entry data"
// @Success 200 {object} EntryResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /journal/entries/{id} [put]
func (c *JournalController) UpdateEntry(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return
	}

	var request SaveEntryRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	response, err := c.service.UpdateEntry(user, entryID, &request)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteEntry
// @Summary Delete a journal entry
// @Tags journal
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /journal/entries/{id} [delete]
func (c *JournalController) DeleteEntry(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return
	}

	if err := c.service.DeleteEntry(user, entryID); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete journal entry"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Journal entry deleted successfully"})
}

// GetEntriesByMonth
// @Summary List entries for a calendar month
// @Tags journal
// @Produce json
// @Security BearerAuth
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} ListEntriesResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /journal/calendar [get]
func (c *JournalController) GetEntriesByMonth(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}

	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}

	response, err := c.service.GetEntriesByMonth(user, year, month)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
