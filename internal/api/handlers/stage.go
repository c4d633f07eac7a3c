package handlers

import (
	"net/http"

	"lead-pipeline-backend/internal/auth"
	apperrors "lead-pipeline-backend/internal/errors"
	"lead-pipeline-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StageHandler handles HTTP requests for pipeline stage management
type StageHandler struct {
	stageService service.StageServiceInterface
}

// NewStageHandler creates a new stage handler
func NewStageHandler(stageService service.StageServiceInterface) *StageHandler {
	return &StageHandler{
		stageService: stageService,
	}
}

// ListStages handles GET /stages
// @Summary List pipeline stages
// @Description Get all stages in column order
// @Tags stages
// @Accept json
// @Produce json
// @Success 200 {array} service.StageResponse "Stages"
// @Security BearerAuth
// @Router /stages [get]
func (h *StageHandler) ListStages(c *gin.Context) {
	resp, err := h.stageService.GetStages()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateStage handles POST /stages
// @Summary Create a pipeline stage
// @Tags stages
// @Accept json
// @Produce json
// @Param request body service.CreateStageRequest true "Stage fields"
// @Success 201 {object} service.StageResponse "Created stage"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Failure 409 {object} ErrorResponse "Stage order already taken"
// @Security BearerAuth
// @Router /stages [post]
func (h *StageHandler) CreateStage(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrNoActingUser)
		return
	}

	var req service.CreateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.stageService.CreateStage(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateStage handles PUT /stages/:id
// @Summary Rename or reorder a pipeline stage
// @Tags stages
// @Accept json
// @Produce json
// @Param id path string true "Stage ID"
// @Param request body service.UpdateStageRequest true "Stage fields"
// @Success 200 {object} service.StageResponse "Updated stage"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Failure 404 {object} ErrorResponse "Stage not found"
// @Security BearerAuth
// @Router /stages/{id} [put]
func (h *StageHandler) UpdateStage(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrNoActingUser)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid stage ID"})
		return
	}

	var req service.UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.stageService.UpdateStage(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteStage handles DELETE /stages/:id
// @Summary Delete an empty pipeline stage
// @Tags stages
// @Accept json
// @Produce json
// @Param id path string true "Stage ID"
// @Success 200 {object} map[string]interface{} "Stage deleted"
// @Failure 400 {object} ErrorResponse "Invalid stage ID"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Failure 404 {object} ErrorResponse "Stage not found"
// @Failure 409 {object} ErrorResponse "Stage still contains leads"
// @Security BearerAuth
// @Router /stages/{id} [delete]
func (h *StageHandler) DeleteStage(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrNoActingUser)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid stage ID"})
		return
	}

	if err := h.stageService.DeleteStage(actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
