package handlers

import (
	"net/http"

	"lead-pipeline-backend/internal/auth"
	apperrors "lead-pipeline-backend/internal/errors"
	"lead-pipeline-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BoardHandler handles HTTP requests for the pipeline board
type BoardHandler struct {
	boardService service.BoardServiceInterface
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(boardService service.BoardServiceInterface) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// GetBoard handles GET /board
// @Summary Get the pipeline board
// @Description Get all stages in column order with their leads in position order
// @Tags board
// @Accept json
// @Produce json
// @Success 200 {object} service.BoardResponse "Board snapshot"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /board [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	resp, err := h.boardService.GetBoard()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MoveLead handles POST /board/move
// @Summary Move a lead
// @Description Apply one completed drag gesture within or across stages
// @Tags board
// @Accept json
// @Produce json
// @Param request body service.MoveLeadInput true "Drag gesture"
// @Success 200 {object} map[string]interface{} "Move applied"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Not allowed to move this lead"
// @Failure 404 {object} ErrorResponse "Lead or stage not found"
// @Failure 409 {object} ErrorResponse "Concurrent change, re-fetch and retry"
// @Security BearerAuth
// @Router /board/move [post]
func (h *BoardHandler) MoveLead(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrNoActingUser)
		return
	}

	var input service.MoveLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.boardService.MoveLead(actor, input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Reorder handles POST /board/reorder
// @Summary Apply a batch reorder
// @Description Apply a client-computed batch of lead placements from a multi-lead drag completion
// @Tags board
// @Accept json
// @Produce json
// @Param request body []service.PlacementInput true "Placements"
// @Success 200 {object} map[string]interface{} "Reorder applied"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "A lead in the batch is not yours"
// @Failure 404 {object} ErrorResponse "A lead or stage no longer exists"
// @Failure 409 {object} ErrorResponse "Concurrent change, re-fetch and retry"
// @Security BearerAuth
// @Router /board/reorder [post]
func (h *BoardHandler) Reorder(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrNoActingUser)
		return
	}

	var updates []service.PlacementInput
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.boardService.Reorder(actor, updates); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
