package handlers

import (
	"net/http"

	"lead-pipeline-backend/internal/auth"
	apperrors "lead-pipeline-backend/internal/errors"
	"lead-pipeline-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeadHandler handles HTTP requests for lead operations
type LeadHandler struct {
	leadService service.LeadServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService service.LeadServiceInterface) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
	}
}

// CreateLead handles POST /leads
// @Summary Create a lead
// @Description Create a lead at the end of the lowest-order stage
// @Tags leads
// @Accept json
// @Produce json
// @Param request body service.CreateLeadRequest true "Lead fields"
// @Success 201 {object} service.LeadResponse "Created lead"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "No pipeline stages exist"
// @Security BearerAuth
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrNoActingUser)
		return
	}

	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.leadService.CreateLead(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetSchedule handles GET /schedule
// @Summary Get the follow-up schedule
// @Description List leads with a scheduled next action, soonest first, optionally filtered by assignee
// @Tags schedule
// @Accept json
// @Produce json
// @Param assignee_id query string false "Filter by assignee ID"
// @Success 200 {array} service.ScheduleEntry "Schedule entries"
// @Failure 400 {object} ErrorResponse "Invalid assignee ID"
// @Security BearerAuth
// @Router /schedule [get]
func (h *LeadHandler) GetSchedule(c *gin.Context) {
	var assigneeID *uuid.UUID
	if raw := c.Query("assignee_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid assignee ID"})
			return
		}
		assigneeID = &id
	}

	resp, err := h.leadService.GetSchedule(assigneeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetLead handles GET /leads/:id
// @Summary Get a lead
// @Description Get a lead with its stage, assignee and event history
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} service.LeadResponse "Lead details"
// @Failure 400 {object} ErrorResponse "Invalid lead ID"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Security BearerAuth
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid lead ID"})
		return
	}

	resp, err := h.leadService.GetLead(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateLead handles PUT /leads/:id
// @Summary Update a lead
// @Description Apply a full field edit; stage and status transitions are recorded as audit events
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body service.UpdateLeadRequest true "Lead fields"
// @Success 200 {object} service.LeadResponse "Updated lead"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Not allowed to edit this lead"
// @Failure 404 {object} ErrorResponse "Lead or stage not found"
// @Security BearerAuth
// @Router /leads/{id} [put]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrNoActingUser)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid lead ID"})
		return
	}

	var req service.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.leadService.UpdateLead(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteLead handles DELETE /leads/:id
// @Summary Delete a lead
// @Description Delete a lead; its audit events cascade with it
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} map[string]interface{} "Lead deleted"
// @Failure 400 {object} ErrorResponse "Invalid lead ID"
// @Failure 403 {object} ErrorResponse "Not allowed to delete this lead"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Security BearerAuth
// @Router /leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrNoActingUser)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid lead ID"})
		return
	}

	if err := h.leadService.DeleteLead(actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteEvent handles DELETE /events/:id
// @Summary Delete an audit event
// @Description Remove a single audit entry as an explicit administrative correction
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]interface{} "Event deleted"
// @Failure 400 {object} ErrorResponse "Invalid event ID"
// @Failure 403 {object} ErrorResponse "Not allowed to touch this lead's events"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *LeadHandler) DeleteEvent(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrNoActingUser)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid event ID"})
		return
	}

	if err := h.leadService.DeleteEvent(actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
