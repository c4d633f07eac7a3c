package handlers

import (
	"net/http"

	"lead-pipeline-backend/internal/auth"
	apperrors "lead-pipeline-backend/internal/errors"
	"lead-pipeline-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ImportExportHandler handles CSV import and export of leads
type ImportExportHandler struct {
	importExportService service.ImportExportServiceInterface
}

// NewImportExportHandler creates a new import/export handler
func NewImportExportHandler(importExportService service.ImportExportServiceInterface) *ImportExportHandler {
	return &ImportExportHandler{
		importExportService: importExportService,
	}
}

// ImportCSV handles POST /leads/import
// @Summary Import leads from CSV
// @Description Bulk-create leads from an uploaded CSV file; malformed values are coerced, titleless rows skipped
// @Tags import-export
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} service.ImportResult "Import summary"
// @Failure 400 {object} ErrorResponse "Missing file or unusable CSV"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Security BearerAuth
// @Router /leads/import [post]
func (h *ImportExportHandler) ImportCSV(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrNoActingUser)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing file upload"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	result, err := h.importExportService.ImportCSV(actor, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ExportCSV handles GET /leads/export
// @Summary Export leads to CSV
// @Description Download all leads as a CSV file, newest first
// @Tags import-export
// @Accept json
// @Produce text/csv
// @Success 200 {string} string "CSV content"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/export [get]
func (h *ImportExportHandler) ExportCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="leads.csv"`)

	if err := h.importExportService.ExportCSV(c.Writer); err != nil {
		respondError(c, err)
		return
	}
}
