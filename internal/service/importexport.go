package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"lead-pipeline-backend/internal/audit"
	"lead-pipeline-backend/internal/authz"
	"lead-pipeline-backend/internal/database/models"
	apperrors "lead-pipeline-backend/internal/errors"
	"lead-pipeline-backend/internal/logger"
	"lead-pipeline-backend/internal/repository"

	"github.com/google/uuid"
)

// csvColumns is the export header and the canonical import column set
var csvColumns = []string{
	"Title",
	"Contact Name",
	"Value",
	"Probability",
	"Status",
	"Pipeline Stage",
	"Assignee Email",
	"Next Action Date",
	"Next Action Type",
	"Next Action Note",
	"Created At",
}

// ImportRow is one raw CSV row before coercion. All fields are strings;
// unknown enum values fall back to defaults instead of failing the row.
type ImportRow struct {
	Title          string
	ContactName    string
	Value          string
	Probability    string
	Status         string
	StageName      string
	AssigneeEmail  string
	NextActionDate string
	NextActionType string
	NextActionNote string
}

// ImportResult summarizes a bulk import
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ImportExportService handles CSV lead import and export
type ImportExportService struct {
	leadRepo  repository.LeadRepositoryInterface
	stageRepo repository.StageRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	log       *logger.Logger
}

// Ensure ImportExportService implements ImportExportServiceInterface
var _ ImportExportServiceInterface = (*ImportExportService)(nil)

// NewImportExportService creates a new ImportExportService
func NewImportExportService(
	leadRepo repository.LeadRepositoryInterface,
	stageRepo repository.StageRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
) *ImportExportService {
	return &ImportExportService{
		leadRepo:  leadRepo,
		stageRepo: stageRepo,
		userRepo:  userRepo,
		log:       logger.New(),
	}
}

// ImportLead creates a single lead from a raw row with tolerant coercion:
// an unrecognized status falls back to TODO, an unrecognized next-action
// type to null, an unknown stage name to the lowest-order stage and an
// unknown assignee email to unassigned. The seed event reads
// "Lead imported via CSV".
func (s *ImportExportService) ImportLead(actor *models.User, row ImportRow) (uuid.UUID, error) {
	if !authz.CanImport(actor) {
		return uuid.Nil, apperrors.ErrAdminOnly
	}

	title := strings.TrimSpace(row.Title)
	if title == "" {
		return uuid.Nil, apperrors.NewValidationError("title", "title is required")
	}

	stage, err := s.resolveStage(row.StageName)
	if err != nil {
		return uuid.Nil, err
	}

	var assigneeID *uuid.UUID
	if email := strings.TrimSpace(row.AssigneeEmail); email != "" {
		if user, err := s.userRepo.GetByEmail(email); err == nil {
			assigneeID = &user.ID
		}
	}

	position, err := s.leadRepo.NextPosition(stage.ID)
	if err != nil {
		return uuid.Nil, err
	}

	lead := &models.Lead{
		Title:          title,
		ContactName:    optionalString(row.ContactName),
		Value:          parseOptionalFloat(row.Value),
		Probability:    parseOptionalInt(row.Probability),
		Status:         models.CoerceLeadStatus(row.Status),
		StageID:        stage.ID,
		Position:       position,
		CreatorID:      actor.ID,
		AssigneeID:     assigneeID,
		NextActionDate: parseOptionalTime(row.NextActionDate),
		NextActionType: models.CoerceNextActionType(row.NextActionType),
		NextActionNote: optionalString(row.NextActionNote),
	}
	seed := &models.LeadEvent{
		Description: audit.EventLeadImported,
		AuthorID:    &actor.ID,
	}
	if err := s.leadRepo.Create(lead, seed); err != nil {
		return uuid.Nil, err
	}
	return lead.ID, nil
}

// ImportCSV reads a CSV stream with a header row and imports every row that
// carries a title. Rows without a title are skipped, not failed.
func (s *ImportExportService) ImportCSV(actor *models.User, r io.Reader) (*ImportResult, error) {
	if !authz.CanImport(actor) {
		return nil, apperrors.ErrAdminOnly
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.NewValidationError("file", "failed to parse CSV header")
	}
	index := headerIndex(header)
	if _, ok := index["title"]; !ok {
		return nil, apperrors.NewValidationError("file", "CSV is missing a Title column")
	}

	result := &ImportResult{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewValidationError("file", fmt.Sprintf("malformed CSV row: %v", err))
		}

		row := ImportRow{
			Title:          field(record, index, "title"),
			ContactName:    field(record, index, "contact name"),
			Value:          field(record, index, "value"),
			Probability:    field(record, index, "probability"),
			Status:         field(record, index, "status"),
			StageName:      field(record, index, "pipeline stage"),
			AssigneeEmail:  field(record, index, "assignee email"),
			NextActionDate: field(record, index, "next action date"),
			NextActionType: field(record, index, "next action type"),
			NextActionNote: field(record, index, "next action note"),
		}
		if strings.TrimSpace(row.Title) == "" {
			result.Skipped++
			continue
		}
		if _, err := s.ImportLead(actor, row); err != nil {
			return nil, err
		}
		result.Imported++
	}

	s.log.WithField("imported", result.Imported).Info("CSV import finished")
	return result, nil
}

// ExportCSV writes every lead as CSV, newest first
func (s *ImportExportService) ExportCSV(w io.Writer) error {
	leads, err := s.leadRepo.GetAllForExport()
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvColumns); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, lead := range leads {
		record := []string{
			lead.Title,
			stringOrEmpty(lead.ContactName),
			floatOrEmpty(lead.Value),
			intOrEmpty(lead.Probability),
			string(lead.Status),
			stageNameOrEmpty(lead.Stage),
			assigneeEmailOrEmpty(lead.Assignee),
			timeOrEmpty(lead.NextActionDate),
			actionTypeOrEmpty(lead.NextActionType),
			stringOrEmpty(lead.NextActionNote),
			lead.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// resolveStage maps a raw stage name onto an existing stage, falling back to
// the lowest-order stage when the name is unknown or empty
func (s *ImportExportService) resolveStage(name string) (*models.PipelineStage, error) {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		if stage, err := s.stageRepo.GetByName(trimmed); err == nil {
			return stage, nil
		}
	}
	return s.stageRepo.GetFirst()
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func field(record []string, index map[string]int, key string) string {
	i, ok := index[key]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

func optionalString(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func parseOptionalFloat(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseOptionalInt(raw string) *int {
	v := parseOptionalFloat(raw)
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}

func parseOptionalTime(raw string) *time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return &t
		}
	}
	return nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrEmpty(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func intOrEmpty(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func actionTypeOrEmpty(t *models.NextActionType) string {
	if t == nil {
		return ""
	}
	return string(*t)
}

func stageNameOrEmpty(stage *models.PipelineStage) string {
	if stage == nil {
		return ""
	}
	return stage.Name
}

func assigneeEmailOrEmpty(user *models.User) string {
	if user == nil {
		return ""
	}
	return user.Email
}
