package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/ld-screen/screening-service/internal/models"
	"github.com/ld-screen/screening-service/internal/repositories"
)

// ExportService produces spreadsheet reports of screening results and
// loads custom question banks from spreadsheets.
type ExportService interface {
	ExportSessionReport(ctx context.Context, sessionID uuid.UUID) ([]byte, error)
	ExportStudentHistory(ctx context.Context, studentID string) ([]byte, error)
	ImportTemplatesFromExcel(reader io.Reader) ([]models.QuestionTemplate, error)
}

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportSessionReport(ctx context.Context, sessionID uuid.UUID) ([]byte, error) {
	session, err := s.repo.Sessions().GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	responses, err := s.repo.Responses().GetBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load responses: %w", err)
	}

	f := excelize.NewFile()
	sheetName := "Responses"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{
		"Position", "Question ID", "Domain", "Difficulty", "Correct",
		"Response Time (ms)", "Mistake Tag", "Confidence", "Answer",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, resp := range responses {
		row := []interface{}{
			resp.Position, resp.QuestionID, string(resp.Domain), string(resp.Difficulty),
			resp.Correct, resp.ResponseTimeMs, string(resp.MistakeTag), resp.Confidence, resp.Answer,
		}
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	// Summary sheet carries the assessment outcome when one exists.
	if assessment, err := s.repo.Assessments().GetBySession(ctx, sessionID); err == nil {
		if err := s.writeSummarySheet(f, session, len(responses), assessment); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load assessment: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *exportService) writeSummarySheet(f *excelize.File, session *models.ScreeningSession, answered int, assessment *models.RiskAssessment) error {
	sheetName := "Summary"
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	var insights []string
	_ = json.Unmarshal(assessment.Insights, &insights)

	rows := [][]interface{}{
		{"Student ID", session.StudentID},
		{"Session ID", session.ID.String()},
		{"Questions Answered", answered},
		{"Dyslexia Risk", assessment.DyslexiaRisk},
		{"Dyscalculia Risk", assessment.DyscalculiaRisk},
		{"Attention Risk", assessment.AttentionRisk},
		{"Label", string(assessment.Label)},
		{"Confidence", string(assessment.Confidence)},
		{"Scored With Model", assessment.UsedModel},
		{"Insights", strings.Join(insights, "; ")},
	}
	for rowIndex, row := range rows {
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+1)
			f.SetCellValue(sheetName, cell, value)
		}
	}
	return nil
}

func (s *exportService) ExportStudentHistory(ctx context.Context, studentID string) ([]byte, error) {
	assessments, err := s.repo.Assessments().GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	f := excelize.NewFile()
	sheetName := "History"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{
		"Session ID", "Date", "Dyslexia Risk", "Dyscalculia Risk", "Attention Risk",
		"Label", "Confidence",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, a := range assessments {
		row := []interface{}{
			a.SessionID.String(), a.CreatedAt.Format("2006-01-02 15:04"),
			a.DyslexiaRisk, a.DyscalculiaRisk, a.AttentionRisk,
			string(a.Label), string(a.Confidence),
		}
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

// ImportTemplatesFromExcel parses a custom question bank. Expected columns:
// ID, Domain, Difficulty, Prompt, Options (pipe separated), Correct Index,
// Mistake Tag. The first row is the header.
func (s *exportService) ImportTemplatesFromExcel(reader io.Reader) ([]models.QuestionTemplate, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("workbook has no template rows")
	}

	templates := make([]models.QuestionTemplate, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2
		if len(row) < 6 {
			return nil, fmt.Errorf("row %d: expected at least 6 columns, got %d", rowNum, len(row))
		}
		options := strings.Split(row[4], "|")
		correctIdx, err := strconv.Atoi(strings.TrimSpace(row[5]))
		if err != nil || correctIdx < 0 || correctIdx >= len(options) {
			return nil, fmt.Errorf("row %d: invalid correct index %q", rowNum, row[5])
		}

		tpl := models.QuestionTemplate{
			ID:            strings.TrimSpace(row[0]),
			Domain:        models.Domain(strings.TrimSpace(row[1])),
			Difficulty:    models.Difficulty(strings.TrimSpace(row[2])),
			Prompt:        row[3],
			Options:       options,
			CorrectAnswer: options[correctIdx],
		}
		if len(row) > 6 {
			tpl.MistakeTag = models.MistakeType(strings.TrimSpace(row[6]))
		}
		if !tpl.Domain.Valid() {
			return nil, fmt.Errorf("row %d: invalid domain %q", rowNum, row[1])
		}
		if !tpl.Difficulty.Valid() {
			return nil, fmt.Errorf("row %d: invalid difficulty %q", rowNum, row[2])
		}
		if tpl.ID == "" || tpl.Prompt == "" {
			return nil, fmt.Errorf("row %d: id and prompt are required", rowNum)
		}
		templates = append(templates, tpl)
	}

	s.logger.Info("Imported question templates", "count", len(templates))
	return templates, nil
}
