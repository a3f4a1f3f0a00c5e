package services

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ld-screen/screening-service/internal/models"
)

func newExportFixture(t *testing.T) (ExportService, *memStore) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	store := newMemStore()
	return NewExportService(store, logger), store
}

func seedSession(t *testing.T, store *memStore) *models.ScreeningSession {
	t.Helper()
	ctx := context.Background()

	session := &models.ScreeningSession{
		ID:             uuid.New(),
		StudentID:      "student-1",
		Status:         models.SessionActive,
		QuestionBudget: 6,
		Seed:           42,
		StartedAt:      time.Now().UTC(),
	}
	require.NoError(t, store.Sessions().Create(ctx, session))
	require.NoError(t, store.Responses().Create(ctx, &models.ScreeningResponse{
		ID:             uuid.New(),
		SessionID:      session.ID,
		QuestionID:     "reading-easy-01",
		Domain:         models.DomainReading,
		Difficulty:     models.DifficultyEasy,
		Correct:        true,
		ResponseTimeMs: 900,
		Answer:         "b",
		Position:       1,
	}))
	return session
}

func TestExportService_SessionReport(t *testing.T) {
	ctx := context.Background()

	t.Run("writes the response rows", func(t *testing.T) {
		exporter, store := newExportFixture(t)
		session := seedSession(t, store)

		data, err := exporter.ExportSessionReport(ctx, session.ID)
		require.NoError(t, err)

		f, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer f.Close()

		header, err := f.GetCellValue("Responses", "A1")
		require.NoError(t, err)
		assert.Equal(t, "Position", header)

		questionID, err := f.GetCellValue("Responses", "B2")
		require.NoError(t, err)
		assert.Equal(t, "reading-easy-01", questionID)

		// No assessment yet, so no summary sheet.
		assert.NotContains(t, f.GetSheetList(), "Summary")
	})

	t.Run("includes the assessment summary when one exists", func(t *testing.T) {
		exporter, store := newExportFixture(t)
		session := seedSession(t, store)
		require.NoError(t, store.Assessments().Create(ctx, &models.RiskAssessment{
			ID:           uuid.New(),
			SessionID:    session.ID,
			StudentID:    session.StudentID,
			DyslexiaRisk: 0.12,
			Label:        models.LabelLowRisk,
			Confidence:   models.ConfidenceModerate,
			CreatedAt:    time.Now().UTC(),
		}))

		data, err := exporter.ExportSessionReport(ctx, session.ID)
		require.NoError(t, err)

		f, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer f.Close()

		label, err := f.GetCellValue("Summary", "B7")
		require.NoError(t, err)
		assert.Equal(t, string(models.LabelLowRisk), label)

		answered, err := f.GetCellValue("Summary", "B3")
		require.NoError(t, err)
		assert.Equal(t, "1", answered)
	})

	t.Run("unknown session", func(t *testing.T) {
		exporter, _ := newExportFixture(t)
		_, err := exporter.ExportSessionReport(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}
