package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ld-screen/screening-service/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

type SessionFilters struct {
	Status    *models.SessionStatus `json:"status"`
	StudentID *string               `json:"student_id"`
	DateFrom  *time.Time            `json:"date_from"`
	DateTo    *time.Time            `json:"date_to"`
	Limit     int                   `json:"limit"`
	Offset    int                   `json:"offset"`
	SortOrder string                `json:"sort_order"` // "asc", "desc"
}

// ===== REPOSITORY INTERFACES =====

type SessionRepository interface {
	Create(ctx context.Context, session *models.ScreeningSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ScreeningSession, error)
	GetByIDWithResponses(ctx context.Context, id uuid.UUID) (*models.ScreeningSession, error)
	Update(ctx context.Context, session *models.ScreeningSession) error
	List(ctx context.Context, filters SessionFilters) ([]*models.ScreeningSession, int64, error)
	GetByStudent(ctx context.Context, studentID string, filters SessionFilters) ([]*models.ScreeningSession, int64, error)
}

type ResponseRepository interface {
	Create(ctx context.Context, response *models.ScreeningResponse) error
	GetBySession(ctx context.Context, sessionID uuid.UUID) ([]*models.ScreeningResponse, error)
	CountBySession(ctx context.Context, sessionID uuid.UUID) (int64, error)
}

type QuestionEventRepository interface {
	Create(ctx context.Context, event *models.QuestionEvent) error
	GetBySession(ctx context.Context, sessionID uuid.UUID) ([]*models.QuestionEvent, error)
}

type AssessmentRepository interface {
	Create(ctx context.Context, assessment *models.RiskAssessment) error
	GetBySession(ctx context.Context, sessionID uuid.UUID) (*models.RiskAssessment, error)
	GetByStudent(ctx context.Context, studentID string) ([]*models.RiskAssessment, error)
}

// Repository bundles all stores behind a single dependency.
type Repository interface {
	Sessions() SessionRepository
	Responses() ResponseRepository
	QuestionEvents() QuestionEventRepository
	Assessments() AssessmentRepository
}
