package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ld-screen/screening-service/internal/models"
)

// EventType represents different types of screening events
type EventType string

const (
	EventSessionStarted   EventType = "screening.session_started"
	EventSessionCompleted EventType = "screening.session_completed"
	EventSessionAbandoned EventType = "screening.session_abandoned"
	EventRiskFlagged      EventType = "screening.risk_flagged"
)

// ScreeningEvent is the base event structure for all screening events
type ScreeningEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

const eventSource = "screening-service"

func newEvent(eventType EventType, data interface{}) *ScreeningEvent {
	return &ScreeningEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Version:   "1.0",
		Data:      data,
	}
}

type SessionStartedEvent struct {
	SessionID      uuid.UUID `json:"session_id"`
	StudentID      string    `json:"student_id"`
	AgeGroup       string    `json:"age_group"`
	QuestionBudget int       `json:"question_budget"`
	StartedAt      time.Time `json:"started_at"`
}

type SessionCompletedEvent struct {
	SessionID     uuid.UUID       `json:"session_id"`
	StudentID     string          `json:"student_id"`
	QuestionCount int             `json:"question_count"`
	Label         models.RiskLabel `json:"label"`
	CompletedAt   time.Time       `json:"completed_at"`
}

type SessionAbandonedEvent struct {
	SessionID         uuid.UUID `json:"session_id"`
	StudentID         string    `json:"student_id"`
	QuestionsAnswered int64     `json:"questions_answered"`
	AbandonedAt       time.Time `json:"abandoned_at"`
}

type RiskFlaggedEvent struct {
	SessionID       uuid.UUID              `json:"session_id"`
	StudentID       string                 `json:"student_id"`
	Label           models.RiskLabel       `json:"label"`
	Confidence      models.ConfidenceLevel `json:"confidence"`
	DyslexiaRisk    float64                `json:"dyslexia_risk"`
	DyscalculiaRisk float64                `json:"dyscalculia_risk"`
	AttentionRisk   float64                `json:"attention_risk"`
	FlaggedAt       time.Time              `json:"flagged_at"`
}

// NewSessionStartedEvent builds the event emitted when a screening begins.
func NewSessionStartedEvent(session *models.ScreeningSession) *ScreeningEvent {
	return newEvent(EventSessionStarted, SessionStartedEvent{
		SessionID:      session.ID,
		StudentID:      session.StudentID,
		AgeGroup:       session.AgeGroup,
		QuestionBudget: session.QuestionBudget,
		StartedAt:      session.StartedAt,
	})
}

// NewSessionCompletedEvent builds the event emitted when a screening is
// finalized, regardless of outcome.
func NewSessionCompletedEvent(session *models.ScreeningSession, assessment *models.RiskAssessment) *ScreeningEvent {
	completedAt := time.Now().UTC()
	if session.CompletedAt != nil {
		completedAt = *session.CompletedAt
	}
	return newEvent(EventSessionCompleted, SessionCompletedEvent{
		SessionID:     session.ID,
		StudentID:     session.StudentID,
		QuestionCount: len(session.Responses),
		Label:         assessment.Label,
		CompletedAt:   completedAt,
	})
}

// NewSessionAbandonedEvent builds the event emitted when a screening is
// abandoned before it could be finalized.
func NewSessionAbandonedEvent(session *models.ScreeningSession, answered int64) *ScreeningEvent {
	abandonedAt := time.Now().UTC()
	if session.CompletedAt != nil {
		abandonedAt = *session.CompletedAt
	}
	return newEvent(EventSessionAbandoned, SessionAbandonedEvent{
		SessionID:         session.ID,
		StudentID:         session.StudentID,
		QuestionsAnswered: answered,
		AbandonedAt:       abandonedAt,
	})
}

// NewRiskFlaggedEvent builds the event emitted when a screening produces a
// non-low-risk label, so downstream consumers can notify educators.
func NewRiskFlaggedEvent(assessment *models.RiskAssessment) *ScreeningEvent {
	return newEvent(EventRiskFlagged, RiskFlaggedEvent{
		SessionID:       assessment.SessionID,
		StudentID:       assessment.StudentID,
		Label:           assessment.Label,
		Confidence:      assessment.Confidence,
		DyslexiaRisk:    assessment.DyslexiaRisk,
		DyscalculiaRisk: assessment.DyscalculiaRisk,
		AttentionRisk:   assessment.AttentionRisk,
		FlaggedAt:       assessment.CreatedAt,
	})
}
