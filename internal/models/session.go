package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SessionStatus tracks the lifecycle of a screening session.
type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionAbandoned SessionStatus = "abandoned"
)

// ScreeningSession is the persisted root of one screening run.
type ScreeningSession struct {
	ID             uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentID      string        `json:"student_id" gorm:"index;not null" validate:"required"`
	AgeGroup       string        `json:"age_group" gorm:"not null;default:'8-10'"`
	Status         SessionStatus `json:"status" gorm:"not null;default:'active'" validate:"oneof=active completed abandoned"`
	QuestionBudget int           `json:"question_budget" gorm:"not null" validate:"gte=5,lte=100"`
	Seed           int64         `json:"seed" gorm:"not null"`
	StartedAt      time.Time     `json:"started_at" gorm:"autoCreateTime"`
	CompletedAt    *time.Time    `json:"completed_at,omitempty"`

	Responses []ScreeningResponse `json:"responses,omitempty" gorm:"foreignKey:SessionID"`
}

func (ScreeningSession) TableName() string {
	return "screening_sessions"
}

// ScreeningResponse is the persisted form of a ResponseRecord.
type ScreeningResponse struct {
	ID             uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionID      uuid.UUID   `json:"session_id" gorm:"type:uuid;index;not null"`
	QuestionID     string      `json:"question_id" gorm:"not null"`
	Domain         Domain      `json:"domain" gorm:"not null"`
	Difficulty     Difficulty  `json:"difficulty" gorm:"not null"`
	Correct        bool        `json:"correct"`
	ResponseTimeMs float64     `json:"response_time_ms"`
	MistakeTag     MistakeType `json:"mistake_tag,omitempty"`
	Confidence     string      `json:"confidence,omitempty"`
	Answer         string      `json:"answer,omitempty"`
	Position       int         `json:"position" gorm:"not null"`
	CreatedAt      time.Time   `json:"created_at" gorm:"autoCreateTime"`
}

func (ScreeningResponse) TableName() string {
	return "screening_responses"
}

// Record converts the persisted row back to the engine's in-memory form.
func (r ScreeningResponse) Record() ResponseRecord {
	return ResponseRecord{
		QuestionID:     r.QuestionID,
		Domain:         r.Domain,
		Difficulty:     r.Difficulty,
		Correct:        r.Correct,
		ResponseTimeMs: r.ResponseTimeMs,
		MistakeTag:     r.MistakeTag,
		Confidence:     ConfidenceLevel(r.Confidence),
		Answer:         r.Answer,
	}
}

// QuestionEvent records every question served to a session, including
// ones never answered. Used for audit and the no-repeat guarantee on
// session replay.
type QuestionEvent struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionID  uuid.UUID  `json:"session_id" gorm:"type:uuid;index;not null"`
	QuestionID string     `json:"question_id" gorm:"not null"`
	Domain     Domain     `json:"domain" gorm:"not null"`
	Difficulty Difficulty `json:"difficulty" gorm:"not null"`
	Reused     bool       `json:"reused"`
	ServedAt   time.Time  `json:"served_at" gorm:"autoCreateTime"`
}

func (QuestionEvent) TableName() string {
	return "question_events"
}

// RiskAssessment is the persisted outcome of a completed session.
type RiskAssessment struct {
	ID              uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionID       uuid.UUID       `json:"session_id" gorm:"type:uuid;uniqueIndex;not null"`
	StudentID       string          `json:"student_id" gorm:"index;not null"`
	DyslexiaRisk    float64         `json:"dyslexia_risk"`
	DyscalculiaRisk float64         `json:"dyscalculia_risk"`
	AttentionRisk   float64         `json:"attention_risk"`
	Label           RiskLabel       `json:"label" gorm:"not null"`
	Confidence      ConfidenceLevel `json:"confidence" gorm:"not null"`
	Insights        datatypes.JSON  `json:"insights" gorm:"type:jsonb"`
	Features        datatypes.JSON  `json:"features" gorm:"type:jsonb"`
	UsedModel       bool            `json:"used_model"`
	CreatedAt       time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

func (RiskAssessment) TableName() string {
	return "risk_assessments"
}
