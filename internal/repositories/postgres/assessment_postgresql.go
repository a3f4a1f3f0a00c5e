package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ld-screen/screening-service/internal/models"
	"github.com/ld-screen/screening-service/internal/repositories"
)

type AssessmentPostgreSQL struct {
	db *gorm.DB
}

func NewAssessmentPostgreSQL(db *gorm.DB) repositories.AssessmentRepository {
	return &AssessmentPostgreSQL{db: db}
}

func (a AssessmentPostgreSQL) Create(ctx context.Context, assessment *models.RiskAssessment) error {
	return a.db.WithContext(ctx).Create(assessment).Error
}

func (a AssessmentPostgreSQL) GetBySession(ctx context.Context, sessionID uuid.UUID) (*models.RiskAssessment, error) {
	var assessment models.RiskAssessment
	if err := a.db.WithContext(ctx).
		First(&assessment, "session_id = ?", sessionID).Error; err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (a AssessmentPostgreSQL) GetByStudent(ctx context.Context, studentID string) ([]*models.RiskAssessment, error) {
	var assessments []*models.RiskAssessment
	if err := a.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

// Store bundles the postgres repositories behind the Repository interface.
type Store struct {
	sessions       repositories.SessionRepository
	responses      repositories.ResponseRepository
	questionEvents repositories.QuestionEventRepository
	assessments    repositories.AssessmentRepository
}

func NewStore(db *gorm.DB) repositories.Repository {
	return &Store{
		sessions:       NewSessionPostgreSQL(db),
		responses:      NewResponsePostgreSQL(db),
		questionEvents: NewQuestionEventPostgreSQL(db),
		assessments:    NewAssessmentPostgreSQL(db),
	}
}

func (s *Store) Sessions() repositories.SessionRepository { return s.sessions }

func (s *Store) Responses() repositories.ResponseRepository { return s.responses }

func (s *Store) QuestionEvents() repositories.QuestionEventRepository { return s.questionEvents }

func (s *Store) Assessments() repositories.AssessmentRepository { return s.assessments }
