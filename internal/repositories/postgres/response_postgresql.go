package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ld-screen/screening-service/internal/models"
	"github.com/ld-screen/screening-service/internal/repositories"
)

type ResponsePostgreSQL struct {
	db *gorm.DB
}

func NewResponsePostgreSQL(db *gorm.DB) repositories.ResponseRepository {
	return &ResponsePostgreSQL{db: db}
}

func (r ResponsePostgreSQL) Create(ctx context.Context, response *models.ScreeningResponse) error {
	return r.db.WithContext(ctx).Create(response).Error
}

func (r ResponsePostgreSQL) GetBySession(ctx context.Context, sessionID uuid.UUID) ([]*models.ScreeningResponse, error) {
	var responses []*models.ScreeningResponse
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("position ASC").
		Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}

func (r ResponsePostgreSQL) CountBySession(ctx context.Context, sessionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ScreeningResponse{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	return count, err
}

type QuestionEventPostgreSQL struct {
	db *gorm.DB
}

func NewQuestionEventPostgreSQL(db *gorm.DB) repositories.QuestionEventRepository {
	return &QuestionEventPostgreSQL{db: db}
}

func (q QuestionEventPostgreSQL) Create(ctx context.Context, event *models.QuestionEvent) error {
	return q.db.WithContext(ctx).Create(event).Error
}

func (q QuestionEventPostgreSQL) GetBySession(ctx context.Context, sessionID uuid.UUID) ([]*models.QuestionEvent, error) {
	var events []*models.QuestionEvent
	if err := q.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("served_at ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
