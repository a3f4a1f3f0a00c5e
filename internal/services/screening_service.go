package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ld-screen/screening-service/internal/cache"
	"github.com/ld-screen/screening-service/internal/engine"
	"github.com/ld-screen/screening-service/internal/events"
	"github.com/ld-screen/screening-service/internal/models"
	"github.com/ld-screen/screening-service/internal/repositories"
	"github.com/ld-screen/screening-service/internal/validator"
)

// ===== REQUEST / RESPONSE TYPES =====

type StartScreeningRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	AgeGroup  string `json:"age_group,omitempty" validate:"omitempty,oneof=6-8 8-10 9-11 12-14 14+"`
	Budget    int    `json:"budget,omitempty" validate:"omitempty,question_budget"`
	Seed      int64  `json:"seed,omitempty"`
}

type SubmitAnswerRequest struct {
	QuestionID     string  `json:"question_id" validate:"required"`
	Answer         string  `json:"answer" validate:"required"`
	ResponseTimeMs float64 `json:"response_time_ms" validate:"gte=0"`
	Confidence     string  `json:"confidence,omitempty" validate:"omitempty,confidence_level"`
	MistakeTag     string  `json:"mistake_tag,omitempty" validate:"omitempty,mistake_type"`
}

// QuestionView is the presentation form of a served template. The correct
// answer never leaves the service layer.
type QuestionView struct {
	QuestionID string            `json:"question_id"`
	Domain     models.Domain     `json:"domain"`
	Difficulty models.Difficulty `json:"difficulty"`
	Prompt     string            `json:"prompt"`
	Options    []string          `json:"options"`
	Number     int               `json:"number"`
	Total      int               `json:"total"`
	Reused     bool              `json:"reused,omitempty"`
}

// NextQuestionResult is either a question or the completion signal.
type NextQuestionResult struct {
	Completed bool          `json:"completed"`
	Question  *QuestionView `json:"question,omitempty"`
}

// StartScreeningResult pairs the new session with its first question so a
// client can begin without a second round trip.
type StartScreeningResult struct {
	Session  *models.ScreeningSession `json:"session"`
	Question *QuestionView            `json:"question"`
}

// SessionSummary is the read view of a session: progress so far and
// per-domain accuracy over the answered history.
type SessionSummary struct {
	Session        *models.ScreeningSession  `json:"session"`
	Answered       int                       `json:"answered"`
	Budget         int                       `json:"budget"`
	Remaining      int                       `json:"remaining"`
	DomainAccuracy map[models.Domain]float64 `json:"domain_accuracy"`
}

// ScreeningList is a filtered page of sessions plus the unpaged total.
type ScreeningList struct {
	Sessions []*models.ScreeningSession `json:"sessions"`
	Total    int64                      `json:"total"`
}

type AnswerResult struct {
	Correct    bool               `json:"correct"`
	MistakeTag models.MistakeType `json:"mistake_tag,omitempty"`
	Position   int                `json:"position"`
	Remaining  int                `json:"remaining"`
}

// ===== SERVICE =====

type ScreeningService interface {
	Start(ctx context.Context, req *StartScreeningRequest) (*StartScreeningResult, error)
	NextQuestion(ctx context.Context, sessionID uuid.UUID) (*NextQuestionResult, error)
	SubmitAnswer(ctx context.Context, sessionID uuid.UUID, req *SubmitAnswerRequest) (*AnswerResult, error)
	Finalize(ctx context.Context, sessionID uuid.UUID) (*models.RiskAssessment, error)
	Abandon(ctx context.Context, sessionID uuid.UUID) (*models.ScreeningSession, error)
	Assessment(ctx context.Context, sessionID uuid.UUID) (*models.RiskAssessment, error)
	Get(ctx context.Context, sessionID uuid.UUID) (*SessionSummary, error)
	List(ctx context.Context, filters repositories.SessionFilters) (*ScreeningList, error)
	StudentSessions(ctx context.Context, studentID string, filters repositories.SessionFilters) (*ScreeningList, error)
	History(ctx context.Context, studentID string) ([]*models.RiskAssessment, error)
}

type screeningService struct {
	repo      repositories.Repository
	cache     cache.SessionCache
	engine    *engine.Engine
	publisher events.EventPublisher
	validator *validator.Validator
	logger    *slog.Logger
}

func NewScreeningService(
	repo repositories.Repository,
	sessionCache cache.SessionCache,
	eng *engine.Engine,
	publisher events.EventPublisher,
	v *validator.Validator,
	logger *slog.Logger,
) ScreeningService {
	return &screeningService{
		repo:      repo,
		cache:     sessionCache,
		engine:    eng,
		publisher: publisher,
		validator: v,
		logger:    logger,
	}
}

// ===== CORE SCREENING OPERATIONS =====

func (s *screeningService) Start(ctx context.Context, req *StartScreeningRequest) (*StartScreeningResult, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	budget := req.Budget
	if budget == 0 {
		budget = engine.DefaultBudget
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ageGroup := req.AgeGroup
	if ageGroup == "" {
		ageGroup = "8-10"
	}

	session := &models.ScreeningSession{
		ID:             uuid.New(),
		StudentID:      req.StudentID,
		AgeGroup:       ageGroup,
		Status:         models.SessionActive,
		QuestionBudget: budget,
		Seed:           seed,
		StartedAt:      time.Now().UTC(),
	}
	if err := s.repo.Sessions().Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.cacheSession(ctx, session, nil)
	s.publish(ctx, events.NewSessionStartedEvent(session))

	first, err := s.NextQuestion(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to serve first question: %w", err)
	}

	s.logger.Info("Screening session started",
		"session_id", session.ID,
		"student_id", session.StudentID,
		"budget", budget)
	return &StartScreeningResult{Session: session, Question: first.Question}, nil
}

func (s *screeningService) NextQuestion(ctx context.Context, sessionID uuid.UUID) (*NextQuestionResult, error) {
	session, qEvents, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := activeOnly(session); err != nil {
		return nil, err
	}

	// Re-serve the pending question rather than burning a new slot when
	// the previous one was never answered.
	if len(qEvents) > len(session.Responses) {
		pending := qEvents[len(qEvents)-1]
		tpl, ok := s.engine.Pool().Template(pending.QuestionID)
		if !ok {
			return nil, ErrUnknownQuestion
		}
		return &NextQuestionResult{Question: s.questionView(tpl, pending.Reused, len(qEvents), session.QuestionBudget)}, nil
	}

	state, err := s.replayState(session, qEvents)
	if err != nil {
		return nil, err
	}

	served, err := s.engine.NextQuestion(state)
	if engine.IsSessionComplete(err) {
		return &NextQuestionResult{Completed: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select question: %w", err)
	}

	event := &models.QuestionEvent{
		ID:         uuid.New(),
		SessionID:  session.ID,
		QuestionID: served.Template.ID,
		Domain:     served.Template.Domain,
		Difficulty: served.Template.Difficulty,
		Reused:     served.Reused,
		ServedAt:   time.Now().UTC(),
	}
	if err := s.repo.QuestionEvents().Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to record question event: %w", err)
	}
	s.cacheSession(ctx, session, append(qEvents, *event))

	return &NextQuestionResult{Question: s.questionView(served.Template, served.Reused, len(qEvents)+1, session.QuestionBudget)}, nil
}

func (s *screeningService) SubmitAnswer(ctx context.Context, sessionID uuid.UUID, req *SubmitAnswerRequest) (*AnswerResult, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	session, qEvents, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := activeOnly(session); err != nil {
		return nil, err
	}
	if len(qEvents) == len(session.Responses) {
		return nil, ErrNoPendingQuestion
	}

	pending := qEvents[len(qEvents)-1]
	if pending.QuestionID != req.QuestionID {
		return nil, ErrQuestionMismatch
	}
	tpl, ok := s.engine.Pool().Template(req.QuestionID)
	if !ok {
		return nil, ErrUnknownQuestion
	}

	state, err := s.replayState(session, qEvents)
	if err != nil {
		return nil, err
	}

	record := models.ResponseRecord{
		QuestionID:     tpl.ID,
		Domain:         tpl.Domain,
		Difficulty:     tpl.Difficulty,
		Correct:        req.Answer == tpl.CorrectAnswer,
		ResponseTimeMs: req.ResponseTimeMs,
		MistakeTag:     models.MistakeType(req.MistakeTag),
		Confidence:     models.ConfidenceLevel(req.Confidence),
		Answer:         req.Answer,
	}
	if err := s.engine.RecordResponse(state, record); err != nil {
		return nil, fmt.Errorf("failed to record response: %w", err)
	}

	// The engine resolved the mistake tag; persist its version.
	recorded := state.Responses()[len(state.Responses())-1]
	position := len(session.Responses) + 1
	row := &models.ScreeningResponse{
		ID:             uuid.New(),
		SessionID:      session.ID,
		QuestionID:     recorded.QuestionID,
		Domain:         recorded.Domain,
		Difficulty:     recorded.Difficulty,
		Correct:        recorded.Correct,
		ResponseTimeMs: recorded.ResponseTimeMs,
		MistakeTag:     recorded.MistakeTag,
		Confidence:     string(recorded.Confidence),
		Answer:         recorded.Answer,
		Position:       position,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.repo.Responses().Create(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to store response: %w", err)
	}

	session.Responses = append(session.Responses, *row)
	s.cacheSession(ctx, session, qEvents)

	return &AnswerResult{
		Correct:    recorded.Correct,
		MistakeTag: recorded.MistakeTag,
		Position:   position,
		Remaining:  session.QuestionBudget - position,
	}, nil
}

func (s *screeningService) Finalize(ctx context.Context, sessionID uuid.UUID) (*models.RiskAssessment, error) {
	// Finalize is idempotent: a stored assessment is returned as-is.
	if existing, err := s.repo.Assessments().GetBySession(ctx, sessionID); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up assessment: %w", err)
	}

	session, _, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.SessionAbandoned {
		return nil, ErrSessionNotActive
	}

	history := make([]models.ResponseRecord, 0, len(session.Responses))
	for _, row := range session.Responses {
		history = append(history, row.Record())
	}
	result := s.engine.Score(ctx, history)

	insights, err := json.Marshal(result.Insights)
	if err != nil {
		return nil, fmt.Errorf("failed to encode insights: %w", err)
	}
	features, err := json.Marshal(result.Features)
	if err != nil {
		return nil, fmt.Errorf("failed to encode features: %w", err)
	}

	assessment := &models.RiskAssessment{
		ID:              uuid.New(),
		SessionID:       session.ID,
		StudentID:       session.StudentID,
		DyslexiaRisk:    result.Scores.Dyslexia,
		DyscalculiaRisk: result.Scores.Dyscalculia,
		AttentionRisk:   result.Scores.Attention,
		Label:           result.Label,
		Confidence:      result.Confidence,
		Insights:        insights,
		Features:        features,
		UsedModel:       result.UsedModel,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.Assessments().Create(ctx, assessment); err != nil {
		return nil, fmt.Errorf("failed to store assessment: %w", err)
	}

	now := time.Now().UTC()
	session.Status = models.SessionCompleted
	session.CompletedAt = &now
	if err := s.repo.Sessions().Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}

	if err := s.cache.Invalidate(ctx, session.ID); err != nil {
		s.logger.Warn("Failed to invalidate session cache", "session_id", session.ID, "error", err)
	}

	s.publish(ctx, events.NewSessionCompletedEvent(session, assessment))
	if assessment.Label != models.LabelLowRisk {
		s.publish(ctx, events.NewRiskFlaggedEvent(assessment))
	}

	s.logger.Info("Screening session finalized",
		"session_id", session.ID,
		"label", assessment.Label,
		"confidence", assessment.Confidence,
		"used_model", assessment.UsedModel)
	return assessment, nil
}

// Abandon closes an active session without scoring it. An abandoned
// session cannot be resumed or finalized later.
func (s *screeningService) Abandon(ctx context.Context, sessionID uuid.UUID) (*models.ScreeningSession, error) {
	session, err := s.repo.Sessions().GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if err := activeOnly(session); err != nil {
		return nil, err
	}

	answered, err := s.repo.Responses().CountBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count responses: %w", err)
	}

	now := time.Now().UTC()
	session.Status = models.SessionAbandoned
	session.CompletedAt = &now
	if err := s.repo.Sessions().Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to abandon session: %w", err)
	}

	if err := s.cache.Invalidate(ctx, session.ID); err != nil {
		s.logger.Warn("Failed to invalidate session cache", "session_id", session.ID, "error", err)
	}

	s.publish(ctx, events.NewSessionAbandonedEvent(session, answered))

	s.logger.Info("Screening session abandoned",
		"session_id", session.ID,
		"student_id", session.StudentID,
		"answered", answered)
	return session, nil
}

func (s *screeningService) Get(ctx context.Context, sessionID uuid.UUID) (*SessionSummary, error) {
	session, _, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	answeredBy := make(map[models.Domain]int)
	correctBy := make(map[models.Domain]int)
	for _, row := range session.Responses {
		answeredBy[row.Domain]++
		if row.Correct {
			correctBy[row.Domain]++
		}
	}
	accuracy := make(map[models.Domain]float64, len(models.DomainOrder))
	for _, domain := range models.DomainOrder {
		if answeredBy[domain] > 0 {
			accuracy[domain] = float64(correctBy[domain]) / float64(answeredBy[domain])
		} else {
			accuracy[domain] = 0.0
		}
	}

	return &SessionSummary{
		Session:        session,
		Answered:       len(session.Responses),
		Budget:         session.QuestionBudget,
		Remaining:      session.QuestionBudget - len(session.Responses),
		DomainAccuracy: accuracy,
	}, nil
}

func (s *screeningService) Assessment(ctx context.Context, sessionID uuid.UUID) (*models.RiskAssessment, error) {
	assessment, err := s.repo.Assessments().GetBySession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("failed to load assessment: %w", err)
	}
	return assessment, nil
}

func (s *screeningService) List(ctx context.Context, filters repositories.SessionFilters) (*ScreeningList, error) {
	sessions, total, err := s.repo.Sessions().List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return &ScreeningList{Sessions: sessions, Total: total}, nil
}

func (s *screeningService) StudentSessions(ctx context.Context, studentID string, filters repositories.SessionFilters) (*ScreeningList, error) {
	sessions, total, err := s.repo.Sessions().GetByStudent(ctx, studentID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return &ScreeningList{Sessions: sessions, Total: total}, nil
}

func (s *screeningService) History(ctx context.Context, studentID string) ([]*models.RiskAssessment, error) {
	assessments, err := s.repo.Assessments().GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return assessments, nil
}

// activeOnly gates the answering operations on session status.
func activeOnly(session *models.ScreeningSession) error {
	switch session.Status {
	case models.SessionActive:
		return nil
	case models.SessionCompleted:
		return ErrSessionCompleted
	}
	return ErrSessionNotActive
}

// ===== INTERNAL HELPERS =====

// loadSession fetches the session envelope, preferring the cache and
// falling back to a database read.
func (s *screeningService) loadSession(ctx context.Context, sessionID uuid.UUID) (*models.ScreeningSession, []models.QuestionEvent, error) {
	if cached, err := s.cache.Get(ctx, sessionID); err == nil && cached != nil {
		return &cached.Session, cached.Events, nil
	} else if err != nil {
		s.logger.Warn("Session cache read failed", "session_id", sessionID, "error", err)
	}

	session, err := s.repo.Sessions().GetByIDWithResponses(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, fmt.Errorf("failed to load session: %w", err)
	}

	rows, err := s.repo.QuestionEvents().GetBySession(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load question events: %w", err)
	}
	qEvents := make([]models.QuestionEvent, 0, len(rows))
	for _, row := range rows {
		qEvents = append(qEvents, *row)
	}

	s.cacheSession(ctx, session, qEvents)
	return session, qEvents, nil
}

// replayState rebuilds engine state by replaying the served questions and
// recorded answers. Selection is deterministic under the session seed, so
// the replay reproduces the live state exactly.
func (s *screeningService) replayState(session *models.ScreeningSession, qEvents []models.QuestionEvent) (*engine.SessionState, error) {
	state := s.engine.StartSession(session.QuestionBudget, session.Seed)

	ri := 0
	for range qEvents {
		served, err := s.engine.NextQuestion(state)
		if err != nil {
			return nil, fmt.Errorf("session replay failed: %w", err)
		}
		if ri < len(session.Responses) && session.Responses[ri].QuestionID == served.Template.ID {
			if err := s.engine.RecordResponse(state, session.Responses[ri].Record()); err != nil {
				return nil, fmt.Errorf("session replay failed: %w", err)
			}
			ri++
		}
	}
	return state, nil
}

func (s *screeningService) questionView(tpl models.QuestionTemplate, reused bool, number, total int) *QuestionView {
	return &QuestionView{
		QuestionID: tpl.ID,
		Domain:     tpl.Domain,
		Difficulty: tpl.Difficulty,
		Prompt:     tpl.Prompt,
		Options:    tpl.Options,
		Number:     number,
		Total:      total,
		Reused:     reused,
	}
}

func (s *screeningService) cacheSession(ctx context.Context, session *models.ScreeningSession, qEvents []models.QuestionEvent) {
	err := s.cache.Set(ctx, &cache.CachedSession{Session: *session, Events: qEvents})
	if err != nil {
		s.logger.Warn("Failed to cache session", "session_id", session.ID, "error", err)
	}
}

func (s *screeningService) publish(ctx context.Context, event *events.ScreeningEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishScreeningEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish screening event", "event_type", event.Type, "error", err)
	}
}
