package services

import (
	"context"
	"log/slog"
	"os"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ld-screen/screening-service/internal/cache"
	"github.com/ld-screen/screening-service/internal/engine"
	"github.com/ld-screen/screening-service/internal/events"
	"github.com/ld-screen/screening-service/internal/models"
	"github.com/ld-screen/screening-service/internal/repositories"
	"github.com/ld-screen/screening-service/internal/validator"
)

// ===== IN-MEMORY STORE =====

// memStore is an in-memory Repository used for service tests. The flow
// tests are stateful, so a recording store works better than per-call
// expectation mocks.
type memStore struct {
	sessions    map[uuid.UUID]*models.ScreeningSession
	responses   map[uuid.UUID][]*models.ScreeningResponse
	qEvents     map[uuid.UUID][]*models.QuestionEvent
	assessments map[uuid.UUID]*models.RiskAssessment
}

func newMemStore() *memStore {
	return &memStore{
		sessions:    make(map[uuid.UUID]*models.ScreeningSession),
		responses:   make(map[uuid.UUID][]*models.ScreeningResponse),
		qEvents:     make(map[uuid.UUID][]*models.QuestionEvent),
		assessments: make(map[uuid.UUID]*models.RiskAssessment),
	}
}

func (s *memStore) Sessions() repositories.SessionRepository { return (*memSessions)(s) }

func (s *memStore) Responses() repositories.ResponseRepository { return (*memResponses)(s) }

func (s *memStore) QuestionEvents() repositories.QuestionEventRepository {
	return (*memQuestionEvents)(s)
}

func (s *memStore) Assessments() repositories.AssessmentRepository { return (*memAssessments)(s) }

type memSessions memStore

func (m *memSessions) Create(_ context.Context, session *models.ScreeningSession) error {
	copied := *session
	m.sessions[session.ID] = &copied
	return nil
}

func (m *memSessions) GetByID(_ context.Context, id uuid.UUID) (*models.ScreeningSession, error) {
	session, ok := m.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *session
	return &copied, nil
}

func (m *memSessions) GetByIDWithResponses(ctx context.Context, id uuid.UUID) (*models.ScreeningSession, error) {
	session, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rows := append([]*models.ScreeningResponse(nil), m.responses[id]...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })
	session.Responses = make([]models.ScreeningResponse, 0, len(rows))
	for _, row := range rows {
		session.Responses = append(session.Responses, *row)
	}
	return session, nil
}

func (m *memSessions) Update(_ context.Context, session *models.ScreeningSession) error {
	if _, ok := m.sessions[session.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *session
	m.sessions[session.ID] = &copied
	return nil
}

func (m *memSessions) List(_ context.Context, filters repositories.SessionFilters) ([]*models.ScreeningSession, int64, error) {
	out := make([]*models.ScreeningSession, 0, len(m.sessions))
	for _, session := range m.sessions {
		if filters.Status != nil && session.Status != *filters.Status {
			continue
		}
		if filters.StudentID != nil && session.StudentID != *filters.StudentID {
			continue
		}
		if filters.DateFrom != nil && session.StartedAt.Before(*filters.DateFrom) {
			continue
		}
		if filters.DateTo != nil && session.StartedAt.After(*filters.DateTo) {
			continue
		}
		out = append(out, session)
	}
	sort.Slice(out, func(i, j int) bool {
		if filters.SortOrder == "asc" {
			return out[i].StartedAt.Before(out[j].StartedAt)
		}
		return out[i].StartedAt.After(out[j].StartedAt)
	})

	total := int64(len(out))
	if filters.Offset > 0 {
		if filters.Offset >= len(out) {
			out = nil
		} else {
			out = out[filters.Offset:]
		}
	}
	if filters.Limit > 0 && len(out) > filters.Limit {
		out = out[:filters.Limit]
	}
	return out, total, nil
}

func (m *memSessions) GetByStudent(ctx context.Context, studentID string, filters repositories.SessionFilters) ([]*models.ScreeningSession, int64, error) {
	filters.StudentID = &studentID
	return m.List(ctx, filters)
}

type memResponses memStore

func (m *memResponses) Create(_ context.Context, response *models.ScreeningResponse) error {
	copied := *response
	m.responses[response.SessionID] = append(m.responses[response.SessionID], &copied)
	return nil
}

func (m *memResponses) GetBySession(_ context.Context, sessionID uuid.UUID) ([]*models.ScreeningResponse, error) {
	return append([]*models.ScreeningResponse(nil), m.responses[sessionID]...), nil
}

func (m *memResponses) CountBySession(_ context.Context, sessionID uuid.UUID) (int64, error) {
	return int64(len(m.responses[sessionID])), nil
}

type memQuestionEvents memStore

func (m *memQuestionEvents) Create(_ context.Context, event *models.QuestionEvent) error {
	copied := *event
	m.qEvents[event.SessionID] = append(m.qEvents[event.SessionID], &copied)
	return nil
}

func (m *memQuestionEvents) GetBySession(_ context.Context, sessionID uuid.UUID) ([]*models.QuestionEvent, error) {
	return append([]*models.QuestionEvent(nil), m.qEvents[sessionID]...), nil
}

type memAssessments memStore

func (m *memAssessments) Create(_ context.Context, assessment *models.RiskAssessment) error {
	copied := *assessment
	m.assessments[assessment.SessionID] = &copied
	return nil
}

func (m *memAssessments) GetBySession(_ context.Context, sessionID uuid.UUID) (*models.RiskAssessment, error) {
	assessment, ok := m.assessments[sessionID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *assessment
	return &copied, nil
}

func (m *memAssessments) GetByStudent(_ context.Context, studentID string) ([]*models.RiskAssessment, error) {
	var out []*models.RiskAssessment
	for _, assessment := range m.assessments {
		if assessment.StudentID == studentID {
			out = append(out, assessment)
		}
	}
	return out, nil
}

// MockAssessmentRepository is used for error-path tests where the
// in-memory store cannot fail.
type MockAssessmentRepository struct {
	mock.Mock
}

func (m *MockAssessmentRepository) Create(ctx context.Context, assessment *models.RiskAssessment) error {
	args := m.Called(ctx, assessment)
	return args.Error(0)
}

func (m *MockAssessmentRepository) GetBySession(ctx context.Context, sessionID uuid.UUID) (*models.RiskAssessment, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RiskAssessment), args.Error(1)
}

func (m *MockAssessmentRepository) GetByStudent(ctx context.Context, studentID string) ([]*models.RiskAssessment, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.RiskAssessment), args.Error(1)
}

// failingStore swaps the assessment repo for a mock.
type failingStore struct {
	*memStore
	assessments *MockAssessmentRepository
}

func (s *failingStore) Assessments() repositories.AssessmentRepository { return s.assessments }

// ===== FIXTURE =====

type serviceFixture struct {
	service   ScreeningService
	store     *memStore
	publisher *events.MockEventPublisher
	pool      *engine.Pool
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	pool, err := engine.NewPool(engine.DefaultTemplates())
	require.NoError(t, err)

	store := newMemStore()
	publisher := events.NewMockEventPublisher(logger)
	service := NewScreeningService(
		store,
		cache.NoopSessionCache{},
		engine.New(pool, nil, logger),
		publisher,
		validator.New(),
		logger,
	)

	return &serviceFixture{service: service, store: store, publisher: publisher, pool: pool}
}

func (f *serviceFixture) startSession(t *testing.T, budget int) *models.ScreeningSession {
	t.Helper()
	result, err := f.service.Start(context.Background(), &StartScreeningRequest{
		StudentID: "student-1",
		Budget:    budget,
		Seed:      42,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Question)
	return result.Session
}

// answerNext pulls the next question and answers it, correctly or not.
func (f *serviceFixture) answerNext(t *testing.T, sessionID uuid.UUID, correct bool) *AnswerResult {
	t.Helper()
	ctx := context.Background()

	next, err := f.service.NextQuestion(ctx, sessionID)
	require.NoError(t, err)
	require.False(t, next.Completed)
	require.NotNil(t, next.Question)

	tpl, ok := f.pool.Template(next.Question.QuestionID)
	require.True(t, ok)

	answer := tpl.CorrectAnswer
	if !correct {
		answer = "not " + tpl.CorrectAnswer
	}
	result, err := f.service.SubmitAnswer(ctx, sessionID, &SubmitAnswerRequest{
		QuestionID:     tpl.ID,
		Answer:         answer,
		ResponseTimeMs: 1000,
	})
	require.NoError(t, err)
	return result
}

// ===== TESTS =====

func TestScreeningService_Start(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	t.Run("applies defaults", func(t *testing.T) {
		result, err := f.service.Start(ctx, &StartScreeningRequest{StudentID: "student-1"})
		require.NoError(t, err)
		assert.Equal(t, models.SessionActive, result.Session.Status)
		assert.Equal(t, engine.DefaultBudget, result.Session.QuestionBudget)
		assert.Equal(t, "8-10", result.Session.AgeGroup)
		assert.NotZero(t, result.Session.Seed)

		// The first question is served immediately and is always an easy
		// reading item.
		require.NotNil(t, result.Question)
		assert.Equal(t, models.DomainReading, result.Question.Domain)
		assert.Equal(t, models.DifficultyEasy, result.Question.Difficulty)
		assert.Equal(t, 1, result.Question.Number)
	})

	t.Run("publishes session started event", func(t *testing.T) {
		f.publisher.ClearEvents()
		session := f.startSession(t, 10)

		published := f.publisher.GetPublishedEvents()
		require.Len(t, published, 1)
		assert.Equal(t, events.EventSessionStarted, published[0].Type)

		data, ok := published[0].Data.(events.SessionStartedEvent)
		require.True(t, ok)
		assert.Equal(t, session.ID, data.SessionID)
	})

	t.Run("rejects missing student id", func(t *testing.T) {
		_, err := f.service.Start(ctx, &StartScreeningRequest{})
		assert.Error(t, err)
	})

	t.Run("rejects out of range budget", func(t *testing.T) {
		_, err := f.service.Start(ctx, &StartScreeningRequest{StudentID: "student-1", Budget: 3})
		assert.Error(t, err)
	})

	t.Run("rejects unknown age group", func(t *testing.T) {
		_, err := f.service.Start(ctx, &StartScreeningRequest{StudentID: "student-1", AgeGroup: "toddler"})
		assert.Error(t, err)
	})
}

func TestScreeningService_QuestionFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("serves the full budget then completes", func(t *testing.T) {
		f := newServiceFixture(t)
		session := f.startSession(t, 6)

		for i := 1; i <= 6; i++ {
			result := f.answerNext(t, session.ID, true)
			assert.True(t, result.Correct)
			assert.Equal(t, i, result.Position)
			assert.Equal(t, 6-i, result.Remaining)
			assert.Empty(t, result.MistakeTag)
		}

		next, err := f.service.NextQuestion(ctx, session.ID)
		require.NoError(t, err)
		assert.True(t, next.Completed)
		assert.Nil(t, next.Question)
	})

	t.Run("re-serves the pending question", func(t *testing.T) {
		f := newServiceFixture(t)
		session := f.startSession(t, 6)

		first, err := f.service.NextQuestion(ctx, session.ID)
		require.NoError(t, err)
		second, err := f.service.NextQuestion(ctx, session.ID)
		require.NoError(t, err)

		assert.Equal(t, first.Question.QuestionID, second.Question.QuestionID)
		assert.Equal(t, first.Question.Number, second.Question.Number)
	})

	t.Run("tags incorrect answers", func(t *testing.T) {
		f := newServiceFixture(t)
		session := f.startSession(t, 6)

		result := f.answerNext(t, session.ID, false)
		assert.False(t, result.Correct)
		assert.NotEmpty(t, result.MistakeTag)
	})

	t.Run("rejects an answer without a pending question", func(t *testing.T) {
		f := newServiceFixture(t)
		session := f.startSession(t, 6)

		// Answer the opening question, then submit again without asking
		// for another.
		f.answerNext(t, session.ID, true)
		_, err := f.service.SubmitAnswer(ctx, session.ID, &SubmitAnswerRequest{
			QuestionID: "reading-easy-01",
			Answer:     "b",
		})
		assert.ErrorIs(t, err, ErrNoPendingQuestion)
	})

	t.Run("rejects an answer to the wrong question", func(t *testing.T) {
		f := newServiceFixture(t)
		session := f.startSession(t, 6)

		next, err := f.service.NextQuestion(ctx, session.ID)
		require.NoError(t, err)

		_, err = f.service.SubmitAnswer(ctx, session.ID, &SubmitAnswerRequest{
			QuestionID: "logic-hard-01",
			Answer:     "b",
		})
		assert.ErrorIs(t, err, ErrQuestionMismatch)

		// The pending question is still answerable.
		tpl, _ := f.pool.Template(next.Question.QuestionID)
		_, err = f.service.SubmitAnswer(ctx, session.ID, &SubmitAnswerRequest{
			QuestionID: tpl.ID,
			Answer:     tpl.CorrectAnswer,
		})
		assert.NoError(t, err)
	})

	t.Run("unknown session", func(t *testing.T) {
		f := newServiceFixture(t)
		_, err := f.service.NextQuestion(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestScreeningService_Finalize(t *testing.T) {
	ctx := context.Background()

	t.Run("clean run scores low risk", func(t *testing.T) {
		f := newServiceFixture(t)
		session := f.startSession(t, 6)
		for i := 0; i < 6; i++ {
			f.answerNext(t, session.ID, true)
		}

		assessment, err := f.service.Finalize(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, models.LabelLowRisk, assessment.Label)
		assert.False(t, assessment.UsedModel)

		summary, err := f.service.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, models.SessionCompleted, summary.Session.Status)
		require.NotNil(t, summary.Session.CompletedAt)
		assert.Equal(t, 6, summary.Answered)
		assert.Equal(t, 0, summary.Remaining)
		assert.Equal(t, 1.0, summary.DomainAccuracy[models.DomainReading])
	})

	t.Run("finalize is idempotent", func(t *testing.T) {
		f := newServiceFixture(t)
		session := f.startSession(t, 6)
		for i := 0; i < 6; i++ {
			f.answerNext(t, session.ID, true)
		}

		first, err := f.service.Finalize(ctx, session.ID)
		require.NoError(t, err)

		f.publisher.ClearEvents()
		second, err := f.service.Finalize(ctx, session.ID)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Empty(t, f.publisher.GetPublishedEvents())
	})

	t.Run("struggling run flags risk", func(t *testing.T) {
		f := newServiceFixture(t)
		session := f.startSession(t, 6)
		for i := 0; i < 6; i++ {
			f.answerNext(t, session.ID, false)
		}

		f.publisher.ClearEvents()
		assessment, err := f.service.Finalize(ctx, session.ID)
		require.NoError(t, err)
		assert.NotEqual(t, models.LabelLowRisk, assessment.Label)

		published := f.publisher.GetPublishedEvents()
		require.Len(t, published, 2)
		assert.Equal(t, events.EventSessionCompleted, published[0].Type)
		assert.Equal(t, events.EventRiskFlagged, published[1].Type)
	})

	t.Run("completed sessions reject further answers", func(t *testing.T) {
		f := newServiceFixture(t)
		session := f.startSession(t, 6)
		for i := 0; i < 6; i++ {
			f.answerNext(t, session.ID, true)
		}
		_, err := f.service.Finalize(ctx, session.ID)
		require.NoError(t, err)

		_, err = f.service.NextQuestion(ctx, session.ID)
		assert.ErrorIs(t, err, ErrSessionCompleted)
	})

	t.Run("assessment lookup", func(t *testing.T) {
		f := newServiceFixture(t)
		session := f.startSession(t, 6)

		_, err := f.service.Assessment(ctx, session.ID)
		assert.ErrorIs(t, err, ErrAssessmentNotFound)

		for i := 0; i < 6; i++ {
			f.answerNext(t, session.ID, true)
		}
		finalized, err := f.service.Finalize(ctx, session.ID)
		require.NoError(t, err)

		got, err := f.service.Assessment(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, finalized.ID, got.ID)
	})

	t.Run("partial session still finalizes", func(t *testing.T) {
		f := newServiceFixture(t)
		session := f.startSession(t, 10)
		for i := 0; i < 3; i++ {
			f.answerNext(t, session.ID, true)
		}

		assessment, err := f.service.Finalize(ctx, session.ID)
		require.NoError(t, err)
		assert.NotNil(t, assessment)
	})
}

func TestScreeningService_Abandon(t *testing.T) {
	ctx := context.Background()

	t.Run("closes the session without scoring", func(t *testing.T) {
		f := newServiceFixture(t)
		session := f.startSession(t, 6)
		f.answerNext(t, session.ID, true)

		f.publisher.ClearEvents()
		abandoned, err := f.service.Abandon(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, models.SessionAbandoned, abandoned.Status)
		require.NotNil(t, abandoned.CompletedAt)

		published := f.publisher.GetPublishedEvents()
		require.Len(t, published, 1)
		assert.Equal(t, events.EventSessionAbandoned, published[0].Type)

		data, ok := published[0].Data.(events.SessionAbandonedEvent)
		require.True(t, ok)
		assert.Equal(t, session.ID, data.SessionID)
		assert.Equal(t, int64(1), data.QuestionsAnswered)
	})

	t.Run("abandoned sessions reject every lifecycle operation", func(t *testing.T) {
		f := newServiceFixture(t)
		session := f.startSession(t, 6)
		_, err := f.service.Abandon(ctx, session.ID)
		require.NoError(t, err)

		_, err = f.service.NextQuestion(ctx, session.ID)
		assert.ErrorIs(t, err, ErrSessionNotActive)

		_, err = f.service.Finalize(ctx, session.ID)
		assert.ErrorIs(t, err, ErrSessionNotActive)

		_, err = f.service.Abandon(ctx, session.ID)
		assert.ErrorIs(t, err, ErrSessionNotActive)
	})

	t.Run("completed sessions cannot be abandoned", func(t *testing.T) {
		f := newServiceFixture(t)
		session := f.startSession(t, 6)
		for i := 0; i < 6; i++ {
			f.answerNext(t, session.ID, true)
		}
		_, err := f.service.Finalize(ctx, session.ID)
		require.NoError(t, err)

		_, err = f.service.Abandon(ctx, session.ID)
		assert.ErrorIs(t, err, ErrSessionCompleted)
	})

	t.Run("unknown session", func(t *testing.T) {
		f := newServiceFixture(t)
		_, err := f.service.Abandon(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestScreeningService_List(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	first := f.startSession(t, 6)
	second, err := f.service.Start(ctx, &StartScreeningRequest{StudentID: "student-2", Seed: 7})
	require.NoError(t, err)
	_, err = f.service.Abandon(ctx, second.Session.ID)
	require.NoError(t, err)

	t.Run("lists all sessions", func(t *testing.T) {
		list, err := f.service.List(ctx, repositories.SessionFilters{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), list.Total)
		assert.Len(t, list.Sessions, 2)
	})

	t.Run("filters by status", func(t *testing.T) {
		status := models.SessionActive
		list, err := f.service.List(ctx, repositories.SessionFilters{Status: &status})
		require.NoError(t, err)
		require.Len(t, list.Sessions, 1)
		assert.Equal(t, first.ID, list.Sessions[0].ID)
	})

	t.Run("pages results", func(t *testing.T) {
		list, err := f.service.List(ctx, repositories.SessionFilters{Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), list.Total)
		assert.Len(t, list.Sessions, 1)
	})

	t.Run("lists a student's sessions", func(t *testing.T) {
		list, err := f.service.StudentSessions(ctx, "student-2", repositories.SessionFilters{})
		require.NoError(t, err)
		require.Len(t, list.Sessions, 1)
		assert.Equal(t, second.Session.ID, list.Sessions[0].ID)
		assert.Equal(t, models.SessionAbandoned, list.Sessions[0].Status)
	})
}

func TestScreeningService_History(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	session := f.startSession(t, 6)
	for i := 0; i < 6; i++ {
		f.answerNext(t, session.ID, true)
	}
	_, err := f.service.Finalize(ctx, session.ID)
	require.NoError(t, err)

	history, err := f.service.History(ctx, "student-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, session.ID, history[0].SessionID)

	empty, err := f.service.History(ctx, "student-2")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestScreeningService_RepositoryFailures(t *testing.T) {
	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	pool, err := engine.NewPool(engine.DefaultTemplates())
	require.NoError(t, err)

	assessments := new(MockAssessmentRepository)
	store := &failingStore{memStore: newMemStore(), assessments: assessments}
	service := NewScreeningService(
		store,
		cache.NoopSessionCache{},
		engine.New(pool, nil, logger),
		events.NewMockEventPublisher(logger),
		validator.New(),
		logger,
	)

	t.Run("history propagates repository errors", func(t *testing.T) {
		assessments.On("GetByStudent", ctx, "student-1").Return(nil, assert.AnError).Once()

		_, err := service.History(ctx, "student-1")
		assert.ErrorIs(t, err, assert.AnError)
		assessments.AssertExpectations(t)
	})

	t.Run("finalize fails when the assessment lookup fails", func(t *testing.T) {
		sessionID := uuid.New()
		assessments.On("GetBySession", ctx, sessionID).Return(nil, assert.AnError).Once()

		_, err := service.Finalize(ctx, sessionID)
		assert.ErrorIs(t, err, assert.AnError)
		assessments.AssertExpectations(t)
	})
}
