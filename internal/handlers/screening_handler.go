package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	govalidator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ld-screen/screening-service/internal/engine"
	apperrors "github.com/ld-screen/screening-service/internal/errors"
	"github.com/ld-screen/screening-service/internal/models"
	"github.com/ld-screen/screening-service/internal/repositories"
	"github.com/ld-screen/screening-service/internal/services"
	"github.com/ld-screen/screening-service/internal/utils"
	"github.com/ld-screen/screening-service/internal/validator"
)

// ScreeningHandler exposes the screening lifecycle over HTTP.
type ScreeningHandler struct {
	BaseHandler
	service   services.ScreeningService
	exporter  services.ExportService
	validator *validator.Validator
}

func NewScreeningHandler(
	service services.ScreeningService,
	exporter services.ExportService,
	v *validator.Validator,
	logger utils.Logger,
) *ScreeningHandler {
	return &ScreeningHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		exporter:    exporter,
		validator:   v,
	}
}

// StartScreening handles POST /api/v1/screenings
func (h *ScreeningHandler) StartScreening(c *gin.Context) {
	var req services.StartScreeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.service.Start(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err, "Failed to start screening")
		return
	}

	h.LogInfo(c, "Screening started",
		"session_id", result.Session.ID,
		"student_id", result.Session.StudentID)
	h.RespondWithSuccess(c, http.StatusCreated, "Screening started", result)
}

// GetNextQuestion handles GET /api/v1/screenings/:id/next
func (h *ScreeningHandler) GetNextQuestion(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	result, err := h.service.NextQuestion(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err, "Failed to get next question")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Next question", result)
}

// SubmitAnswer handles POST /api/v1/screenings/:id/answers
func (h *ScreeningHandler) SubmitAnswer(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req services.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.service.SubmitAnswer(c.Request.Context(), sessionID, &req)
	if err != nil {
		h.handleServiceError(c, err, "Failed to submit answer")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Answer recorded", result)
}

// FinalizeScreening handles POST /api/v1/screenings/:id/finalize
func (h *ScreeningHandler) FinalizeScreening(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	assessment, err := h.service.Finalize(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err, "Failed to finalize screening")
		return
	}

	h.LogInfo(c, "Screening finalized", "session_id", sessionID, "label", assessment.Label)
	h.RespondWithSuccess(c, http.StatusOK, "Screening finalized", assessment)
}

// AbandonScreening handles POST /api/v1/screenings/:id/abandon
func (h *ScreeningHandler) AbandonScreening(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.service.Abandon(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err, "Failed to abandon screening")
		return
	}

	h.LogInfo(c, "Screening abandoned", "session_id", sessionID)
	h.RespondWithSuccess(c, http.StatusOK, "Screening abandoned", session)
}

// ListScreenings handles GET /api/v1/screenings
func (h *ScreeningHandler) ListScreenings(c *gin.Context) {
	filters, ok := h.sessionFilters(c)
	if !ok {
		return
	}
	if studentID := c.Query("student_id"); studentID != "" {
		filters.StudentID = &studentID
	}

	list, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err, "Failed to list screenings")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Screenings", list)
}

// GetStudentScreenings handles GET /api/v1/students/:student_id/screenings
func (h *ScreeningHandler) GetStudentScreenings(c *gin.Context) {
	studentID := c.Param("student_id")
	if studentID == "" {
		h.RespondWithError(c, http.StatusBadRequest, "Student id is required", nil)
		return
	}
	filters, ok := h.sessionFilters(c)
	if !ok {
		return
	}

	list, err := h.service.StudentSessions(c.Request.Context(), studentID, filters)
	if err != nil {
		h.handleServiceError(c, err, "Failed to list screenings")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Screenings", list)
}

// GetAssessment handles GET /api/v1/screenings/:id/assessment
func (h *ScreeningHandler) GetAssessment(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	assessment, err := h.service.Assessment(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err, "Failed to get assessment")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Assessment", assessment)
}

// GetScreening handles GET /api/v1/screenings/:id
func (h *ScreeningHandler) GetScreening(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	summary, err := h.service.Get(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err, "Failed to get screening")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Screening", summary)
}

// GetStudentHistory handles GET /api/v1/students/:student_id/history
func (h *ScreeningHandler) GetStudentHistory(c *gin.Context) {
	studentID := c.Param("student_id")
	if studentID == "" {
		h.RespondWithError(c, http.StatusBadRequest, "Student id is required", nil)
		return
	}

	history, err := h.service.History(c.Request.Context(), studentID)
	if err != nil {
		h.handleServiceError(c, err, "Failed to load history")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Screening history", history)
}

// ExportScreening handles GET /api/v1/screenings/:id/export
func (h *ScreeningHandler) ExportScreening(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	data, err := h.exporter.ExportSessionReport(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err, "Failed to export screening")
		return
	}

	filename := fmt.Sprintf("screening-%s.xlsx", sessionID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ExportStudentHistory handles GET /api/v1/students/:student_id/history/export
func (h *ScreeningHandler) ExportStudentHistory(c *gin.Context) {
	studentID := c.Param("student_id")
	if studentID == "" {
		h.RespondWithError(c, http.StatusBadRequest, "Student id is required", nil)
		return
	}

	data, err := h.exporter.ExportStudentHistory(c.Request.Context(), studentID)
	if err != nil {
		h.handleServiceError(c, err, "Failed to export history")
		return
	}

	filename := fmt.Sprintf("history-%s.xlsx", studentID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ===== HELPERS =====

func (h *ScreeningHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid session id", err)
		return uuid.Nil, false
	}
	return id, true
}

// sessionFilters parses the shared list query parameters. Responds with
// 400 and returns false on a malformed value.
func (h *ScreeningHandler) sessionFilters(c *gin.Context) (repositories.SessionFilters, bool) {
	filters := repositories.SessionFilters{SortOrder: c.DefaultQuery("sort", "desc")}

	if status := c.Query("status"); status != "" {
		parsed := models.SessionStatus(status)
		switch parsed {
		case models.SessionActive, models.SessionCompleted, models.SessionAbandoned:
			filters.Status = &parsed
		default:
			h.RespondWithError(c, http.StatusBadRequest, "Invalid status filter", nil)
			return filters, false
		}
	}

	if from := c.Query("from"); from != "" {
		parsed, err := time.Parse(time.RFC3339, from)
		if err != nil {
			h.RespondWithError(c, http.StatusBadRequest, "Invalid from timestamp", err)
			return filters, false
		}
		filters.DateFrom = &parsed
	}
	if to := c.Query("to"); to != "" {
		parsed, err := time.Parse(time.RFC3339, to)
		if err != nil {
			h.RespondWithError(c, http.StatusBadRequest, "Invalid to timestamp", err)
			return filters, false
		}
		filters.DateTo = &parsed
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid limit", err)
		return filters, false
	}
	filters.Limit = limit

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid offset", err)
		return filters, false
	}
	filters.Offset = offset

	return filters, true
}

func (h *ScreeningHandler) handleServiceError(c *gin.Context, err error, message string) {
	var fieldErrs govalidator.ValidationErrors
	switch {
	case services.IsNotFound(err):
		h.RespondWithError(c, http.StatusNotFound, message, err)
	case services.IsConflict(err):
		h.RespondWithError(c, http.StatusConflict, message, err)
	case errors.Is(err, services.ErrNoPendingQuestion),
		errors.Is(err, services.ErrUnknownQuestion),
		engine.IsInvalidInput(err):
		h.RespondWithError(c, http.StatusBadRequest, message, err)
	case errors.As(err, &fieldErrs):
		h.RespondWithError(c, http.StatusBadRequest, message, err, apperrors.ToValidationErrors(fieldErrs))
	default:
		h.RespondWithError(c, http.StatusInternalServerError, message, err)
	}
}
