package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ld-screen/screening-service/internal/services"
	"github.com/ld-screen/screening-service/internal/utils"
	"github.com/ld-screen/screening-service/internal/validator"
)

type HandlerManager struct {
	screeningHandler *ScreeningHandler
}

func NewHandlerManager(
	screening services.ScreeningService,
	exporter services.ExportService,
	v *validator.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		screeningHandler: NewScreeningHandler(screening, exporter, v, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Screening session routes
		screenings := v1.Group("/screenings")
		{
			screenings.POST("", hm.screeningHandler.StartScreening)
			screenings.GET("", hm.screeningHandler.ListScreenings)
			screenings.GET("/:id", hm.screeningHandler.GetScreening)
			screenings.GET("/:id/next", hm.screeningHandler.GetNextQuestion)
			screenings.POST("/:id/answers", hm.screeningHandler.SubmitAnswer)
			screenings.POST("/:id/finalize", hm.screeningHandler.FinalizeScreening)
			screenings.POST("/:id/abandon", hm.screeningHandler.AbandonScreening)
			screenings.GET("/:id/assessment", hm.screeningHandler.GetAssessment)
			screenings.GET("/:id/export", hm.screeningHandler.ExportScreening)
		}

		// Student-facing routes
		students := v1.Group("/students")
		{
			students.GET("/:student_id/screenings", hm.screeningHandler.GetStudentScreenings)
			students.GET("/:student_id/history", hm.screeningHandler.GetStudentHistory)
			students.GET("/:student_id/history/export", hm.screeningHandler.ExportStudentHistory)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "screening-service",
		})
	})
}
