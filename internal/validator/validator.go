package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ld-screen/screening-service/internal/models"
)

// Validator wraps struct-tag validation with the screening-specific rules.
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new centralized validator instance
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)
	return &Validator{structValidator: structValidator}
}

// ValidateStruct validates struct tags only
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("screening_domain", validateDomain)
	validate.RegisterValidation("difficulty_level", validateDifficultyLevel)
	validate.RegisterValidation("confidence_level", validateConfidenceLevel)
	validate.RegisterValidation("question_budget", validateQuestionBudget)
	validate.RegisterValidation("mistake_type", validateMistakeType)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateDomain(fl validator.FieldLevel) bool {
	return models.Domain(fl.Field().String()).Valid()
}

func validateDifficultyLevel(fl validator.FieldLevel) bool {
	return models.Difficulty(fl.Field().String()).Valid()
}

func validateConfidenceLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ConfidenceLevel(value).ValidSelfReport()
}

func validateQuestionBudget(fl validator.FieldLevel) bool {
	budget := fl.Field().Int()
	return budget >= 5 && budget <= 100
}

func validateMistakeType(fl validator.FieldLevel) bool {
	return models.MistakeType(fl.Field().String()).Known()
}
