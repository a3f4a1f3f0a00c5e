package models

// ResponseRecord captures a single answered question inside a session. The
// engine appends records in answer order; nothing rewrites history.
type ResponseRecord struct {
	QuestionID     string          `json:"question_id" validate:"required"`
	Domain         Domain          `json:"domain" validate:"required"`
	Difficulty     Difficulty      `json:"difficulty" validate:"required"`
	Correct        bool            `json:"correct"`
	ResponseTimeMs float64         `json:"response_time_ms" validate:"gte=0"`
	MistakeTag     MistakeType     `json:"mistake_tag,omitempty"`
	Confidence     ConfidenceLevel `json:"confidence,omitempty"`
	Answer         string          `json:"answer,omitempty"`
}

// FeatureVector is the fixed eight-feature input to risk scoring.
// Per-domain accuracies are 0.0 when the domain was never answered.
type FeatureVector struct {
	Accuracy           float64 `json:"accuracy"`
	ErrorRate          float64 `json:"error_rate"`
	AvgResponseTimeMs  float64 `json:"avg_response_time_ms"`
	ConsistencyMs      float64 `json:"consistency_ms"`
	ReadingAccuracy    float64 `json:"reading_accuracy"`
	MathAccuracy       float64 `json:"math_accuracy"`
	ReversalCount      int     `json:"reversal_count"`
	ConfidenceMismatch int     `json:"confidence_mismatch"`
}

// RiskScores holds the three [0,1] outputs of a scorer.
type RiskScores struct {
	Dyslexia    float64 `json:"dyslexia_risk"`
	Dyscalculia float64 `json:"dyscalculia_risk"`
	Attention   float64 `json:"attention_risk"`
}

// RiskResult is the full outcome of a finished screening.
type RiskResult struct {
	Scores     RiskScores      `json:"scores"`
	Label      RiskLabel       `json:"label"`
	Confidence ConfidenceLevel `json:"confidence"`
	Insights   []string        `json:"insights"`
	UsedModel  bool            `json:"used_model"`
	Features   FeatureVector   `json:"features"`
}
