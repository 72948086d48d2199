package domain

import (
	"time"

	"github.com/google/uuid"
)

// AIAnalysis is the recommendation generator's output: what is going
// well, what needs attention, and concrete suggestions. The JSON
// encoding round-trips losslessly so stored analyses can be replayed.
// @Description Stored AI-generated analysis of a user's habits.
type AIAnalysis struct {
	// When the analysis was generated
	GeneratedAt time.Time `json:"generated_at"`
	// Habits the user is doing well (2-4 items)
	Working []string `json:"working"`
	// Areas that need attention (2-4 items)
	Attention []string `json:"attention"`
	// Actionable suggestions (3-5 items)
	Recommendations []string `json:"recommendations"`
}

// StoredAnalysis is the persisted wrapper around AIAnalysis. One row
// per generation; the latest row is what clients fetch.
type StoredAnalysis struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Payload   []byte    `gorm:"type:jsonb;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (StoredAnalysis) TableName() string {
	return "stored_analyses"
}

// RecommendationsResponse is the response for recommendation endpoints.
// @Description AI-generated recommendations with optional trace ID.
type RecommendationsResponse struct {
	Analysis AIAnalysis `json:"analysis"`
	// Trace ID for feedback (present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty"`
}
