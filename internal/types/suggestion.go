package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Suggestion is the persisted record of one goal-alignment analysis. Records
// are created only by the analysis pipeline and mutated only through the
// apply/unapply transitions; repeated analysis of the same event accumulates
// records so the user keeps a history of AI feedback over time.
//
// AlignedGoals holds goal-id strings as returned by the model. They are not
// validated against the goal store; callers must not assume referential
// integrity.
type Suggestion struct {
	ID      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User    *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	EventID uuid.UUID `gorm:"type:uuid;not null;index" json:"event_id"`
	Event   *Event    `gorm:"constraint:OnDelete:CASCADE;foreignKey:EventID;references:ID" json:"event,omitempty"`

	Score             int            `gorm:"not null;column:score" json:"score"`
	AlignedGoals      datatypes.JSON `gorm:"type:jsonb;not null;default:'[]';column:aligned_goals" json:"aligned_goals"`
	Analysis          string         `gorm:"not null;column:analysis" json:"analysis"`
	Suggestion        string         `gorm:"not null;column:suggestion" json:"suggestion"`
	NewGoalSuggestion *string        `gorm:"column:new_goal_suggestion" json:"new_goal_suggestion,omitempty"`
	VoiceStyle        string         `gorm:"not null;column:voice_style" json:"voice_style"`
	IsApplied         bool           `gorm:"not null;default:false;column:is_applied" json:"is_applied"`
	Fallback          bool           `gorm:"not null;default:false;column:fallback" json:"fallback"`

	CreatedAt time.Time      `gorm:"not null;default:now();index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Suggestion) TableName() string { return "suggestion" }

func (s *Suggestion) SetAlignedGoals(ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	s.AlignedGoals = datatypes.JSON(raw)
	return nil
}

func (s *Suggestion) AlignedGoalIDs() []string {
	var ids []string
	if len(s.AlignedGoals) == 0 {
		return []string{}
	}
	if err := json.Unmarshal(s.AlignedGoals, &ids); err != nil {
		return []string{}
	}
	return ids
}
