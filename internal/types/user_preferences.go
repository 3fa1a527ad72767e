package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserPreferences stores user-controlled settings that persist across
// devices, including the default coach voice used when an analysis request
// omits one explicitly.
type UserPreferences struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User   *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`

	CoachVoice           string `gorm:"not null;default:'supportive';column:coach_voice" json:"coach_voice"`
	Theme                string `gorm:"not null;default:'system';column:theme" json:"theme"`
	NotificationsEnabled bool   `gorm:"not null;default:true;column:notifications_enabled" json:"notifications_enabled"`
	DailyReminderTime    string `gorm:"not null;default:'09:00';column:daily_reminder_time" json:"daily_reminder_time"`
	WeeklySummaryDay     int    `gorm:"not null;default:0;column:weekly_summary_day" json:"weekly_summary_day"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now();index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserPreferences) TableName() string { return "user_preferences" }
