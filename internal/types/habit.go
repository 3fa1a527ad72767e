package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Habit struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User        *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Title       string         `gorm:"not null;column:title" json:"title"`
	Description string         `gorm:"column:description" json:"description"`
	Frequency   string         `gorm:"not null;column:frequency" json:"frequency"`
	TargetDays  datatypes.JSON `gorm:"type:jsonb;column:target_days" json:"target_days,omitempty"`

	StreakCount   int `gorm:"not null;default:0;column:streak_count" json:"streak_count"`
	LongestStreak int `gorm:"not null;default:0;column:longest_streak" json:"longest_streak"`

	Color    string `gorm:"column:color" json:"color,omitempty"`
	Icon     string `gorm:"column:icon" json:"icon,omitempty"`
	IsActive bool   `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Habit) TableName() string { return "habit" }
