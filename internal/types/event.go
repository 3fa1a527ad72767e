package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is a block of time on the user's calendar. EndTime is not required
// to be after StartTime; the store accepts what the client recorded.
type Event struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User        *User      `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	GoalID      *uuid.UUID `gorm:"type:uuid;index" json:"goal_id,omitempty"`
	Goal        *Goal      `gorm:"constraint:OnDelete:SET NULL;foreignKey:GoalID;references:ID" json:"goal,omitempty"`
	Title       string     `gorm:"not null;column:title" json:"title"`
	Description string     `gorm:"column:description" json:"description"`
	StartTime   time.Time  `gorm:"not null;column:start_time" json:"start_time"`
	EndTime     *time.Time `gorm:"column:end_time" json:"end_time,omitempty"`
	IsCompleted bool       `gorm:"not null;default:false;column:is_completed" json:"is_completed"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Event) TableName() string { return "event" }
