package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Checkin is one user's submission for one journey on one calendar day.
// The (account, journey, date) triple is the natural key; a resubmission
// for the same day replaces the detail rows rather than inserting.
type Checkin struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_checkin_natural,priority:1"`
	JourneyID  uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_checkin_natural,priority:2"`
	Date       time.Time `gorm:"type:date;uniqueIndex:ux_checkin_natural,priority:3"`
	TotalScore float64
	// Client-supplied idempotency key; a retried submission bearing the
	// same key returns the stored row untouched.
	ClientCheckinID *string `gorm:"uniqueIndex"`

	Details []CheckinDetail `gorm:"foreignKey:CheckinID"`
}

type CheckinDetail struct {
	BaseModel
	CheckinID   uuid.UUID `gorm:"type:uuid;index"`
	DimensionID uuid.UUID `gorm:"type:uuid;index"`
	EffortLevel int
	Score       float64

	Dimension Dimension `gorm:"foreignKey:DimensionID"`
}

// Streak holds the consecutive-day counters for one (account, journey)
// pair. LongestStreak never decreases.
type Streak struct {
	BaseModel
	AccountID       uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_streak_owner,priority:1"`
	JourneyID       uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_streak_owner,priority:2"`
	CurrentStreak   int
	LongestStreak   int
	LastCheckinDate time.Time `gorm:"type:date"`
}
