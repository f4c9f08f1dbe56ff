package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	JourneyStatusActive   = "active"
	JourneyStatusArchived = "archived"

	MemberRoleOwner  = "owner"
	MemberRoleMember = "member"

	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
)

type Journey struct {
	BaseModel
	Title       string
	Description string
	IsPublic    bool
	Status      string    `gorm:"default:active"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;index"`

	Creator    Account         `gorm:"foreignKey:CreatedBy"`
	Dimensions []Dimension     `gorm:"foreignKey:JourneyID"`
	Members    []JourneyMember `gorm:"foreignKey:JourneyID"`
}

// Dimension weight is constrained to 1..5; once check-ins reference a
// dimension its weight is treated as immutable.
type Dimension struct {
	BaseModel
	JourneyID    uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Description  string
	Weight       int `gorm:"check:weight >= 1 AND weight <= 5"`
	DisplayOrder int
}

type JourneyMember struct {
	BaseModel
	JourneyID     uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_journey_member,priority:1"`
	AccountID     uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_journey_member,priority:2"`
	Role          string    `gorm:"default:member"`
	LastCheckinAt *time.Time

	Account Account `gorm:"foreignKey:AccountID"`
}

type JourneyInvite struct {
	BaseModel
	JourneyID  uuid.UUID `gorm:"type:uuid;index"`
	InvitedBy  uuid.UUID `gorm:"type:uuid"`
	Email      string
	Token      string `gorm:"uniqueIndex"`
	Status     string `gorm:"default:pending"`
	ExpiresAt  time.Time
	AcceptedAt *time.Time
}
