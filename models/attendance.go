package models

import (
	"time"
)

// AttendanceLog is the ledger of one member's attendance for one event. The
// unique index on (user_id, event_id) makes the ledger idempotent: a member
// gets at most one row per event, and concurrent first sign-ins race on the
// index rather than creating duplicates.
type AttendanceLog struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	UserID  uint `gorm:"not null;uniqueIndex:idx_user_event" json:"user_id"`
	EventID uint `gorm:"not null;uniqueIndex:idx_user_event" json:"event_id"`

	SignInTime  *time.Time `gorm:"type:timestamptz" json:"sign_in_time"`
	SignOutTime *time.Time `gorm:"type:timestamptz" json:"sign_out_time"`

	// PointsAwarded is recomputed from the event's point policy whenever a
	// timestamp lands. Once Verified is set by staff the stored value is
	// authoritative and is never recomputed.
	PointsAwarded *float64 `json:"points_awarded"`
	Verified      bool     `gorm:"default:false" json:"verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	User  User  `gorm:"foreignKey:UserID" json:"user"`
	Event Event `gorm:"foreignKey:EventID" json:"event"`
}
