package models

import (
	"time"
)

// Geopoint is a WGS84 coordinate pair
type Geopoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	EventType   EventType `gorm:"size:50;not null" json:"event_type"`
	Location    string    `gorm:"size:255" json:"location"`

	StartTime time.Time `gorm:"type:timestamptz;not null" json:"start_time"`
	EndTime   time.Time `gorm:"type:timestamptz;not null" json:"end_time"`

	// Buffers widen the effective sign-in/out window, in milliseconds
	StartTimeBuffer int64 `gorm:"not null;default:0" json:"start_time_buffer"`
	EndTimeBuffer   int64 `gorm:"not null;default:0" json:"end_time_buffer"`

	// Point offers. A nil field means the action is not offered for this
	// event; 0 is a valid offered value.
	SignInPoints  *float64 `json:"sign_in_points"`
	SignOutPoints *float64 `json:"sign_out_points"`
	PointsPerHour *float64 `json:"points_per_hour"`

	// Optional geofence. Enforced only when both the geolocation and the
	// radius are set.
	Geolocation      *Geopoint `gorm:"embedded;embeddedPrefix:geo_" json:"geolocation"`
	GeofencingRadius *float64  `json:"geofencing_radius"` // meters

	Committee   string `gorm:"size:255" json:"committee"`
	General     bool   `gorm:"default:false" json:"general"`
	HiddenEvent bool   `gorm:"default:false" json:"hidden_event"`

	OrganizerID uint   `gorm:"not null" json:"organizer_id"` // ID of the user who created the event
	ImageURL    string `gorm:"size:512" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Organizer User            `gorm:"foreignKey:OrganizerID" json:"organizer"`
	Attendees []AttendanceLog `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"attendees"`
	Awards    []Award         `gorm:"many2many:event_awards" json:"awards"`
}
