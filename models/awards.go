package models

import (
	"time"
)

// Award is a badge staff can attach to an event as an extra incentive
type Award struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Points      float64   `gorm:"default:0" json:"points"`
	IconURL     string    `gorm:"size:512" json:"icon_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
