package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRole string

type UserStatus string

const (
	RoleAdmin   UserRole = "admin"
	RoleStaff   UserRole = "staff"
	RoleStudent UserRole = "student"

	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
	StatusBanned   UserStatus = "banned"
)

type User struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Name             string     `gorm:"size:255;not null" json:"name"`
	Email            string     `gorm:"size:255;unique;not null" json:"email"`
	Password         string     `gorm:"size:255" json:"-"` // Exclude password from JSON
	GradYear         int        `json:"grad_year"`
	CurrentPoints    float64    `gorm:"default:0" json:"current_points"`
	RegistrationDate time.Time  `json:"registration_date"`
	Status           UserStatus `gorm:"type:user_status;default:'active'" json:"status"`
	Role             UserRole   `gorm:"type:user_role;default:'student'" json:"role"`
	Department       string     `gorm:"size:255" json:"department"`
	Title            string     `gorm:"size:255" json:"title"`
	Biography        string     `gorm:"type:text" json:"biography"`

	RefreshToken    string    `gorm:"size:512" json:"-"` // Exclude refresh token from JSON
	RefreshTokenExp time.Time `json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// HashPassword hashes the given plaintext password and stores it on the user
func (u *User) HashPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword compares a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
