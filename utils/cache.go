package utils

import (
	"sync"
	"time"
)

var (
	// Registrations waiting for OTP verification
	pendingRegistrations = make(map[string]PendingUser) // keyed by email
	muRegistrations      sync.RWMutex

	// Password resets waiting for OTP verification
	pendingResets = make(map[string]PendingReset) // keyed by email
	muResets      sync.RWMutex
)

// PendingUser represents a user waiting for OTP verification during registration
type PendingUser struct {
	Name         string
	Email        string
	GradYear     int
	PasswordHash string
	OTP          string
	OTPExpiresAt time.Time
	CreatedAt    time.Time
}

// PendingReset represents a password reset request waiting for OTP verification
type PendingReset struct {
	Email        string
	OTP          string
	OTPExpiresAt time.Time
	CreatedAt    time.Time
}

func AddPendingUser(email string, user PendingUser) {
	muRegistrations.Lock()
	defer muRegistrations.Unlock()
	pendingRegistrations[email] = user
}

func GetPendingUser(email string) (PendingUser, bool) {
	muRegistrations.RLock()
	defer muRegistrations.RUnlock()
	user, exists := pendingRegistrations[email]
	return user, exists
}

func DeletePendingUser(email string) {
	muRegistrations.Lock()
	defer muRegistrations.Unlock()
	delete(pendingRegistrations, email)
}

func AddPendingReset(email string, reset PendingReset) {
	muResets.Lock()
	defer muResets.Unlock()
	pendingResets[email] = reset
}

func GetPendingReset(email string) (PendingReset, bool) {
	muResets.RLock()
	defer muResets.RUnlock()
	reset, exists := pendingResets[email]
	return reset, exists
}

func DeletePendingReset(email string) {
	muResets.Lock()
	defer muResets.Unlock()
	delete(pendingResets, email)
}

// Cleanup Functions
func CleanupExpiredRegistrations() {
	muRegistrations.Lock()
	defer muRegistrations.Unlock()
	now := time.Now()
	for email, user := range pendingRegistrations {
		if now.After(user.OTPExpiresAt) {
			delete(pendingRegistrations, email)
		}
	}
}

func CleanupExpiredResets() {
	muResets.Lock()
	defer muResets.Unlock()
	now := time.Now()
	for email, reset := range pendingResets {
		if now.After(reset.OTPExpiresAt) {
			delete(pendingResets, email)
		}
	}
}

func CleanupExpiredCache() {
	CleanupExpiredRegistrations()
	CleanupExpiredResets()
}
