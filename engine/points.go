package engine

import (
	"github.com/TAMUSHPE/MobileApp-sub002/models"
)

// ComputePoints derives the point value of an attendance entry from the
// event's point policy. It is total and idempotent: recomputing from the
// entry's current fields always yields the same value, so callers replace
// PointsAwarded with the result rather than adding to it.
//
// Flat awards count as soon as their timestamp is present. The hourly award
// needs an elapsed duration, so it contributes only when the member has both
// signed in and signed out; hours are fractional, not rounded.
//
// Callers must not invoke this for entries staff have marked verified: a
// manual override is authoritative.
func ComputePoints(event *models.Event, entry *models.AttendanceLog) float64 {
	var points float64

	if entry.SignInTime != nil && event.SignInPoints != nil {
		points += *event.SignInPoints
	}
	if entry.SignOutTime != nil && event.SignOutPoints != nil {
		points += *event.SignOutPoints
	}
	if event.PointsPerHour != nil && entry.SignInTime != nil && entry.SignOutTime != nil {
		points += *event.PointsPerHour * entry.SignOutTime.Sub(*entry.SignInTime).Hours()
	}

	return points
}
