package engine

import (
	"time"

	"github.com/TAMUSHPE/MobileApp-sub002/models"
)

// Outcome is the result of one validation. Timestamp is only meaningful on
// StatusSuccess: it is the instant the caller must persist into the entry's
// sign-in or sign-out field.
type Outcome struct {
	Status    Status
	Timestamp time.Time
}

// Validate decides whether a member may perform the requested sign-in or
// sign-out right now. It is a pure function: the caller supplies the event,
// the clock, the caller's role and location, and the member's existing ledger
// entry (nil when none exists), and persists the outcome itself.
//
// The checks run in a fixed order so a request failing several rules always
// reports the same one: existence, role, offer, duplicate, time window,
// geofence.
func Validate(event *models.Event, action Action, now time.Time, callerLocation *Location, callerIsStudent bool, existingEntry *models.AttendanceLog) Outcome {
	if event == nil {
		return Outcome{Status: StatusEventNotFound}
	}

	// Only verified student accounts accrue points
	if !callerIsStudent {
		return Outcome{Status: StatusNotAStudent}
	}

	// A nil offer means the action is not offered for this event at all. The
	// client never presents the action in that case, so surface it as a
	// precondition violation rather than a business outcome.
	var offer *float64
	switch action {
	case ActionSignIn:
		offer = event.SignInPoints
	case ActionSignOut:
		offer = event.SignOutPoints
	default:
		return Outcome{Status: StatusError}
	}
	if offer == nil {
		return Outcome{Status: StatusError}
	}

	if existingEntry != nil {
		logged := existingEntry.SignInTime
		if action == ActionSignOut {
			logged = existingEntry.SignOutTime
		}
		if logged != nil {
			return Outcome{Status: StatusAlreadyLogged}
		}
	}
	// A sign-out without a prior sign-in is allowed: some events only award
	// points at the door on the way out, and the caller creates the entry
	// fresh in that case.

	windowStart := event.StartTime.Add(-time.Duration(event.StartTimeBuffer) * time.Millisecond)
	windowEnd := event.EndTime.Add(time.Duration(event.EndTimeBuffer) * time.Millisecond)
	if now.Before(windowStart) {
		return Outcome{Status: StatusEventNotStarted}
	}
	if now.After(windowEnd) {
		return Outcome{Status: StatusEventOver}
	}

	// Events without a configured geofence impose no spatial constraint
	if event.Geolocation != nil && event.GeofencingRadius != nil {
		if callerLocation == nil {
			return Outcome{Status: StatusGeolocationNotFound}
		}
		center := Location{Lat: event.Geolocation.Lat, Lng: event.Geolocation.Lng}
		if DistanceMeters(*callerLocation, center) > *event.GeofencingRadius {
			return Outcome{Status: StatusOutOfRange}
		}
	}

	return Outcome{Status: StatusSuccess, Timestamp: now}
}
