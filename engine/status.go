// Package engine implements the event attendance and points rules: whether a
// member may sign in or out of an event right now, and how many points the
// resulting ledger entry is worth. Every function is pure; persistence of the
// outcome is the caller's job.
package engine

// Status is the closed set of outcomes a sign-in/out attempt can produce.
// Business-rule outcomes are first-class results rendered by the client, not
// errors; StatusError is reserved for precondition violations and
// infrastructure failures reported through the same enumeration.
type Status string

const (
	StatusSuccess             Status = "SUCCESS"
	StatusEventOver           Status = "EVENT_OVER"
	StatusEventOngoing        Status = "EVENT_ONGOING" // kept for client compatibility; not produced by Validate
	StatusEventNotFound       Status = "EVENT_NOT_FOUND"
	StatusAlreadyLogged       Status = "ALREADY_LOGGED"
	StatusNotAStudent         Status = "NOT_A_STUDENT"
	StatusEventNotStarted     Status = "EVENT_NOT_STARTED"
	StatusOutOfRange          Status = "OUT_OF_RANGE"
	StatusGeolocationNotFound Status = "GEOLOCATION_NOT_FOUND"
	StatusError               Status = "ERROR"
)

// Action selects which side of the attendance window is being logged
type Action string

const (
	ActionSignIn  Action = "sign-in"
	ActionSignOut Action = "sign-out"
)

// Valid reports whether a is a known action
func (a Action) Valid() bool {
	return a == ActionSignIn || a == ActionSignOut
}
