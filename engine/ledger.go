package engine

import (
	"github.com/TAMUSHPE/MobileApp-sub002/models"
)

// Apply writes a successful outcome into the ledger entry and refreshes its
// point total. Entries staff have verified keep their manually set points;
// only the timestamp is recorded. Non-success outcomes leave the entry
// untouched.
func Apply(event *models.Event, entry *models.AttendanceLog, action Action, outcome Outcome) {
	if outcome.Status != StatusSuccess {
		return
	}

	ts := outcome.Timestamp
	switch action {
	case ActionSignIn:
		entry.SignInTime = &ts
	case ActionSignOut:
		entry.SignOutTime = &ts
	}

	if !entry.Verified {
		points := ComputePoints(event, entry)
		entry.PointsAwarded = &points
	}
}
