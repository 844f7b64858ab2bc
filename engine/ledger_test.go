package engine

import (
	"testing"
	"time"

	"github.com/TAMUSHPE/MobileApp-sub002/models"
)

func TestApplyRecordsTimestampAndPoints(t *testing.T) {
	event := baseEvent()
	now := event.StartTime.Add(5 * time.Minute)
	entry := models.AttendanceLog{UserID: 7, EventID: event.ID}

	Apply(event, &entry, ActionSignIn, Outcome{Status: StatusSuccess, Timestamp: now})

	if entry.SignInTime == nil || !entry.SignInTime.Equal(now) {
		t.Fatalf("SignInTime = %v, want %v", entry.SignInTime, now)
	}
	if entry.SignOutTime != nil {
		t.Fatalf("SignOutTime = %v, want nil", entry.SignOutTime)
	}
	if entry.PointsAwarded == nil || *entry.PointsAwarded != 1 {
		t.Fatalf("PointsAwarded = %v, want 1", entry.PointsAwarded)
	}
}

func TestApplyIgnoresNonSuccessOutcomes(t *testing.T) {
	event := baseEvent()
	entry := models.AttendanceLog{UserID: 7, EventID: event.ID}

	Apply(event, &entry, ActionSignIn, Outcome{Status: StatusEventOver})

	if entry.SignInTime != nil || entry.PointsAwarded != nil {
		t.Fatalf("entry mutated by non-success outcome: %+v", entry)
	}
}

// A verified entry keeps its staff-set points; only the timestamp is written
func TestApplyDoesNotOverwriteVerifiedPoints(t *testing.T) {
	event := baseEvent()
	now := event.StartTime.Add(5 * time.Minute)
	manual := 10.5
	entry := models.AttendanceLog{
		UserID:        7,
		EventID:       event.ID,
		PointsAwarded: &manual,
		Verified:      true,
	}

	Apply(event, &entry, ActionSignIn, Outcome{Status: StatusSuccess, Timestamp: now})

	if entry.SignInTime == nil || !entry.SignInTime.Equal(now) {
		t.Fatalf("SignInTime = %v, want %v", entry.SignInTime, now)
	}
	if *entry.PointsAwarded != manual {
		t.Fatalf("PointsAwarded = %v, want %v (manual override is authoritative)", *entry.PointsAwarded, manual)
	}
}
