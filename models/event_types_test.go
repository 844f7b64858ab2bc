package models

import (
	"testing"
	"time"
)

func fv(v float64) *float64 { return &v }

func TestEventTypeDefaults(t *testing.T) {
	tests := []struct {
		eventType   EventType
		wantSignIn  *float64
		wantSignOut *float64
		wantHourly  *float64
		wantGeneral bool
	}{
		{TypeGeneralMeeting, fv(0), fv(0), nil, true},
		{TypeCommitteeMeeting, fv(1), nil, nil, false},
		{TypeStudyHours, fv(0), fv(0), fv(1), true},
		{TypeWorkshop, fv(3), nil, nil, true},
		{TypeVolunteerEvent, fv(0), nil, nil, true},
		{TypeSocialEvent, fv(0), nil, nil, true},
		{TypeIntramuralEvent, fv(0), nil, nil, true},
		{TypeCustomEvent, fv(0), nil, nil, false},
	}

	eq := func(a, b *float64) bool {
		if a == nil || b == nil {
			return a == b
		}
		return *a == *b
	}

	for _, tt := range tests {
		t.Run(string(tt.eventType), func(t *testing.T) {
			if !tt.eventType.Valid() {
				t.Fatalf("%q not recognized as a valid event type", tt.eventType)
			}
			d := tt.eventType.Defaults()
			if !eq(d.SignInPoints, tt.wantSignIn) {
				t.Errorf("SignInPoints = %v, want %v", d.SignInPoints, tt.wantSignIn)
			}
			if !eq(d.SignOutPoints, tt.wantSignOut) {
				t.Errorf("SignOutPoints = %v, want %v", d.SignOutPoints, tt.wantSignOut)
			}
			if !eq(d.PointsPerHour, tt.wantHourly) {
				t.Errorf("PointsPerHour = %v, want %v", d.PointsPerHour, tt.wantHourly)
			}
			if d.General != tt.wantGeneral {
				t.Errorf("General = %v, want %v", d.General, tt.wantGeneral)
			}
		})
	}
}

func TestStudyHoursBuffers(t *testing.T) {
	d := TypeStudyHours.Defaults()
	if d.StartTimeBuffer != 0 {
		t.Errorf("StartTimeBuffer = %d, want 0", d.StartTimeBuffer)
	}
	if d.EndTimeBuffer != 15*60*1000 {
		t.Errorf("EndTimeBuffer = %d, want 15 minutes in ms", d.EndTimeBuffer)
	}
}

func TestUnknownTypeFallsBackToCustom(t *testing.T) {
	if EventType("Bake Sale").Valid() {
		t.Fatal("unknown type reported valid")
	}
	d := EventType("Bake Sale").Defaults()
	custom := TypeCustomEvent.Defaults()
	if d.General != custom.General || *d.SignInPoints != *custom.SignInPoints {
		t.Fatalf("unknown type defaults = %+v, want custom event defaults", d)
	}
}

func TestWorkshopSignInPoints(t *testing.T) {
	if got := WorkshopSignInPoints(WorkshopAcademic); got != 2 {
		t.Errorf("Academic = %v, want 2", got)
	}
	if got := WorkshopSignInPoints(WorkshopProfessional); got != 3 {
		t.Errorf("Professional = %v, want 3", got)
	}
	if got := WorkshopSignInPoints(""); got != 3 {
		t.Errorf("unset kind = %v, want the Professional default 3", got)
	}
}

func TestApplyDefaults(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("unset fields are seeded", func(t *testing.T) {
		e := Event{EventType: TypeStudyHours, StartTime: start, EndTime: start.Add(4 * time.Hour)}
		ApplyDefaults(&e, nil, nil, nil)

		if e.SignInPoints == nil || *e.SignInPoints != 0 {
			t.Errorf("SignInPoints = %v, want 0", e.SignInPoints)
		}
		if e.PointsPerHour == nil || *e.PointsPerHour != 1 {
			t.Errorf("PointsPerHour = %v, want 1", e.PointsPerHour)
		}
		if e.StartTimeBuffer != 0 || e.EndTimeBuffer != 15*60*1000 {
			t.Errorf("buffers = %d/%d, want 0/900000", e.StartTimeBuffer, e.EndTimeBuffer)
		}
		if !e.General {
			t.Error("General = false, want true")
		}
	})

	t.Run("provided values win over seeds", func(t *testing.T) {
		startBuffer := int64(5 * 60 * 1000)
		endBuffer := int64(0)
		general := false

		e := Event{
			EventType:     TypeStudyHours,
			StartTime:     start,
			EndTime:       start.Add(4 * time.Hour),
			PointsPerHour: fv(2),
		}
		ApplyDefaults(&e, &startBuffer, &endBuffer, &general)

		if *e.PointsPerHour != 2 {
			t.Errorf("PointsPerHour = %v, want the provided 2", *e.PointsPerHour)
		}
		if e.StartTimeBuffer != startBuffer || e.EndTimeBuffer != endBuffer {
			t.Errorf("buffers = %d/%d, want provided %d/%d", e.StartTimeBuffer, e.EndTimeBuffer, startBuffer, endBuffer)
		}
		if e.General {
			t.Error("General = true, want the provided false")
		}
	})

	t.Run("explicit zero offer is kept", func(t *testing.T) {
		e := Event{EventType: TypeCommitteeMeeting, SignInPoints: fv(0)}
		ApplyDefaults(&e, nil, nil, nil)
		if *e.SignInPoints != 0 {
			t.Errorf("SignInPoints = %v, want the explicit 0", *e.SignInPoints)
		}
	})
}
