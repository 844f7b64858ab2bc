package engine

import (
	"testing"
	"time"

	"github.com/TAMUSHPE/MobileApp-sub002/models"
)

func fp(v float64) *float64 { return &v }

func tp(t time.Time) *time.Time { return &t }

// baseEvent returns a two-hour event with flat offers on both actions and no
// geofence
func baseEvent() *models.Event {
	return &models.Event{
		ID:              1,
		EventType:       models.TypeGeneralMeeting,
		StartTime:       time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC),
		EndTime:         time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC),
		StartTimeBuffer: 20 * 60 * 1000,
		EndTimeBuffer:   20 * 60 * 1000,
		SignInPoints:    fp(1),
		SignOutPoints:   fp(1),
	}
}

func TestValidateDecisionOrder(t *testing.T) {
	event := baseEvent()
	during := event.StartTime.Add(30 * time.Minute)

	tests := []struct {
		name      string
		event     *models.Event
		action    Action
		now       time.Time
		location  *Location
		isStudent bool
		entry     *models.AttendanceLog
		want      Status
	}{
		{
			name:      "missing event",
			event:     nil,
			action:    ActionSignIn,
			now:       during,
			isStudent: true,
			want:      StatusEventNotFound,
		},
		{
			name:      "non-student caller",
			event:     event,
			action:    ActionSignIn,
			now:       during,
			isStudent: false,
			want:      StatusNotAStudent,
		},
		{
			name:   "non-student wins over missing offer",
			event:  &models.Event{StartTime: event.StartTime, EndTime: event.EndTime},
			action: ActionSignIn,
			now:    during,
			want:   StatusNotAStudent,
		},
		{
			name:      "sign-in not offered",
			event:     &models.Event{StartTime: event.StartTime, EndTime: event.EndTime, SignOutPoints: fp(1)},
			action:    ActionSignIn,
			now:       during,
			isStudent: true,
			want:      StatusError,
		},
		{
			name:      "sign-out not offered",
			event:     &models.Event{StartTime: event.StartTime, EndTime: event.EndTime, SignInPoints: fp(1)},
			action:    ActionSignOut,
			now:       during,
			isStudent: true,
			want:      StatusError,
		},
		{
			name:      "unknown action",
			event:     event,
			action:    Action("linger"),
			now:       during,
			isStudent: true,
			want:      StatusError,
		},
		{
			name:      "duplicate sign-in",
			event:     event,
			action:    ActionSignIn,
			now:       during,
			isStudent: true,
			entry:     &models.AttendanceLog{UserID: 7, EventID: 1, SignInTime: tp(during.Add(-time.Minute))},
			want:      StatusAlreadyLogged,
		},
		{
			name:      "duplicate check outranks closed window",
			event:     event,
			action:    ActionSignIn,
			now:       event.EndTime.Add(24 * time.Hour),
			isStudent: true,
			entry:     &models.AttendanceLog{UserID: 7, EventID: 1, SignInTime: tp(during)},
			want:      StatusAlreadyLogged,
		},
		{
			name:      "sign-out without prior sign-in",
			event:     event,
			action:    ActionSignOut,
			now:       during,
			isStudent: true,
			want:      StatusSuccess,
		},
		{
			name:      "sign-out with entry that only signed in",
			event:     event,
			action:    ActionSignOut,
			now:       during,
			isStudent: true,
			entry:     &models.AttendanceLog{UserID: 7, EventID: 1, SignInTime: tp(during.Add(-time.Minute))},
			want:      StatusSuccess,
		},
		{
			name:      "success carries timestamp",
			event:     event,
			action:    ActionSignIn,
			now:       during,
			isStudent: true,
			want:      StatusSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.event, tt.action, tt.now, tt.location, tt.isStudent, tt.entry)
			if got.Status != tt.want {
				t.Fatalf("Validate() status = %v, want %v", got.Status, tt.want)
			}
			if tt.want == StatusSuccess && !got.Timestamp.Equal(tt.now) {
				t.Errorf("Validate() timestamp = %v, want %v", got.Timestamp, tt.now)
			}
		})
	}
}

func TestValidateWindowBoundaries(t *testing.T) {
	event := baseEvent()
	windowStart := event.StartTime.Add(-20 * time.Minute)
	windowEnd := event.EndTime.Add(20 * time.Minute)

	tests := []struct {
		name string
		now  time.Time
		want Status
	}{
		{"exactly at window start", windowStart, StatusSuccess},
		{"1ms before window start", windowStart.Add(-time.Millisecond), StatusEventNotStarted},
		{"exactly at window end", windowEnd, StatusSuccess},
		{"1ms after window end", windowEnd.Add(time.Millisecond), StatusEventOver},
		{"well before the event", event.StartTime.Add(-24 * time.Hour), StatusEventNotStarted},
		{"well after the event", event.EndTime.Add(24 * time.Hour), StatusEventOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(event, ActionSignIn, tt.now, nil, true, nil)
			if got.Status != tt.want {
				t.Fatalf("Validate() status = %v, want %v", got.Status, tt.want)
			}
		})
	}
}

func TestValidateGeofence(t *testing.T) {
	center := models.Geopoint{Lat: 30.6187, Lng: -96.3365} // Zachry Engineering Education Complex
	caller := Location{Lat: 30.6190, Lng: -96.3370}
	distance := DistanceMeters(caller, Location{Lat: center.Lat, Lng: center.Lng})

	event := baseEvent()
	event.Geolocation = &center
	during := event.StartTime.Add(30 * time.Minute)

	tests := []struct {
		name     string
		radius   *float64
		location *Location
		want     Status
	}{
		{"inside the fence", fp(distance * 2), &caller, StatusSuccess},
		{"distance exactly equal to radius", fp(distance), &caller, StatusSuccess},
		{"just outside the fence", fp(distance * 0.99), &caller, StatusOutOfRange},
		{"caller location missing", fp(100), nil, StatusGeolocationNotFound},
		{"no radius configured disables the fence", nil, nil, StatusSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event.GeofencingRadius = tt.radius
			got := Validate(event, ActionSignIn, during, tt.location, true, nil)
			if got.Status != tt.want {
				t.Fatalf("Validate() status = %v, want %v", got.Status, tt.want)
			}
		})
	}
}

func TestValidateNoGeolocationConfigured(t *testing.T) {
	event := baseEvent()
	event.GeofencingRadius = fp(50) // radius without a center is inert
	during := event.StartTime.Add(time.Minute)

	got := Validate(event, ActionSignIn, during, nil, true, nil)
	if got.Status != StatusSuccess {
		t.Fatalf("Validate() status = %v, want %v", got.Status, StatusSuccess)
	}
}

func TestValidateIdempotence(t *testing.T) {
	event := baseEvent()
	during := event.StartTime.Add(10 * time.Minute)

	first := Validate(event, ActionSignIn, during, nil, true, nil)
	if first.Status != StatusSuccess {
		t.Fatalf("first Validate() status = %v, want %v", first.Status, StatusSuccess)
	}

	entry := &models.AttendanceLog{UserID: 7, EventID: event.ID}
	Apply(event, entry, ActionSignIn, first)

	second := Validate(event, ActionSignIn, during.Add(time.Minute), nil, true, entry)
	if second.Status != StatusAlreadyLogged {
		t.Fatalf("second Validate() status = %v, want %v", second.Status, StatusAlreadyLogged)
	}
}

// TestStudyHoursScenario walks the full Study Hours flow: sign in, sign out,
// earn prorated points, retry both directions.
func TestStudyHoursScenario(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	event := &models.Event{
		ID:              42,
		EventType:       models.TypeStudyHours,
		StartTime:       day.Add(9 * time.Hour),
		EndTime:         day.Add(13 * time.Hour),
		StartTimeBuffer: 0,
		EndTimeBuffer:   15 * 60 * 1000,
		SignInPoints:    fp(0),
		SignOutPoints:   fp(0),
		PointsPerHour:   fp(1),
	}

	entry := &models.AttendanceLog{UserID: 7, EventID: event.ID}

	// Sign in at 09:05
	in := Validate(event, ActionSignIn, day.Add(9*time.Hour+5*time.Minute), nil, true, nil)
	if in.Status != StatusSuccess {
		t.Fatalf("sign-in status = %v, want %v", in.Status, StatusSuccess)
	}
	Apply(event, entry, ActionSignIn, in)

	// A second sign-in attempt at 09:10 is rejected
	retry := Validate(event, ActionSignIn, day.Add(9*time.Hour+10*time.Minute), nil, true, entry)
	if retry.Status != StatusAlreadyLogged {
		t.Fatalf("retry sign-in status = %v, want %v", retry.Status, StatusAlreadyLogged)
	}

	// Sign out at 11:35, 2.5 hours after sign-in
	out := Validate(event, ActionSignOut, day.Add(11*time.Hour+35*time.Minute), nil, true, entry)
	if out.Status != StatusSuccess {
		t.Fatalf("sign-out status = %v, want %v", out.Status, StatusSuccess)
	}
	Apply(event, entry, ActionSignOut, out)

	if got := ComputePoints(event, entry); got != 2.5 {
		t.Fatalf("ComputePoints() = %v, want 2.5", got)
	}
	if entry.PointsAwarded == nil || *entry.PointsAwarded != 2.5 {
		t.Fatalf("PointsAwarded = %v, want 2.5", entry.PointsAwarded)
	}

	// A sign-out attempt at 13:20 is past the 15-minute end buffer
	late := Validate(event, ActionSignOut, day.Add(13*time.Hour+20*time.Minute), nil, true, nil)
	if late.Status != StatusEventOver {
		t.Fatalf("late sign-out status = %v, want %v", late.Status, StatusEventOver)
	}
}
