package models

// EventType is the closed set of event archetypes. Each type seeds a fresh
// Event with its default point policy and schedule buffers; the seeds are
// construction-time defaults only and every field stays overridable.
type EventType string

const (
	TypeGeneralMeeting   EventType = "General Meeting"
	TypeCommitteeMeeting EventType = "Committee Meeting"
	TypeStudyHours       EventType = "Study Hours"
	TypeWorkshop         EventType = "Workshop"
	TypeVolunteerEvent   EventType = "Volunteer Event"
	TypeSocialEvent      EventType = "Social Event"
	TypeIntramuralEvent  EventType = "Intramural Event"
	TypeCustomEvent      EventType = "Custom Event"
)

// Workshop kinds carry different sign-in awards
const (
	WorkshopAcademic     = "Academic"
	WorkshopProfessional = "Professional"
)

const (
	defaultBufferMillis       = 20 * 60 * 1000 // 20 minutes
	studyHoursEndBufferMillis = 15 * 60 * 1000 // 15 minutes
)

// EventDefaults holds the seed values one event type contributes to a new
// Event. Nil point fields mean the action is not offered by default.
type EventDefaults struct {
	SignInPoints    *float64
	SignOutPoints   *float64
	PointsPerHour   *float64
	StartTimeBuffer int64 // milliseconds
	EndTimeBuffer   int64 // milliseconds
	General         bool
}

func pts(v float64) *float64 { return &v }

var eventTypeDefaults = map[EventType]EventDefaults{
	TypeGeneralMeeting: {
		SignInPoints:    pts(0),
		SignOutPoints:   pts(0),
		StartTimeBuffer: defaultBufferMillis,
		EndTimeBuffer:   defaultBufferMillis,
		General:         true,
	},
	TypeCommitteeMeeting: {
		SignInPoints:    pts(1),
		StartTimeBuffer: defaultBufferMillis,
		EndTimeBuffer:   defaultBufferMillis,
	},
	TypeStudyHours: {
		SignInPoints:    pts(0),
		SignOutPoints:   pts(0),
		PointsPerHour:   pts(1),
		StartTimeBuffer: 0,
		EndTimeBuffer:   studyHoursEndBufferMillis,
		General:         true,
	},
	TypeWorkshop: {
		SignInPoints:    pts(3),
		StartTimeBuffer: defaultBufferMillis,
		EndTimeBuffer:   defaultBufferMillis,
		General:         true,
	},
	TypeVolunteerEvent: {
		SignInPoints:    pts(0),
		StartTimeBuffer: defaultBufferMillis,
		EndTimeBuffer:   defaultBufferMillis,
		General:         true,
	},
	TypeSocialEvent: {
		SignInPoints:    pts(0),
		StartTimeBuffer: defaultBufferMillis,
		EndTimeBuffer:   defaultBufferMillis,
		General:         true,
	},
	TypeIntramuralEvent: {
		SignInPoints:    pts(0),
		StartTimeBuffer: defaultBufferMillis,
		EndTimeBuffer:   defaultBufferMillis,
		General:         true,
	},
	TypeCustomEvent: {
		SignInPoints:    pts(0),
		StartTimeBuffer: defaultBufferMillis,
		EndTimeBuffer:   defaultBufferMillis,
	},
}

// Valid reports whether t is one of the known event types
func (t EventType) Valid() bool {
	_, ok := eventTypeDefaults[t]
	return ok
}

// Defaults returns the seed values for the event type. Unknown types fall
// back to the Custom Event seed.
func (t EventType) Defaults() EventDefaults {
	if d, ok := eventTypeDefaults[t]; ok {
		return d
	}
	return eventTypeDefaults[TypeCustomEvent]
}

// WorkshopSignInPoints returns the sign-in award for a workshop kind.
// Academic workshops award 2, everything else the Professional default of 3.
func WorkshopSignInPoints(kind string) float64 {
	if kind == WorkshopAcademic {
		return 2
	}
	return 3
}

// ApplyDefaults fills fields the creator left unset with the seed values for
// the event's type. A creator-provided value, including an explicit 0, wins
// over the seed; the pointer arguments distinguish "left unset" from a zero
// value for the non-nullable Event fields.
func ApplyDefaults(e *Event, startBuffer, endBuffer *int64, general *bool) {
	d := e.EventType.Defaults()
	if e.SignInPoints == nil {
		e.SignInPoints = d.SignInPoints
	}
	if e.SignOutPoints == nil {
		e.SignOutPoints = d.SignOutPoints
	}
	if e.PointsPerHour == nil {
		e.PointsPerHour = d.PointsPerHour
	}
	if startBuffer != nil {
		e.StartTimeBuffer = *startBuffer
	} else {
		e.StartTimeBuffer = d.StartTimeBuffer
	}
	if endBuffer != nil {
		e.EndTimeBuffer = *endBuffer
	} else {
		e.EndTimeBuffer = d.EndTimeBuffer
	}
	if general != nil {
		e.General = *general
	} else {
		e.General = d.General
	}
}
