package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/TAMUSHPE/MobileApp-sub002/database"
	"github.com/TAMUSHPE/MobileApp-sub002/engine"
	"github.com/TAMUSHPE/MobileApp-sub002/models"
	"github.com/gin-gonic/gin"
)

// eventInput is the writable field set shared by create and update. Pointer
// fields distinguish "not provided" from an explicit zero so the event type
// defaults only fill what the creator left unset.
type eventInput struct {
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	EventType        models.EventType `json:"event_type"`
	WorkshopKind     string           `json:"workshop_kind"` // "Academic" or "Professional", Workshop only
	Location         string           `json:"location"`
	StartTime        *time.Time       `json:"start_time"`
	EndTime          *time.Time       `json:"end_time"`
	StartTimeBuffer  *int64           `json:"start_time_buffer"` // ms
	EndTimeBuffer    *int64           `json:"end_time_buffer"`   // ms
	SignInPoints     *float64         `json:"sign_in_points"`
	SignOutPoints    *float64         `json:"sign_out_points"`
	PointsPerHour    *float64         `json:"points_per_hour"`
	Geolocation      *models.Geopoint `json:"geolocation"`
	GeofencingRadius *float64         `json:"geofencing_radius"` // meters
	Committee        string           `json:"committee"`
	General          *bool            `json:"general"`
	HiddenEvent      bool             `json:"hidden_event"`
	AwardIDs         []uint           `json:"award_ids"`
	ImageURL         string           `json:"image_url"`
}

func (in *eventInput) validate() string {
	if in.Name == "" {
		return "name is required"
	}
	if !in.EventType.Valid() {
		return "event_type must be one of the known event types"
	}
	if in.StartTime == nil || in.EndTime == nil {
		return "start_time and end_time are required"
	}
	if in.StartTime.After(*in.EndTime) {
		return "start_time must not be after end_time"
	}
	if in.StartTimeBuffer != nil && *in.StartTimeBuffer < 0 {
		return "start_time_buffer must not be negative"
	}
	if in.EndTimeBuffer != nil && *in.EndTimeBuffer < 0 {
		return "end_time_buffer must not be negative"
	}
	for _, p := range []*float64{in.SignInPoints, in.SignOutPoints, in.PointsPerHour} {
		if p != nil && *p < 0 {
			return "point values must not be negative"
		}
	}
	if in.GeofencingRadius != nil && *in.GeofencingRadius <= 0 {
		return "geofencing_radius must be positive"
	}
	return ""
}

// GetEvents retrieves a list of all events with optional filters
func GetEvents(c *gin.Context) {
	// Parse and validate query parameters
	queryParams := struct {
		BeforeTime  string `form:"before_time"`
		AfterTime   string `form:"after_time"`
		BetweenTime string `form:"between_time"` // comma-separated start,end
		EventType   string `form:"event_type"`
		Committee   string `form:"committee"`
		Limit       string `form:"limit"`
		Order       string `form:"order"` // "asc" or "desc"
	}{
		Order: "desc", // default to newest first
	}

	if err := c.ShouldBindQuery(&queryParams); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	if queryParams.Order != "asc" && queryParams.Order != "desc" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order must be either 'asc' or 'desc'"})
		return
	}

	// Build the base query
	query := database.DB.Preload("Organizer").Preload("Awards")

	if queryParams.BeforeTime != "" {
		beforeTime, err := time.Parse(time.RFC3339, queryParams.BeforeTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid before_time format. Use RFC3339 (e.g., 2023-10-01T00:00:00Z)"})
			return
		}
		query = query.Where("start_time < ?", beforeTime)
	}

	if queryParams.AfterTime != "" {
		afterTime, err := time.Parse(time.RFC3339, queryParams.AfterTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid after_time format. Use RFC3339 (e.g., 2023-10-01T00:00:00Z)"})
			return
		}
		query = query.Where("start_time > ?", afterTime)
	}

	if queryParams.BetweenTime != "" {
		times := strings.Split(queryParams.BetweenTime, ",")
		if len(times) != 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "between_time must contain exactly 2 comma-separated RFC3339 timestamps"})
			return
		}

		startTime, err := time.Parse(time.RFC3339, times[0])
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start time in between_time"})
			return
		}

		endTime, err := time.Parse(time.RFC3339, times[1])
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end time in between_time"})
			return
		}

		if startTime.After(endTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Start time must be before end time in between_time"})
			return
		}

		query = query.Where("start_time BETWEEN ? AND ?", startTime, endTime)
	}

	if queryParams.EventType != "" {
		query = query.Where("event_type = ?", queryParams.EventType)
	}
	if queryParams.Committee != "" {
		query = query.Where("committee = ?", queryParams.Committee)
	}

	// Hidden events are a staff-only concern
	userRole := c.GetString("role")
	isStaff := userRole == "admin" || userRole == "staff"
	if !isStaff {
		query = query.Where("hidden_event = ?", false)
	}

	// Apply ordering
	query = query.Order(fmt.Sprintf("start_time %s", queryParams.Order))

	// Apply limit if specified
	if queryParams.Limit != "" {
		limit, err := strconv.Atoi(queryParams.Limit)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		query = query.Limit(limit)
	}

	var events []models.Event
	if err := query.Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve events"})
		return
	}

	// Filter attendance information based on user role
	if !isStaff {
		for i := range events {
			events[i].Attendees = []models.AttendanceLog{}
		}
	}

	c.JSON(http.StatusOK, events)
}

// CreateEvent creates a new event (requires staff permission). Fields the
// creator leaves unset are seeded from the event type's defaults.
func CreateEvent(c *gin.Context) {
	var input eventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := input.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	// Get the organizer ID from the JWT token
	organizerID := c.GetUint("user_id")

	// Fetch the awards
	var awards []models.Award
	if len(input.AwardIDs) > 0 {
		if err := database.DB.Where("id IN ?", input.AwardIDs).Find(&awards).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid award IDs"})
			return
		}
	}

	event := models.Event{
		Name:             input.Name,
		Description:      input.Description,
		EventType:        input.EventType,
		Location:         input.Location,
		StartTime:        *input.StartTime,
		EndTime:          *input.EndTime,
		SignInPoints:     input.SignInPoints,
		SignOutPoints:    input.SignOutPoints,
		PointsPerHour:    input.PointsPerHour,
		Geolocation:      input.Geolocation,
		GeofencingRadius: input.GeofencingRadius,
		Committee:        input.Committee,
		HiddenEvent:      input.HiddenEvent,
		OrganizerID:      organizerID,
		ImageURL:         input.ImageURL,
		Awards:           awards,
	}

	// Workshops seed their sign-in award from the workshop kind
	if event.EventType == models.TypeWorkshop && event.SignInPoints == nil {
		p := models.WorkshopSignInPoints(input.WorkshopKind)
		event.SignInPoints = &p
	}
	models.ApplyDefaults(&event, input.StartTimeBuffer, input.EndTimeBuffer, input.General)

	if err := database.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetEvent retrieves details of a specific event
func GetEvent(c *gin.Context) {
	eventID := c.Param("eventId")
	var event models.Event

	if err := database.DB.Preload("Organizer").Preload("Awards").Preload("Attendees").First(&event, eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	userRole := c.GetString("role")
	if userRole != "admin" && userRole != "staff" {
		if event.HiddenEvent {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		// Attendance information is staff-only
		event.Attendees = []models.AttendanceLog{}
	}

	c.JSON(http.StatusOK, event)
}

// UpdateEvent updates event details (requires staff permission). Point offers
// are assigned exactly as provided: an absent or null offer clears the field,
// which means the action is no longer offered for the event.
func UpdateEvent(c *gin.Context) {
	eventID := c.Param("eventId")
	var input eventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := input.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var event models.Event
	if err := database.DB.First(&event, eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var awards []models.Award
	if len(input.AwardIDs) > 0 {
		if err := database.DB.Where("id IN ?", input.AwardIDs).Find(&awards).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid award IDs"})
			return
		}
	}

	event.Name = input.Name
	event.Description = input.Description
	event.EventType = input.EventType
	event.Location = input.Location
	event.StartTime = *input.StartTime
	event.EndTime = *input.EndTime
	if input.StartTimeBuffer != nil {
		event.StartTimeBuffer = *input.StartTimeBuffer
	}
	if input.EndTimeBuffer != nil {
		event.EndTimeBuffer = *input.EndTimeBuffer
	}
	event.SignInPoints = input.SignInPoints
	event.SignOutPoints = input.SignOutPoints
	event.PointsPerHour = input.PointsPerHour
	event.Geolocation = input.Geolocation
	event.GeofencingRadius = input.GeofencingRadius
	event.Committee = input.Committee
	if input.General != nil {
		event.General = *input.General
	}
	event.HiddenEvent = input.HiddenEvent
	event.ImageURL = input.ImageURL
	event.Awards = awards

	if err := database.DB.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent deletes an event and its attendance records (requires admin
// permission). This is an administrative cascade, not an engine operation.
func DeleteEvent(c *gin.Context) {
	eventID := c.Param("eventId")
	if err := database.DB.Where("event_id = ?", eventID).Delete(&models.AttendanceLog{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event attendance"})
		return
	}
	if err := database.DB.Delete(&models.Event{}, eventID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

// GetEventScanURIs returns the sign-in and sign-out QR payloads for an event
// (requires staff permission). The client renders the QR images itself.
func GetEventScanURIs(c *gin.Context) {
	eventID := c.Param("eventId")
	var event models.Event
	if err := database.DB.First(&event, eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sign_in":  engine.BuildScanURI(scanScheme, event.ID, engine.ActionSignIn),
		"sign_out": engine.BuildScanURI(scanScheme, event.ID, engine.ActionSignOut),
	})
}
