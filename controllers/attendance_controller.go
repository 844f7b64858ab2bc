package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/TAMUSHPE/MobileApp-sub002/database"
	"github.com/TAMUSHPE/MobileApp-sub002/engine"
	"github.com/TAMUSHPE/MobileApp-sub002/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// scanScheme is the URI scheme embedded in event QR payloads, set from
// configuration at startup
var scanScheme = "tamu-shpe"

func SetScanScheme(scheme string) {
	scanScheme = scheme
}

// errDuplicateScan marks a concurrent first scan losing the insert race on
// the ledger's unique (user_id, event_id) index
var errDuplicateScan = errors.New("attendance already logged")

// ScanAttendance handles a scanned event QR code: it parses the scan URI,
// runs the attendance rules and, on success, persists the sign-in/out under
// the ledger's uniqueness guarantee. Every business outcome is returned as
// HTTP 200 with a status code the client renders; only malformed payloads and
// infrastructure failures use error statuses.
func ScanAttendance(c *gin.Context) {
	var input struct {
		URI      string           `json:"uri"`
		Location *models.Geopoint `json:"location"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": engine.StatusError, "error": err.Error()})
		return
	}

	eventID, action, err := engine.ParseScanURI(input.URI)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": engine.StatusError, "error": err.Error()})
		return
	}

	userID := c.GetUint("user_id")
	isStudent := c.GetString("role") == string(models.RoleStudent)

	var location *engine.Location
	if input.Location != nil {
		location = &engine.Location{Lat: input.Location.Lat, Lng: input.Location.Lng}
	}

	outcome, entry, err := logAttendance(eventID, userID, action, time.Now(), location, isStudent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": engine.StatusError, "error": "Failed to record attendance"})
		return
	}

	if outcome.Status != engine.StatusSuccess {
		c.JSON(http.StatusOK, gin.H{"status": outcome.Status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": outcome.Status, "attendance": entry})
}

// logAttendance runs the read-validate-write sequence as a single
// transaction. The member's ledger row is locked for the duration, so two
// concurrent scans for the same member and event serialize and the second one
// hits the duplicate check; a concurrent pair of first-ever scans races on
// the unique index instead, and the loser is reported as ALREADY_LOGGED.
func logAttendance(eventID, userID uint, action engine.Action, now time.Time, location *engine.Location, isStudent bool) (engine.Outcome, *models.AttendanceLog, error) {
	var outcome engine.Outcome
	var result *models.AttendanceLog

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.First(&event, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				outcome = engine.Outcome{Status: engine.StatusEventNotFound}
				return nil
			}
			return err
		}

		var entry models.AttendanceLog
		var existing *models.AttendanceLog
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND event_id = ?", userID, eventID).
			First(&entry).Error
		switch {
		case err == nil:
			existing = &entry
		case errors.Is(err, gorm.ErrRecordNotFound):
			entry = models.AttendanceLog{UserID: userID, EventID: eventID}
		default:
			return err
		}

		outcome = engine.Validate(&event, action, now, location, isStudent, existing)
		if outcome.Status != engine.StatusSuccess {
			return nil
		}

		var previousPoints float64
		if entry.PointsAwarded != nil {
			previousPoints = *entry.PointsAwarded
		}

		engine.Apply(&event, &entry, action, outcome)

		if err := tx.Save(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errDuplicateScan
			}
			return err
		}

		// Keep the member's running total in step with the ledger
		if !entry.Verified && entry.PointsAwarded != nil {
			delta := *entry.PointsAwarded - previousPoints
			if delta != 0 {
				if err := tx.Model(&models.User{}).Where("id = ?", userID).
					Update("current_points", gorm.Expr("current_points + ?", delta)).Error; err != nil {
					return err
				}
			}
		}

		result = &entry
		return nil
	})
	if errors.Is(err, errDuplicateScan) {
		return engine.Outcome{Status: engine.StatusAlreadyLogged}, nil, nil
	}
	return outcome, result, err
}

// GetMyAttendance returns the caller's ledger entries
func GetMyAttendance(c *gin.Context) {
	userID := c.GetUint("user_id")

	var entries []models.AttendanceLog
	if err := database.DB.Preload("Event").Where("user_id = ?", userID).
		Order("created_at desc").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve attendance"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetEventAttendance returns the full ledger for an event (requires staff
// permission)
func GetEventAttendance(c *gin.Context) {
	eventID := c.Param("eventId")

	var event models.Event
	if err := database.DB.First(&event, eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var entries []models.AttendanceLog
	if err := database.DB.Preload("User").Where("event_id = ?", event.ID).
		Order("created_at asc").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve attendance"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// VerifyAttendance lets staff override a member's ledger entry: set the
// awarded points manually and/or mark the entry verified. A verified entry is
// authoritative and the automatic recomputation never touches it again. The
// entry is created if the member never scanned (retroactive credit).
func VerifyAttendance(c *gin.Context) {
	eventID := c.Param("eventId")
	userID := c.Param("userId")

	var input struct {
		PointsAwarded *float64 `json:"points_awarded"`
		Verified      *bool    `json:"verified"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.PointsAwarded != nil && *input.PointsAwarded < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "points_awarded must not be negative"})
		return
	}

	var event models.Event
	if err := database.DB.First(&event, eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var entry models.AttendanceLog
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND event_id = ?", user.ID, event.ID).
			First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			entry = models.AttendanceLog{UserID: user.ID, EventID: event.ID}
		} else if err != nil {
			return err
		}

		var previousPoints float64
		if entry.PointsAwarded != nil {
			previousPoints = *entry.PointsAwarded
		}

		if input.PointsAwarded != nil {
			entry.PointsAwarded = input.PointsAwarded
		}
		if input.Verified != nil {
			entry.Verified = *input.Verified
		}

		if err := tx.Save(&entry).Error; err != nil {
			return err
		}

		if input.PointsAwarded != nil {
			delta := *input.PointsAwarded - previousPoints
			if delta != 0 {
				if err := tx.Model(&models.User{}).Where("id = ?", user.ID).
					Update("current_points", gorm.Expr("current_points + ?", delta)).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update attendance"})
		return
	}

	c.JSON(http.StatusOK, entry)
}
