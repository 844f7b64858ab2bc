package engine

import (
	"fmt"
	"net/url"
	"strconv"
)

// Event QR codes encode a URI of the form
//
//	scheme://event?id=<eventId>&mode=sign-in|sign-out
//
// The scheme is deployment configuration; the host and query shape are the
// contract with the mobile client.

// BuildScanURI renders the QR payload for an event and action
func BuildScanURI(scheme string, eventID uint, action Action) string {
	return fmt.Sprintf("%s://event?id=%d&mode=%s", scheme, eventID, action)
}

// ParseScanURI extracts the event ID and action from a scanned QR payload.
// The scheme is not checked so staging builds can use their own.
func ParseScanURI(raw string) (uint, Action, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return 0, "", fmt.Errorf("invalid scan uri: %w", err)
	}
	if u.Host != "event" {
		return 0, "", fmt.Errorf("invalid scan uri: unexpected host %q", u.Host)
	}

	q := u.Query()
	id, err := strconv.ParseUint(q.Get("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, "", fmt.Errorf("invalid scan uri: bad event id %q", q.Get("id"))
	}

	action := Action(q.Get("mode"))
	if !action.Valid() {
		return 0, "", fmt.Errorf("invalid scan uri: bad mode %q", q.Get("mode"))
	}
	return uint(id), action, nil
}
