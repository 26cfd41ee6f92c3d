package notes

import (
	"fmt"
	"time"
)

// ConversionError is the display value for an unparseable timestamp. The
// sheet still renders; only the time line degrades.
const ConversionError = "Time conversion error"

// Accepted ISO-8601 shapes. RFC 3339 covers the Z suffix and explicit
// offsets; the offset-less layout is read as UTC. The parser accepts
// fractional seconds with either layout.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Stamp formats payload timestamps in the sheet's target zone.
type Stamp struct {
	zone  *time.Location
	label string

	// Now supplies the wall clock when a payload carries no timestamp.
	// Nil means time.Now.
	Now func() time.Time
}

// NewStamp builds a Stamp for a fixed UTC offset, e.g. NewStamp(6, "GMT+6")
// for Asia/Dhaka.
func NewStamp(offsetHours int, label string) Stamp {
	return Stamp{
		zone:  time.FixedZone(label, offsetHours*3600),
		label: label,
	}
}

// Display converts an ISO-8601 timestamp to the target zone's display
// string, formatted as "2006-01-02 15:04:05" plus the zone label. A
// malformed value yields ConversionError; an empty value formats the current
// wall clock. Total over all inputs, never errors.
func (s Stamp) Display(raw string) string {
	if raw == "" {
		now := time.Now
		if s.Now != nil {
			now = s.Now
		}
		return s.format(now())
	}
	t, err := parseISO(raw)
	if err != nil {
		return ConversionError
	}
	return s.format(t)
}

func (s Stamp) format(t time.Time) string {
	zone := s.zone
	if zone == nil {
		// zero Stamp: display UTC with no label
		zone = time.UTC
	}
	out := t.In(zone).Format("2006-01-02 15:04:05")
	if s.label != "" {
		out += " " + s.label
	}
	return out
}

func parseISO(raw string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}
