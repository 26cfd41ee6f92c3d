package notes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStampDisplayConvertsToTargetZone(t *testing.T) {
	s := NewStamp(6, "GMT+6")

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "explicit negative offset",
			raw:  "2025-08-29T10:55:30.742-04:00",
			want: "2025-08-29 20:55:30 GMT+6",
		},
		{
			name: "zulu suffix",
			raw:  "2025-08-29T14:55:30Z",
			want: "2025-08-29 20:55:30 GMT+6",
		},
		{
			name: "date rolls forward across midnight",
			raw:  "2025-08-29T20:30:00-04:00",
			want: "2025-08-30 06:30:00 GMT+6",
		},
		{
			name: "offset-less timestamp read as UTC",
			raw:  "2025-08-29T10:00:00",
			want: "2025-08-29 16:00:00 GMT+6",
		},
		{
			name: "fractional seconds without offset",
			raw:  "2025-08-29T10:00:00.123",
			want: "2025-08-29 16:00:00 GMT+6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Display(tt.raw))
		})
	}
}

func TestStampDisplayMalformed(t *testing.T) {
	s := NewStamp(6, "GMT+6")

	for _, raw := range []string{"not-a-date", "2025-13-45", "29/08/2025 10:55"} {
		assert.Equal(t, ConversionError, s.Display(raw), "input %q", raw)
	}
}

func TestStampDisplayEmptyUsesWallClock(t *testing.T) {
	s := NewStamp(6, "GMT+6")
	s.Now = func() time.Time {
		return time.Date(2025, 8, 29, 14, 55, 30, 0, time.UTC)
	}

	assert.Equal(t, "2025-08-29 20:55:30 GMT+6", s.Display(""))
}

func TestStampOtherZones(t *testing.T) {
	s := NewStamp(-5, "GMT-5")
	assert.Equal(t, "2025-08-29 09:55:30 GMT-5", s.Display("2025-08-29T14:55:30Z"))
}

func TestZeroStampDisplaysUTC(t *testing.T) {
	var s Stamp
	assert.Equal(t, "2025-08-29 14:55:30", s.Display("2025-08-29T14:55:30Z"))
	assert.Equal(t, ConversionError, s.Display("not-a-date"))
}
