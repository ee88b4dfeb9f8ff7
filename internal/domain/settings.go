package domain

import (
	"strconv"
	"time"
)

// Settings keys consumed by booking policy checks
const (
	SettingMaxBookingDurationHours = "max_booking_duration_hours"
	SettingMaxDaysAhead            = "max_days_ahead"
)

// Default policy values used when a setting is missing or unreadable
const (
	DefaultMaxBookingDurationHours = 4
	DefaultMaxDaysAhead            = 30
)

// Setting single key/value row
type Setting struct {
	Key         string
	Value       string
	Description *string
	UpdatedAt   time.Time
}

// BookingLimits operative parameters of the booking policy
type BookingLimits struct {
	MaxDurationHours int
	MaxDaysAhead     int
}

// DefaultBookingLimits limits applied when settings cannot be read
func DefaultBookingLimits() BookingLimits {
	return BookingLimits{
		MaxDurationHours: DefaultMaxBookingDurationHours,
		MaxDaysAhead:     DefaultMaxDaysAhead,
	}
}

// LimitsFromSettings extracts booking limits from the key/value map,
// falling back to defaults for missing or non-positive values.
func LimitsFromSettings(values map[string]string) BookingLimits {
	limits := DefaultBookingLimits()

	if v, ok := parsePositive(values[SettingMaxBookingDurationHours]); ok {
		limits.MaxDurationHours = v
	}
	if v, ok := parsePositive(values[SettingMaxDaysAhead]); ok {
		limits.MaxDaysAhead = v
	}

	return limits
}

// IsKnownSetting reports whether the key is one of the operative settings
func IsKnownSetting(key string) bool {
	return key == SettingMaxBookingDurationHours || key == SettingMaxDaysAhead
}

func parsePositive(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
