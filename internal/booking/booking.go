package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// Day is a weekend day the court can be booked for.
type Day string

const (
	Saturday Day = "saturday"
	Sunday   Day = "sunday"
)

// Title returns the day capitalized for user-facing messages.
func (d Day) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// Booking is the single pending court booking. At most one exists at a time:
// a new booking overwrites it, "stop" or a fired reminder clears it.
type Booking struct {
	Day  Day    `json:"day"`
	Time string `json:"time"` // "HH:MM", 24-hour
}

// Hour returns the booked hour of day.
func (b Booking) Hour() (int, error) {
	hh, _, ok := strings.Cut(b.Time, ":")
	if !ok {
		return 0, fmt.Errorf("malformed booking time %q", b.Time)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("malformed booking time %q: %w", b.Time, err)
	}
	return h, nil
}

func (b Booking) String() string {
	return fmt.Sprintf("%s at %s", b.Day.Title(), b.Time)
}
