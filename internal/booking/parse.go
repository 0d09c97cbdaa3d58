package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ihsankerr/tennis-weather-bot/internal/common"
)

// Action classifies what a user message asks for.
type Action int

const (
	// ActionNone means the message is not a booking command, or a booking
	// message carried no parseable time. Callers change no state for it.
	ActionNone Action = iota
	// ActionStop clears the pending booking.
	ActionStop
	// ActionBook replaces the pending booking.
	ActionBook
)

// Command is the structured result of parsing one user message.
type Command struct {
	Action  Action
	Booking Booking // populated only for ActionBook
}

// timePattern matches the first time-of-day in a message, e.g. "15:00",
// "3pm" or a bare "3". Minutes and meridiem are optional.
var timePattern = regexp.MustCompile(`(\d{1,2}):?(\d{2})?(?:\s*(?:am|pm))?`)

// ParseMessage interprets a free-text reply. Recognized forms:
//
//	"stop"                          -> ActionStop
//	"booked for sunday at 15:00"    -> ActionBook
//	"booked for sat at 3pm"         -> ActionBook
//
// Day detection: any "saturday"/"sat" keyword means Saturday, otherwise
// Sunday. Hours are normalized to 24-hour: an explicit "pm" adds 12, an
// explicit "12am" becomes 00, and a bare hour below 9 is assumed to be
// afternoon ("booked for sunday at 3" means 15:00). That last rule is a
// heuristic for casual entry and is intentionally kept as-is.
func ParseMessage(text string) Command {
	msg := strings.ToLower(text)

	if strings.Contains(msg, "stop") {
		return Command{Action: ActionStop}
	}
	if !strings.Contains(msg, "booked") {
		return Command{Action: ActionNone}
	}

	day := Sunday
	if common.HasAny(msg, "saturday", "sat") {
		day = Saturday
	}

	m := timePattern.FindStringSubmatch(msg)
	if m == nil {
		return Command{Action: ActionNone}
	}

	hour, _ := strconv.Atoi(m[1]) // pattern guarantees digits
	minute := m[2]
	if minute == "" {
		minute = "00"
	}

	hasAM := strings.Contains(msg, "am")
	hasPM := strings.Contains(msg, "pm")
	switch {
	case hasPM && hour < 12:
		hour += 12
	case hasAM && hour == 12:
		hour = 0
	case hour < 9 && !hasAM && !hasPM:
		hour += 12
	}

	return Command{
		Action: ActionBook,
		Booking: Booking{
			Day:  day,
			Time: fmt.Sprintf("%02d:%s", hour, minute),
		},
	}
}
