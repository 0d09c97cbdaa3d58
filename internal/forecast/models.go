package forecast

import "time"

// msToMph converts metric wind speed to miles per hour.
const msToMph = 2.237

// rainProbThresholdPct is the precipitation probability above which a
// sample counts as raining even when the condition text says otherwise.
const rainProbThresholdPct = 30.0

// Sample is a single normalized forecast point. Each sample represents a
// 3-hour forecast bucket starting at Time. Samples are immutable once fetched.
type Sample struct {
	Time        time.Time
	TempC       float64
	WindMS      float64
	RainProbPct float64 // 0-100
	Condition   string  // provider condition text, e.g. "Rain", "Clouds"
}

// WindMph returns the sample's wind speed in miles per hour.
func (s Sample) WindMph() float64 {
	return s.WindMS * msToMph
}

// WillRain reports whether the sample counts as raining: either the
// precipitation probability exceeds the threshold or the condition text
// mentions rain.
func (s Sample) WillRain() bool {
	return s.RainProbPct > rainProbThresholdPct || containsFold(s.Condition, "rain")
}

// Window is a contiguous playable interval within a day. EndHour is
// StartHour of the last merged sample plus the 3-hour bucket width.
// Windows are derived values and never mutated after creation.
type Window struct {
	StartHour int
	EndHour   int
	TempC     float64 // representative: first sample in the window
	WindMph   float64 // representative: first sample in the window
	Label     string  // e.g. "09:00-12:00 (before rain)"
}

// DayAnalysis is the verdict for one calendar day.
type DayAnalysis struct {
	Playable bool
	Windows  []Window // chronological, non-overlapping
	Reasons  []string // deduplicated rejection reasons

	// Temperature and wind aggregates over in-scope samples only.
	// TempRangeKnown is false when no sample fell in scope.
	MinTempC       float64
	MaxTempC       float64
	MaxWindMph     float64
	TempRangeKnown bool
}

// Config holds the playability thresholds. Passed explicitly so callers
// control them instead of package-level globals.
type Config struct {
	MaxWindMph        float64
	PlayStartHour     int // inclusive
	PlayEndHour       int // exclusive
	HoursBeforeSunset int // safety margin before sunset
}

// DefaultConfig mirrors the thresholds the bot has always used:
// play 9am-10pm, stop an hour before sunset, give up above 15mph.
func DefaultConfig() Config {
	return Config{
		MaxWindMph:        15,
		PlayStartHour:     9,
		PlayEndHour:       22,
		HoursBeforeSunset: 1,
	}
}
