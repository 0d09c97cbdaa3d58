package forecast

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// bucketHours is the width of one forecast bucket. A window that ends on a
// sample at hour H actually covers play until H+3.
const bucketHours = 3

// Analyze evaluates one calendar day of forecast samples against the
// configured thresholds and returns the playability verdict together with
// the dry windows found.
//
// A sample is in scope when its hour falls within the playing hours and its
// timestamp is at or before the sunset cutoff. The day is playable only if
// at least one dry window exists AND the maximum wind over all in-scope
// samples stays within the threshold: a wind spike outside the dry windows
// still vetoes the whole day. That bias is deliberate and callers rely on it.
func Analyze(samples []Sample, sunset time.Time, cfg Config) DayAnalysis {
	res := DayAnalysis{}

	cutoff := sunset.Add(-time.Duration(cfg.HoursBeforeSunset) * time.Hour)

	ordered := make([]Sample, len(samples))
	copy(ordered, samples)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Time.Before(ordered[j].Time) })

	// Aggregate pass: temperature range, peak wind and wind rejections
	// over every in-scope sample.
	for _, s := range ordered {
		if !inScope(s, cutoff, cfg) {
			continue
		}

		if !res.TempRangeKnown {
			res.MinTempC = s.TempC
			res.MaxTempC = s.TempC
			res.TempRangeKnown = true
		} else {
			res.MinTempC = min(res.MinTempC, s.TempC)
			res.MaxTempC = max(res.MaxTempC, s.TempC)
		}
		res.MaxWindMph = max(res.MaxWindMph, s.WindMph())

		if s.WindMph() > cfg.MaxWindMph {
			res.Reasons = appendUnique(res.Reasons, fmt.Sprintf("wind speeds up to %.0fmph", s.WindMph()))
		}
	}

	// Window pass: greedily merge consecutive dry, calm in-scope samples.
	var windows []Window
	var open *Window

	for _, s := range ordered {
		if !inScope(s, cutoff, cfg) {
			continue
		}

		if !s.WillRain() && s.WindMph() <= cfg.MaxWindMph {
			if open == nil {
				open = &Window{
					StartHour: s.Time.Hour(),
					EndHour:   s.Time.Hour() + bucketHours,
					TempC:     s.TempC,
					WindMph:   s.WindMph(),
				}
			} else {
				open.EndHour = s.Time.Hour() + bucketHours
			}
		} else if open != nil {
			windows = append(windows, *open)
			open = nil
		}
	}
	if open != nil {
		windows = append(windows, *open)
	}

	// Rain context is judged over the whole day, in scope or not, so a
	// morning window still reads "(before rain)" when the rain lands
	// after the cutoff.
	morningRain, afternoonRain := rainPeriods(ordered)

	for _, w := range windows {
		w.Label = fmt.Sprintf("%02d:00-%02d:00", w.StartHour, w.EndHour)
		switch {
		case w.StartHour < 12 && afternoonRain:
			w.Label += " (before rain)"
		case w.StartHour >= 18 && (morningRain || afternoonRain):
			w.Label += " (after rain)"
		}
		res.Windows = append(res.Windows, w)
	}

	res.Playable = len(res.Windows) > 0 && res.MaxWindMph <= cfg.MaxWindMph

	return res
}

func inScope(s Sample, cutoff time.Time, cfg Config) bool {
	h := s.Time.Hour()
	return h >= cfg.PlayStartHour && h < cfg.PlayEndHour && !s.Time.After(cutoff)
}

func rainPeriods(samples []Sample) (morning, afternoon bool) {
	for _, s := range samples {
		if !s.WillRain() {
			continue
		}
		h := s.Time.Hour()
		if h < 12 {
			morning = true
		} else if h < 18 {
			afternoon = true
		}
	}
	return morning, afternoon
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), sub)
}
