package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/ihsankerr/tennis-weather-bot/internal/forecast"
)

// formatDayReport renders one day's analysis as the HTML block used in the
// weekend advisory.
func formatDayReport(dayName string, a forecast.DayAnalysis, sunset time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>%s</b>\n", dayName)

	if a.Playable {
		sb.WriteString("✅ Good for tennis!\n")
		for _, w := range a.Windows {
			fmt.Fprintf(&sb, "  • %s: %.0f°C, wind %.0fmph\n", w.Label, w.TempC, w.WindMph)
		}
	} else {
		sb.WriteString("❌ Not ideal\n")
		for _, reason := range a.Reasons {
			fmt.Fprintf(&sb, "  • %s\n", reason)
		}
		if len(a.Windows) == 0 {
			sb.WriteString("  • Rain forecast throughout playing hours\n")
		}
	}

	if a.TempRangeKnown {
		fmt.Fprintf(&sb, "Temp range: %.0f-%.0f°C\n", a.MinTempC, a.MaxTempC)
	}
	fmt.Fprintf(&sb, "Sunset: %s\n", sunset.Format("15:04"))

	return sb.String()
}
