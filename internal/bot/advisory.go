package bot

import (
	"context"
	"fmt"
	"log"

	"github.com/ihsankerr/tennis-weather-bot/internal/forecast"
)

// RunAdvisory is the midweek mode: analyze the coming Saturday and Sunday
// and send the weekend playability report.
func (b *Bot) RunAdvisory(ctx context.Context) error {
	log.Println("running weekend advisory check")

	sf, err := b.provider.Forecast(ctx, b.loc)
	if err != nil {
		b.notifyError(ctx, "Error fetching weather data")
		return fmt.Errorf("fetch forecast for %s: %w", b.loc.Key(), err)
	}

	now := b.now()
	saturday := nextSaturday(now)
	sunday := saturday.AddDate(0, 0, 1)

	satSunset, err := b.provider.Sunset(ctx, sf.Lat, sf.Lon, saturday)
	if err != nil {
		b.notifyError(ctx, "Error fetching weather data")
		return fmt.Errorf("fetch saturday sunset: %w", err)
	}
	sunSunset, err := b.provider.Sunset(ctx, sf.Lat, sf.Lon, sunday)
	if err != nil {
		b.notifyError(ctx, "Error fetching weather data")
		return fmt.Errorf("fetch sunday sunset: %w", err)
	}

	satAnalysis := forecast.Analyze(samplesOn(sf.Points, saturday), satSunset, b.analyzer)
	sunAnalysis := forecast.Analyze(samplesOn(sf.Points, sunday), sunSunset, b.analyzer)

	msg := fmt.Sprintf("🎾 <b>%s Tennis Weather - Weekend Forecast</b>\n\n", b.loc.City)
	msg += formatDayReport("Saturday", satAnalysis, satSunset)
	msg += "\n"
	msg += formatDayReport("Sunday", sunAnalysis, sunSunset)

	if satAnalysis.Playable || sunAnalysis.Playable {
		msg += "\n💬 Reply with your booking (e.g., 'Booked for Sunday at 15:00') or 'stop' to skip this week."
	} else {
		msg += "\n😔 No tennis this week - try again next Wednesday!"
	}

	if err := b.notifier.Send(ctx, msg); err != nil {
		return fmt.Errorf("send advisory: %w", err)
	}
	return nil
}
