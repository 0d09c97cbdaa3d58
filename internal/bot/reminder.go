package bot

import (
	"context"
	"fmt"
	"log"

	"github.com/ihsankerr/tennis-weather-bot/internal/forecast"
)

// reminderWindowHours is how far a forecast point may sit from the booked
// hour and still describe the session.
const reminderWindowHours = 2

// RunReminder is the pre-booking mode: if a booking is pending, send a
// conditions update for it and clear it. No booking is a no-op, not an
// error.
func (b *Bot) RunReminder(ctx context.Context) error {
	log.Println("running booking reminder check")

	st, err := b.store.Load()
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	if st.Booking == nil {
		log.Println("no booking found, skipping reminder")
		return nil
	}
	bk := *st.Booking

	hour, err := bk.Hour()
	if err != nil {
		return fmt.Errorf("stored booking unusable: %w", err)
	}

	sf, err := b.provider.Forecast(ctx, b.loc)
	if err != nil {
		b.notifyError(ctx, "Error fetching weather update")
		return fmt.Errorf("fetch forecast for %s: %w", b.loc.Key(), err)
	}

	day := targetDay(bk.Day, b.now())

	var nearby []forecast.Sample
	for _, p := range samplesOn(sf.Points, day) {
		if abs(p.Time.Hour()-hour) <= reminderWindowHours {
			nearby = append(nearby, p)
		}
	}

	if len(nearby) == 0 {
		// Still remind, but keep the booking so a later run can retry
		// once the forecast covers the slot.
		msg := fmt.Sprintf("⚠️ Reminder: You're booked for %s\n\nCouldn't get detailed forecast for that time.", bk)
		if err := b.notifier.Send(ctx, msg); err != nil {
			return fmt.Errorf("send fallback reminder: %w", err)
		}
		return nil
	}

	closest := nearby[0]
	for _, p := range nearby[1:] {
		if abs(p.Time.Hour()-hour) < abs(closest.Time.Hour()-hour) {
			closest = p
		}
	}

	msg := fmt.Sprintf("🎾 <b>Tennis Reminder - %s</b>\n\n", bk)
	msg += fmt.Sprintf("🌡️ Temperature: %.0f°C\n", closest.TempC)
	msg += fmt.Sprintf("💨 Wind: %.0fmph\n", closest.WindMph())
	msg += fmt.Sprintf("🌧️ Rain chance: %.0f%%\n\n", closest.RainProbPct)

	switch {
	case closest.WillRain():
		msg += "⚠️ Rain is likely - might want to cancel!\n"
	case closest.WindMph() > b.analyzer.MaxWindMph:
		msg += fmt.Sprintf("⚠️ High winds (%.0fmph) - might be tricky!\n", closest.WindMph())
	default:
		msg += "✅ Conditions look good!\n"
	}
	msg += "\nSee you on court! 🎾"

	if err := b.notifier.Send(ctx, msg); err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}

	// The reminder consumed the booking.
	st.Booking = nil
	if err := b.store.Save(st); err != nil {
		return fmt.Errorf("clear booking: %w", err)
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
