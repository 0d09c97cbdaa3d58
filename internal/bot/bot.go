// Package bot wires the forecast analyzer, the weather provider, the
// Telegram client and the state store into the three invocation modes.
// Each mode is a single synchronous run: fetch, decide, notify.
package bot

import (
	"context"
	"log"
	"time"

	"github.com/ihsankerr/tennis-weather-bot/internal/booking"
	"github.com/ihsankerr/tennis-weather-bot/internal/forecast"
	"github.com/ihsankerr/tennis-weather-bot/internal/state"
	"github.com/ihsankerr/tennis-weather-bot/internal/telegram"
	"github.com/ihsankerr/tennis-weather-bot/internal/weather"
)

// Notifier delivers one formatted message to the user.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// MessageSource returns the user's recent replies.
type MessageSource interface {
	Recent(ctx context.Context) ([]telegram.Message, error)
}

// Bot holds the collaborators shared by all modes.
type Bot struct {
	provider weather.Provider
	notifier Notifier
	source   MessageSource
	store    state.Store

	loc      weather.Location
	analyzer forecast.Config

	// now is replaceable so tests can pin the weekend.
	now func() time.Time
}

// New assembles a Bot. The analyzer configuration applies to every
// playability decision the bot makes.
func New(provider weather.Provider, notifier Notifier, source MessageSource, store state.Store, loc weather.Location, analyzer forecast.Config) *Bot {
	return &Bot{
		provider: provider,
		notifier: notifier,
		source:   source,
		store:    store,
		loc:      loc,
		analyzer: analyzer,
		now:      time.Now,
	}
}

// notifyError sends a generic failure notice. Best effort: the run is
// already failing, a delivery error only gets logged.
func (b *Bot) notifyError(ctx context.Context, text string) {
	if err := b.notifier.Send(ctx, "❌ "+text); err != nil {
		log.Printf("could not deliver failure notice: %v", err)
	}
}

// mondayWeekday maps Go's Sunday-based weekday to Monday=0..Sunday=6,
// which keeps the weekend offset math identical to how the bot has
// always computed it.
func mondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// nextSaturday returns the upcoming Saturday's date (today if it is
// Saturday).
func nextSaturday(t time.Time) time.Time {
	return t.AddDate(0, 0, (5-mondayWeekday(t)+7)%7)
}

// nextSunday returns the upcoming Sunday's date (today if it is Sunday).
func nextSunday(t time.Time) time.Time {
	return t.AddDate(0, 0, (6-mondayWeekday(t)+7)%7)
}

// sameDate reports whether two times fall on the same calendar date.
func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// samplesOn filters the forecast points down to one calendar day.
func samplesOn(points []forecast.Sample, day time.Time) []forecast.Sample {
	var out []forecast.Sample
	for _, p := range points {
		if sameDate(p.Time, day) {
			out = append(out, p)
		}
	}
	return out
}

// targetDay resolves a booked day to its upcoming date.
func targetDay(day booking.Day, now time.Time) time.Time {
	if day == booking.Saturday {
		return nextSaturday(now)
	}
	return nextSunday(now)
}
