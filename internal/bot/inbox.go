package bot

import (
	"context"
	"fmt"
	"log"

	"github.com/ihsankerr/tennis-weather-bot/internal/booking"
)

// RunInbox is the message-check mode: scan recent replies for a booking or
// a stop command and update the state. The first actionable message wins;
// unparseable messages change nothing.
func (b *Bot) RunInbox(ctx context.Context) error {
	log.Println("checking for booking messages")

	messages, err := b.source.Recent(ctx)
	if err != nil {
		return fmt.Errorf("fetch recent messages: %w", err)
	}
	if len(messages) == 0 {
		return nil
	}

	st, err := b.store.Load()
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	for _, m := range messages {
		cmd := booking.ParseMessage(m.Text)

		switch cmd.Action {
		case booking.ActionStop:
			st.Booking = nil
			if err := b.store.Save(st); err != nil {
				return fmt.Errorf("clear booking: %w", err)
			}
			if err := b.notifier.Send(ctx, "👍 Stopped - no booking this week."); err != nil {
				return fmt.Errorf("send stop ack: %w", err)
			}
			return nil

		case booking.ActionBook:
			st.Booking = &cmd.Booking
			if err := b.store.Save(st); err != nil {
				return fmt.Errorf("save booking: %w", err)
			}
			ack := fmt.Sprintf("✅ Booked! I'll remind you on Friday about %s.", cmd.Booking)
			if err := b.notifier.Send(ctx, ack); err != nil {
				return fmt.Errorf("send booking ack: %w", err)
			}
			return nil
		}
	}

	log.Println("no actionable messages")
	return nil
}
