package bot

import (
	"context"
	"strings"
	"testing"

	"github.com/ihsankerr/tennis-weather-bot/internal/booking"
	"github.com/ihsankerr/tennis-weather-bot/internal/state"
	"github.com/ihsankerr/tennis-weather-bot/internal/telegram"
)

func TestRunInboxBooksFromMessage(t *testing.T) {
	src := &fakeSource{messages: []telegram.Message{
		{Text: "thanks, looks great"},
		{Text: "Booked for sat at 3pm"},
	}}
	st := state.NewMemoryStore()
	n := &fakeNotifier{}
	b := newTestBot(&fakeProvider{}, n, src, st, wednesday)

	if err := b.RunInbox(context.Background()); err != nil {
		t.Fatalf("RunInbox() error = %v", err)
	}

	after, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}
	if after.Booking == nil {
		t.Fatal("expected a stored booking")
	}
	want := booking.Booking{Day: booking.Saturday, Time: "15:00"}
	if *after.Booking != want {
		t.Errorf("booking = %+v, want %+v", *after.Booking, want)
	}

	if len(n.sent) != 1 || !strings.Contains(n.sent[0], "Saturday at 15:00") {
		t.Errorf("ack = %v", n.sent)
	}
}

func TestRunInboxStopClearsBooking(t *testing.T) {
	src := &fakeSource{messages: []telegram.Message{{Text: "stop"}}}
	st := storeWith(t, &booking.Booking{Day: booking.Sunday, Time: "15:00"})
	n := &fakeNotifier{}
	b := newTestBot(&fakeProvider{}, n, src, st, wednesday)

	if err := b.RunInbox(context.Background()); err != nil {
		t.Fatalf("RunInbox() error = %v", err)
	}

	after, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}
	if after.Booking != nil {
		t.Error("stop should clear the booking")
	}
	if len(n.sent) != 1 || !strings.Contains(n.sent[0], "Stopped") {
		t.Errorf("ack = %v", n.sent)
	}
}

func TestRunInboxNewBookingOverwritesOld(t *testing.T) {
	src := &fakeSource{messages: []telegram.Message{{Text: "booked for sunday at 11:00"}}}
	st := storeWith(t, &booking.Booking{Day: booking.Saturday, Time: "09:00"})
	b := newTestBot(&fakeProvider{}, &fakeNotifier{}, src, st, wednesday)

	if err := b.RunInbox(context.Background()); err != nil {
		t.Fatalf("RunInbox() error = %v", err)
	}

	after, _ := st.Load()
	want := booking.Booking{Day: booking.Sunday, Time: "11:00"}
	if after.Booking == nil || *after.Booking != want {
		t.Errorf("booking = %+v, want %+v", after.Booking, want)
	}
}

func TestRunInboxUnparseableMessagesChangeNothing(t *testing.T) {
	src := &fakeSource{messages: []telegram.Message{
		{Text: "booked for sunday sometime"},
		{Text: "nice weather today"},
	}}
	existing := &booking.Booking{Day: booking.Sunday, Time: "15:00"}
	st := storeWith(t, existing)
	n := &fakeNotifier{}
	b := newTestBot(&fakeProvider{}, n, src, st, wednesday)

	if err := b.RunInbox(context.Background()); err != nil {
		t.Fatalf("RunInbox() error = %v", err)
	}

	after, _ := st.Load()
	if after.Booking == nil || *after.Booking != *existing {
		t.Errorf("state changed for unparseable messages: %+v", after.Booking)
	}
	if len(n.sent) != 0 {
		t.Errorf("unparseable messages should not be acknowledged, sent = %v", n.sent)
	}
}

func TestRunInboxNoMessages(t *testing.T) {
	b := newTestBot(&fakeProvider{}, &fakeNotifier{}, &fakeSource{}, state.NewMemoryStore(), wednesday)
	if err := b.RunInbox(context.Background()); err != nil {
		t.Fatalf("RunInbox() error = %v", err)
	}
}
