package bot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRunAdvisoryPlayableWeekend(t *testing.T) {
	p := &fakeProvider{sunsetHour: 20}
	for _, day := range []time.Time{saturday, sunday} {
		for _, h := range []int{9, 12, 15} {
			p.sf.Points = append(p.sf.Points, calmAt(day.Add(time.Duration(h)*time.Hour), 16))
		}
	}

	n := &fakeNotifier{}
	b := newTestBot(p, n, &fakeSource{}, nil, wednesday)

	if err := b.RunAdvisory(context.Background()); err != nil {
		t.Fatalf("RunAdvisory() error = %v", err)
	}
	if len(n.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(n.sent))
	}

	msg := n.sent[0]
	for _, want := range []string{
		"<b>Edinburgh Tennis Weather - Weekend Forecast</b>",
		"<b>Saturday</b>",
		"<b>Sunday</b>",
		"✅ Good for tennis!",
		"09:00-18:00",
		"Temp range: 16-16°C",
		"Sunset: 20:00",
		"Reply with your booking",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("advisory missing %q:\n%s", want, msg)
		}
	}
}

func TestRunAdvisoryWashedOutWeekend(t *testing.T) {
	p := &fakeProvider{sunsetHour: 20}
	for _, day := range []time.Time{saturday, sunday} {
		for _, h := range []int{9, 12, 15} {
			p.sf.Points = append(p.sf.Points, rainAt(day.Add(time.Duration(h)*time.Hour)))
		}
	}

	n := &fakeNotifier{}
	b := newTestBot(p, n, &fakeSource{}, nil, wednesday)

	if err := b.RunAdvisory(context.Background()); err != nil {
		t.Fatalf("RunAdvisory() error = %v", err)
	}

	msg := n.sent[0]
	for _, want := range []string{
		"❌ Not ideal",
		"Rain forecast throughout playing hours",
		"No tennis this week",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("advisory missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "Reply with your booking") {
		t.Error("washed-out weekend should not prompt for a booking")
	}
}

func TestRunAdvisoryForecastFailure(t *testing.T) {
	p := &fakeProvider{forecastErr: errors.New("upstream down")}
	n := &fakeNotifier{}
	b := newTestBot(p, n, &fakeSource{}, nil, wednesday)

	if err := b.RunAdvisory(context.Background()); err == nil {
		t.Fatal("expected error when forecast fetch fails")
	}
	if len(n.sent) != 1 || !strings.Contains(n.sent[0], "❌") {
		t.Errorf("expected a failure notice, sent = %v", n.sent)
	}
}

func TestRunAdvisorySamplesBucketedByDay(t *testing.T) {
	p := &fakeProvider{sunsetHour: 20}
	// Saturday is calm, Sunday is a washout.
	for _, h := range []int{9, 12, 15} {
		p.sf.Points = append(p.sf.Points, calmAt(saturday.Add(time.Duration(h)*time.Hour), 16))
		p.sf.Points = append(p.sf.Points, rainAt(sunday.Add(time.Duration(h)*time.Hour)))
	}

	n := &fakeNotifier{}
	b := newTestBot(p, n, &fakeSource{}, nil, wednesday)

	if err := b.RunAdvisory(context.Background()); err != nil {
		t.Fatalf("RunAdvisory() error = %v", err)
	}

	msg := n.sent[0]
	satPart := msg[strings.Index(msg, "<b>Saturday</b>"):strings.Index(msg, "<b>Sunday</b>")]
	sunPart := msg[strings.Index(msg, "<b>Sunday</b>"):]

	if !strings.Contains(satPart, "✅") {
		t.Errorf("saturday section should be playable:\n%s", satPart)
	}
	if !strings.Contains(sunPart, "❌") {
		t.Errorf("sunday section should not be playable:\n%s", sunPart)
	}
	// A playable Saturday still prompts for a booking.
	if !strings.Contains(msg, "Reply with your booking") {
		t.Error("expected booking prompt")
	}
}
