package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ihsankerr/tennis-weather-bot/internal/weather"
)

const forecastPayload = `{
  "list": [
    {
      "dt": 1756542000,
      "main": {"temp": 16.2},
      "wind": {"speed": 4.5},
      "pop": 0.1,
      "weather": [{"main": "Clouds"}]
    },
    {
      "dt": 1756552800,
      "main": {"temp": 14.8},
      "wind": {"speed": 6.1},
      "pop": 0.6,
      "weather": [{"main": "Rain"}]
    }
  ],
  "city": {"coord": {"lat": 55.9533, "lon": -3.1883}}
}`

func TestOpenWeatherProviderForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("q") != "Edinburgh,GB" {
			t.Errorf("q param = %s, want Edinburgh,GB", query.Get("q"))
		}
		if query.Get("units") != "metric" {
			t.Error("units param should be 'metric'")
		}
		if query.Get("appid") != "test-key" {
			t.Error("appid param missing")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(forecastPayload))
	}))
	defer server.Close()

	p := NewOpenWeatherProvider(server.Client(), "test-key")
	p.forecastURL = server.URL

	sf, err := p.Forecast(context.Background(), weather.Location{City: "Edinburgh", Country: "GB"})
	if err != nil {
		t.Fatalf("Forecast() error = %v", err)
	}

	if sf.Lat != 55.9533 || sf.Lon != -3.1883 {
		t.Errorf("coords = (%v, %v), want Edinburgh", sf.Lat, sf.Lon)
	}
	if len(sf.Points) != 2 {
		t.Fatalf("points = %d, want 2", len(sf.Points))
	}

	first := sf.Points[0]
	if first.TempC != 16.2 || first.WindMS != 4.5 || first.Condition != "Clouds" {
		t.Errorf("first point = %+v", first)
	}
	if first.RainProbPct != 10 {
		t.Errorf("rain prob = %v, want pop scaled to percent", first.RainProbPct)
	}
	if !first.Time.Equal(time.Unix(1756542000, 0)) {
		t.Errorf("timestamp = %v", first.Time)
	}
	if !sf.Points[1].WillRain() {
		t.Error("second point should count as raining")
	}
}

func TestOpenWeatherProviderForecastEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
	}))
	defer server.Close()

	p := NewOpenWeatherProvider(server.Client(), "test-key")
	p.forecastURL = server.URL

	if _, err := p.Forecast(context.Background(), weather.Location{City: "Nowhere"}); err == nil {
		t.Error("expected error on payload without forecast entries")
	}
}

func TestOpenWeatherProviderSunset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("lat") == "" || query.Get("lon") == "" {
			t.Error("lat/lon params missing")
		}
		w.Write([]byte(`{"sys": {"sunset": 1756580400}}`))
	}))
	defer server.Close()

	p := NewOpenWeatherProvider(server.Client(), "test-key")
	p.weatherURL = server.URL

	sunset, err := p.Sunset(context.Background(), 55.95, -3.19, time.Now())
	if err != nil {
		t.Fatalf("Sunset() error = %v", err)
	}
	if !sunset.Equal(time.Unix(1756580400, 0)) {
		t.Errorf("sunset = %v", sunset)
	}
}

func TestOpenWeatherProviderRequiresAPIKey(t *testing.T) {
	p := NewOpenWeatherProvider(http.DefaultClient, "")

	if _, err := p.Forecast(context.Background(), weather.Location{City: "Edinburgh"}); err == nil {
		t.Error("Forecast should fail without an api key")
	}
	if _, err := p.Sunset(context.Background(), 0, 0, time.Now()); err == nil {
		t.Error("Sunset should fail without an api key")
	}
}
