package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/ihsankerr/tennis-weather-bot/internal/forecast"
	"github.com/ihsankerr/tennis-weather-bot/internal/weather"
)

// OpenWeatherProvider implements the weather.Provider interface for
// OpenWeatherMap: the 5-day/3-hour forecast endpoint for samples and the
// current-weather endpoint for sunset times.
type OpenWeatherProvider struct {
	name        string
	apiKey      string
	forecastURL string
	weatherURL  string
	httpCfg     HTTPClientConfig
	circuit     *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, apiKey string) *OpenWeatherProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenWeatherProvider{
		name:        "openweathermap",
		apiKey:      apiKey,
		forecastURL: "https://api.openweathermap.org/data/2.5/forecast",
		weatherURL:  "https://api.openweathermap.org/data/2.5/weather",
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// Forecast fetches the 5-day/3-hour forecast for the location and normalizes
// it into samples. An empty forecast list means the upstream payload is
// malformed (wrong city, bad key) and aborts the run.
func (p *OpenWeatherProvider) Forecast(ctx context.Context, loc weather.Location) (weather.SiteForecast, error) {
	if p.apiKey == "" {
		return weather.SiteForecast{}, fmt.Errorf("openweather api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("appid", p.apiKey)
		values.Set("units", "metric")

		q := loc.City
		if loc.Country != "" {
			q = fmt.Sprintf("%s,%s", loc.City, loc.Country)
		}
		values.Set("q", q)

		u := fmt.Sprintf("%s?%s", p.forecastURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.SiteForecast{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp float64 `json:"temp"`
			} `json:"main"`
			Wind struct {
				Speed float64 `json:"speed"`
			} `json:"wind"`
			Pop     float64 `json:"pop"` // 0..1
			Weather []struct {
				Main string `json:"main"`
			} `json:"weather"`
		} `json:"list"`
		City struct {
			Coord struct {
				Lat float64 `json:"lat"`
				Lon float64 `json:"lon"`
			} `json:"coord"`
		} `json:"city"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.SiteForecast{}, fmt.Errorf("decode forecast payload: %w", err)
	}

	if len(payload.List) == 0 {
		return weather.SiteForecast{}, fmt.Errorf("forecast payload for %s has no entries", loc.Key())
	}

	sf := weather.SiteForecast{
		Lat:    payload.City.Coord.Lat,
		Lon:    payload.City.Coord.Lon,
		Points: make([]forecast.Sample, 0, len(payload.List)),
	}

	for _, item := range payload.List {
		cond := ""
		if len(item.Weather) > 0 {
			cond = item.Weather[0].Main
		}
		sf.Points = append(sf.Points, forecast.Sample{
			Time:        time.Unix(item.Dt, 0),
			TempC:       item.Main.Temp,
			WindMS:      item.Wind.Speed,
			RainProbPct: item.Pop * 100,
			Condition:   cond,
		})
	}

	return sf, nil
}

// Sunset returns the sunset time for the coordinates. The current-weather
// endpoint only reports today's sunset; date is accepted for the interface
// contract and the few minutes of drift across a weekend do not matter
// against a one-hour safety margin.
func (p *OpenWeatherProvider) Sunset(ctx context.Context, lat, lon float64, _ time.Time) (time.Time, error) {
	if p.apiKey == "" {
		return time.Time{}, fmt.Errorf("openweather api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("appid", p.apiKey)
		values.Set("lat", fmt.Sprintf("%f", lat))
		values.Set("lon", fmt.Sprintf("%f", lon))

		u := fmt.Sprintf("%s?%s", p.weatherURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return time.Time{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Sys struct {
			Sunset int64 `json:"sunset"`
		} `json:"sys"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return time.Time{}, fmt.Errorf("decode weather payload: %w", err)
	}
	if payload.Sys.Sunset == 0 {
		return time.Time{}, fmt.Errorf("weather payload has no sunset time")
	}

	return time.Unix(payload.Sys.Sunset, 0), nil
}
