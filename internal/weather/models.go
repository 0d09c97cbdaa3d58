package weather

import (
	"github.com/ihsankerr/tennis-weather-bot/internal/forecast"
)

// Location represents the place we check tennis weather for.
// City/Country must be provided.
type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// Key returns a canonical string key for the location, used in logs.
func (l Location) Key() string {
	return l.City + ":" + l.Country
}

// SiteForecast is a multi-day run of 3-hour forecast points for one site,
// together with the site coordinates the provider resolved. Points are
// ordered by time ascending and cover at least the next two days.
type SiteForecast struct {
	Lat    float64
	Lon    float64
	Points []forecast.Sample
}
