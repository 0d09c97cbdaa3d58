package weather

import (
	"context"
	"time"
)

// Provider abstracts the weather data source (e.g. OpenWeatherMap).
type Provider interface {
	Name() string

	// Forecast returns 3-hour forecast points covering at least the next
	// two days for the location, plus the site coordinates.
	Forecast(ctx context.Context, loc Location) (SiteForecast, error)

	// Sunset returns the sunset time for the coordinates on the given
	// date. Providers only able to report today's sunset may return that;
	// day length drifts by a couple of minutes across a weekend.
	Sunset(ctx context.Context, lat, lon float64, date time.Time) (time.Time, error)
}
