package profile

import (
	"context"
	"errors"

	"github.com/saulvp23gmail/lcoh-calculator/pkg/scenario"
)

// ErrInvalidLocation indicates a profile fetch was attempted for a source
// whose coordinates are missing or out of range.
var ErrInvalidLocation = errors.New("profile: invalid location")

// Provider abstracts an hourly generation-data source. Implementations
// return raw per-hour samples as fractions of rated output, UTC-anchored,
// roughly one year long; the engine consumes only the normalized result.
type Provider interface {
	Name() string
	FetchHourly(ctx context.Context, loc scenario.Location, year int, kind scenario.SourceKind) ([]float64, error)
}

// FetchNormalized fetches a source's raw profile and normalizes it into
// a capacity-factor array aligned to local solar time. The source must
// carry a valid location.
func FetchNormalized(ctx context.Context, p Provider, src scenario.PowerSource) ([]float64, error) {
	if src.Location == nil {
		return nil, ErrInvalidLocation
	}
	loc := *src.Location
	if loc.Lat < -90 || loc.Lat > 90 || loc.Lng < -180 || loc.Lng > 180 {
		return nil, ErrInvalidLocation
	}

	raw, err := p.FetchHourly(ctx, loc, src.Year, src.Kind)
	if err != nil {
		return nil, err
	}
	return Normalize(raw, loc.Lng)
}
