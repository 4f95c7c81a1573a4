package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/saulvp23gmail/lcoh-calculator/pkg/scenario"
)

const defaultArchiveURL = "https://archive-api.open-meteo.com/v1/archive"

// Reference values for converting archive weather readings into
// capacity factors.
const (
	// Standard test condition irradiance for PV panels, W/m².
	stcIrradianceWM2 = 1000.0

	// Generic turbine power curve, m/s.
	windCutInMS  = 3.0
	windRatedMS  = 12.0
	windCutOutMS = 25.0
)

// OpenMeteo fetches historical hourly weather from the Open-Meteo
// archive API and maps it to generation capacity factors.
type OpenMeteo struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// NewOpenMeteo creates a provider against the public archive endpoint.
func NewOpenMeteo(log *zap.Logger) *OpenMeteo {
	return &OpenMeteo{
		baseURL: defaultArchiveURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

// Name identifies the provider in logs and reports.
func (o *OpenMeteo) Name() string { return "open-meteo" }

type archiveResponse struct {
	Hourly struct {
		ShortwaveRadiation []float64 `json:"shortwave_radiation"`
		WindSpeed10M       []float64 `json:"wind_speed_10m"`
	} `json:"hourly"`
	Reason string `json:"reason"`
	Error  bool   `json:"error"`
}

// FetchHourly retrieves one calendar year of hourly samples for the
// given location and converts them to fractions of rated output.
func (o *OpenMeteo) FetchHourly(ctx context.Context, loc scenario.Location, year int, kind scenario.SourceKind) ([]float64, error) {
	variable := ""
	switch kind {
	case scenario.KindSolar:
		variable = "shortwave_radiation"
	case scenario.KindWind:
		variable = "wind_speed_10m"
	default:
		return nil, fmt.Errorf("open-meteo: no hourly variable for source kind %q", kind)
	}

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", loc.Lat))
	q.Set("longitude", fmt.Sprintf("%.4f", loc.Lng))
	q.Set("start_date", fmt.Sprintf("%d-01-01", year))
	q.Set("end_date", fmt.Sprintf("%d-12-31", year))
	q.Set("hourly", variable)
	q.Set("wind_speed_unit", "ms")
	q.Set("timezone", "UTC")

	reqURL := o.baseURL + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("open-meteo: building request: %w", err)
	}

	start := time.Now()
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("open-meteo: fetching archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open-meteo: archive returned status %d", resp.StatusCode)
	}

	var body archiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("open-meteo: decoding archive response: %w", err)
	}
	if body.Error {
		return nil, fmt.Errorf("open-meteo: %s", body.Reason)
	}

	var samples []float64
	switch kind {
	case scenario.KindSolar:
		samples = make([]float64, len(body.Hourly.ShortwaveRadiation))
		for i, wm2 := range body.Hourly.ShortwaveRadiation {
			samples[i] = wm2 / stcIrradianceWM2
		}
	case scenario.KindWind:
		samples = make([]float64, len(body.Hourly.WindSpeed10M))
		for i, ms := range body.Hourly.WindSpeed10M {
			samples[i] = windCapacityFactor(ms)
		}
	}

	o.log.Info("fetched hourly profile",
		zap.String("provider", o.Name()),
		zap.String("kind", string(kind)),
		zap.Float64("lat", loc.Lat),
		zap.Float64("lng", loc.Lng),
		zap.Int("year", year),
		zap.Int("samples", len(samples)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if len(samples) == 0 {
		return nil, ErrEmptyProfile
	}
	return samples, nil
}

// windCapacityFactor maps 10m wind speed to a fraction of rated turbine
// output using a cubic curve between cut-in and rated speed.
func windCapacityFactor(ms float64) float64 {
	switch {
	case ms < windCutInMS || ms >= windCutOutMS:
		return 0
	case ms >= windRatedMS:
		return 1
	default:
		frac := (ms - windCutInMS) / (windRatedMS - windCutInMS)
		return frac * frac * frac
	}
}
