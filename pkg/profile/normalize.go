package profile

import (
	"errors"
	"math"
)

// Hour accounting uses the non-leap convention throughout.
const (
	HoursPerYear = 8760
	HoursPerDay  = 24
	DaysPerYear  = 365
)

// ErrEmptyProfile indicates a profile fetch yielded no usable samples.
// The caller decides whether to fall back to a default capacity factor
// or reject the run.
var ErrEmptyProfile = errors.New("profile: no usable samples")

// Normalize converts raw per-hour generation samples (fractions of rated
// output, UTC-anchored) into a clamped capacity-factor array of exactly
// HoursPerYear entries, shifted into local solar time for the given
// longitude. Short input is zero-padded, long input truncated.
func Normalize(raw []float64, longitude float64) ([]float64, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyProfile
	}

	cf := make([]float64, HoursPerYear)
	for i := 0; i < HoursPerYear && i < len(raw); i++ {
		cf[i] = clamp01(raw[i])
	}

	return ShiftToLocalTime(cf, TimezoneOffsetHours(longitude)), nil
}

// TimezoneOffsetHours approximates the UTC offset from longitude,
// 15 degrees per hour (solar-time approximation).
func TimezoneOffsetHours(longitude float64) int {
	return int(math.Round(longitude / 15.0))
}

// ShiftToLocalTime redistributes a UTC-indexed hourly array so that each
// UTC slot (day, hour) carries the sample from the corresponding local
// solar hour. Days wrap modulo the year. A zero offset passes through
// unchanged.
func ShiftToLocalTime(cf []float64, offsetHours int) []float64 {
	if offsetHours == 0 {
		return cf
	}

	out := make([]float64, HoursPerYear)
	for day := 0; day < DaysPerYear; day++ {
		for hour := 0; hour < HoursPerDay; hour++ {
			localHour := hour - offsetHours
			localDay := day
			for localHour < 0 {
				localHour += HoursPerDay
				localDay--
			}
			for localHour >= HoursPerDay {
				localHour -= HoursPerDay
				localDay++
			}
			localDay = ((localDay % DaysPerYear) + DaysPerYear) % DaysPerYear

			srcIdx := localDay*HoursPerDay + localHour
			if srcIdx >= 0 && srcIdx < len(cf) {
				out[day*HoursPerDay+hour] = cf[srcIdx]
			}
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
