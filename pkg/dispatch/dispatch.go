// Package dispatch runs the hour-by-hour merit-order allocation of
// available power against electrolyzer demand.
package dispatch

import (
	"sort"

	"github.com/saulvp23gmail/lcoh-calculator/pkg/profile"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/scenario"
)

// Source is a dispatch-ready power source: the raw configuration plus the
// derived values resolved for this run. LCOE and Profile are computed
// fresh each run, never cached on the configuration.
type Source struct {
	Config  scenario.PowerSource
	LCOE    float64
	HasLCOE bool

	// Profile is the normalized hourly capacity-factor array, nil for
	// grid sources and for sources running on the default capacity
	// factor.
	Profile []float64
}

// SourceHour records one source's contribution in one hour, in MW
// (equivalently MWh over the hour).
type SourceHour struct {
	Name        string              `json:"name"`
	Kind        scenario.SourceKind `json:"kind"`
	UsedMW      float64             `json:"used_mw"`
	CurtailedMW float64             `json:"curtailed_mw"`
}

// HourRecord is the dispatch outcome for a single hour of the year.
type HourRecord struct {
	Hour             int          `json:"hour"`
	EnergyUsedMWh    float64      `json:"energy_used_mwh"`
	CurtailedMWh     float64      `json:"curtailed_mwh"`
	DispatchFraction float64      `json:"dispatch_fraction"`
	Sources          []SourceHour `json:"sources"`
}

// Result is the full-year dispatch trace with running totals.
type Result struct {
	Hours              []HourRecord                   `json:"hours"`
	TotalEnergyUsedMWh float64                        `json:"total_energy_used_mwh"`
	TotalCurtailedMWh  float64                        `json:"total_curtailed_mwh"`
	EnergyByKind       map[scenario.SourceKind]float64 `json:"energy_by_kind"`
}

// Simulate allocates available power to electrolyzer demand for every hour
// of the year, cheapest source first. Sources without a resolved LCOE are
// excluded entirely: they contribute nothing and are not counted as
// curtailed. The allocation is greedy and hour-independent; there is no
// storage, ramp constraint, or look-ahead.
func Simulate(sources []Source, elec scenario.ElectrolyzerConfig, fin scenario.FinancialParams) *Result {
	ordered := meritOrder(sources)

	res := &Result{
		Hours:        make([]HourRecord, profile.HoursPerYear),
		EnergyByKind: make(map[scenario.SourceKind]float64),
	}

	for h := 0; h < profile.HoursPerYear; h++ {
		rec := HourRecord{
			Hour:    h,
			Sources: make([]SourceHour, 0, len(ordered)),
		}

		remaining := elec.CapacityMW
		for _, src := range ordered {
			if remaining <= 0 {
				break
			}

			available := availablePower(src, h, fin)
			used := available
			if used > remaining {
				used = remaining
			}
			curtailed := available - used
			if curtailed < 0 {
				curtailed = 0
			}

			remaining -= used
			rec.EnergyUsedMWh += used
			rec.CurtailedMWh += curtailed
			res.EnergyByKind[src.Config.Kind] += used

			rec.Sources = append(rec.Sources, SourceHour{
				Name:        src.Config.Name,
				Kind:        src.Config.Kind,
				UsedMW:      used,
				CurtailedMW: curtailed,
			})
		}

		if elec.CapacityMW > 0 {
			rec.DispatchFraction = rec.EnergyUsedMWh / elec.CapacityMW
		}

		res.TotalEnergyUsedMWh += rec.EnergyUsedMWh
		res.TotalCurtailedMWh += rec.CurtailedMWh
		res.Hours[h] = rec
	}

	return res
}

// meritOrder returns dispatchable sources sorted ascending by LCOE.
// Sources lacking an LCOE are dropped.
func meritOrder(sources []Source) []Source {
	ordered := make([]Source, 0, len(sources))
	for _, s := range sources {
		if s.HasLCOE {
			ordered = append(ordered, s)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].LCOE < ordered[j].LCOE
	})
	return ordered
}

// availablePower returns a source's output this hour in MW: profiled
// capacity-factor output, full capacity for grid, or the default
// capacity factor as a fallback.
func availablePower(src Source, hour int, fin scenario.FinancialParams) float64 {
	switch {
	case len(src.Profile) > 0:
		if hour >= len(src.Profile) {
			return 0
		}
		return src.Config.CapacityMW * src.Profile[hour]
	case src.Config.IsGrid():
		return src.Config.CapacityMW
	default:
		return src.Config.CapacityMW * fin.DefaultCapacityFactor()
	}
}
