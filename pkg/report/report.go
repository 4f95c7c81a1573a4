// Package report reduces the hourly dispatch trace into the monthly,
// mix, and utilization figures the presentation layer consumes.
package report

import (
	"sort"

	"github.com/saulvp23gmail/lcoh-calculator/pkg/dispatch"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/profile"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/scenario"
)

// monthDays is the standard non-leap month-length table.
var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Monthly is one month's dispatched and curtailed energy.
type Monthly struct {
	Month        string  `json:"month"`
	EnergyMWh    float64 `json:"energy_mwh"`
	CurtailedMWh float64 `json:"curtailed_mwh"`
}

// MixEntry is one source kind's share of total dispatched energy.
type MixEntry struct {
	Kind      scenario.SourceKind `json:"kind"`
	EnergyMWh float64             `json:"energy_mwh"`
	Pct       float64             `json:"pct"`
}

// EnergyStats summarizes year-level energy flows.
type EnergyStats struct {
	TotalEnergyUsedMWh float64 `json:"total_energy_used_mwh"`
	TotalCurtailedMWh  float64 `json:"total_curtailed_mwh"`
	CurtailmentPct     float64 `json:"curtailment_pct"`
	UtilizationRate    float64 `json:"utilization_rate"`
}

// MonthlyTotals buckets the hourly trace into 12 calendar months,
// summing in hour order.
func MonthlyTotals(hours []dispatch.HourRecord) [12]Monthly {
	var out [12]Monthly

	month := 0
	monthEnd := monthDays[0] * profile.HoursPerDay
	for i := range out {
		out[i].Month = monthNames[i]
	}

	for h, rec := range hours {
		for h >= monthEnd && month < 11 {
			month++
			monthEnd += monthDays[month] * profile.HoursPerDay
		}
		out[month].EnergyMWh += rec.EnergyUsedMWh
		out[month].CurtailedMWh += rec.CurtailedMWh
	}

	return out
}

// EnergyMix converts per-kind energy totals into percentage shares,
// sorted by descending energy.
func EnergyMix(byKind map[scenario.SourceKind]float64, totalUsedMWh float64) []MixEntry {
	mix := make([]MixEntry, 0, len(byKind))
	for kind, mwh := range byKind {
		entry := MixEntry{Kind: kind, EnergyMWh: mwh}
		if totalUsedMWh > 0 {
			entry.Pct = mwh / totalUsedMWh * 100
		}
		mix = append(mix, entry)
	}
	sort.Slice(mix, func(i, j int) bool {
		if mix[i].EnergyMWh != mix[j].EnergyMWh {
			return mix[i].EnergyMWh > mix[j].EnergyMWh
		}
		return mix[i].Kind < mix[j].Kind
	})
	return mix
}

// Stats derives utilization and curtailment figures from dispatch totals.
// Both percentages guard their zero denominators.
func Stats(d *dispatch.Result, elec scenario.ElectrolyzerConfig) EnergyStats {
	stats := EnergyStats{
		TotalEnergyUsedMWh: d.TotalEnergyUsedMWh,
		TotalCurtailedMWh:  d.TotalCurtailedMWh,
	}

	if gross := d.TotalEnergyUsedMWh + d.TotalCurtailedMWh; gross > 0 {
		stats.CurtailmentPct = d.TotalCurtailedMWh / gross * 100
	}
	if elec.CapacityMW > 0 {
		stats.UtilizationRate = d.TotalEnergyUsedMWh / (elec.CapacityMW * profile.HoursPerYear)
	}

	return stats
}
