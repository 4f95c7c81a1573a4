// Package lcoe computes the discounted Levelized Cost of Energy for a
// single power source.
package lcoe

import (
	"errors"
	"math"

	"github.com/saulvp23gmail/lcoh-calculator/pkg/profile"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/scenario"
)

const kwPerMW = 1000.0

// ErrZeroEnergy indicates the source produces no energy over the project
// lifetime, so its LCOE is undefined. It is never coerced to zero.
var ErrZeroEnergy = errors.New("lcoe: present value of lifetime energy is zero")

// Compute returns the levelized cost of energy in $/kWh for one source.
//
// Grid sources short-circuit to their fixed electricity price. For
// generating sources, cost and energy are discounted over the project
// lifetime at the configured return rate; energy is assumed constant
// every year (no degradation model). The profile argument overrides any
// profile attached to the source; pass nil to fall back to the source's
// own profile or, failing that, the default capacity factor.
func Compute(src scenario.PowerSource, prof []float64, fin scenario.FinancialParams) (float64, error) {
	if src.IsGrid() {
		return src.GridPriceKWh, nil
	}

	if prof == nil {
		prof = src.CapacityFactors
	}

	annualKWh := AnnualEnergyMWh(src, prof, fin) * kwPerMW
	if annualKWh <= 0 {
		return 0, ErrZeroEnergy
	}

	capacityKW := src.CapacityMW * kwPerMW
	rate := fin.Rate()

	pvCost := src.CapexPerKW * capacityKW
	pvEnergy := 0.0
	for y := 1; y <= fin.LifetimeYears; y++ {
		discount := math.Pow(1+rate, float64(y))
		pvCost += src.OpexPerKWYear * capacityKW / discount
		pvEnergy += annualKWh / discount
	}

	if pvEnergy <= 0 {
		return 0, ErrZeroEnergy
	}
	return pvCost / pvEnergy, nil
}

// AnnualEnergyMWh returns the energy a source generates in one year. With
// a profile it is the sum of hourly capacity-factor output; without one
// the default capacity factor applies across all hours.
func AnnualEnergyMWh(src scenario.PowerSource, prof []float64, fin scenario.FinancialParams) float64 {
	if len(prof) > 0 {
		total := 0.0
		for h := 0; h < len(prof) && h < profile.HoursPerYear; h++ {
			total += src.CapacityMW * prof[h]
		}
		return total
	}
	return src.CapacityMW * fin.DefaultCapacityFactor() * profile.HoursPerYear
}
