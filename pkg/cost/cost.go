// Package cost annualizes capital and operating costs, prices dispatched
// energy, and derives the levelized cost of hydrogen.
package cost

import (
	"errors"
	"math"

	"github.com/saulvp23gmail/lcoh-calculator/pkg/dispatch"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/scenario"
)

const kwPerMW = 1000.0

// ErrZeroProduction indicates annual hydrogen production is zero, so LCOH
// is undefined. Surfaced to the caller rather than returned as 0 or Inf.
var ErrZeroProduction = errors.New("cost: annual hydrogen production is zero")

// Component is one slice of the annual cost breakdown.
type Component struct {
	Amount float64 `json:"amount"`
	Pct    float64 `json:"pct"`
}

// Summary is the aggregated annual cost picture for one simulation run.
type Summary struct {
	AnnualizedCapex Component `json:"annualized_capex"`
	AnnualOpex      Component `json:"annual_opex"`
	EnergyCost      Component `json:"energy_cost"`

	TotalAnnualCost float64 `json:"total_annual_cost"`
	AnnualH2Kg      float64 `json:"annual_h2_production_kg"`
	LCOH            float64 `json:"lcoh"`
}

// CRF returns the capital recovery factor for the given fractional rate
// and lifetime. At 0% interest it degrades to 1/n.
func CRF(rate float64, lifetimeYears int) float64 {
	if lifetimeYears <= 0 {
		return 0
	}
	if rate <= 0 {
		return 1.0 / float64(lifetimeYears)
	}
	factor := math.Pow(1+rate, float64(lifetimeYears))
	return rate * factor / (factor - 1)
}

// Aggregate combines dispatch totals with capital and operating costs into
// total annual cost and LCOH. Source LCOE values come from the dispatch-
// ready sources; a source without one prices its energy at zero (it should
// not have dispatched any).
func Aggregate(sources []dispatch.Source, elec scenario.ElectrolyzerConfig, fin scenario.FinancialParams, d *dispatch.Result) (*Summary, error) {
	crf := CRF(fin.Rate(), fin.LifetimeYears)

	// Annualized capex across all sources plus the electrolyzer.
	totalCapex := elec.CapacityMW * kwPerMW * elec.CapexPerKW
	annualOpex := elec.CapacityMW * kwPerMW * elec.OpexPerKWYear
	for _, s := range sources {
		capacityKW := s.Config.CapacityMW * kwPerMW
		totalCapex += capacityKW * s.Config.CapexPerKW
		annualOpex += capacityKW * s.Config.OpexPerKWYear
	}
	annualizedCapex := crf * totalCapex

	// Dispatched energy priced at each kind's LCOE.
	lcoeByKind := make(map[scenario.SourceKind]float64)
	for _, s := range sources {
		if !s.HasLCOE {
			continue
		}
		if _, ok := lcoeByKind[s.Config.Kind]; !ok {
			lcoeByKind[s.Config.Kind] = s.LCOE
		}
	}
	energyCost := 0.0
	for kind, mwh := range d.EnergyByKind {
		energyCost += mwh * kwPerMW * lcoeByKind[kind]
	}

	total := annualizedCapex + annualOpex + energyCost

	energyPerKg := elec.EnergyPerKg()
	annualH2Kg := 0.0
	if energyPerKg > 0 {
		annualH2Kg = d.TotalEnergyUsedMWh * kwPerMW / energyPerKg
	}
	if annualH2Kg <= 0 {
		return nil, ErrZeroProduction
	}

	s := &Summary{
		AnnualizedCapex: Component{Amount: annualizedCapex},
		AnnualOpex:      Component{Amount: annualOpex},
		EnergyCost:      Component{Amount: energyCost},
		TotalAnnualCost: total,
		AnnualH2Kg:      annualH2Kg,
		LCOH:            total / annualH2Kg,
	}
	if total > 0 {
		s.AnnualizedCapex.Pct = annualizedCapex / total * 100
		s.AnnualOpex.Pct = annualOpex / total * 100
		s.EnergyCost.Pct = energyCost / total * 100
	}
	return s, nil
}
