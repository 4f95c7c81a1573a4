// Package engine wires the full simulation pipeline: scenario validation,
// per-source LCOE resolution, merit-order dispatch, cost aggregation, and
// report assembly. Run is a pure function of its inputs; nothing is
// cached between invocations.
package engine

import (
	"errors"
	"fmt"

	"github.com/saulvp23gmail/lcoh-calculator/pkg/cost"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/dispatch"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/lcoe"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/profile"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/report"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/scenario"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/validation"
)

// SourceLCOE reports the levelized energy cost resolved for one source
// during a run. Dispatchable is false when the source was excluded.
type SourceLCOE struct {
	Name         string              `json:"name"`
	Kind         scenario.SourceKind `json:"kind"`
	LCOE         float64             `json:"lcoe,omitempty"`
	Dispatchable bool                `json:"dispatchable"`
}

// Result is the complete outcome of one simulation run. It is produced
// fresh on every invocation and never mutated afterwards.
type Result struct {
	LCOH                 float64 `json:"lcoh"`
	AnnualH2ProductionKg float64 `json:"annual_h2_production_kg"`
	TotalAnnualCost      float64 `json:"total_annual_cost"`

	CostBreakdown struct {
		Capex  cost.Component `json:"capex"`
		Opex   cost.Component `json:"opex"`
		Energy cost.Component `json:"energy"`
	} `json:"cost_breakdown"`

	EnergyStats    report.EnergyStats    `json:"energy_stats"`
	EnergyMix      []report.MixEntry     `json:"energy_mix"`
	MonthlyData    [12]report.Monthly    `json:"monthly_data"`
	HourlyDispatch []dispatch.HourRecord `json:"hourly_dispatch"`

	SourceLCOEs []SourceLCOE `json:"source_lcoes"`
}

// ErrInvalidScenario is returned when the scenario fails schema
// validation; details are in the accompanying report.
var ErrInvalidScenario = errors.New("engine: scenario failed validation")

// Resolve derives the dispatch-ready view of every source: clamped
// profiles and freshly computed LCOE values. Sources whose LCOE cannot
// be resolved are marked non-dispatchable with a warning; one source's
// failure never affects another.
func Resolve(sc *scenario.Scenario) ([]dispatch.Source, *validation.Report) {
	rep := validation.NewReport()
	sources := make([]dispatch.Source, 0, len(sc.Sources))

	for i, src := range sc.Sources {
		ds := dispatch.Source{Config: src}

		if !src.IsGrid() && src.HasProfile() {
			// Scenario-supplied profiles are assumed local-time
			// aligned; ingestion still clamps and pads them.
			prof, err := profile.Normalize(src.CapacityFactors, 0)
			if err == nil {
				ds.Profile = prof
			}
		}

		value, err := lcoe.Compute(src, ds.Profile, sc.Financial)
		if err != nil {
			rep.AddWarning(validation.Result{
				Level:   validation.LevelProfile,
				Message: fmt.Sprintf("source excluded from dispatch: %v", err),
				Field:   fmt.Sprintf("sources[%d]", i),
				Source:  src.Name,
				Suggestions: []string{
					"Attach an hourly generation profile",
					"Or set a non-zero financial.default_capacity_factor_pct",
				},
			})
		} else {
			ds.LCOE = value
			ds.HasLCOE = true
		}

		sources = append(sources, ds)
	}

	return sources, rep
}

// Run executes the full pipeline for one scenario and returns the
// simulation result together with the merged validation report.
func Run(sc *scenario.Scenario) (*Result, *validation.Report, error) {
	rep := validation.ValidateSchema(sc)
	if !rep.Valid {
		return nil, rep, ErrInvalidScenario
	}

	sources, resolveRep := Resolve(sc)
	rep.Merge(resolveRep)

	d := dispatch.Simulate(sources, sc.Electrolyzer, sc.Financial)

	summary, err := cost.Aggregate(sources, sc.Electrolyzer, sc.Financial, d)
	if err != nil {
		return nil, rep, err
	}

	res := &Result{
		LCOH:                 summary.LCOH,
		AnnualH2ProductionKg: summary.AnnualH2Kg,
		TotalAnnualCost:      summary.TotalAnnualCost,
		EnergyStats:          report.Stats(d, sc.Electrolyzer),
		EnergyMix:            report.EnergyMix(d.EnergyByKind, d.TotalEnergyUsedMWh),
		MonthlyData:          report.MonthlyTotals(d.Hours),
		HourlyDispatch:       d.Hours,
	}
	res.CostBreakdown.Capex = summary.AnnualizedCapex
	res.CostBreakdown.Opex = summary.AnnualOpex
	res.CostBreakdown.Energy = summary.EnergyCost

	for _, s := range sources {
		res.SourceLCOEs = append(res.SourceLCOEs, SourceLCOE{
			Name:         s.Config.Name,
			Kind:         s.Config.Kind,
			LCOE:         s.LCOE,
			Dispatchable: s.HasLCOE,
		})
	}

	return res, rep, nil
}
