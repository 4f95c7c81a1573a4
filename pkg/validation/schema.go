package validation

import (
	"fmt"

	"github.com/saulvp23gmail/lcoh-calculator/pkg/scenario"
)

// ValidateSchema performs schema validation on a parsed scenario.
// It checks structural correctness and value ranges before any computation.
func ValidateSchema(sc *scenario.Scenario) *Report {
	r := NewReport()

	validateElectrolyzer(sc, r)
	validateFinancial(sc, r)
	validateSources(sc, r)

	return r
}

func validateElectrolyzer(sc *scenario.Scenario, r *Report) {
	e := sc.Electrolyzer

	if e.CapacityMW <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "electrolyzer capacity must be greater than 0",
			Field:       "electrolyzer.capacity_mw",
			ActualValue: e.CapacityMW,
			Expected:    "> 0",
		})
	}
	if e.CapexPerKW < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "electrolyzer capex must be non-negative",
			Field:       "electrolyzer.capex_per_kw",
			ActualValue: e.CapexPerKW,
			Expected:    ">= 0",
		})
	}
	if e.OpexPerKWYear < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "electrolyzer opex must be non-negative",
			Field:       "electrolyzer.opex_per_kw_year",
			ActualValue: e.OpexPerKWYear,
			Expected:    ">= 0",
		})
	}
	if e.EfficiencyPct <= 0 || e.EfficiencyPct > 100 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "electrolyzer efficiency must be in (0, 100]",
			Field:       "electrolyzer.efficiency_pct",
			ActualValue: e.EfficiencyPct,
			Expected:    "0 < x <= 100",
		})
	}
	if e.BaseConsumptionKWhPerKg < 33.0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "base consumption below the thermodynamic floor for water electrolysis",
			Field:       "electrolyzer.base_consumption_kwh_per_kg",
			ActualValue: e.BaseConsumptionKWhPerKg,
			Expected:    ">= 33.0 kWh/kg",
			Suggestions: []string{"Typical PEM stacks run 50-55 kWh/kg at system level"},
		})
	}
}

func validateFinancial(sc *scenario.Scenario, r *Report) {
	f := sc.Financial

	if f.ReturnRatePct < 0 {
		r.AddError(Result{
			Level:       LevelFinancial,
			Message:     "return rate must be non-negative",
			Field:       "financial.return_rate_pct",
			ActualValue: f.ReturnRatePct,
			Expected:    ">= 0",
		})
	}
	if f.LifetimeYears < 1 {
		r.AddError(Result{
			Level:       LevelFinancial,
			Message:     "project lifetime must be at least 1 year",
			Field:       "financial.lifetime_years",
			ActualValue: f.LifetimeYears,
			Expected:    ">= 1",
		})
	}
	if f.DefaultCapacityFactorPct < 0 || f.DefaultCapacityFactorPct > 100 {
		r.AddError(Result{
			Level:       LevelFinancial,
			Message:     "default capacity factor must be a percentage",
			Field:       "financial.default_capacity_factor_pct",
			ActualValue: f.DefaultCapacityFactorPct,
			Expected:    "0 <= x <= 100",
		})
	}
}

func validateSources(sc *scenario.Scenario, r *Report) {
	if len(sc.Sources) == 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "scenario must define at least one power source",
			Field:    "sources",
			Expected: "1 or more sources",
		})
		return
	}

	for i, src := range sc.Sources {
		field := func(name string) string {
			return fmt.Sprintf("sources[%d].%s", i, name)
		}

		switch src.Kind {
		case scenario.KindGrid, scenario.KindSolar, scenario.KindWind:
		default:
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("unknown source kind %q", src.Kind),
				Field:       field("kind"),
				ActualValue: string(src.Kind),
				Expected:    "grid | solar | wind",
			})
		}

		if src.CapacityMW <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "source capacity must be greater than 0",
				Field:       field("capacity_mw"),
				ActualValue: src.CapacityMW,
				Expected:    "> 0",
				Source:      src.Name,
			})
		}
		if src.CapexPerKW < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "source capex must be non-negative",
				Field:       field("capex_per_kw"),
				ActualValue: src.CapexPerKW,
				Expected:    ">= 0",
				Source:      src.Name,
			})
		}
		if src.OpexPerKWYear < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "source opex must be non-negative",
				Field:       field("opex_per_kw_year"),
				ActualValue: src.OpexPerKWYear,
				Expected:    ">= 0",
				Source:      src.Name,
			})
		}

		if src.IsGrid() {
			if src.GridPriceKWh < 0 {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     "grid electricity price must be non-negative",
					Field:       field("grid_price_kwh"),
					ActualValue: src.GridPriceKWh,
					Expected:    ">= 0",
					Source:      src.Name,
				})
			}
			if src.HasProfile() {
				r.AddWarning(Result{
					Level:   LevelSchema,
					Message: "grid sources dispatch at full capacity; attached profile is ignored",
					Field:   field("capacity_factors"),
					Source:  src.Name,
				})
			}
			continue
		}

		// Non-grid sources need a location to fetch a profile, unless one
		// is already attached or the default capacity factor covers them.
		if src.Location != nil {
			if src.Location.Lat < -90 || src.Location.Lat > 90 {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     "latitude out of range",
					Field:       field("location.lat"),
					ActualValue: src.Location.Lat,
					Expected:    "-90 to 90",
					Source:      src.Name,
				})
			}
			if src.Location.Lng < -180 || src.Location.Lng > 180 {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     "longitude out of range",
					Field:       field("location.lng"),
					ActualValue: src.Location.Lng,
					Expected:    "-180 to 180",
					Source:      src.Name,
				})
			}
		} else if !src.HasProfile() && sc.Financial.DefaultCapacityFactorPct <= 0 {
			r.AddWarning(Result{
				Level:   LevelProfile,
				Message: "source has no location, no profile, and no default capacity factor; it will be excluded from dispatch",
				Field:   field("location"),
				Source:  src.Name,
				Suggestions: []string{
					"Set a location so an hourly profile can be fetched",
					"Or set financial.default_capacity_factor_pct",
				},
			})
		}
	}
}
