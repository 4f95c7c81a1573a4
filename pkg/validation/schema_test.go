package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulvp23gmail/lcoh-calculator/pkg/scenario"
)

func validScenario() *scenario.Scenario {
	return &scenario.Scenario{
		SpecVersion: "0.1.0",
		Electrolyzer: scenario.ElectrolyzerConfig{
			CapacityMW:              100,
			CapexPerKW:              1000,
			OpexPerKWYear:           30,
			EfficiencyPct:           70,
			BaseConsumptionKWhPerKg: 39.4,
		},
		Financial: scenario.FinancialParams{
			ReturnRatePct:            8,
			LifetimeYears:            20,
			DefaultCapacityFactorPct: 25,
		},
		Sources: []scenario.PowerSource{
			{
				Name:       "solar-1",
				Kind:       scenario.KindSolar,
				CapacityMW: 150,
				CapexPerKW: 800,
				Location:   &scenario.Location{Lat: 28, Lng: -114},
			},
			{
				Name:         "grid-1",
				Kind:         scenario.KindGrid,
				CapacityMW:   50,
				GridPriceKWh: 0.08,
			},
		},
	}
}

func TestValidateSchemaValid(t *testing.T) {
	r := ValidateSchema(validScenario())
	assert.True(t, r.Valid)
	assert.Empty(t, r.Errors)
}

func TestValidateElectrolyzerRanges(t *testing.T) {
	sc := validScenario()
	sc.Electrolyzer.CapacityMW = 0
	sc.Electrolyzer.EfficiencyPct = 120
	sc.Electrolyzer.BaseConsumptionKWhPerKg = 20

	r := ValidateSchema(sc)
	assert.False(t, r.Valid)
	require.Len(t, r.Errors, 3)

	fields := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		fields = append(fields, e.Field)
	}
	assert.Contains(t, fields, "electrolyzer.capacity_mw")
	assert.Contains(t, fields, "electrolyzer.efficiency_pct")
	assert.Contains(t, fields, "electrolyzer.base_consumption_kwh_per_kg")
}

func TestValidateFinancialRanges(t *testing.T) {
	sc := validScenario()
	sc.Financial.LifetimeYears = 0
	sc.Financial.ReturnRatePct = -1

	r := ValidateSchema(sc)
	assert.False(t, r.Valid)
	assert.Len(t, r.Errors, 2)
	for _, e := range r.Errors {
		assert.Equal(t, LevelFinancial, e.Level)
	}
}

func TestValidateNoSources(t *testing.T) {
	sc := validScenario()
	sc.Sources = nil

	r := ValidateSchema(sc)
	assert.False(t, r.Valid)
	require.Len(t, r.Errors, 1)
	assert.Equal(t, "sources", r.Errors[0].Field)
}

func TestValidateLocationRanges(t *testing.T) {
	sc := validScenario()
	sc.Sources[0].Location = &scenario.Location{Lat: 95, Lng: -200}

	r := ValidateSchema(sc)
	assert.False(t, r.Valid)
	assert.Len(t, r.Errors, 2)
}

func TestValidateUnknownKind(t *testing.T) {
	sc := validScenario()
	sc.Sources[0].Kind = "fusion"

	r := ValidateSchema(sc)
	assert.False(t, r.Valid)
}

func TestValidateUndispatchableSourceWarns(t *testing.T) {
	sc := validScenario()
	sc.Sources[0].Location = nil
	sc.Financial.DefaultCapacityFactorPct = 0

	r := ValidateSchema(sc)
	assert.True(t, r.Valid, "undispatchable source is a warning, not an error")
	require.Len(t, r.Warnings, 1)
	assert.Equal(t, LevelProfile, r.Warnings[0].Level)
}

func TestReportMerge(t *testing.T) {
	a := NewReport()
	a.AddWarning(Result{Level: LevelSchema, Message: "w"})

	b := NewReport()
	b.AddError(Result{Level: LevelFinancial, Message: "e"})

	a.Merge(b)
	assert.False(t, a.Valid)
	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Equal(t, "1 errors, 1 warnings, 0 info", a.Summary)
}
