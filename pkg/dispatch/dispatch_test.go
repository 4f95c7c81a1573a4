package dispatch

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulvp23gmail/lcoh-calculator/pkg/profile"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/scenario"
)

func electrolyzer(capacityMW float64) scenario.ElectrolyzerConfig {
	return scenario.ElectrolyzerConfig{
		CapacityMW:              capacityMW,
		EfficiencyPct:           70,
		BaseConsumptionKWhPerKg: 39.4,
	}
}

func financial() scenario.FinancialParams {
	return scenario.FinancialParams{
		ReturnRatePct: 8,
		LifetimeYears: 20,
	}
}

func gridSource(name string, capacityMW, price float64) Source {
	return Source{
		Config: scenario.PowerSource{
			Name:         name,
			Kind:         scenario.KindGrid,
			CapacityMW:   capacityMW,
			GridPriceKWh: price,
		},
		LCOE:    price,
		HasLCOE: true,
	}
}

func flatProfile(cf float64) []float64 {
	prof := make([]float64, profile.HoursPerYear)
	for i := range prof {
		prof[i] = cf
	}
	return prof
}

// Grid fully covering demand: every hour dispatches at capacity with
// nothing curtailed.
func TestSimulateGridOnlyFullDispatch(t *testing.T) {
	sources := []Source{gridSource("grid", 100, 0.05)}

	res := Simulate(sources, electrolyzer(100), financial())

	assert.Equal(t, 0.0, res.TotalCurtailedMWh)
	assert.InDelta(t, 100.0*profile.HoursPerYear, res.TotalEnergyUsedMWh, 1e-6)
	require.Len(t, res.Hours, profile.HoursPerYear)

	for _, h := range res.Hours {
		if h.DispatchFraction != 1.0 {
			t.Fatalf("hour %d dispatch fraction = %v, want 1.0", h.Hour, h.DispatchFraction)
		}
	}
}

// Solar-only with a step profile: zero hours contribute nothing and are
// recorded as unmet, not curtailed.
func TestSimulateSolarStepProfile(t *testing.T) {
	prof := make([]float64, profile.HoursPerYear)
	for h := 5001; h < profile.HoursPerYear; h++ {
		prof[h] = 1.0
	}

	sources := []Source{{
		Config: scenario.PowerSource{
			Name:       "solar",
			Kind:       scenario.KindSolar,
			CapacityMW: 100,
		},
		LCOE:    0.04,
		HasLCOE: true,
		Profile: prof,
	}}

	res := Simulate(sources, electrolyzer(100), financial())

	liveHours := float64(profile.HoursPerYear - 5001)
	assert.InDelta(t, 100.0*liveHours, res.TotalEnergyUsedMWh, 1e-6)
	assert.Equal(t, 0.0, res.TotalCurtailedMWh)

	for h := 0; h <= 5000; h++ {
		rec := res.Hours[h]
		if rec.EnergyUsedMWh != 0 || rec.CurtailedMWh != 0 {
			t.Fatalf("hour %d: used=%v curtailed=%v, want both 0", h, rec.EnergyUsedMWh, rec.CurtailedMWh)
		}
	}
}

// Cheapest source is exhausted before the next one gets any allocation.
func TestSimulateMeritOrder(t *testing.T) {
	cheapWind := Source{
		Config: scenario.PowerSource{
			Name:       "wind",
			Kind:       scenario.KindWind,
			CapacityMW: 60,
		},
		LCOE:    0.03,
		HasLCOE: true,
		Profile: flatProfile(1.0),
	}
	// Listed first but more expensive; must dispatch second.
	grid := gridSource("grid", 100, 0.08)

	res := Simulate([]Source{grid, cheapWind}, electrolyzer(100), financial())

	for _, h := range res.Hours {
		require.Len(t, h.Sources, 2)
		assert.Equal(t, "wind", h.Sources[0].Name)
		assert.Equal(t, 60.0, h.Sources[0].UsedMW)
		assert.Equal(t, 0.0, h.Sources[0].CurtailedMW, "cheap source fully used before grid")
		assert.Equal(t, "grid", h.Sources[1].Name)
		assert.Equal(t, 40.0, h.Sources[1].UsedMW)
		assert.Equal(t, 60.0, h.Sources[1].CurtailedMW)
	}

	assert.InDelta(t, 60.0*profile.HoursPerYear, res.EnergyByKind[scenario.KindWind], 1e-6)
	assert.InDelta(t, 40.0*profile.HoursPerYear, res.EnergyByKind[scenario.KindGrid], 1e-6)
}

// Per-hour conservation: used never exceeds electrolyzer capacity and
// used+curtailed equals available for every source-hour.
func TestSimulateConservation(t *testing.T) {
	sources := []Source{
		gridSource("grid", 80, 0.07),
		{
			Config: scenario.PowerSource{
				Name:       "solar",
				Kind:       scenario.KindSolar,
				CapacityMW: 150,
			},
			LCOE:    0.035,
			HasLCOE: true,
			Profile: flatProfile(0.6),
		},
	}
	elec := electrolyzer(100)

	res := Simulate(sources, elec, financial())

	for _, h := range res.Hours {
		sumUsed := 0.0
		for _, s := range h.Sources {
			sumUsed += s.UsedMW
			if s.CurtailedMW < 0 {
				t.Fatalf("hour %d source %s: negative curtailment", h.Hour, s.Name)
			}
		}
		if sumUsed > elec.CapacityMW+1e-9 {
			t.Fatalf("hour %d: total used %v exceeds capacity %v", h.Hour, sumUsed, elec.CapacityMW)
		}
	}

	// Solar available 90 MW (cheaper, fully used), grid tops up 10 MW
	// and curtails 70 MW every hour.
	assert.InDelta(t, 100.0*profile.HoursPerYear, res.TotalEnergyUsedMWh, 1e-6)
	assert.InDelta(t, 70.0*profile.HoursPerYear, res.TotalCurtailedMWh, 1e-6)
}

// A source without a resolved LCOE is excluded entirely: no dispatch, no
// curtailment, no per-hour record.
func TestSimulateSkipsSourcesWithoutLCOE(t *testing.T) {
	unresolved := Source{
		Config: scenario.PowerSource{
			Name:       "broken-solar",
			Kind:       scenario.KindSolar,
			CapacityMW: 500,
		},
		Profile: flatProfile(1.0),
	}
	grid := gridSource("grid", 100, 0.05)

	res := Simulate([]Source{unresolved, grid}, electrolyzer(100), financial())

	assert.Equal(t, 0.0, res.TotalCurtailedMWh)
	assert.Zero(t, res.EnergyByKind[scenario.KindSolar])
	for _, h := range res.Hours {
		require.Len(t, h.Sources, 1)
		assert.Equal(t, "grid", h.Sources[0].Name)
	}
}

// Non-grid source without a profile runs on the default capacity factor.
func TestSimulateDefaultCapacityFactorFallback(t *testing.T) {
	wind := Source{
		Config: scenario.PowerSource{
			Name:       "wind",
			Kind:       scenario.KindWind,
			CapacityMW: 100,
		},
		LCOE:    0.05,
		HasLCOE: true,
	}
	fin := financial()
	fin.DefaultCapacityFactorPct = 30

	res := Simulate([]Source{wind}, electrolyzer(100), fin)

	assert.InDelta(t, 30.0*profile.HoursPerYear, res.TotalEnergyUsedMWh, 1e-6)
	assert.Equal(t, 0.0, res.TotalCurtailedMWh)
}

func TestSimulateIdempotent(t *testing.T) {
	sources := []Source{
		gridSource("grid", 50, 0.09),
		{
			Config: scenario.PowerSource{
				Name:       "solar",
				Kind:       scenario.KindSolar,
				CapacityMW: 120,
			},
			LCOE:    0.04,
			HasLCOE: true,
			Profile: flatProfile(0.45),
		},
	}

	first := Simulate(sources, electrolyzer(100), financial())
	second := Simulate(sources, electrolyzer(100), financial())

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different dispatch results")
	}
}
