package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulvp23gmail/lcoh-calculator/pkg/dispatch"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/profile"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/scenario"
)

func TestMonthlyTotalsBucketSizes(t *testing.T) {
	// 1 MWh used every hour: each month's total equals its hour count.
	hours := make([]dispatch.HourRecord, profile.HoursPerYear)
	for h := range hours {
		hours[h] = dispatch.HourRecord{Hour: h, EnergyUsedMWh: 1, CurtailedMWh: 0.5}
	}

	months := MonthlyTotals(hours)

	wantDays := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	sumEnergy := 0.0
	for i, m := range months {
		assert.InDelta(t, float64(wantDays[i]*24), m.EnergyMWh, 1e-9, "month %s", m.Month)
		assert.InDelta(t, float64(wantDays[i]*24)*0.5, m.CurtailedMWh, 1e-9)
		sumEnergy += m.EnergyMWh
	}
	assert.InDelta(t, float64(profile.HoursPerYear), sumEnergy, 1e-9)

	assert.Equal(t, "Jan", months[0].Month)
	assert.Equal(t, "Dec", months[11].Month)
}

func TestMonthlyTotalsJanuaryBoundary(t *testing.T) {
	hours := make([]dispatch.HourRecord, profile.HoursPerYear)
	hours[31*24-1].EnergyUsedMWh = 7 // last hour of January
	hours[31*24].EnergyUsedMWh = 9   // first hour of February

	months := MonthlyTotals(hours)
	assert.Equal(t, 7.0, months[0].EnergyMWh)
	assert.Equal(t, 9.0, months[1].EnergyMWh)
}

func TestEnergyMix(t *testing.T) {
	byKind := map[scenario.SourceKind]float64{
		scenario.KindSolar: 600,
		scenario.KindGrid:  300,
		scenario.KindWind:  100,
	}

	mix := EnergyMix(byKind, 1000)
	require.Len(t, mix, 3)

	assert.Equal(t, scenario.KindSolar, mix[0].Kind)
	assert.InDelta(t, 60.0, mix[0].Pct, 1e-9)
	assert.Equal(t, scenario.KindGrid, mix[1].Kind)
	assert.InDelta(t, 30.0, mix[1].Pct, 1e-9)
	assert.Equal(t, scenario.KindWind, mix[2].Kind)
	assert.InDelta(t, 10.0, mix[2].Pct, 1e-9)
}

func TestEnergyMixZeroTotal(t *testing.T) {
	mix := EnergyMix(map[scenario.SourceKind]float64{scenario.KindSolar: 0}, 0)
	require.Len(t, mix, 1)
	assert.Equal(t, 0.0, mix[0].Pct)
}

func TestStats(t *testing.T) {
	d := &dispatch.Result{
		TotalEnergyUsedMWh: 600000,
		TotalCurtailedMWh:  200000,
	}
	elec := scenario.ElectrolyzerConfig{CapacityMW: 100}

	s := Stats(d, elec)

	assert.InDelta(t, 25.0, s.CurtailmentPct, 1e-9) // 200k / 800k
	assert.InDelta(t, 600000.0/(100*profile.HoursPerYear), s.UtilizationRate, 1e-12)
}

func TestStatsZeroEnergyGuards(t *testing.T) {
	s := Stats(&dispatch.Result{}, scenario.ElectrolyzerConfig{CapacityMW: 100})
	assert.Equal(t, 0.0, s.CurtailmentPct)
	assert.Equal(t, 0.0, s.UtilizationRate)
}
