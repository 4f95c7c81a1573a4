package main

import (
	"fmt"

	"github.com/saulvp23gmail/lcoh-calculator/pkg/dispatch"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/engine"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Field != "" {
				fmt.Printf("    -> %s = %v\n", e.Field, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Field != "" {
				fmt.Printf("    -> %s\n", w.Field)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printLCOETable(sources []dispatch.Source) {
	fmt.Println("Levelized Cost of Energy")
	fmt.Println("========================")
	fmt.Println()
	fmt.Printf("%-20s %-6s %12s %14s\n", "Source", "Kind", "Capacity", "LCOE")
	fmt.Printf("%-20s %-6s %12s %14s\n", "--------------------", "------", "------------", "--------------")

	for _, s := range sources {
		lcoeCol := "excluded"
		if s.HasLCOE {
			lcoeCol = fmt.Sprintf("$%.4f/kWh", s.LCOE)
		}
		fmt.Printf("%-20s %-6s %9.1f MW %14s\n",
			s.Config.Name, s.Config.Kind, s.Config.CapacityMW, lcoeCol)
	}
}

func printSimulationReport(r *engine.Result) {
	fmt.Println("LCOH Simulation Result")
	fmt.Println("======================")
	fmt.Println()
	fmt.Printf("  LCOH:                  $%.2f/kg\n", r.LCOH)
	fmt.Printf("  Annual H2 production:  %s kg\n", formatQty(r.AnnualH2ProductionKg))
	fmt.Printf("  Total annual cost:     $%s\n", formatQty(r.TotalAnnualCost))
	fmt.Println()

	fmt.Println("Cost Breakdown")
	fmt.Println("--------------")
	fmt.Printf("  %-10s $%14s  %5.1f%%\n", "Capex", formatQty(r.CostBreakdown.Capex.Amount), r.CostBreakdown.Capex.Pct)
	fmt.Printf("  %-10s $%14s  %5.1f%%\n", "Opex", formatQty(r.CostBreakdown.Opex.Amount), r.CostBreakdown.Opex.Pct)
	fmt.Printf("  %-10s $%14s  %5.1f%%\n", "Energy", formatQty(r.CostBreakdown.Energy.Amount), r.CostBreakdown.Energy.Pct)
	fmt.Println()

	fmt.Println("Energy")
	fmt.Println("------")
	fmt.Printf("  Energy used:       %s MWh\n", formatQty(r.EnergyStats.TotalEnergyUsedMWh))
	fmt.Printf("  Energy curtailed:  %s MWh (%.1f%%)\n", formatQty(r.EnergyStats.TotalCurtailedMWh), r.EnergyStats.CurtailmentPct)
	fmt.Printf("  Utilization rate:  %.1f%%\n", r.EnergyStats.UtilizationRate*100)
	fmt.Println()

	if len(r.EnergyMix) > 0 {
		fmt.Println("Energy Mix")
		fmt.Println("----------")
		for _, m := range r.EnergyMix {
			fmt.Printf("  %-6s %14s MWh  %5.1f%%\n", m.Kind, formatQty(m.EnergyMWh), m.Pct)
		}
		fmt.Println()
	}

	fmt.Println("Monthly Dispatch")
	fmt.Println("----------------")
	fmt.Printf("  %-5s %14s %14s\n", "Month", "Used (MWh)", "Curtailed")
	for _, m := range r.MonthlyData {
		fmt.Printf("  %-5s %14s %14s\n", m.Month, formatQty(m.EnergyMWh), formatQty(m.CurtailedMWh))
	}
}

func formatQty(v float64) string {
	if v >= 1_000_000_000 {
		return fmt.Sprintf("%.2fB", v/1_000_000_000)
	}
	if v >= 1_000_000 {
		return fmt.Sprintf("%.2fM", v/1_000_000)
	}
	if v >= 1_000 {
		return fmt.Sprintf("%.1fK", v/1_000)
	}
	return fmt.Sprintf("%.1f", v)
}
