package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/saulvp23gmail/lcoh-calculator/pkg/engine"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/profile"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/scenario"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/validation"
)

// loadAndValidate loads the scenario and runs schema validation.
func loadAndValidate(projectPath string) (*scenario.Scenario, *validation.Report, error) {
	sc, err := scenario.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading scenario: %w", err)
	}
	schemaReport := validation.ValidateSchema(sc)
	return sc, schemaReport, nil
}

func runValidate(projectPath string) error {
	sc, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	// Resolution surfaces sources that would be excluded from dispatch.
	_, resolveReport := engine.Resolve(sc)
	schemaReport.Merge(resolveReport)

	printValidationReport(schemaReport)

	if !schemaReport.Valid {
		os.Exit(1)
	}
	return nil
}

func runLCOE(projectPath string) error {
	sc, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("scenario has validation errors; fix before computing LCOE")
	}

	sources, resolveReport := engine.Resolve(sc)
	printLCOETable(sources)

	if len(resolveReport.Warnings) > 0 {
		fmt.Println()
		printValidationReport(resolveReport)
	}
	return nil
}

func runSimulate(ctx context.Context, projectPath string, fetch, asJSON bool) error {
	sc, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("scenario has validation errors")
	}

	if fetch {
		if err := fetchProfiles(ctx, sc); err != nil {
			return err
		}
	}

	result, rep, err := engine.Run(sc)
	if err != nil {
		printValidationReport(rep)
		return fmt.Errorf("simulation failed: %w", err)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"result":     result,
			"validation": rep,
		})
	}

	printSimulationReport(result)

	if len(rep.Warnings) > 0 {
		fmt.Println()
		printValidationReport(rep)
	}
	return nil
}

// fetchProfiles pulls hourly profiles for every non-grid source that has
// a location but no attached profile. A failed fetch is reported and the
// source is left to the default capacity factor.
func fetchProfiles(ctx context.Context, sc *scenario.Scenario) error {
	log, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer log.Sync()

	provider := profile.NewOpenMeteo(log)
	for i := range sc.Sources {
		src := &sc.Sources[i]
		if src.IsGrid() || src.HasProfile() || src.Location == nil {
			continue
		}
		prof, err := profile.FetchNormalized(ctx, provider, *src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: profile fetch failed: %v\n", src.Name, err)
			continue
		}
		src.CapacityFactors = prof
	}
	return nil
}
