package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saulvp23gmail/lcoh-calculator/internal/server"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/profile"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lcoh",
		Short: "Levelized cost of hydrogen simulation engine",
	}

	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(lcoeCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func simulateCmd() *cobra.Command {
	var fetch bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "simulate [project-path]",
		Short: "Run the full dispatch simulation and report LCOH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd.Context(), args[0], fetch, asJSON)
		},
	}

	cmd.Flags().BoolVar(&fetch, "fetch", false, "fetch hourly profiles from Open-Meteo for sources with a location")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full result as JSON instead of a table")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a scenario without running the simulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func lcoeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lcoe [project-path]",
		Short: "Compute and display per-source levelized energy costs",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runLCOE(args[0])
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local API server for the dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			log, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer log.Sync()

			srv := server.New(args[0], port, profile.NewOpenMeteo(log), log)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
