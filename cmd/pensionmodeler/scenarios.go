package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pensionmodeler/pension-modeler/internal/config"
	"github.com/pensionmodeler/pension-modeler/internal/output"
)

func newScenariosCmd(a *app) *cobra.Command {
	var (
		configFile string
		ages       []int
		out        string
	)
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Export the retirement-age comparison table as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.parser.LoadFromFile(configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("ages") {
				cfg.ScenarioAges = ages
				if err := a.parser.ValidateConfiguration(cfg); err != nil {
					return err
				}
			}
			report, err := a.engine.Evaluate(cfg)
			if err != nil {
				return err
			}
			data, err := output.WriteScenarioCSV(report.Scenarios)
			if err != nil {
				return err
			}
			if out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return err
			}
			a.logger.Infof("Wrote %d scenario rows to %s", len(report.Scenarios), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "configuration file (YAML or JSON)")
	cmd.Flags().IntSliceVar(&ages, "ages", nil, "retirement ages to compare, e.g. 60,62,65 (overrides scenario_ages; for an empty table set scenario_ages: [] in the config file)")
	cmd.Flags().StringVar(&out, "out", output.ScenarioCSVFilename, "CSV file to write, or - for standard output")
	_ = cmd.MarkFlagRequired("config")
	cmd.Long = fmt.Sprintf("Export the retirement-age comparison table as CSV. Ages must be between %d and %d.",
		config.MinRetirementAge, config.MaxRetirementAge)
	return cmd
}
