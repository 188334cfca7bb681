package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pensionmodeler/pension-modeler/internal/output"
)

func newProjectCmd(a *app) *cobra.Command {
	var (
		configFile string
		format     string
		outputDir  string
		toStdout   bool
	)
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Evaluate a configuration file and render the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.parser.LoadFromFile(configFile)
			if err != nil {
				return err
			}
			report, err := a.engine.Evaluate(cfg)
			if err != nil {
				return err
			}

			if toStdout {
				data, _, err := output.Render(report, format)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			files, err := output.GenerateReport(report, format, outputDir)
			if err != nil {
				return err
			}
			for _, f := range files {
				a.logger.Infof("Report written to %s", f)
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "configuration file (YAML or JSON)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", fmt.Sprintf("output format: %v or all", output.AvailableFormatterNames()))
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for generated reports")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "write the report to standard output instead of a file")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
