package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pensionmodeler/pension-modeler/internal/output"
)

func newExampleConfigCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example-config",
		Short: "Write an example configuration with the default inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := output.SaveConfiguration(a.parser.CreateExampleConfiguration(), out); err != nil {
				return fmt.Errorf("failed to write example configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "pension_config.yaml", "file to write")
	return cmd
}
