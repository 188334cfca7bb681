package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pensionmodeler/pension-modeler/internal/calculation"
	"github.com/pensionmodeler/pension-modeler/internal/config"
	"github.com/pensionmodeler/pension-modeler/internal/logging"
)

// app carries the objects shared by every subcommand once the root flags are parsed.
type app struct {
	logOpts logging.Options
	logger  *logrus.Logger
	parser  *config.InputParser
	engine  *calculation.CalculationEngine
}

func newRootCmd() *cobra.Command {
	a := &app{logOpts: logging.OptionsFromEnv(), parser: config.NewInputParser()}

	root := &cobra.Command{
		Use:           "pensionmodeler",
		Short:         "Project a defined-benefit pension and test it against the Standard Fund Threshold",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logOpts.Output == nil {
				a.logOpts.Output = cmd.ErrOrStderr()
			}
			logger, err := logging.New(a.logOpts)
			if err != nil {
				return err
			}
			a.logger = logger
			a.engine = calculation.NewCalculationEngine()
			a.engine.SetLogger(logger)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logOpts.Level, "log-level", a.logOpts.Level, "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logOpts.Format, "log-format", a.logOpts.Format, "log format (text or json)")

	root.AddCommand(
		newProjectCmd(a),
		newScenariosCmd(a),
		newServeCmd(a),
		newExampleConfigCmd(a),
	)
	return root
}
