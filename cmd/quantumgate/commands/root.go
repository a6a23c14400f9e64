package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vonj/QuantumGate/libs/log"
)

var (
	logger = log.NewNopLogger()

	logLevel  string
	logFormat string
)

// RootCmd is the root command for the quantumgate address tooling.
var RootCmd = &cobra.Command{
	Use:          "quantumgate",
	Short:        "Inspect and compose overlay endpoint addresses",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags may also be set through QG_ environment variables,
		// e.g. QG_LOG_LEVEL=debug.
		viper.SetEnvPrefix("QG")
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		viper.AutomaticEnv()
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		var err error
		logger, err = log.NewDefaultLogger(
			viper.GetString("log-format"), viper.GetString("log-level"))
		return err
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", log.LogLevelInfo, "log level")
	RootCmd.PersistentFlags().StringVar(&logFormat, "log-format", log.LogFormatPlain, "log format (plain|json)")

	RootCmd.AddCommand(EndpointCmd, CircuitCmd)
}
