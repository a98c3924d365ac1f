package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagHome            = "home"
	flagLogLevel        = "log-level"
	flagLogFormat       = "log-format"
	flagLogOutput       = "log-output"
	flagEnableTelemetry = "enable-telemetry"
	flagJSON            = "json"
)

func globalFlags(v *viper.Viper, cmd *cobra.Command) *cobra.Command {
	cmd.PersistentFlags().String(flagHome, defaultHome, "set home directory")
	cmd.PersistentFlags().String(flagLogLevel, "", "log level (debug|info|warn|error), overrides the config file")
	cmd.PersistentFlags().String(flagLogFormat, "", "log format (text|json), overrides the config file")
	cmd.PersistentFlags().String(flagLogOutput, "", "log output (stdout|stderr), overrides the config file")
	cmd.PersistentFlags().Bool(flagEnableTelemetry, false, "enable telemetry, overrides the config file")
	for _, name := range []string{flagHome, flagLogLevel, flagLogFormat, flagLogOutput, flagEnableTelemetry} {
		if err := v.BindPFlag(name, cmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
	return cmd
}

func jsonFlag(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().BoolP(flagJSON, "j", false, "returns the response in json format")
	return cmd
}
