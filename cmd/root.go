package cmd

import (
	"os"
	"path/filepath"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	"github.com/hyperledger-labs/yui-header-relayer/config"
	"github.com/hyperledger-labs/yui-header-relayer/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var defaultHome = os.ExpandEnv("$HOME/" + config.DefaultHomeDir)

// NewRootCmd returns the root command with every subcommand of the given modules attached.
func NewRootCmd(modules ...config.ModuleI) *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use:   "yhr",
		Short: "This application relays headers of a source chain into the light client hosted on a destination chain",
	}
	cobra.EnableCommandSorting = false
	rootCmd.SilenceUsage = true

	registry := codectypes.NewInterfaceRegistry()
	clienttypes.RegisterInterfaces(registry)
	for _, m := range modules {
		m.RegisterInterfaces(registry)
	}
	ctx := &config.Context{
		Modules: modules,
		Codec:   codec.NewProtoCodec(registry),
		Config:  &config.Config{},
	}

	v := viper.New()
	globalFlags(v, rootCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		// reads `homeDir/config/config.yaml` into `ctx.Config` before each command
		if err := initConfig(ctx, v); err != nil {
			return err
		}
		g := ctx.Config.Global
		return log.InitLogger(g.LogLevel, g.LogFormat, g.LogOutput, g.EnableTelemetry)
	}

	rootCmd.AddCommand(
		configCmd(ctx),
		clientTypeCmd(ctx),
		modulesCmd(ctx),
		serviceCmd(ctx),
	)
	for _, m := range modules {
		if moduleCmd := m.GetCmd(ctx); moduleCmd != nil {
			rootCmd.AddCommand(moduleCmd)
		}
	}
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(modules ...config.ModuleI) error {
	return NewRootCmd(modules...).Execute()
}

// initConfig reads in the config file if it exists and applies the global flags on top of it.
func initConfig(ctx *config.Context, v *viper.Viper) error {
	cfgPath := filepath.Join(v.GetString(flagHome), config.DefaultConfigPath)
	if _, err := os.Stat(cfgPath); err == nil {
		c, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		*ctx.Config = *c
	} else {
		*ctx.Config = config.DefaultConfig(cfgPath)
	}

	g := &ctx.Config.Global
	if v.IsSet(flagLogLevel) {
		g.LogLevel = v.GetString(flagLogLevel)
	}
	if v.IsSet(flagLogFormat) {
		g.LogFormat = v.GetString(flagLogFormat)
	}
	if v.IsSet(flagLogOutput) {
		g.LogOutput = v.GetString(flagLogOutput)
	}
	if v.IsSet(flagEnableTelemetry) {
		g.EnableTelemetry = v.GetBool(flagEnableTelemetry)
	}
	return nil
}

func noCommand(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}
