package cmd

import (
	"fmt"
	"os"

	"github.com/hyperledger-labs/yui-header-relayer/config"
	"github.com/spf13/cobra"
)

func configCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"cfg"},
		Short:   "manage configuration file",
		RunE:    noCommand,
	}

	cmd.AddCommand(
		configShowCmd(ctx),
		configInitCmd(ctx),
		configValidateCmd(ctx),
	)

	return cmd
}

// Command for inititalizing a default config at the --home location
func configInitCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Creates a default home directory at path defined by --home",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath := ctx.Config.ConfigPath
			if _, err := os.Stat(cfgPath); !os.IsNotExist(err) {
				return fmt.Errorf("config already exists: %s", cfgPath)
			}
			defConfig := config.DefaultConfig(cfgPath)
			if err := defConfig.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfgPath)
			return nil
		},
	}
	return cmd
}

// Command for printing current configuration
func configShowCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"s", "list", "l"},
		Short:   "Prints current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath := ctx.Config.ConfigPath
			if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
				return fmt.Errorf("config does not exist: %s", cfgPath)
			}

			out, err := ctx.Config.ToYAML()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	return cmd
}

func configValidateCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Checks the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.Config.Validate(); err != nil {
				return err
			}
			for _, cc := range ctx.Config.Chains {
				ct, guessed, err := cc.ResolveClientType()
				if err != nil {
					return err
				}
				note := ""
				if guessed {
					note = " (guessed)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s%s\n", cc.ChainID, cc.Role, ct.Tag(), note)
			}
			return nil
		},
	}
	return cmd
}
