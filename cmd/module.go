package cmd

import (
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"
	"slices"
	"sort"
	"strings"

	"github.com/hyperledger-labs/yui-header-relayer/config"
	"github.com/spf13/cobra"
)

func modulesCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modules",
		Short: "show an info about chain modules",
		RunE:  noCommand,
	}

	cmd.AddCommand(
		showModulesCmd(ctx),
	)

	return cmd
}

func showModulesCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Shows a list of chain modules included in the relayer and the chains using them",
		RunE: func(cmd *cobra.Command, args []string) error {
			bi, ok := debug.ReadBuildInfo()
			if !ok {
				return fmt.Errorf("could not read build info")
			}

			lines := make([]string, 0, len(ctx.Modules))
			for _, m := range ctx.Modules {
				info, err := retrieveModuleInfo(bi, m)
				if err != nil {
					return err
				}
				lines = append(lines, fmt.Sprintf("%s %s %s", m.Name(), info, strings.Join(chainsOfModule(ctx.Config, m), ",")))
			}
			sort.Strings(lines)
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(line))
			}
			return nil
		},
	}
	return cmd
}

func chainsOfModule(c *config.Config, m config.ModuleI) []string {
	var ids []string
	for _, cc := range c.Chains {
		if cc != nil && cc.Module == m.Name() {
			ids = append(ids, cc.ChainID)
		}
	}
	return ids
}

func retrieveModuleInfo(info *debug.BuildInfo, m config.ModuleI) (string, error) {
	if info == nil {
		return "", errors.New("build info is unavailable")
	}

	pkgPath := reflect.TypeOf(m).PkgPath()
	if strings.HasPrefix(pkgPath, info.Main.Path) {
		return info.Main.Path + " " + info.Main.Version, nil
	}

	i := slices.IndexFunc(info.Deps, func(dm *debug.Module) bool {
		return strings.HasPrefix(pkgPath, dm.Path)
	})
	if i == -1 {
		return "", fmt.Errorf("could not find module info for %s", m.Name())
	}

	return info.Deps[i].Path + " " + info.Deps[i].Version, nil
}
