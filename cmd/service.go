package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hyperledger-labs/yui-header-relayer/config"
	"github.com/hyperledger-labs/yui-header-relayer/core"
	"github.com/hyperledger-labs/yui-header-relayer/internal/telemetry"
	"github.com/hyperledger-labs/yui-header-relayer/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func serviceCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service",
		Short: "Relay Service Commands",
		Long:  "Commands to manage the header relay service",
		RunE:  noCommand,
	}
	cmd.AddCommand(
		startCmd(ctx),
	)
	return cmd
}

func startCmd(ctx *config.Context) *cobra.Command {
	const (
		flagSrcRole = "src-role"
		flagDstRole = "dst-role"
	)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Relays headers from the configured source chain to the configured destination chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.GetLogger().WithModule("cmd.service")

			srcRole, err := cmd.Flags().GetString(flagSrcRole)
			if err != nil {
				return err
			}
			dstRole, err := cmd.Flags().GetString(flagDstRole)
			if err != nil {
				return err
			}
			for _, role := range []string{srcRole, dstRole} {
				if err := core.ChainRole(role).Validate(); err != nil {
					return err
				}
			}
			relayer := core.NewHeaderRelayer(
				core.WithSourceRole(core.ChainRole(srcRole)),
				core.WithDestinationRole(core.ChainRole(dstRole)),
			)

			sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if ctx.Config.Global.EnableTelemetry {
				shutdown, err := telemetry.SetupOTelSDK(sigCtx)
				if err != nil {
					return fmt.Errorf("failed to set up the OpenTelemetry SDK: %w", err)
				}
				defer func() {
					timeout, err := ctx.Config.Global.GetTimeout()
					if err != nil {
						timeout = 10 * time.Second
					}
					shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
					defer cancel()
					if err := shutdown(shutdownCtx); err != nil {
						logger.Error("failed to shutdown the OpenTelemetry SDK", err)
					}
				}()
			}

			src, dst, events, err := ctx.BuildRelay()
			if err != nil {
				return err
			}

			g, gctx := errgroup.WithContext(sigCtx)
			g.Go(func() error {
				defer stop()
				defer logger.TimeTrack(time.Now(), "header relay service")
				return core.StartService(gctx, relayer, src, dst, events)
			})
			g.Go(func() error {
				<-gctx.Done()
				logger.InfoContext(gctx, "stopping header relay service")
				return nil
			})
			if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().String(flagSrcRole, string(core.ChainRoleEth), "role the source chain must have")
	cmd.Flags().String(flagDstRole, string(core.ChainRoleCkb), "role the destination chain must have")
	return cmd
}
