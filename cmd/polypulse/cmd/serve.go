package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/polypuls3/polypulse/app"
	"github.com/polypuls3/polypulse/gateway"
)

// FlagListenAddr overrides the gateway listen address
const FlagListenAddr = "listen-addr"

func getServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serves the poll queries over HTTP until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := getClientCtx(cmd)
			if err != nil {
				return err
			}

			gatewayCfg := clientCtx.config.Gateway
			if cmd.Flags().Changed(FlagListenAddr) {
				if gatewayCfg.ListenAddr, err = cmd.Flags().GetString(FlagListenAddr); err != nil {
					return err
				}
			}

			return runWithApp(cmd, func(ctx context.Context, a *app.App) error {
				server, err := gateway.NewServer(clientCtx.logger, gatewayCfg, a.Service)
				if err != nil {
					return err
				}

				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()

				return server.ListenAndServe(ctx)
			})
		},
	}
	cmd.Flags().String(FlagListenAddr, "", "address the gateway listens on, overrides the config")

	return cmd
}
