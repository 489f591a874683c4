package cmd

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/polypuls3/polypulse/app"
	"github.com/polypuls3/polypulse/types"
)

func getVotesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "votes [voter]",
		Short: "Returns the votes cast by a voter, newest first. Without a voter the configured one is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var voter *common.Address
			if len(args) == 1 {
				address, err := parseAddress(args[0])
				if err != nil {
					return err
				}
				voter = &address
			}

			limit, err := cmd.Flags().GetUint64(FlagLimit)
			if err != nil {
				return err
			}

			offset, err := cmd.Flags().GetUint64(FlagOffset)
			if err != nil {
				return err
			}

			return runWithApp(cmd, func(ctx context.Context, a *app.App) error {
				return printEnvelope(cmd, a.Service.ListUserVotes(ctx, voter, a.ChainID(0), limit, offset))
			})
		},
	}
	cmd.Flags().Uint64(FlagLimit, types.DefaultPageLimit, "page size")
	cmd.Flags().Uint64(FlagOffset, 0, "number of votes to skip")

	return cmd
}
