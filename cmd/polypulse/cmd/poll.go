package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/polypuls3/polypulse/app"
	"github.com/polypuls3/polypulse/query"
	"github.com/polypuls3/polypulse/types"
)

// poll command flags
const (
	FlagCreator  = "creator"
	FlagStatus   = "status"
	FlagCategory = "category"
	FlagLimit    = "limit"
	FlagOffset   = "offset"
	FlagOption   = "option"
	FlagWatch    = "watch"
)

func getPollCommand() *cobra.Command {
	pollCmd := &cobra.Command{
		Use:   "poll",
		Short: "Query polls",
	}

	pollCmd.AddCommand(
		getCmdPoll(),
		getCmdPolls(),
		getCmdResults(),
		getCmdHasVoted(),
		getCmdStatus(),
	)

	return pollCmd
}

func getCmdPoll() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [poll-id]",
		Short: "Returns a poll with the vote counts of its options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pollID, err := parsePollID(args[0])
			if err != nil {
				return err
			}

			watch, err := cmd.Flags().GetDuration(FlagWatch)
			if err != nil {
				return err
			}

			return runWithApp(cmd, func(ctx context.Context, a *app.App) error {
				chainID := a.ChainID(0)
				if watch <= 0 {
					return printEnvelope(cmd, a.Service.GetPoll(ctx, pollID, chainID))
				}

				return watchPoll(ctx, cmd, a, pollID, chainID, watch)
			})
		},
	}
	cmd.Flags().Duration(FlagWatch, 0, "keep refetching the poll at this interval until interrupted")

	return cmd
}

// watchPoll prints the poll and refetches it from the backend that last answered at every tick
func watchPoll(ctx context.Context, cmd *cobra.Command, a *app.App, pollID math.Uint, chainID uint64, interval time.Duration) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	q := query.NewQuery(ctx, func(ctx context.Context, pollID math.Uint) query.Envelope[*types.Poll] {
		return a.Service.GetPoll(ctx, pollID, chainID)
	})
	defer q.Close()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	q.Issue(pollID)
	for {
		env, err := q.Wait(ctx)
		if err != nil {
			return nil
		}

		// failed reads are printed and retried on the next tick
		_ = printEnvelope(cmd, env)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			q.Refetch()
		}
	}
}

func getCmdPolls() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Returns a page of polls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, err := parseFilters(cmd)
			if err != nil {
				return err
			}

			return runWithApp(cmd, func(ctx context.Context, a *app.App) error {
				return printEnvelope(cmd, a.Service.ListPolls(ctx, filters, a.ChainID(0)))
			})
		},
	}
	cmd.Flags().String(FlagCreator, "", "only list polls created by this address")
	cmd.Flags().String(FlagStatus, "", "only list polls with this status (active)")
	cmd.Flags().String(FlagCategory, "", "only list polls of this category")
	cmd.Flags().Uint64(FlagLimit, types.DefaultPageLimit, "page size")
	cmd.Flags().Uint64(FlagOffset, 0, "number of polls to skip")

	return cmd
}

func getCmdResults() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results [poll-id]",
		Short: "Returns the tallied results of a poll",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pollID, err := parsePollID(args[0])
			if err != nil {
				return err
			}

			texts, err := cmd.Flags().GetStringArray(FlagOption)
			if err != nil {
				return err
			}

			return runWithApp(cmd, func(ctx context.Context, a *app.App) error {
				chainID := a.ChainID(0)
				if len(texts) == 0 {
					poll := a.Service.GetPoll(ctx, pollID, chainID)
					switch {
					case poll.IsError:
						return printEnvelope(cmd, poll)
					case poll.Data == nil:
						return fmt.Errorf("poll %s not found", pollID)
					}

					texts = poll.Data.OptionTexts()
				}

				return printEnvelope(cmd, a.Service.GetResults(ctx, pollID, texts, chainID))
			})
		},
	}
	cmd.Flags().StringArray(FlagOption, nil, "option texts in order, read from the poll if not given")

	return cmd
}

func getCmdHasVoted() *cobra.Command {
	return &cobra.Command{
		Use:   "has-voted [poll-id] [voter]",
		Short: "Returns whether a voter has voted on a poll. Without a voter the configured one is used.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pollID, err := parsePollID(args[0])
			if err != nil {
				return err
			}

			var voter *common.Address
			if len(args) == 2 {
				address, err := parseAddress(args[1])
				if err != nil {
					return err
				}
				voter = &address
			}

			return runWithApp(cmd, func(ctx context.Context, a *app.App) error {
				return printEnvelope(cmd, a.Service.HasVoted(ctx, pollID, voter, a.ChainID(0)))
			})
		},
	}
}

// pollStatus is the lifecycle of a poll as seen at a point in time
type pollStatus struct {
	Status        types.PollStatus `json:"status"`
	AcceptsVotes  bool             `json:"acceptsVotes"`
	TimeRemaining string           `json:"timeRemaining"`
}

func getCmdStatus() *cobra.Command {
	return &cobra.Command{
		Use:   "status [poll-id]",
		Short: "Returns the status of a poll and the time left to vote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pollID, err := parsePollID(args[0])
			if err != nil {
				return err
			}

			return runWithApp(cmd, func(ctx context.Context, a *app.App) error {
				poll := a.Service.GetPoll(ctx, pollID, a.ChainID(0))
				if !poll.IsError && poll.Data == nil {
					return fmt.Errorf("poll %s not found", pollID)
				}

				return printEnvelope(cmd, statusOf(poll, time.Now()))
			})
		},
	}
}

func statusOf(poll query.Envelope[*types.Poll], now time.Time) query.Envelope[*pollStatus] {
	env := query.Envelope[*pollStatus]{
		IsError:      poll.IsError,
		Err:          poll.Err,
		ActiveSource: poll.ActiveSource,
		Partial:      poll.Partial,
		Warnings:     poll.Warnings,
	}

	if poll.Data != nil {
		env.Data = &pollStatus{
			Status:        types.DeriveStatus(*poll.Data, now),
			AcceptsVotes:  types.IsPollActive(*poll.Data, now),
			TimeRemaining: types.FormatDuration(types.TimeRemaining(*poll.Data, now)),
		}
	}

	return env
}

func parsePollID(s string) (math.Uint, error) {
	id, err := math.ParseUint(s)
	if err != nil {
		return math.Uint{}, fmt.Errorf("invalid poll id %s: %w", s, err)
	}

	return id, nil
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %s", s)
	}

	return common.HexToAddress(s), nil
}

func parseFilters(cmd *cobra.Command) (types.PollFilters, error) {
	var filters types.PollFilters

	creator, err := cmd.Flags().GetString(FlagCreator)
	if err != nil {
		return types.PollFilters{}, err
	}

	if creator != "" {
		address, err := parseAddress(creator)
		if err != nil {
			return types.PollFilters{}, err
		}
		filters.Creator = &address
	}

	status, err := cmd.Flags().GetString(FlagStatus)
	if err != nil {
		return types.PollFilters{}, err
	}

	if filters.Status, err = types.ParsePollStatus(status); err != nil {
		return types.PollFilters{}, err
	}

	if filters.Category, err = cmd.Flags().GetString(FlagCategory); err != nil {
		return types.PollFilters{}, err
	}

	if filters.Limit, err = cmd.Flags().GetUint64(FlagLimit); err != nil {
		return types.PollFilters{}, err
	}

	if filters.Offset, err = cmd.Flags().GetUint64(FlagOffset); err != nil {
		return types.PollFilters{}, err
	}

	return filters, nil
}
