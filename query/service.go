package query

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"

	"github.com/axelarnetwork/utils/slices"
	"github.com/polypuls3/polypulse/aggregator"
	"github.com/polypuls3/polypulse/resolver"
	"github.com/polypuls3/polypulse/types"
)

//go:generate moq -out ./mock/service.go -pkg mock . VoteLister

// VoteLister lists the votes cast by a voter across polls
type VoteLister interface {
	ListUserVotes(ctx context.Context, chainID uint64, voter common.Address, limit uint64, offset uint64) ([]types.UserVote, error)
}

// Option tunes a single read
type Option func(*options)

type options struct {
	source types.DataSource
}

// WithSource overrides the configured data source for a single read
func WithSource(source types.DataSource) Option {
	return func(o *options) { o.source = source }
}

// Service is the read surface of the SDK. Every call returns a settled envelope.
type Service struct {
	logger   log.Logger
	resolver *resolver.Resolver
	votes    VoteLister
	identity Identity
}

// NewService returns a new Service instance. The identity is used whenever a call does not name a voter.
func NewService(logger log.Logger, resolver *resolver.Resolver, votes VoteLister, identity Identity) *Service {
	if identity == nil {
		identity = NoIdentity{}
	}

	return &Service{
		logger:   logger.With("component", "query"),
		resolver: resolver,
		votes:    votes,
		identity: identity,
	}
}

type read[T any] struct {
	data     T
	partial  bool
	warnings []string
}

// GetPoll reads a poll together with the vote counts of its options from the same backend.
// The data is nil if the poll does not exist.
func (s Service) GetPoll(ctx context.Context, pollID math.Uint, chainID uint64, opts ...Option) Envelope[*types.Poll] {
	return execute(ctx, s, "get_poll", opts, func(ctx context.Context, r resolver.Reader) (read[*types.Poll], error) {
		found, err := r.ReadPoll(ctx, chainID, pollID)
		if err != nil || found == nil {
			return read[*types.Poll]{}, err
		}

		poll := *found
		result := read[*types.Poll]{data: &poll}

		counts, err := r.ReadVoteCounts(ctx, chainID, pollID, len(poll.Options))
		if err != nil {
			if ctx.Err() != nil {
				return read[*types.Poll]{}, err
			}

			result.partial = true
			result.warnings = append(result.warnings, fmt.Sprintf("vote counts unavailable: %s", err))
			poll.Options = aggregator.ComputePercentages(poll.Options)
			return result, nil
		}

		merged, err := aggregator.MergeOptionTextWithCounts(poll.OptionTexts(), counts.Counts)
		if err != nil {
			result.partial = true
			result.warnings = append(result.warnings, err.Error())
			poll.Options = aggregator.ComputePercentages(poll.Options)
			return result, nil
		}

		poll.Options = aggregator.ComputePercentages(merged)
		if counts.Partial {
			result.partial = true
			result.warnings = append(result.warnings, failedOptionsWarning(counts))
		}

		if !poll.TallyMatches() {
			result.warnings = append(result.warnings, fmt.Sprintf("option votes add up to %s but the poll records %s responses", types.TotalVotes(poll.Options), poll.TotalResponses))
		}

		return result, nil
	})
}

// ListPolls reads a page of polls matching the filters
func (s Service) ListPolls(ctx context.Context, filters types.PollFilters, chainID uint64, opts ...Option) Envelope[types.PollPage] {
	if _, err := types.ParsePollStatus(string(filters.Status)); err != nil {
		return invalid[types.PollPage](err)
	}

	return execute(ctx, s, "list_polls", opts, func(ctx context.Context, r resolver.Reader) (read[types.PollPage], error) {
		page, err := r.ReadPolls(ctx, chainID, filters)
		return read[types.PollPage]{data: page}, err
	})
}

// GetResults tallies the votes of a poll whose option texts are already known
func (s Service) GetResults(ctx context.Context, pollID math.Uint, optionTexts []string, chainID uint64, opts ...Option) Envelope[aggregator.Results] {
	return execute(ctx, s, "get_results", opts, func(ctx context.Context, r resolver.Reader) (read[aggregator.Results], error) {
		counts, err := r.ReadVoteCounts(ctx, chainID, pollID, len(optionTexts))
		if err != nil {
			return read[aggregator.Results]{}, err
		}

		results, err := aggregator.Tally(optionTexts, counts.Counts)
		if err != nil {
			return read[aggregator.Results]{}, err
		}

		result := read[aggregator.Results]{data: results}
		if counts.Partial {
			result.partial = true
			result.warnings = append(result.warnings, failedOptionsWarning(counts))
		}

		return result, nil
	})
}

// HasVoted returns whether the voter has voted on the poll. Without a voter the connected identity is used;
// without either the result is settled as not voted and no backend is read.
func (s Service) HasVoted(ctx context.Context, pollID math.Uint, voter *common.Address, chainID uint64, opts ...Option) Envelope[types.VoteState] {
	address, ok := s.voter(voter)
	if !ok {
		env := Envelope[types.VoteState]{Data: types.VoteState{HasVoted: false}, ActiveSource: types.ActiveNone}
		env.refetch = func(ctx context.Context) Envelope[types.VoteState] {
			return s.HasVoted(ctx, pollID, voter, chainID, opts...)
		}

		return env
	}

	return execute(ctx, s, "has_voted", opts, func(ctx context.Context, r resolver.Reader) (read[types.VoteState], error) {
		state, err := r.ReadHasVoted(ctx, chainID, pollID, address)
		return read[types.VoteState]{data: state}, err
	})
}

// ListUserVotes returns a page of the votes cast by the voter, newest first. Only the index keeps this history.
func (s Service) ListUserVotes(ctx context.Context, voter *common.Address, chainID uint64, limit uint64, offset uint64) Envelope[[]types.UserVote] {
	address, ok := s.voter(voter)
	if !ok {
		return invalid[[]types.UserVote](fmt.Errorf("no voter given and no identity connected"))
	}

	if s.votes == nil {
		return invalid[[]types.UserVote](fmt.Errorf("vote history requires an index"))
	}

	votes, err := s.votes.ListUserVotes(ctx, chainID, address, limit, offset)
	env := Envelope[[]types.UserVote]{Data: votes, ActiveSource: types.ActiveIndex}
	if err != nil {
		s.logger.Debug("failed to list user votes", "voter", address.Hex(), "error", err)
		env = Envelope[[]types.UserVote]{IsError: true, Err: err, ActiveSource: types.ActiveNone}
	}

	env.refetch = func(ctx context.Context) Envelope[[]types.UserVote] {
		return s.ListUserVotes(ctx, voter, chainID, limit, offset)
	}

	return env
}

func (s Service) voter(voter *common.Address) (common.Address, bool) {
	if voter != nil {
		return *voter, true
	}

	return s.identity.Address()
}

func execute[T any](ctx context.Context, s Service, operation string, opts []Option, fn func(context.Context, resolver.Reader) (read[T], error)) Envelope[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	plan, err := s.resolver.Plan(o.source)
	if err != nil {
		return failed[T](err)
	}

	return settle(ctx, s.logger.With("operation", operation), plan, plan, fn)
}

// settle runs the plan and pins refetches to the backend that answered, or to the full plan if none did
func settle[T any](ctx context.Context, logger log.Logger, full resolver.Plan, plan resolver.Plan, fn func(context.Context, resolver.Reader) (read[T], error)) Envelope[T] {
	outcome := resolver.Execute(ctx, plan, fn)

	env := Envelope[T]{
		Data:         outcome.Value.data,
		IsError:      outcome.State == resolver.Failed,
		Err:          outcome.Err,
		ActiveSource: outcome.Source,
		Partial:      outcome.Value.partial,
		Warnings:     append(outcome.Warnings, outcome.Value.warnings...),
	}

	if env.IsError {
		logger.Debug("read failed", "error", outcome.Err)
	}

	next := full
	if outcome.State == resolver.Resolved {
		next = outcome.Pinned()
	}

	env.refetch = func(ctx context.Context) Envelope[T] {
		return settle(ctx, logger, full, next, fn)
	}

	return env
}

func invalid[T any](err error) Envelope[T] {
	return failed[T](errorsmod.Wrap(types.ErrInvalidRequest, err.Error()))
}

func failed[T any](err error) Envelope[T] {
	return Envelope[T]{
		IsError:      true,
		Err:          err,
		ActiveSource: types.ActiveNone,
	}
}

func failedOptionsWarning(counts types.VoteCounts) string {
	return fmt.Sprintf("vote counts of options %v could not be read and are reported as 0",
		slices.Map(counts.Failed, func(id uint64) string { return fmt.Sprint(id) }))
}
