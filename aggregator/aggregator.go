package aggregator

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/axelarnetwork/utils/slices"
	"github.com/polypuls3/polypulse/types"
)

// Results is the tallied outcome of a poll
type Results struct {
	Results         []types.PollOption `json:"results"`
	TotalVotes      math.Uint          `json:"totalVotes"`
	LeadingOptionID *uint64            `json:"leadingOptionId"`
}

// Tally merges the option texts with their vote counts and derives percentages, total and leader
func Tally(texts []string, counts []math.Uint) (Results, error) {
	options, err := MergeOptionTextWithCounts(texts, counts)
	if err != nil {
		return Results{}, err
	}

	options = ComputePercentages(options)

	return Results{
		Results:         options,
		TotalVotes:      TotalVotes(options),
		LeadingOptionID: FindLeadingOption(options),
	}, nil
}

// TotalVotes returns the sum of all option vote counts
func TotalVotes(options []types.PollOption) math.Uint {
	return types.TotalVotes(options)
}

// ComputePercentages returns a copy of the options with their share of the total vote as a whole percentage.
// The share is truncated by integer division, so the percentages may add up to less than 100.
func ComputePercentages(options []types.PollOption) []types.PollOption {
	total := TotalVotes(options)

	return slices.Map(options, func(option types.PollOption) types.PollOption {
		option.Percentage = 0
		if !total.IsZero() {
			option.Percentage = float64(option.VoteCount.MulUint64(100).Quo(total).Uint64())
		}

		return option
	})
}

// MergeOptionTextWithCounts pairs option texts with vote counts by position
func MergeOptionTextWithCounts(texts []string, counts []math.Uint) ([]types.PollOption, error) {
	if len(texts) != len(counts) {
		return nil, errorsmod.Wrapf(types.ErrDataInconsistency, "got %d option texts but %d vote counts", len(texts), len(counts))
	}

	options := make([]types.PollOption, len(texts))
	for i, text := range texts {
		options[i] = types.PollOption{
			ID:        uint64(i),
			Text:      text,
			VoteCount: counts[i],
		}
	}

	return options, nil
}

// FindLeadingOption returns the id of the option with the most votes. Ties go to the earliest option.
// It returns nil if there are no options or nobody has voted.
func FindLeadingOption(options []types.PollOption) *uint64 {
	var leader *types.PollOption

	for i := range options {
		if options[i].VoteCount.IsZero() {
			continue
		}

		if leader == nil || options[i].VoteCount.GT(leader.VoteCount) {
			leader = &options[i]
		}
	}

	if leader == nil {
		return nil
	}

	id := leader.ID
	return &id
}
