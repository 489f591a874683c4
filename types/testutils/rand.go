package testutils

import (
	"time"

	"cosmossdk.io/math"

	"github.com/axelarnetwork/utils/slices"
	"github.com/polypuls3/polypulse/testutils/rand"
	"github.com/polypuls3/polypulse/types"
)

// RandomPoll returns a random valid poll whose option tallies add up to its total responses
func RandomPoll() types.Poll {
	createdAt := uint64(time.Now().Unix()) - rand.Uint64Between(0, 7*24*3600)
	counts := slices.Expand(func(int) uint64 { return rand.Uint64Between(0, 1000) }, int(rand.I64Between(2, 6)))

	poll := types.Poll{
		ID:                math.NewUint(rand.Uint64Between(1, 100000)),
		Creator:           rand.Address(),
		Question:          rand.StrBetween(5, 50) + "?",
		Options:           RandomOptions(counts...),
		CreatedAt:         math.NewUint(createdAt),
		ExpiresAt:         math.NewUint(createdAt + rand.Uint64Between(3600, 30*24*3600)),
		RewardPool:        math.NewUint(rand.Uint64Between(0, 1e18)),
		IsActive:          rand.Bool(),
		Category:          rand.Of("general", "defi", "governance", "nft"),
		ProjectID:         math.NewUint(rand.Uint64Between(0, 100)),
		VotingType:        rand.Of("single", "multiple"),
		Visibility:        rand.Of("public", "private"),
		Status:            rand.Of(types.StatusActive, types.StatusEnded, types.StatusClaimingEnabled, types.StatusClaimingDisabled, types.StatusClosed),
		PlatformFeeAmount: math.NewUint(rand.Uint64Between(0, 1e15)),
		ClaimedRewards:    math.ZeroUint(),
	}
	poll.TotalResponses = types.TotalVotes(poll.Options)

	return poll
}

// RandomOptions returns options with random texts and the given vote counts
func RandomOptions(counts ...uint64) []types.PollOption {
	options := make([]types.PollOption, len(counts))
	for i, count := range counts {
		options[i] = types.PollOption{
			ID:        uint64(i),
			Text:      rand.StrBetween(3, 20),
			VoteCount: math.NewUint(count),
		}
	}

	return options
}
