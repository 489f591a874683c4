package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"

	"github.com/polypuls3/polypulse/testutils/rand"
	"github.com/polypuls3/polypulse/types"
	"github.com/polypuls3/polypulse/types/testutils"
)

func TestPoll_TallyMatches(t *testing.T) {
	for i := 0; i < 20; i++ {
		poll := testutils.RandomPoll()
		assert.True(t, poll.TallyMatches())
		assert.NoError(t, poll.ValidateBasic())

		poll.TotalResponses = poll.TotalResponses.Add(math.OneUint())
		assert.False(t, poll.TallyMatches())
	}
}

func TestPoll_ValidateBasic(t *testing.T) {
	poll := testutils.RandomPoll()
	poll.ExpiresAt = poll.CreatedAt

	assert.Error(t, poll.ValidateBasic())
}

func TestPollFilters(t *testing.T) {
	poll := testutils.RandomPoll()
	poll.IsActive = false
	poll.Category = "DeFi"

	assert.Equal(t, uint64(types.DefaultPageLimit), types.PollFilters{}.WithDefaults().Limit)
	assert.Equal(t, uint64(3), types.PollFilters{Limit: 3}.WithDefaults().Limit)

	assert.True(t, types.PollFilters{}.Match(poll))
	assert.True(t, types.PollFilters{Creator: &poll.Creator}.Match(poll))
	assert.True(t, types.PollFilters{Category: "defi"}.Match(poll))

	other := rand.Address()
	assert.False(t, types.PollFilters{Creator: &other}.Match(poll))
	assert.False(t, types.PollFilters{Status: types.PollActive}.Match(poll))
	assert.False(t, types.PollFilters{Category: "nft"}.Match(poll))
}

func TestContractStatus_IsTerminal(t *testing.T) {
	assert.False(t, types.StatusActive.IsTerminal())
	assert.True(t, types.StatusEnded.IsTerminal())
	assert.False(t, types.StatusClaimingEnabled.IsTerminal())
	assert.False(t, types.StatusClaimingDisabled.IsTerminal())
	assert.True(t, types.StatusClosed.IsTerminal())
}
