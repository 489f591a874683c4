package contract_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/utils/funcs"
	"github.com/axelarnetwork/utils/monads/results"
	"github.com/axelarnetwork/utils/slices"
	. "github.com/axelarnetwork/utils/test"
	"github.com/polypuls3/polypulse/normalizer"
	"github.com/polypuls3/polypulse/reader/contract"
	"github.com/polypuls3/polypulse/reader/contract/rpc"
	"github.com/polypuls3/polypulse/reader/contract/rpc/mock"
	"github.com/polypuls3/polypulse/testutils/rand"
	"github.com/polypuls3/polypulse/types"
	"github.com/polypuls3/polypulse/types/testutils"
)

const chainID = uint64(80002)

var pollABI = funcs.Must(abi.JSON(strings.NewReader(contract.PollABI)))

// fakeContract answers read calls from in-memory state
type fakeContract struct {
	mu            sync.Mutex
	polls         []types.Poll
	votes         map[common.Address]uint64
	failingOption map[uint64]bool
	failingPoll   map[uint64]bool
	calls         map[string]int
}

func newFakeContract(polls ...types.Poll) *fakeContract {
	return &fakeContract{
		polls:         polls,
		votes:         map[common.Address]uint64{},
		failingOption: map[uint64]bool{},
		failingPoll:   map[uint64]bool{},
		calls:         map[string]int{},
	}
}

func (f *fakeContract) called(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[method]
}

func (f *fakeContract) call(msg ethereum.CallMsg) ([]byte, error) {
	method := funcs.Must(pollABI.MethodById(msg.Data[:4]))
	args := funcs.Must(method.Inputs.Unpack(msg.Data[4:]))

	f.mu.Lock()
	f.calls[method.Name]++
	f.mu.Unlock()

	switch method.Name {
	case "pollCount":
		return method.Outputs.Pack(big.NewInt(int64(len(f.polls))))
	case "getPoll":
		id := args[0].(*big.Int).Uint64()
		if f.failingPoll[id] {
			return nil, errors.New("execution reverted")
		}

		if id >= uint64(len(f.polls)) {
			return method.Outputs.Pack(emptyPoll())
		}

		return method.Outputs.Pack(toContract(f.polls[id]))
	case "getVoteCount":
		id := args[0].(*big.Int).Uint64()
		option := args[1].(*big.Int).Uint64()
		if f.failingOption[option] {
			return nil, errors.New("execution reverted")
		}

		return method.Outputs.Pack(f.polls[id].Options[option].VoteCount.BigInt())
	case "hasVoted":
		_, ok := f.votes[args[1].(common.Address)]
		return method.Outputs.Pack(ok)
	case "getUserVote":
		return method.Outputs.Pack(new(big.Int).SetUint64(f.votes[args[1].(common.Address)]))
	default:
		return nil, fmt.Errorf("unexpected method %s", method.Name)
	}
}

func (f *fakeContract) client() *mock.ClientMock {
	return &mock.ClientMock{
		CallContractFunc: func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
			return f.call(msg)
		},
		BatchCallContractFunc: func(_ context.Context, msgs []ethereum.CallMsg) ([]rpc.CallResult, error) {
			return slices.Map(msgs, func(msg ethereum.CallMsg) rpc.CallResult {
				bz, err := f.call(msg)
				if err != nil {
					return rpc.CallResult(results.FromErr[[]byte](err))
				}
				return rpc.CallResult(results.FromOk(bz))
			}), nil
		},
	}
}

func toContract(poll types.Poll) normalizer.ContractPoll {
	return normalizer.ContractPoll{
		Id:                poll.ID.BigInt(),
		Creator:           poll.Creator,
		Question:          poll.Question,
		Options:           poll.OptionTexts(),
		CreatedAt:         poll.CreatedAt.BigInt(),
		ExpiresAt:         poll.ExpiresAt.BigInt(),
		RewardPool:        poll.RewardPool.BigInt(),
		IsActive:          poll.IsActive,
		TotalResponses:    poll.TotalResponses.BigInt(),
		Category:          poll.Category,
		ProjectId:         poll.ProjectID.BigInt(),
		VotingType:        poll.VotingType,
		Visibility:        poll.Visibility,
		Status:            uint8(poll.Status),
		PlatformFeeAmount: poll.PlatformFeeAmount.BigInt(),
		ClaimedRewards:    poll.ClaimedRewards.BigInt(),
	}
}

func emptyPoll() normalizer.ContractPoll {
	zero := big.NewInt(0)
	return normalizer.ContractPoll{
		Id: zero, Options: []string{}, CreatedAt: zero, ExpiresAt: zero, RewardPool: zero, TotalResponses: zero,
		ProjectId: zero, PlatformFeeAmount: zero, ClaimedRewards: zero,
	}
}

func randomPolls(count int) []types.Poll {
	return slices.Expand(func(i int) types.Poll {
		poll := testutils.RandomPoll()
		poll.ID = math.NewUint(uint64(i))
		return poll
	}, count)
}

func TestReader_UnsupportedChain(t *testing.T) {
	fake := newFakeContract(randomPolls(3)...)

	testCases := map[string]*contract.Reader{
		"no client":    contract.NewReader(log.NewNopLogger(), nil, map[uint64]common.Address{chainID: rand.Address()}),
		"no address":   contract.NewReader(log.NewNopLogger(), map[uint64]rpc.Client{chainID: fake.client()}, nil),
		"zero address": contract.NewReader(log.NewNopLogger(), map[uint64]rpc.Client{chainID: fake.client()}, map[uint64]common.Address{chainID: {}}),
	}

	for name, reader := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := reader.ReadPoll(context.Background(), chainID, math.OneUint())
			assert.True(t, errors.Is(err, types.ErrUnsupportedChain))

			_, err = reader.ReadPolls(context.Background(), chainID, types.PollFilters{})
			assert.True(t, errors.Is(err, types.ErrUnsupportedChain))

			_, err = reader.ReadVoteCounts(context.Background(), chainID, math.OneUint(), 2)
			assert.True(t, errors.Is(err, types.ErrUnsupportedChain))

			_, err = reader.ReadHasVoted(context.Background(), chainID, math.OneUint(), rand.Address())
			assert.True(t, errors.Is(err, types.ErrUnsupportedChain))
		})
	}

	assert.Zero(t, fake.called("pollCount"))
}

func TestReader_ReadPoll(t *testing.T) {
	var (
		fake   *fakeContract
		reader *contract.Reader
		polls  []types.Poll
	)

	givenReader := Given("a contract reader", func() {
		polls = randomPolls(5)
		fake = newFakeContract(polls...)
		reader = contract.NewReader(log.NewNopLogger(), map[uint64]rpc.Client{chainID: fake.client()}, map[uint64]common.Address{chainID: rand.Address()})
	})

	givenReader.
		When("the poll exists", func() {}).
		Then("should return the normalized poll", func(t *testing.T) {
			poll, err := reader.ReadPoll(context.Background(), chainID, math.NewUint(3))
			assert.NoError(t, err)
			assert.NotNil(t, poll)
			assert.Equal(t, polls[3].Question, poll.Question)
			assert.Equal(t, polls[3].Creator, poll.Creator)
			assert.Equal(t, polls[3].OptionTexts(), poll.OptionTexts())
			assert.Equal(t, polls[3].TotalResponses.String(), poll.TotalResponses.String())
		}).
		Run(t)

	givenReader.
		When("the poll does not exist", func() {}).
		Then("should return nil without error", func(t *testing.T) {
			poll, err := reader.ReadPoll(context.Background(), chainID, math.NewUint(42))
			assert.NoError(t, err)
			assert.Nil(t, poll)
		}).
		Run(t)

	givenReader.
		When("the call reverts", func() {
			fake.failingPoll[2] = true
		}).
		Then("should return a read error", func(t *testing.T) {
			_, err := reader.ReadPoll(context.Background(), chainID, math.NewUint(2))
			assert.True(t, errors.Is(err, types.ErrRead))
		}).
		Run(t)
}

func TestReader_ReadPolls(t *testing.T) {
	var (
		fake   *fakeContract
		client *mock.ClientMock
		reader *contract.Reader
		polls  []types.Poll
	)

	givenReader := Given("a contract reader with 25 polls", func() {
		polls = randomPolls(25)
		fake = newFakeContract(polls...)
		client = fake.client()
		reader = contract.NewReader(log.NewNopLogger(), map[uint64]rpc.Client{chainID: client}, map[uint64]common.Address{chainID: rand.Address()})
	})

	givenReader.
		When("the offset is past the total", func() {}).
		Then("should return an empty page without a batch call", func(t *testing.T) {
			page, err := reader.ReadPolls(context.Background(), chainID, types.PollFilters{Offset: 25, Limit: 10})
			assert.NoError(t, err)
			assert.Empty(t, page.Polls)
			assert.Equal(t, uint64(25), page.Total)
			assert.False(t, page.HasMore)
			assert.Empty(t, client.BatchCallContractCalls())
		}).
		Run(t)

	givenReader.
		When("the window is inside the total", func() {}).
		Then("should read the window in one batch", func(t *testing.T) {
			page, err := reader.ReadPolls(context.Background(), chainID, types.PollFilters{Offset: 5, Limit: 10})
			assert.NoError(t, err)
			assert.Len(t, page.Polls, 10)
			assert.Equal(t, uint64(25), page.Total)
			assert.True(t, page.HasMore)
			assert.Equal(t, "5", page.Polls[0].ID.String())
			assert.Equal(t, "14", page.Polls[9].ID.String())

			assert.Len(t, client.BatchCallContractCalls(), 1)
			assert.Len(t, client.BatchCallContractCalls()[0].Msgs, 10)
		}).
		Run(t)

	givenReader.
		When("the window reaches past the total", func() {}).
		Then("should clamp the window", func(t *testing.T) {
			page, err := reader.ReadPolls(context.Background(), chainID, types.PollFilters{Offset: 20, Limit: 10})
			assert.NoError(t, err)
			assert.Len(t, page.Polls, 5)
			assert.False(t, page.HasMore)
			assert.Len(t, client.BatchCallContractCalls()[0].Msgs, 5)
		}).
		Run(t)

	givenReader.
		When("no limit is given", func() {}).
		Then("should read the default page size", func(t *testing.T) {
			page, err := reader.ReadPolls(context.Background(), chainID, types.PollFilters{})
			assert.NoError(t, err)
			assert.Len(t, page.Polls, types.DefaultPageLimit)
		}).
		Run(t)

	givenReader.
		When("some polls in the window fail to read", func() {
			fake.failingPoll[1] = true
			fake.failingPoll[3] = true
		}).
		Then("should drop them", func(t *testing.T) {
			page, err := reader.ReadPolls(context.Background(), chainID, types.PollFilters{Limit: 5})
			assert.NoError(t, err)
			assert.Equal(t, []string{"0", "2", "4"}, slices.Map(page.Polls, func(p types.Poll) string { return p.ID.String() }))
		}).
		Run(t)

	givenReader.
		When("filtering by creator and active flag", func() {
			creator := rand.Address()
			for i := range polls[:10] {
				fake.polls[i].Creator = creator
				fake.polls[i].IsActive = i%2 == 0
			}
		}).
		Then("should filter after the batch", func(t *testing.T) {
			creator := fake.polls[0].Creator
			page, err := reader.ReadPolls(context.Background(), chainID, types.PollFilters{Creator: &creator, Status: types.PollActive, Limit: 20})
			assert.NoError(t, err)
			assert.Len(t, page.Polls, 5)
			assert.Equal(t, uint64(25), page.Total)
			assert.True(t, page.HasMore)
			assert.Len(t, client.BatchCallContractCalls()[0].Msgs, 20)
		}).
		Run(t)

	givenReader.
		When("the batch request fails", func() {
			client.BatchCallContractFunc = func(context.Context, []ethereum.CallMsg) ([]rpc.CallResult, error) {
				return nil, errors.New("connection reset")
			}
		}).
		Then("should return a read error", func(t *testing.T) {
			_, err := reader.ReadPolls(context.Background(), chainID, types.PollFilters{})
			assert.True(t, errors.Is(err, types.ErrRead))
		}).
		Run(t)
}

func TestReader_ReadVoteCounts(t *testing.T) {
	var (
		fake   *fakeContract
		reader *contract.Reader
		poll   types.Poll
	)

	givenReader := Given("a contract reader with a poll", func() {
		poll = testutils.RandomPoll()
		poll.ID = math.ZeroUint()
		poll.Options = testutils.RandomOptions(7, 3, 0, 12)
		fake = newFakeContract(poll)
		reader = contract.NewReader(log.NewNopLogger(), map[uint64]rpc.Client{chainID: fake.client()}, map[uint64]common.Address{chainID: rand.Address()})
	})

	givenReader.
		When("all reads succeed", func() {}).
		Then("should return the counts in option order", func(t *testing.T) {
			counts, err := reader.ReadVoteCounts(context.Background(), chainID, poll.ID, len(poll.Options))
			assert.NoError(t, err)
			assert.False(t, counts.Partial)
			assert.Equal(t, []string{"7", "3", "0", "12"}, slices.Map(counts.Counts, math.Uint.String))
			assert.Equal(t, 4, fake.called("getVoteCount"))
		}).
		Run(t)

	givenReader.
		When("one read fails", func() {
			fake.failingOption[1] = true
		}).
		Then("should report 0 for that option and mark the result partial", func(t *testing.T) {
			counts, err := reader.ReadVoteCounts(context.Background(), chainID, poll.ID, len(poll.Options))
			assert.NoError(t, err)
			assert.True(t, counts.Partial)
			assert.Equal(t, []uint64{1}, counts.Failed)
			assert.Equal(t, []string{"7", "0", "0", "12"}, slices.Map(counts.Counts, math.Uint.String))
		}).
		Run(t)

	givenReader.
		When("all reads fail", func() {
			for i := range poll.Options {
				fake.failingOption[uint64(i)] = true
			}
		}).
		Then("should return a read error", func(t *testing.T) {
			_, err := reader.ReadVoteCounts(context.Background(), chainID, poll.ID, len(poll.Options))
			assert.True(t, errors.Is(err, types.ErrRead))
		}).
		Run(t)
}

func TestReader_ReadHasVoted(t *testing.T) {
	var (
		fake   *fakeContract
		reader *contract.Reader
		voter  common.Address
	)

	givenReader := Given("a contract reader", func() {
		fake = newFakeContract(randomPolls(1)...)
		reader = contract.NewReader(log.NewNopLogger(), map[uint64]rpc.Client{chainID: fake.client()}, map[uint64]common.Address{chainID: rand.Address()})
		voter = rand.Address()
	})

	givenReader.
		When("the voter has not voted", func() {}).
		Then("should not read the vote", func(t *testing.T) {
			state, err := reader.ReadHasVoted(context.Background(), chainID, math.ZeroUint(), voter)
			assert.NoError(t, err)
			assert.False(t, state.HasVoted)
			assert.Nil(t, state.UserVote)
			assert.Equal(t, 1, fake.called("hasVoted"))
			assert.Zero(t, fake.called("getUserVote"))
		}).
		Run(t)

	givenReader.
		When("the voter has voted", func() {
			fake.votes[voter] = 1
		}).
		Then("should return the chosen option", func(t *testing.T) {
			state, err := reader.ReadHasVoted(context.Background(), chainID, math.ZeroUint(), voter)
			assert.NoError(t, err)
			assert.True(t, state.HasVoted)
			assert.Equal(t, uint64(1), state.UserVote.OptionID)
			assert.Equal(t, voter, state.UserVote.Voter)
			assert.Equal(t, 1, fake.called("getUserVote"))
		}).
		Run(t)
}
