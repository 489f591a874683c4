package contract

import (
	"context"
	"fmt"
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/axelarnetwork/utils/slices"
	"github.com/polypuls3/polypulse/normalizer"
	"github.com/polypuls3/polypulse/reader/contract/rpc"
	"github.com/polypuls3/polypulse/types"
)

// DefaultMaxConcurrentReads bounds the number of vote count reads in flight for a single poll
const DefaultMaxConcurrentReads = 8

// Reader reads polls directly from the poll contract
type Reader struct {
	logger             log.Logger
	clients            map[uint64]rpc.Client
	addresses          map[uint64]common.Address
	maxConcurrentReads int
}

// NewReader returns a new Reader instance. Chains without both an RPC client and a non-zero contract address are unsupported.
func NewReader(logger log.Logger, clients map[uint64]rpc.Client, addresses map[uint64]common.Address) *Reader {
	return &Reader{
		logger:             logger.With("reader", "contract"),
		clients:            clients,
		addresses:          addresses,
		maxConcurrentReads: DefaultMaxConcurrentReads,
	}
}

// WithMaxConcurrentReads bounds the number of vote count reads in flight for a single poll
func (r *Reader) WithMaxConcurrentReads(n int) *Reader {
	if n > 0 {
		r.maxConcurrentReads = n
	}

	return r
}

// Source returns the backend this reader serves
func (r Reader) Source() types.ActiveSource {
	return types.ActiveContract
}

// ReadPoll reads a single poll. It returns nil without error if the poll does not exist.
func (r Reader) ReadPoll(ctx context.Context, chainID uint64, pollID math.Uint) (*types.Poll, error) {
	client, address, err := r.chain(chainID)
	if err != nil {
		return nil, err
	}

	bz, err := client.CallContract(ctx, callMsg(address, pack(methodGetPoll, pollID.BigInt())), nil)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrRead, "failed to read poll %s on chain %d: %s", pollID, chainID, err)
	}

	raw, err := unpackPoll(bz)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrRead, "failed to decode poll %s on chain %d: %s", pollID, chainID, err)
	}

	if raw.Creator == (common.Address{}) {
		r.logger.Debug("poll not found", "chain", chainID, "poll", pollID.String())
		return nil, nil
	}

	poll, err := normalizer.FromContract(raw, nil)
	if err != nil {
		return nil, err
	}

	return &poll, nil
}

// ReadPolls reads the poll window [offset, offset+limit) in a single batch and applies the filters to the result.
// The total is the contract's poll count, so filtered pages can hold fewer polls than the limit.
func (r Reader) ReadPolls(ctx context.Context, chainID uint64, filters types.PollFilters) (types.PollPage, error) {
	client, address, err := r.chain(chainID)
	if err != nil {
		return types.PollPage{}, err
	}

	filters = filters.WithDefaults()

	total, err := r.pollCount(ctx, client, address)
	if err != nil {
		return types.PollPage{}, errorsmod.Wrapf(types.ErrRead, "failed to read poll count on chain %d: %s", chainID, err)
	}

	if !total.BigInt().IsUint64() {
		return types.PollPage{}, errorsmod.Wrapf(types.ErrRead, "poll count %s on chain %d overflows", total, chainID)
	}

	start, end := window(total.Uint64(), filters.Offset, filters.Limit)
	if start >= end {
		return types.PollPage{Polls: []types.Poll{}, Total: total.Uint64(), HasMore: false}, nil
	}

	r.logger.Debug("reading poll window", "chain", chainID, "start", start, "end", end, "total", total.Uint64())

	ids := make([]*big.Int, 0, end-start)
	for id := start; id < end; id++ {
		ids = append(ids, new(big.Int).SetUint64(id))
	}

	res, err := client.BatchCallContract(ctx, slices.Map(ids, func(id *big.Int) ethereum.CallMsg {
		return callMsg(address, pack(methodGetPoll, id))
	}))
	if err != nil {
		return types.PollPage{}, errorsmod.Wrapf(types.ErrRead, "failed to read polls %d to %d on chain %d: %s", start, end, chainID, err)
	}

	polls := make([]types.Poll, 0, len(res))
	for i, result := range res {
		poll, err := decodePoll(result.Result().Ok(), result.Result().Err())
		if err != nil {
			r.logger.Debug("dropping unreadable poll", "chain", chainID, "poll", ids[i].String(), "error", err)
			continue
		}

		if poll != nil && filters.Match(*poll) {
			polls = append(polls, *poll)
		}
	}

	return types.PollPage{
		Polls:   polls,
		Total:   total.Uint64(),
		HasMore: end < total.Uint64(),
	}, nil
}

// ReadVoteCounts reads the vote count of each option concurrently. A failed read reports 0 and marks the result partial.
// It fails only if no option could be read.
func (r Reader) ReadVoteCounts(ctx context.Context, chainID uint64, pollID math.Uint, optionCount int) (types.VoteCounts, error) {
	client, address, err := r.chain(chainID)
	if err != nil {
		return types.VoteCounts{}, err
	}

	counts := make([]math.Uint, optionCount)
	failures := make([]error, optionCount)

	var g errgroup.Group
	g.SetLimit(r.maxConcurrentReads)
	for i := 0; i < optionCount; i++ {
		i := i
		g.Go(func() error {
			counts[i], failures[i] = r.voteCount(ctx, client, address, pollID, uint64(i))
			return nil
		})
	}
	_ = g.Wait()

	result := types.VoteCounts{Counts: counts}
	for i, failure := range failures {
		if failure == nil {
			continue
		}

		r.logger.Debug("failed to read vote count", "chain", chainID, "poll", pollID.String(), "option", i, "error", failure)
		result.Partial = true
		result.Failed = append(result.Failed, uint64(i))
	}

	if optionCount > 0 && len(result.Failed) == optionCount {
		return types.VoteCounts{}, errorsmod.Wrapf(types.ErrRead, "failed to read any vote count of poll %s on chain %d: %s", pollID, chainID, failures[0])
	}

	return result, nil
}

// ReadHasVoted returns whether the voter has voted on the poll. The chosen option is only read if they have.
func (r Reader) ReadHasVoted(ctx context.Context, chainID uint64, pollID math.Uint, voter common.Address) (types.VoteState, error) {
	client, address, err := r.chain(chainID)
	if err != nil {
		return types.VoteState{}, err
	}

	bz, err := client.CallContract(ctx, callMsg(address, pack(methodHasVoted, pollID.BigInt(), voter)), nil)
	if err != nil {
		return types.VoteState{}, errorsmod.Wrapf(types.ErrRead, "failed to read vote status of %s on poll %s: %s", voter.Hex(), pollID, err)
	}

	var voted bool
	if err := unpackSingle(methodHasVoted, bz, &voted); err != nil {
		return types.VoteState{}, errorsmod.Wrapf(types.ErrRead, "failed to decode vote status of %s on poll %s: %s", voter.Hex(), pollID, err)
	}

	if !voted {
		return types.VoteState{HasVoted: false}, nil
	}

	bz, err = client.CallContract(ctx, callMsg(address, pack(methodGetUserVote, pollID.BigInt(), voter)), nil)
	if err != nil {
		return types.VoteState{}, errorsmod.Wrapf(types.ErrRead, "failed to read vote of %s on poll %s: %s", voter.Hex(), pollID, err)
	}

	var optionID *big.Int
	if err := unpackSingle(methodGetUserVote, bz, &optionID); err != nil {
		return types.VoteState{}, errorsmod.Wrapf(types.ErrRead, "failed to decode vote of %s on poll %s: %s", voter.Hex(), pollID, err)
	}

	if !optionID.IsUint64() {
		return types.VoteState{}, errorsmod.Wrapf(types.ErrRead, "option id %s of %s on poll %s overflows", optionID, voter.Hex(), pollID)
	}

	return types.VoteState{
		HasVoted: true,
		UserVote: &types.UserVote{
			PollID:    pollID,
			OptionID:  optionID.Uint64(),
			Voter:     voter,
			Timestamp: math.ZeroUint(),
		},
	}, nil
}

func (r Reader) chain(chainID uint64) (rpc.Client, common.Address, error) {
	address, ok := r.addresses[chainID]
	if !ok || address == (common.Address{}) {
		return nil, common.Address{}, errorsmod.Wrapf(types.ErrUnsupportedChain, "no poll contract configured for chain %d", chainID)
	}

	client, ok := r.clients[chainID]
	if !ok {
		return nil, common.Address{}, errorsmod.Wrapf(types.ErrUnsupportedChain, "unable to find an RPC for chain %d", chainID)
	}

	return client, address, nil
}

func (r Reader) pollCount(ctx context.Context, client rpc.Client, address common.Address) (math.Uint, error) {
	bz, err := client.CallContract(ctx, callMsg(address, pack(methodPollCount)), nil)
	if err != nil {
		return math.Uint{}, err
	}

	var count *big.Int
	if err := unpackSingle(methodPollCount, bz, &count); err != nil {
		return math.Uint{}, err
	}

	return normalizer.Count(count)
}

func (r Reader) voteCount(ctx context.Context, client rpc.Client, address common.Address, pollID math.Uint, optionID uint64) (math.Uint, error) {
	bz, err := client.CallContract(ctx, callMsg(address, pack(methodGetVoteCount, pollID.BigInt(), new(big.Int).SetUint64(optionID))), nil)
	if err != nil {
		return math.ZeroUint(), err
	}

	var count *big.Int
	if err := unpackSingle(methodGetVoteCount, bz, &count); err != nil {
		return math.ZeroUint(), err
	}

	n, err := normalizer.Count(count)
	if err != nil {
		return math.ZeroUint(), err
	}

	return n, nil
}

// window clamps [offset, offset+limit) to [0, total)
func window(total uint64, offset uint64, limit uint64) (uint64, uint64) {
	if offset >= total {
		return offset, offset
	}

	end := offset + limit
	if end > total || end < offset {
		end = total
	}

	return offset, end
}

func decodePoll(bz []byte, callErr error) (*types.Poll, error) {
	if callErr != nil {
		return nil, callErr
	}

	raw, err := unpackPoll(bz)
	if err != nil {
		return nil, err
	}

	if raw.Creator == (common.Address{}) {
		return nil, nil
	}

	poll, err := normalizer.FromContract(raw, nil)
	if err != nil {
		return nil, err
	}

	return &poll, nil
}

func pack(method string, args ...interface{}) []byte {
	data, err := pollABI.Pack(method, args...)
	if err != nil {
		panic(fmt.Errorf("failed to pack %s: %w", method, err))
	}

	return data
}

func callMsg(address common.Address, data []byte) ethereum.CallMsg {
	return ethereum.CallMsg{To: &address, Data: data}
}

func unpackPoll(bz []byte) (normalizer.ContractPoll, error) {
	out, err := pollABI.Unpack(methodGetPoll, bz)
	if err != nil {
		return normalizer.ContractPoll{}, err
	}

	if len(out) != 1 {
		return normalizer.ContractPoll{}, fmt.Errorf("expected 1 output, got %d", len(out))
	}

	return *abi.ConvertType(out[0], new(normalizer.ContractPoll)).(*normalizer.ContractPoll), nil
}

func unpackSingle(method string, bz []byte, out interface{}) error {
	values, err := pollABI.Unpack(method, bz)
	if err != nil {
		return err
	}

	if len(values) != 1 {
		return fmt.Errorf("expected 1 output, got %d", len(values))
	}

	return pollABI.Methods[method].Outputs.Copy(out, values)
}
