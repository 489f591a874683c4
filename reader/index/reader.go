package index

import (
	"context"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"

	"github.com/polypuls3/polypulse/normalizer"
	"github.com/polypuls3/polypulse/types"
)

// DefaultResponsesPageSize is the number of poll responses fetched per request when tallying votes
const DefaultResponsesPageSize = 1000

type pollResponse struct {
	Poll *normalizer.IndexPoll `json:"poll"`
}

type pollsResponse struct {
	Polls []normalizer.IndexPoll `json:"polls"`
}

type pollResponsesResponse struct {
	PollResponses []normalizer.IndexPollResponse `json:"pollResponses"`
}

// Reader reads polls from the off-chain index
type Reader struct {
	logger            log.Logger
	clients           map[uint64]Client
	responsesPageSize int
}

// NewReader returns a new Reader instance. Chains without an index client are unsupported.
func NewReader(logger log.Logger, clients map[uint64]Client) *Reader {
	return &Reader{
		logger:            logger.With("reader", "index"),
		clients:           clients,
		responsesPageSize: DefaultResponsesPageSize,
	}
}

// Source returns the backend this reader serves
func (r Reader) Source() types.ActiveSource {
	return types.ActiveIndex
}

// ReadPoll reads a single poll. It returns nil without error if the index does not know the poll.
func (r Reader) ReadPoll(ctx context.Context, chainID uint64, pollID math.Uint) (*types.Poll, error) {
	req := NewRequest(QueryGetPoll)
	req.Var("id", pollID.String())

	var resp pollResponse
	if err := r.run(ctx, chainID, req, &resp); err != nil {
		return nil, err
	}

	if resp.Poll == nil {
		r.logger.Debug("poll not found", "chain", chainID, "poll", pollID.String())
		return nil, nil
	}

	poll, err := normalizer.FromIndex(*resp.Poll, nil)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrIndexUnavailable, "malformed poll %s: %s", pollID, err)
	}

	return &poll, nil
}

// ReadPolls reads a page of polls, newest first. The active filter takes precedence over the creator filter
// when choosing the query; all filters are then applied to the returned page.
func (r Reader) ReadPolls(ctx context.Context, chainID uint64, filters types.PollFilters) (types.PollPage, error) {
	filters = filters.WithDefaults()
	req := pollsRequest(filters)

	var resp pollsResponse
	if err := r.run(ctx, chainID, req, &resp); err != nil {
		return types.PollPage{}, err
	}

	polls := make([]types.Poll, 0, len(resp.Polls))
	for _, raw := range resp.Polls {
		poll, err := normalizer.FromIndex(raw, nil)
		if err != nil {
			return types.PollPage{}, errorsmod.Wrapf(types.ErrIndexUnavailable, "malformed poll in listing: %s", err)
		}

		if filters.Match(poll) {
			polls = append(polls, poll)
		}
	}

	return types.PollPage{
		Polls:   polls,
		Total:   uint64(len(polls)),
		HasMore: uint64(len(resp.Polls)) == filters.Limit,
	}, nil
}

// ReadVoteCounts tallies the votes cast on the poll per option. The result has at least optionCount slots
// and grows if the index holds votes for options beyond that.
func (r Reader) ReadVoteCounts(ctx context.Context, chainID uint64, pollID math.Uint, optionCount int) (types.VoteCounts, error) {
	tally := make([]uint64, optionCount)

	after := ""
	for {
		req := NewRequest(QueryGetPollResponses)
		req.Var("pollId", pollID.String())
		req.Var("after", after)
		req.Var("first", r.responsesPageSize)

		var resp pollResponsesResponse
		if err := r.run(ctx, chainID, req, &resp); err != nil {
			return types.VoteCounts{}, err
		}

		for _, response := range resp.PollResponses {
			option, err := normalizer.Uint("optionIndex", response.OptionIndex)
			if err != nil || !option.BigInt().IsUint64() {
				return types.VoteCounts{}, errorsmod.Wrapf(types.ErrIndexUnavailable, "malformed response on poll %s", pollID)
			}

			for uint64(len(tally)) <= option.Uint64() {
				tally = append(tally, 0)
			}
			tally[option.Uint64()]++
		}

		if len(resp.PollResponses) < r.responsesPageSize {
			break
		}

		next, err := lastID(resp.PollResponses)
		if err != nil {
			return types.VoteCounts{}, errorsmod.Wrapf(types.ErrIndexUnavailable, "malformed response on poll %s: %s", pollID, err)
		}
		after = next
	}

	counts := make([]math.Uint, len(tally))
	for i, n := range tally {
		counts[i] = math.NewUint(n)
	}

	return types.VoteCounts{Counts: counts}, nil
}

// ReadHasVoted returns whether the voter has voted on the poll and, if so, their vote
func (r Reader) ReadHasVoted(ctx context.Context, chainID uint64, pollID math.Uint, voter common.Address) (types.VoteState, error) {
	req := NewRequest(QueryGetVoterPollResponse)
	req.Var("voter", strings.ToLower(voter.Hex()))
	req.Var("pollId", pollID.String())

	var resp pollResponsesResponse
	if err := r.run(ctx, chainID, req, &resp); err != nil {
		return types.VoteState{}, err
	}

	if len(resp.PollResponses) == 0 {
		return types.VoteState{HasVoted: false}, nil
	}

	vote, err := normalizer.UserVoteFromIndex(resp.PollResponses[0])
	if err != nil {
		return types.VoteState{}, errorsmod.Wrapf(types.ErrIndexUnavailable, "malformed vote of %s on poll %s: %s", voter.Hex(), pollID, err)
	}

	return types.VoteState{HasVoted: true, UserVote: &vote}, nil
}

// ListUserVotes returns a page of the votes cast by the voter, newest first
func (r Reader) ListUserVotes(ctx context.Context, chainID uint64, voter common.Address, limit uint64, offset uint64) ([]types.UserVote, error) {
	if limit == 0 {
		limit = types.DefaultPageLimit
	}

	req := NewRequest(QueryGetUserVotes)
	req.Var("voter", strings.ToLower(voter.Hex()))
	req.Var("first", limit)
	req.Var("skip", offset)

	var resp pollResponsesResponse
	if err := r.run(ctx, chainID, req, &resp); err != nil {
		return nil, err
	}

	votes := make([]types.UserVote, 0, len(resp.PollResponses))
	for _, raw := range resp.PollResponses {
		vote, err := normalizer.UserVoteFromIndex(raw)
		if err != nil {
			return nil, errorsmod.Wrapf(types.ErrIndexUnavailable, "malformed vote of %s: %s", voter.Hex(), err)
		}

		votes = append(votes, vote)
	}

	return votes, nil
}

func (r Reader) run(ctx context.Context, chainID uint64, req *Request, resp interface{}) error {
	client, ok := r.clients[chainID]
	if !ok {
		return errorsmod.Wrapf(types.ErrUnsupportedChain, "no index configured for chain %d", chainID)
	}

	if err := client.Run(ctx, req, resp); err != nil {
		return errorsmod.Wrapf(types.ErrIndexUnavailable, "index request on chain %d failed: %s", chainID, err)
	}

	return nil
}

func pollsRequest(filters types.PollFilters) *Request {
	var req *Request
	switch {
	case filters.ActiveOnly():
		req = NewRequest(QueryGetActivePolls)
	case filters.Creator != nil:
		req = NewRequest(QueryGetPollsByCreator)
		req.Var("creator", strings.ToLower(filters.Creator.Hex()))
	default:
		req = NewRequest(QueryGetPolls)
	}

	req.Var("first", filters.Limit)
	req.Var("skip", filters.Offset)

	return req
}

func lastID(responses []normalizer.IndexPollResponse) (string, error) {
	last := responses[len(responses)-1]
	if last.ID == nil {
		return "", errorsmod.Wrap(types.ErrNormalization, "field id: missing")
	}

	id, ok := last.ID.(string)
	if !ok {
		return "", errorsmod.Wrapf(types.ErrNormalization, "field id: unexpected type %T", last.ID)
	}

	return id, nil
}
