package resolver

import (
	"context"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"

	"github.com/polypuls3/polypulse/types"
)

//go:generate moq -out ./mock/reader.go -pkg mock . Reader

// Reader is the read surface shared by the contract and index backends
type Reader interface {
	Source() types.ActiveSource
	ReadPoll(ctx context.Context, chainID uint64, pollID math.Uint) (*types.Poll, error)
	ReadPolls(ctx context.Context, chainID uint64, filters types.PollFilters) (types.PollPage, error)
	ReadVoteCounts(ctx context.Context, chainID uint64, pollID math.Uint, optionCount int) (types.VoteCounts, error)
	ReadHasVoted(ctx context.Context, chainID uint64, pollID math.Uint, voter common.Address) (types.VoteState, error)
}
