package types

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"

	"github.com/axelarnetwork/utils/slices"
)

// ContractStatus is the lifecycle code stored by the poll contract
type ContractStatus uint8

// contract status codes
const (
	StatusActive ContractStatus = iota
	StatusEnded
	StatusClaimingEnabled
	StatusClaimingDisabled
	StatusClosed
)

// IsTerminal returns true if the poll can no longer be voted on regardless of its time window
func (s ContractStatus) IsTerminal() bool {
	return s == StatusEnded || s == StatusClosed
}

func (s ContractStatus) String() string {
	switch s {
	case StatusActive:
		return "ACTIVE"
	case StatusEnded:
		return "ENDED"
	case StatusClaimingEnabled:
		return "CLAIMING_ENABLED"
	case StatusClaimingDisabled:
		return "CLAIMING_DISABLED"
	case StatusClosed:
		return "CLOSED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(s))
	}
}

// PollOption is a single answer of a poll together with its tally
type PollOption struct {
	ID         uint64    `json:"id"`
	Text       string    `json:"text"`
	VoteCount  math.Uint `json:"voteCount"`
	Percentage float64   `json:"percentage"`
}

// Poll is the canonical, source-independent poll record
type Poll struct {
	ID                math.Uint      `json:"id"`
	Creator           common.Address `json:"creator"`
	Question          string         `json:"question"`
	Options           []PollOption   `json:"options"`
	CreatedAt         math.Uint      `json:"createdAt"`
	ExpiresAt         math.Uint      `json:"expiresAt"`
	RewardPool        math.Uint      `json:"rewardPool"`
	IsActive          bool           `json:"isActive"`
	TotalResponses    math.Uint      `json:"totalResponses"`
	Category          string         `json:"category"`
	ProjectID         math.Uint      `json:"projectId"`
	VotingType        string         `json:"votingType"`
	Visibility        string         `json:"visibility"`
	Status            ContractStatus `json:"status"`
	PlatformFeeAmount math.Uint      `json:"platformFeeAmount"`
	ClaimedRewards    math.Uint      `json:"claimedRewards"`
}

// ValidateBasic returns an error if the poll's time window is empty or inverted
func (p Poll) ValidateBasic() error {
	if !p.ExpiresAt.GT(p.CreatedAt) {
		return fmt.Errorf("poll %s expires at %s which is not after its creation time %s", p.ID, p.ExpiresAt, p.CreatedAt)
	}

	return nil
}

// OptionTexts returns the option texts in order
func (p Poll) OptionTexts() []string {
	return slices.Map(p.Options, func(o PollOption) string { return o.Text })
}

// TallyMatches returns true if the option vote counts add up to the poll's total responses
func (p Poll) TallyMatches() bool {
	return TotalVotes(p.Options).Equal(p.TotalResponses)
}

// TotalVotes returns the sum of the vote counts of the given options
func TotalVotes(options []PollOption) math.Uint {
	return slices.Reduce(options, math.ZeroUint(), func(total math.Uint, o PollOption) math.Uint {
		return total.Add(o.VoteCount)
	})
}

// UserVote is the vote cast by a voter on a poll
type UserVote struct {
	PollID    math.Uint      `json:"pollId"`
	OptionID  uint64         `json:"optionId"`
	Voter     common.Address `json:"voter"`
	Timestamp math.Uint      `json:"timestamp"`
}

// VoteState tells whether a voter has voted on a poll and, if so, for which option
type VoteState struct {
	HasVoted bool      `json:"hasVoted"`
	UserVote *UserVote `json:"userVote,omitempty"`
}

// VoteCounts holds the per-option tallies of a poll in option order
type VoteCounts struct {
	Counts []math.Uint `json:"counts"`
	// Partial is set when at least one slot could not be read and reports 0
	Partial bool `json:"partial"`
	// Failed lists the option ids whose read failed
	Failed []uint64 `json:"failed,omitempty"`
}
