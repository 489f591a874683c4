package normalizer

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ContractPoll is the poll tuple as decoded from the getPoll contract call.
// Field names follow the ABI component names so abi.ConvertType can populate it.
type ContractPoll struct {
	Id                *big.Int
	Creator           common.Address
	Question          string
	Options           []string
	CreatedAt         *big.Int
	ExpiresAt         *big.Int
	RewardPool        *big.Int
	IsActive          bool
	TotalResponses    *big.Int
	Category          string
	ProjectId         *big.Int
	VotingType        string
	Visibility        string
	Status            uint8
	PlatformFeeAmount *big.Int
	ClaimedRewards    *big.Int
}

// IndexPoll is a poll entity as returned by the index. Scalars are left untyped because
// BigInt fields arrive as strings while Int fields arrive as JSON numbers.
type IndexPoll struct {
	ID                interface{} `json:"id"`
	PollID            interface{} `json:"pollId"`
	Creator           interface{} `json:"creator"`
	Question          interface{} `json:"question"`
	Options           []string    `json:"options"`
	CreatedAt         interface{} `json:"createdAt"`
	ExpiresAt         interface{} `json:"expiresAt"`
	RewardPool        interface{} `json:"rewardPool"`
	IsActive          interface{} `json:"isActive"`
	TotalResponses    interface{} `json:"totalResponses"`
	Category          interface{} `json:"category"`
	ProjectID         interface{} `json:"projectId"`
	VotingType        interface{} `json:"votingType"`
	Visibility        interface{} `json:"visibility"`
	Status            interface{} `json:"status"`
	PlatformFeeAmount interface{} `json:"platformFeeAmount"`
	ClaimedRewards    interface{} `json:"claimedRewards"`
}

// IndexPollRef is the abbreviated poll embedded in a poll response entity
type IndexPollRef struct {
	ID       interface{} `json:"id"`
	PollID   interface{} `json:"pollId"`
	Question interface{} `json:"question"`
	Options  []string    `json:"options"`
}

// IndexPollResponse is a single vote as recorded by the index
type IndexPollResponse struct {
	ID            interface{}   `json:"id"`
	PollID        interface{}   `json:"pollId"`
	Respondent    interface{}   `json:"respondent"`
	OptionIndex   interface{}   `json:"optionIndex"`
	Timestamp     interface{}   `json:"timestamp"`
	RewardClaimed interface{}   `json:"rewardClaimed"`
	Poll          *IndexPollRef `json:"poll"`
}
