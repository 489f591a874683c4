package contract

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/axelarnetwork/utils/funcs"
)

// poll contract methods
const (
	methodGetPoll      = "getPoll"
	methodPollCount    = "pollCount"
	methodGetVoteCount = "getVoteCount"
	methodHasVoted     = "hasVoted"
	methodGetUserVote  = "getUserVote"
)

// PollABI is the read surface of the poll contract together with its write methods and events
const PollABI = `[
	{
		"type": "function",
		"name": "getPoll",
		"stateMutability": "view",
		"inputs": [{"name": "pollId", "type": "uint256"}],
		"outputs": [{
			"name": "poll",
			"type": "tuple",
			"components": [
				{"name": "id", "type": "uint256"},
				{"name": "creator", "type": "address"},
				{"name": "question", "type": "string"},
				{"name": "options", "type": "string[]"},
				{"name": "createdAt", "type": "uint256"},
				{"name": "expiresAt", "type": "uint256"},
				{"name": "rewardPool", "type": "uint256"},
				{"name": "isActive", "type": "bool"},
				{"name": "totalResponses", "type": "uint256"},
				{"name": "category", "type": "string"},
				{"name": "projectId", "type": "uint256"},
				{"name": "votingType", "type": "string"},
				{"name": "visibility", "type": "string"},
				{"name": "status", "type": "uint8"},
				{"name": "platformFeeAmount", "type": "uint256"},
				{"name": "claimedRewards", "type": "uint256"}
			]
		}]
	},
	{
		"type": "function",
		"name": "pollCount",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{"name": "", "type": "uint256"}]
	},
	{
		"type": "function",
		"name": "getVoteCount",
		"stateMutability": "view",
		"inputs": [{"name": "pollId", "type": "uint256"}, {"name": "optionId", "type": "uint256"}],
		"outputs": [{"name": "", "type": "uint256"}]
	},
	{
		"type": "function",
		"name": "hasVoted",
		"stateMutability": "view",
		"inputs": [{"name": "pollId", "type": "uint256"}, {"name": "voter", "type": "address"}],
		"outputs": [{"name": "", "type": "bool"}]
	},
	{
		"type": "function",
		"name": "getUserVote",
		"stateMutability": "view",
		"inputs": [{"name": "pollId", "type": "uint256"}, {"name": "voter", "type": "address"}],
		"outputs": [{"name": "", "type": "uint256"}]
	},
	{
		"type": "function",
		"name": "createPoll",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "question", "type": "string"},
			{"name": "options", "type": "string[]"},
			{"name": "duration", "type": "uint256"}
		],
		"outputs": [{"name": "pollId", "type": "uint256"}]
	},
	{
		"type": "function",
		"name": "vote",
		"stateMutability": "nonpayable",
		"inputs": [{"name": "pollId", "type": "uint256"}, {"name": "optionId", "type": "uint256"}],
		"outputs": []
	},
	{
		"type": "event",
		"name": "PollCreated",
		"anonymous": false,
		"inputs": [
			{"indexed": true, "name": "pollId", "type": "uint256"},
			{"indexed": true, "name": "creator", "type": "address"},
			{"indexed": false, "name": "question", "type": "string"}
		]
	},
	{
		"type": "event",
		"name": "VoteCast",
		"anonymous": false,
		"inputs": [
			{"indexed": true, "name": "pollId", "type": "uint256"},
			{"indexed": true, "name": "voter", "type": "address"},
			{"indexed": false, "name": "optionId", "type": "uint256"}
		]
	}
]`

var pollABI = funcs.Must(abi.JSON(strings.NewReader(PollABI)))
