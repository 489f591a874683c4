package index

// pollFields is the poll entity selection shared by every poll query
const pollFields = `
fragment PollFields on Poll {
	id
	pollId
	creator
	question
	options
	createdAt
	expiresAt
	rewardPool
	isActive
	totalResponses
	category
	projectId
	votingType
	visibility
	status
	platformFeeAmount
	claimedRewards
}
`

// QueryGetPoll fetches a single poll by id
const QueryGetPoll = pollFields + `
query GetPoll($id: ID!) {
	poll(id: $id) {
		...PollFields
	}
}
`

// QueryGetPolls fetches a page of polls in ascending id order, the order the contract enumerates them in
const QueryGetPolls = pollFields + `
query GetPolls($first: Int = 10, $skip: Int = 0) {
	polls(first: $first, skip: $skip, orderBy: pollId, orderDirection: asc) {
		...PollFields
	}
}
`

// QueryGetActivePolls fetches a page of polls flagged active in ascending id order
const QueryGetActivePolls = pollFields + `
query GetActivePolls($first: Int = 10, $skip: Int = 0) {
	polls(first: $first, skip: $skip, orderBy: pollId, orderDirection: asc, where: { isActive: true }) {
		...PollFields
	}
}
`

// QueryGetPollsByCreator fetches a page of polls created by an account in ascending id order
const QueryGetPollsByCreator = pollFields + `
query GetPollsByCreator($creator: Bytes!, $first: Int = 10, $skip: Int = 0) {
	polls(first: $first, skip: $skip, orderBy: pollId, orderDirection: asc, where: { creator: $creator }) {
		...PollFields
	}
}
`

const pollResponseFields = `
fragment PollResponseFields on PollResponse {
	id
	pollId
	respondent
	optionIndex
	timestamp
	rewardClaimed
	poll {
		id
		pollId
		question
		options
	}
}
`

// QueryGetUserVotes fetches a page of the votes cast by a voter, newest first
const QueryGetUserVotes = pollResponseFields + `
query GetUserVotes($voter: Bytes!, $first: Int = 10, $skip: Int = 0) {
	pollResponses(first: $first, skip: $skip, orderBy: timestamp, orderDirection: desc, where: { respondent: $voter }) {
		...PollResponseFields
	}
}
`

// QueryGetVoterPollResponse fetches the vote cast by a voter on a single poll
const QueryGetVoterPollResponse = pollResponseFields + `
query GetVoterPollResponse($voter: Bytes!, $pollId: BigInt!) {
	pollResponses(first: 1, where: { respondent: $voter, pollId: $pollId }) {
		...PollResponseFields
	}
}
`

// QueryGetPollResponses fetches the votes cast on a poll after the given response id, in id order
const QueryGetPollResponses = `
query GetPollResponses($pollId: BigInt!, $after: ID = "", $first: Int = 1000) {
	pollResponses(first: $first, orderBy: id, orderDirection: asc, where: { pollId: $pollId, id_gt: $after }) {
		id
		optionIndex
	}
}
`
