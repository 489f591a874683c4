package types

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultPageLimit is the page size used when filters do not set one
const DefaultPageLimit = 10

// PollFilters narrow down a poll listing
type PollFilters struct {
	Creator  *common.Address `json:"creator,omitempty"`
	Status   PollStatus      `json:"status,omitempty"`
	Category string          `json:"category,omitempty"`
	Limit    uint64          `json:"limit"`
	Offset   uint64          `json:"offset"`
}

// WithDefaults returns a copy of the filters with a zero limit replaced by DefaultPageLimit
func (f PollFilters) WithDefaults() PollFilters {
	if f.Limit == 0 {
		f.Limit = DefaultPageLimit
	}

	return f
}

// ActiveOnly returns true if only polls flagged active are requested
func (f PollFilters) ActiveOnly() bool {
	return f.Status == PollActive
}

// Match returns true if the poll satisfies the creator, active and category filters
func (f PollFilters) Match(poll Poll) bool {
	if f.Creator != nil && *f.Creator != poll.Creator {
		return false
	}

	if f.ActiveOnly() && !poll.IsActive {
		return false
	}

	if f.Category != "" && !strings.EqualFold(f.Category, poll.Category) {
		return false
	}

	return true
}

// PollPage is one page of a poll listing
type PollPage struct {
	Polls   []Poll `json:"polls"`
	Total   uint64 `json:"total"`
	HasMore bool   `json:"hasMore"`
}
