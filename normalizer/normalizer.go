package normalizer

import (
	"encoding/json"
	gomath "math"
	"math/big"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cast"

	"github.com/polypuls3/polypulse/types"
)

const maxUintBits = 256

// vote tallies are summed and scaled for percentages, so they must leave headroom below maxUintBits
const maxCountBits = 128

// FromContract converts a decoded contract poll tuple into the canonical poll.
// Empty option texts are backfilled from fallbackOptions by position.
func FromContract(raw ContractPoll, fallbackOptions []string) (types.Poll, error) {
	f := fields{}

	poll := types.Poll{
		ID:                f.bigUint("id", raw.Id),
		Creator:           raw.Creator,
		Question:          raw.Question,
		CreatedAt:         f.bigUint("createdAt", raw.CreatedAt),
		ExpiresAt:         f.bigUint("expiresAt", raw.ExpiresAt),
		RewardPool:        f.bigUint("rewardPool", raw.RewardPool),
		IsActive:          raw.IsActive,
		TotalResponses:    f.count("totalResponses", raw.TotalResponses),
		Category:          raw.Category,
		ProjectID:         f.bigUint("projectId", raw.ProjectId),
		VotingType:        raw.VotingType,
		Visibility:        raw.Visibility,
		Status:            types.ContractStatus(raw.Status),
		PlatformFeeAmount: f.bigUint("platformFeeAmount", raw.PlatformFeeAmount),
		ClaimedRewards:    f.bigUint("claimedRewards", raw.ClaimedRewards),
	}
	poll.Options = f.options(raw.Options, fallbackOptions)

	if f.err != nil {
		return types.Poll{}, f.err
	}

	return poll, nil
}

// FromIndex converts an index poll entity into the canonical poll.
// Empty option texts are backfilled from fallbackOptions by position.
func FromIndex(raw IndexPoll, fallbackOptions []string) (types.Poll, error) {
	f := fields{}

	id := raw.PollID
	if id == nil {
		id = raw.ID
	}

	poll := types.Poll{
		ID:                f.uint("pollId", id, true),
		Creator:           f.address("creator", raw.Creator),
		Question:          f.str("question", raw.Question, true),
		CreatedAt:         f.uint("createdAt", raw.CreatedAt, true),
		ExpiresAt:         f.uint("expiresAt", raw.ExpiresAt, true),
		RewardPool:        f.uint("rewardPool", raw.RewardPool, false),
		IsActive:          f.bool("isActive", raw.IsActive),
		TotalResponses:    f.countOf("totalResponses", raw.TotalResponses),
		Category:          f.str("category", raw.Category, false),
		ProjectID:         f.uint("projectId", raw.ProjectID, false),
		VotingType:        f.str("votingType", raw.VotingType, false),
		Visibility:        f.str("visibility", raw.Visibility, false),
		Status:            f.status("status", raw.Status),
		PlatformFeeAmount: f.uint("platformFeeAmount", raw.PlatformFeeAmount, false),
		ClaimedRewards:    f.uint("claimedRewards", raw.ClaimedRewards, false),
	}
	poll.Options = f.options(raw.Options, fallbackOptions)

	if f.err != nil {
		return types.Poll{}, f.err
	}

	return poll, nil
}

// UserVoteFromIndex converts an index poll response into a user vote
func UserVoteFromIndex(raw IndexPollResponse) (types.UserVote, error) {
	f := fields{}

	pollID := raw.PollID
	if pollID == nil && raw.Poll != nil {
		pollID = raw.Poll.PollID
	}

	vote := types.UserVote{
		PollID:    f.uint("pollId", pollID, true),
		OptionID:  f.uint64("optionIndex", raw.OptionIndex),
		Voter:     f.address("respondent", raw.Respondent),
		Timestamp: f.uint("timestamp", raw.Timestamp, false),
	}

	if f.err != nil {
		return types.UserVote{}, f.err
	}

	return vote, nil
}

// Option builds a canonical option. An empty text is replaced by the fallback text at the same position.
func Option(id uint64, text string, count math.Uint, fallbackOptions []string) types.PollOption {
	if text == "" && id < uint64(len(fallbackOptions)) {
		text = fallbackOptions[id]
	}

	return types.PollOption{
		ID:        id,
		Text:      text,
		VoteCount: count,
	}
}

// Count converts a contract vote count into an arbitrary precision integer. Counts wider than 128 bits are rejected.
func Count(raw *big.Int) (math.Uint, error) {
	f := fields{}
	count := f.count("voteCount", raw)

	return count, f.err
}

// Uint converts a loosely typed index value into an arbitrary precision integer
func Uint(name string, raw interface{}) (math.Uint, error) {
	f := fields{}
	value := f.uint(name, raw, true)

	return value, f.err
}

// fields decodes raw values and keeps the first error so a record is either fully normalized or rejected
type fields struct {
	err error
}

func (f *fields) fail(name string, format string, args ...interface{}) {
	if f.err != nil {
		return
	}

	f.err = errorsmod.Wrapf(types.ErrNormalization, "field %s: "+format, append([]interface{}{name}, args...)...)
}

func (f *fields) bigUint(name string, raw *big.Int) math.Uint {
	switch {
	case raw == nil:
		f.fail(name, "missing")
	case raw.Sign() < 0:
		f.fail(name, "negative value %s", raw)
	case raw.BitLen() > maxUintBits:
		f.fail(name, "value exceeds %d bits", maxUintBits)
	default:
		return math.NewUintFromBigInt(raw)
	}

	return math.ZeroUint()
}

func (f *fields) count(name string, raw *big.Int) math.Uint {
	if raw != nil && raw.BitLen() > maxCountBits {
		f.fail(name, "count exceeds %d bits", maxCountBits)
		return math.ZeroUint()
	}

	return f.bigUint(name, raw)
}

func (f *fields) countOf(name string, raw interface{}) math.Uint {
	n := f.uint(name, raw, true)
	if n.BigInt().BitLen() > maxCountBits {
		f.fail(name, "count exceeds %d bits", maxCountBits)
		return math.ZeroUint()
	}

	return n
}

func (f *fields) uint(name string, raw interface{}, required bool) math.Uint {
	if raw == nil {
		if required {
			f.fail(name, "missing")
		}

		return math.ZeroUint()
	}

	switch v := raw.(type) {
	case string:
		return f.uintFromString(name, v)
	case json.Number:
		return f.uintFromString(name, v.String())
	case float64:
		if v != gomath.Trunc(v) {
			f.fail(name, "non-integral value %v", v)
			return math.ZeroUint()
		}
	}

	n, err := cast.ToUint64E(raw)
	if err != nil {
		f.fail(name, "%s", err)
		return math.ZeroUint()
	}

	return math.NewUint(n)
}

func (f *fields) uint64(name string, raw interface{}) uint64 {
	n := f.uint(name, raw, true)
	if !n.BigInt().IsUint64() {
		f.fail(name, "value %s overflows uint64", n)
		return 0
	}

	return n.Uint64()
}

func (f *fields) uintFromString(name string, s string) math.Uint {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err := hexutil.DecodeBig(s)
		if err != nil {
			f.fail(name, "invalid hex value %s", s)
			return math.ZeroUint()
		}

		return f.bigUint(name, n)
	}

	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		f.fail(name, "invalid integer %s", s)
		return math.ZeroUint()
	}

	return f.bigUint(name, n)
}

func (f *fields) str(name string, raw interface{}, required bool) string {
	if raw == nil {
		if required {
			f.fail(name, "missing")
		}

		return ""
	}

	s, err := cast.ToStringE(raw)
	if err != nil {
		f.fail(name, "%s", err)
	}

	return s
}

func (f *fields) bool(name string, raw interface{}) bool {
	if raw == nil {
		f.fail(name, "missing")
		return false
	}

	b, err := cast.ToBoolE(raw)
	if err != nil {
		f.fail(name, "%s", err)
	}

	return b
}

func (f *fields) address(name string, raw interface{}) common.Address {
	s := f.str(name, raw, true)
	if f.err != nil {
		return common.Address{}
	}

	if !common.IsHexAddress(s) {
		f.fail(name, "invalid address %s", s)
		return common.Address{}
	}

	return common.HexToAddress(s)
}

var statusNames = map[string]types.ContractStatus{
	types.StatusActive.String():           types.StatusActive,
	types.StatusEnded.String():            types.StatusEnded,
	types.StatusClaimingEnabled.String():  types.StatusClaimingEnabled,
	types.StatusClaimingDisabled.String(): types.StatusClaimingDisabled,
	types.StatusClosed.String():           types.StatusClosed,
}

func (f *fields) status(name string, raw interface{}) types.ContractStatus {
	if s, ok := raw.(string); ok {
		if status, ok := statusNames[strings.ToUpper(strings.TrimSpace(s))]; ok {
			return status
		}
	}

	n := f.uint64(name, raw)
	if n > gomath.MaxUint8 {
		f.fail(name, "unknown status code %d", n)
		return types.StatusActive
	}

	return types.ContractStatus(n)
}

func (f *fields) options(texts []string, fallbackOptions []string) []types.PollOption {
	if len(texts) == 0 {
		texts = fallbackOptions
	}

	if len(texts) == 0 {
		f.fail("options", "missing")
		return nil
	}

	options := make([]types.PollOption, len(texts))
	for i, text := range texts {
		options[i] = Option(uint64(i), text, math.ZeroUint(), fallbackOptions)
	}

	return options
}
