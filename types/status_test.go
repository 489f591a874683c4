package types_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"

	"github.com/polypuls3/polypulse/types"
	"github.com/polypuls3/polypulse/types/testutils"
)

func TestDeriveStatus(t *testing.T) {
	createdAt := time.Unix(1_700_000_000, 0)
	expiresAt := createdAt.Add(24 * time.Hour)

	poll := testutils.RandomPoll()
	poll.CreatedAt = math.NewUint(uint64(createdAt.Unix()))
	poll.ExpiresAt = math.NewUint(uint64(expiresAt.Unix()))

	testCases := []struct {
		name     string
		status   types.ContractStatus
		now      time.Time
		expected types.PollStatus
	}{
		{"before creation", types.StatusActive, createdAt.Add(-time.Second), types.PollNotStarted},
		{"at creation", types.StatusActive, createdAt, types.PollActive},
		{"inside window", types.StatusActive, createdAt.Add(time.Hour), types.PollActive},
		{"at expiry", types.StatusActive, expiresAt, types.PollActive},
		{"after expiry", types.StatusActive, expiresAt.Add(time.Second), types.PollEnded},
		{"ended inside window", types.StatusEnded, createdAt.Add(time.Hour), types.PollEnded},
		{"closed before creation", types.StatusClosed, createdAt.Add(-time.Hour), types.PollEnded},
		{"claiming inside window", types.StatusClaimingEnabled, createdAt.Add(time.Hour), types.PollActive},
		{"claiming disabled after expiry", types.StatusClaimingDisabled, expiresAt.Add(time.Hour), types.PollEnded},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			poll.Status = tc.status
			assert.Equal(t, tc.expected, types.DeriveStatus(poll, tc.now))
		})
	}
}

func TestDeriveStatus_IsPure(t *testing.T) {
	poll := testutils.RandomPoll()
	now := time.Now()

	first := types.DeriveStatus(poll, now)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, types.DeriveStatus(poll, now))
	}
}

func TestIsPollActive(t *testing.T) {
	poll := testutils.RandomPoll()
	poll.Status = types.StatusActive
	now := time.Unix(int64(poll.CreatedAt.Uint64())+1, 0)

	poll.IsActive = true
	assert.True(t, types.IsPollActive(poll, now))

	poll.IsActive = false
	assert.False(t, types.IsPollActive(poll, now))
}

func TestTimeRemaining(t *testing.T) {
	poll := testutils.RandomPoll()
	poll.ExpiresAt = math.NewUint(1_700_000_000)

	assert.Equal(t, 90*time.Second, types.TimeRemaining(poll, time.Unix(1_700_000_000-90, 0)))
	assert.Equal(t, time.Duration(0), types.TimeRemaining(poll, time.Unix(1_700_000_000, 0)))
	assert.Equal(t, time.Duration(0), types.TimeRemaining(poll, time.Unix(1_700_000_001, 0)))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "2 days", types.FormatDuration(50*time.Hour))
	assert.Equal(t, "1 day", types.FormatDuration(25*time.Hour))
	assert.Equal(t, "3 hours", types.FormatDuration(3*time.Hour+20*time.Minute))
	assert.Equal(t, "1 minute", types.FormatDuration(90*time.Second))
	assert.Equal(t, "0 minutes", types.FormatDuration(30*time.Second))
}

func TestParsePollStatus(t *testing.T) {
	status, err := types.ParsePollStatus("active")
	assert.NoError(t, err)
	assert.Equal(t, types.PollActive, status)

	status, err = types.ParsePollStatus("")
	assert.NoError(t, err)
	assert.Equal(t, types.PollStatus(""), status)

	_, err = types.ParsePollStatus("paused")
	assert.Error(t, err)
}
