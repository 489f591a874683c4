package types

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
)

// PollStatus is the status of a poll derived from its contract status and time window
type PollStatus string

// derived poll statuses
const (
	PollNotStarted PollStatus = "not_started"
	PollActive     PollStatus = "active"
	PollEnded      PollStatus = "ended"
)

// ParsePollStatus parses a derived status; the empty string is accepted and means no status
func ParsePollStatus(s string) (PollStatus, error) {
	switch status := PollStatus(s); status {
	case "", PollNotStarted, PollActive, PollEnded:
		return status, nil
	default:
		return "", fmt.Errorf("unknown poll status %s", s)
	}
}

// DeriveStatus computes the status of the poll at the given time.
// Terminal contract statuses and an elapsed expiry both mean ended.
func DeriveStatus(poll Poll, now time.Time) PollStatus {
	ts := unixUint(now)

	switch {
	case poll.Status.IsTerminal(), ts.GT(poll.ExpiresAt):
		return PollEnded
	case ts.LT(poll.CreatedAt):
		return PollNotStarted
	default:
		return PollActive
	}
}

// IsPollActive returns true if the poll accepts votes at the given time
func IsPollActive(poll Poll, now time.Time) bool {
	return poll.IsActive && DeriveStatus(poll, now) == PollActive
}

// TimeRemaining returns how long the poll stays open after now, or zero if it already expired
func TimeRemaining(poll Poll, now time.Time) time.Duration {
	ts := unixUint(now)
	if !poll.ExpiresAt.GT(ts) {
		return 0
	}

	remaining := poll.ExpiresAt.Sub(ts)
	if !remaining.LTE(math.NewUint(uint64(maxDurationSeconds))) {
		return time.Duration(maxDurationSeconds) * time.Second
	}

	return time.Duration(remaining.Uint64()) * time.Second
}

const maxDurationSeconds = int64(1<<63-1) / int64(time.Second)

// FormatDuration renders a duration using its largest whole unit, e.g. "2 days" or "1 hour"
func FormatDuration(d time.Duration) string {
	seconds := int64(d / time.Second)
	days := seconds / 86400
	hours := seconds % 86400 / 3600
	minutes := seconds % 3600 / 60

	switch {
	case days > 0:
		return plural(days, "day")
	case hours > 0:
		return plural(hours, "hour")
	default:
		return plural(minutes, "minute")
	}
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}

	return fmt.Sprintf("%d %ss", n, unit)
}

func unixUint(t time.Time) math.Uint {
	if t.Unix() < 0 {
		return math.ZeroUint()
	}

	return math.NewUint(uint64(t.Unix()))
}
