package circuit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBreaker_StartsClosed(t *testing.T) {
	b := New("lead-intake")
	assert.Equal(t, "lead-intake", b.Name())
	assert.Equal(t, StateClosed, b.State())
	assert.False(t, b.IsOpen())
}

func TestBreaker_ConsecutiveFailuresOpen(t *testing.T) {
	b := New("lead-intake", WithFailureThreshold(3))

	for i := 0; i < 2; i++ {
		fallback, change := b.RecordFailure()
		assert.False(t, fallback)
		assert.False(t, change.Opened)
	}

	fallback, change := b.RecordFailure()
	assert.True(t, fallback)
	assert.True(t, change.Opened)
	assert.True(t, b.IsOpen())
}

func TestBreaker_ConsecutiveSuccessesClose(t *testing.T) {
	b := New("lead-intake", WithFailureThreshold(1), WithSuccessThreshold(2))

	b.RecordFailure()
	assert.True(t, b.IsOpen())

	primary, change := b.RecordSuccess()
	assert.False(t, primary)
	assert.False(t, change.Closed)
	assert.True(t, b.IsOpen())

	primary, change = b.RecordSuccess()
	assert.True(t, primary)
	assert.True(t, change.Closed)
	assert.False(t, b.IsOpen())
}

func TestBreaker_SuccessClearsFailureStreak(t *testing.T) {
	b := New("lead-intake", WithFailureThreshold(3))

	b.RecordFailure()
	b.RecordFailure()
	b.RecordSuccess()

	// The streak restarts: two more failures still leave it closed.
	b.RecordFailure()
	b.RecordFailure()
	assert.False(t, b.IsOpen())

	b.RecordFailure()
	assert.True(t, b.IsOpen())
}

func TestBreaker_FailureClearsSuccessStreak(t *testing.T) {
	b := New("lead-intake", WithFailureThreshold(1), WithSuccessThreshold(3))

	b.RecordFailure()
	b.RecordSuccess()
	b.RecordSuccess()
	b.RecordFailure()

	b.RecordSuccess()
	b.RecordSuccess()
	assert.True(t, b.IsOpen())
	b.RecordSuccess()
	assert.False(t, b.IsOpen())
}

func TestBreaker_FailureWhileOpenReportsNoTransition(t *testing.T) {
	b := New("lead-intake", WithFailureThreshold(1))
	b.RecordFailure()

	fallback, change := b.RecordFailure()
	assert.True(t, fallback)
	assert.False(t, change.Opened)
}

func TestBreaker_AllowsOneProbePerOpenWindow(t *testing.T) {
	now := time.Now()
	b := New("lead-intake",
		WithFailureThreshold(1),
		WithOpenTimeout(time.Minute),
		WithClock(func() time.Time { return now }),
	)

	b.RecordFailure()
	assert.False(t, b.Allow())

	now = now.Add(time.Minute)
	assert.True(t, b.Allow())
	assert.False(t, b.Allow())

	b.RecordSuccess()
	assert.False(t, b.IsOpen())
	assert.True(t, b.Allow())
}

func TestBreaker_FailedProbeRestartsWindow(t *testing.T) {
	now := time.Now()
	b := New("lead-intake",
		WithFailureThreshold(1),
		WithOpenTimeout(time.Minute),
		WithClock(func() time.Time { return now }),
	)

	b.RecordFailure()
	now = now.Add(time.Minute)
	assert.True(t, b.Allow())
	b.RecordFailure()

	now = now.Add(30 * time.Second)
	assert.False(t, b.Allow())
	now = now.Add(30 * time.Second)
	assert.True(t, b.Allow())
}

func TestBreaker_ZeroOpenTimeoutNeverProbes(t *testing.T) {
	now := time.Now()
	b := New("lead-intake",
		WithFailureThreshold(1),
		WithOpenTimeout(0),
		WithClock(func() time.Time { return now }),
	)

	b.RecordFailure()
	now = now.Add(time.Hour)
	assert.False(t, b.Allow())
}

func TestBreaker_Reset(t *testing.T) {
	b := New("lead-intake", WithFailureThreshold(1))
	b.RecordFailure()
	assert.True(t, b.IsOpen())

	b.Reset()
	assert.Equal(t, StateClosed, b.State())
}
