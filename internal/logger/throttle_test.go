package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestThrottled_SuppressesBurst(t *testing.T) {
	buf := NewBufferLogger()
	// One message per hour: only the burst gets through in a test.
	l := NewThrottled(buf, 3600, 2)

	for i := 0; i < 5; i++ {
		l.Warn("sensor failed %d", i)
	}

	require.Len(t, buf.Messages, 2)
	assert.Equal(t, "sensor failed 0", buf.Messages[0].Message)
	assert.Equal(t, "sensor failed 1", buf.Messages[1].Message)
	assert.Equal(t, 3, l.Suppressed())
}

func TestThrottled_ReportsSuppressedCount(t *testing.T) {
	buf := NewBufferLogger()
	l := NewThrottled(buf, 3600, 1)

	l.Error("first")
	l.Error("dropped")
	l.Error("dropped")
	require.Len(t, buf.Messages, 1)

	l.limiter.SetLimit(rate.Inf)
	l.Error("next")

	require.Len(t, buf.Messages, 2)
	assert.Equal(t, "next (2 similar messages suppressed)", buf.Messages[1].Message)
	assert.Equal(t, 0, l.Suppressed())
}

func TestThrottled_PassesDebugAndInfo(t *testing.T) {
	buf := NewBufferLogger()
	l := NewThrottled(buf, 3600, 0)

	l.Debug("d")
	l.Info("i")
	l.Warn("w")

	require.Len(t, buf.Messages, 2)
	assert.False(t, buf.HasLevel(LevelWarn))
}

func TestThrottled_Unlimited(t *testing.T) {
	buf := NewBufferLogger()
	l := NewThrottled(buf, 0, 1)

	for i := 0; i < 10; i++ {
		l.Warn("w")
	}
	assert.Len(t, buf.Messages, 10)
}

func TestNewTickLogger(t *testing.T) {
	buf := captureLog(t)
	l := NewTickLogger(3600, 1)

	l.Warn("Failed to read %s", "cpu0")
	l.Warn("Failed to read %s", "cpu0")

	assert.Equal(t, "[tick] WARN: Failed to read cpu0\n", buf.String())
	assert.Equal(t, 1, l.Suppressed())
}
