package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSweepKeepsActiveKeys(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	krl := New(0.001, 1, time.Minute)
	defer krl.Stop()

	krl.mu.Lock()
	krl.now = func() time.Time { return now }
	krl.mu.Unlock()

	require.True(t, krl.Allow("old"))
	require.True(t, krl.Allow("active"))

	now = now.Add(50 * time.Second)
	require.False(t, krl.Allow("active"), "bucket survives while the key is active")

	now = now.Add(30 * time.Second)
	require.Equal(t, 1, krl.sweep())
	require.Equal(t, 1, krl.Len())

	require.False(t, krl.Allow("active"))
	require.True(t, krl.Allow("old"), "a forgotten key starts with a full bucket")
}
