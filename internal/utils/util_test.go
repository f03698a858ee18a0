package utils

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDebounceCollapsesCalls(t *testing.T) {
	var d Debouncer
	var calls atomic.Int32
	for i := 0; i < 5; i++ {
		d.Debounce(20*time.Millisecond, func() { calls.Add(1) })
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	require.False(t, d.Pending())
	require.False(t, d.LastCalled().IsZero())
}

func TestFlushRunsPendingImmediately(t *testing.T) {
	var d Debouncer
	var calls atomic.Int32
	d.Debounce(time.Hour, func() { calls.Add(1) })
	require.True(t, d.Pending())

	require.True(t, d.Flush())
	require.Equal(t, int32(1), calls.Load())
	require.False(t, d.Flush())
}
