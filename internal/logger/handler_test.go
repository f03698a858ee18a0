package logger

import (
	"bytes"
	"context"
	"log/slog"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, cfg Config) (*filteringHandler, *bytes.Buffer) {
	t.Helper()
	cfg.process()
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return newFilteringHandler(base, &cfg), &buf
}

func callerPC() uintptr {
	var pcs [1]uintptr
	runtime.Callers(2, pcs[:])
	return pcs[0]
}

func handle(t *testing.T, h slog.Handler, pc uintptr, tag string) {
	t.Helper()
	r := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", pc)
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	require.NoError(t, h.Handle(context.Background(), r))
}

func TestFilteringHandlerTags(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		tag     string
		written bool
	}{
		{"no filters", Config{}, "history", true},
		{"disabled tag", Config{DisabledTags: []string{"History"}}, "history", false},
		{"enabled tag match", Config{EnabledTags: []string{"history"}}, "history", true},
		{"enabled tag mismatch", Config{EnabledTags: []string{"replay"}}, "history", false},
		{"untagged with enabled list", Config{EnabledTags: []string{"replay"}}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newTestHandler(t, tt.cfg)
			handle(t, h, 0, tt.tag)
			require.Equal(t, tt.written, buf.Len() > 0)
		})
	}
}

func TestFilteringHandlerPackagesAndFiles(t *testing.T) {
	pc := callerPC()

	h, buf := newTestHandler(t, Config{DisabledPackages: []string{"logger"}})
	handle(t, h, pc, "")
	require.Zero(t, buf.Len())

	h, buf = newTestHandler(t, Config{EnabledPackages: []string{"logger"}})
	handle(t, h, pc, "")
	require.NotZero(t, buf.Len())

	h, buf = newTestHandler(t, Config{DisabledFiles: []string{"handler_test.go"}})
	handle(t, h, pc, "")
	require.Zero(t, buf.Len())

	h, buf = newTestHandler(t, Config{EnabledFiles: []string{"canvas.go"}})
	handle(t, h, pc, "")
	require.Zero(t, buf.Len())
}

func TestUntaggedRecordsUsePackageAsTag(t *testing.T) {
	pc := callerPC()

	h, buf := newTestHandler(t, Config{EnabledTags: []string{"logger"}})
	handle(t, h, pc, "")
	require.NotZero(t, buf.Len())

	h, buf = newTestHandler(t, Config{DisabledTags: []string{"logger"}})
	handle(t, h, pc, "")
	require.Zero(t, buf.Len())

	h, buf = newTestHandler(t, Config{DisabledTags: []string{"logger"}})
	handle(t, h, pc, "canvas")
	require.NotZero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLevel("err"))
	require.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
