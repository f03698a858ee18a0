package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// filteringHandler drops records by package, file and tag before they reach
// the base handler. A record without a tag attribute is filtered under its
// package name, so "canvas" matches both DebugTagf("canvas", ...) and plain
// Debugf calls made from internal/canvas.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{
		baseHandler: base,
		cfg:         cfg,
	}
}

func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// recordOrigin is where a record was logged from, as seen by the filters.
type recordOrigin struct {
	pkg  string // lowercase directory name, "" when unknown
	file string // lowercase base name, "" when unknown
	tag  string // explicit tag, else pkg
}

func originOf(r slog.Record) recordOrigin {
	var o recordOrigin
	if r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		if frame.File != "" {
			o.file = strings.ToLower(filepath.Base(frame.File))
			o.pkg = strings.ToLower(filepath.Base(filepath.Dir(frame.File)))
		}
	}
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			o.tag = strings.ToLower(a.Value.String())
			return false
		}
		return true
	})
	if o.tag == "" {
		o.tag = o.pkg
	}
	return o
}

// rejectBy returns why value fails an allow/deny pair, or "".
// An unknown value passes a deny list but fails a non-empty allow list.
func rejectBy(kind, value string, enabled, disabled map[string]struct{}) string {
	if value != "" {
		if _, found := disabled[value]; found {
			return fmt.Sprintf("disabled %s '%s'", kind, value)
		}
	}
	if enabled == nil {
		return ""
	}
	if _, found := enabled[value]; !found {
		return fmt.Sprintf("%s '%s' not in enabled list", kind, value)
	}
	return ""
}

// reject returns why a record from o is dropped, or "" to keep it.
func (c *Config) reject(o recordOrigin) string {
	if o.pkg != "" {
		if why := rejectBy("package", o.pkg, c.enabledPackagesSet, c.disabledPackagesSet); why != "" {
			return why
		}
	}
	if o.file != "" {
		if why := rejectBy("file", o.file, c.enabledFilesSet, c.disabledFilesSet); why != "" {
			return why
		}
	}
	return rejectBy("tag", o.tag, c.enabledTagsSet, c.disabledTagsSet)
}

func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	o := originOf(r)
	if why := h.cfg.reject(o); why != "" {
		if debugFilter {
			fmt.Fprintf(os.Stderr, "[FILTER] dropped %q (%s)\n", r.Message, why)
		}
		return nil
	}
	if debugFilter {
		fmt.Fprintf(os.Stderr, "[FILTER] kept %q pkg=%s file=%s tag=%s\n", r.Message, o.pkg, o.file, o.tag)
	}
	return h.baseHandler.Handle(ctx, r)
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
