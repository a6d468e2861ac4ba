package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	color "github.com/fatih/color"
)

// consoleHandler is a slog.Handler writing one colored line per record.
type consoleHandler struct {
	out   io.Writer
	level slog.Level
	attrs []slog.Attr
	group string // dotted prefix for keys of later attributes
	mut   *sync.Mutex
}

var _ slog.Handler = (*consoleHandler)(nil)

func newLogger(out io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(&consoleHandler{out: out, level: level, mut: &sync.Mutex{}})
}

// Handle implements slog.Handler
func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(levelColor(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	attrs := append([]slog.Attr(nil), h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, h.qualify(a))
		return true
	})
	for _, a := range attrs {
		fmt.Fprintf(&b, " %s=%v", color.New(color.FgCyan).Sprint(a.Key), a.Value)
	}
	b.WriteByte('\n')

	h.mut.Lock()
	defer h.mut.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

// qualify prefixes the key of a with the handler's open groups.
func (h *consoleHandler) qualify(a slog.Attr) slog.Attr {
	if h.group != "" {
		a.Key = h.group + a.Key
	}
	return a
}

// WithAttrs implements slog.Handler
func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	all := append([]slog.Attr(nil), h.attrs...)
	for _, a := range attrs {
		all = append(all, h.qualify(a))
	}
	return &consoleHandler{
		out:   h.out,
		level: h.level,
		attrs: all,
		group: h.group,
		mut:   h.mut,
	}
}

// WithGroup implements slog.Handler. Keys logged through the returned
// handler are written as "group.key".
func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &consoleHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: h.group + name + ".",
		mut:   h.mut,
	}
}

// Enabled implements slog.Handler
func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return color.New(color.FgRed, color.Bold).Sprint("ERROR")
	case level >= slog.LevelWarn:
		return color.New(color.FgYellow).Sprint("WARN ")
	case level >= slog.LevelInfo:
		return color.New(color.FgGreen).Sprint("INFO ")
	default:
		return color.New(color.FgMagenta).Sprint("DEBUG")
	}
}
