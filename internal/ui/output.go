package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/jmagar/jupiter-dl/internal/model"
)

const styleKey = "style"

// Style attributes select a dedicated symbol for an info line. The
// attribute itself is not rendered.
var (
	StyleDownload = slog.String(styleKey, "download")
	StyleSuccess  = slog.String(styleKey, "success")
)

// Handler is a slog.Handler that writes one human-readable line per record:
// a coloured level symbol, the message, then any attributes as key=value.
type Handler struct {
	out   io.Writer
	level slog.Leveler
	mu    *sync.Mutex
	attrs []slog.Attr
}

// NewHandler returns a Handler writing records at or above level to out.
func NewHandler(out io.Writer, level slog.Leveler) *Handler {
	return &Handler{out: out, level: level, mu: &sync.Mutex{}}
}

// NewLogger builds a logger for the given verbosity.
func NewLogger(out io.Writer, level model.LogLevel) *slog.Logger {
	return slog.New(NewHandler(out, SlogLevel(level)))
}

// SlogLevel maps a configured verbosity to a slog level.
func SlogLevel(level model.LogLevel) slog.Level {
	switch level {
	case model.LogLevelDebug:
		return slog.LevelDebug
	case model.LogLevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	color, symbol := levelStyle(r.Level)

	var attrs strings.Builder
	style := ""
	visit := func(a slog.Attr) {
		if a.Key == styleKey {
			style = a.Value.String()
			return
		}
		writeAttr(&attrs, a)
	}
	for _, a := range h.attrs {
		visit(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		visit(a)
		return true
	})
	if r.Level == slog.LevelInfo {
		switch style {
		case StyleDownload.Value.String():
			color, symbol = ColorCyan, SymbolDownload
		case StyleSuccess.Value.String():
			color, symbol = ColorGreen, SymbolCheck
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s%s %s%s\n", color, symbol, ColorReset, r.Message, attrs.String())

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &Handler{out: h.out, level: h.level, mu: h.mu, attrs: merged}
}

// WithGroup is a no-op; the CLI never groups attributes.
func (h *Handler) WithGroup(string) slog.Handler {
	return h
}

func writeAttr(b *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	fmt.Fprintf(b, " %s%s%s=%v", ColorGray, a.Key, ColorReset, a.Value.Resolve().Any())
}

func levelStyle(level slog.Level) (string, string) {
	switch {
	case level >= slog.LevelError:
		return ColorRed, SymbolCross
	case level >= slog.LevelWarn:
		return ColorYellow, SymbolWarning
	case level >= slog.LevelInfo:
		return ColorBlue, SymbolInfo
	default:
		return ColorGray, SymbolDebug
	}
}

// PrintError writes a fatal error line to w, bypassing level filtering.
func PrintError(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s%s%s %s\n", ColorRed, SymbolCross, ColorReset, msg)
}
