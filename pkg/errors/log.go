package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out overrides the destination. Nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a FrameworkError.
func (h *LogHandler) HandleError(err *FrameworkError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[easystate error] %s [%s]", err.Op, err.Kind)
		if err.Component != "" {
			fmt.Fprintf(w, " component=%s", err.Component)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[easystate error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[easystate panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[easystate panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandleBuildError logs a BuildError.
func (h *LogHandler) HandleBuildError(err *BuildError) {
	if err == nil {
		return
	}
	w := h.out()
	fmt.Fprintf(w, "[easystate build error] %s\n", err.Error())
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// SlogHandler is an ErrorHandler that emits structured records through a
// slog.Logger.
type SlogHandler struct {
	Logger *slog.Logger
	// Verbose attaches stack traces to records.
	Verbose bool
}

// NewSlogHandler returns a SlogHandler writing to logger, or to
// slog.Default() when logger is nil.
func NewSlogHandler(logger *slog.Logger, verbose bool) *SlogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogHandler{Logger: logger, Verbose: verbose}
}

// HandleError logs a FrameworkError. Validation errors are warnings.
func (h *SlogHandler) HandleError(err *FrameworkError) {
	if err == nil {
		return
	}
	level := slog.LevelError
	if err.Kind == KindValidation {
		level = slog.LevelWarn
	}
	attrs := []slog.Attr{
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
	}
	if err.Component != "" {
		attrs = append(attrs, slog.String("component", err.Component))
	}
	if err.Err != nil {
		attrs = append(attrs, slog.String("error", err.Err.Error()))
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	h.Logger.LogAttrs(context.Background(), level, "framework error", attrs...)
}

// HandlePanic logs a PanicError.
func (h *SlogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []slog.Attr{
		slog.String("op", err.Op),
		slog.Any("value", err.Value),
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	h.Logger.LogAttrs(context.Background(), slog.LevelError, "recovered panic", attrs...)
}

// HandleBuildError logs a BuildError.
func (h *SlogHandler) HandleBuildError(err *BuildError) {
	if err == nil {
		return
	}
	attrs := []slog.Attr{
		slog.String("component", err.Component),
		slog.String("element", err.Element),
		slog.String("error", err.Error()),
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	h.Logger.LogAttrs(context.Background(), slog.LevelError, "render failed", attrs...)
}
