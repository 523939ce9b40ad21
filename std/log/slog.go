package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"
)

// Logger writes leveled, tagged records through a slog handler.
// It is safe for concurrent use.
type Logger struct {
	handler slog.Handler
	level   atomic.Int64
}

// Tag identifies the component a message comes from.
type Tag interface {
	String() string
}

func newLogger(h slog.Handler) *Logger {
	l := &Logger{handler: h}
	l.level.Store(int64(LevelInfo))
	return l
}

// handlerOptions lets every record through; filtering happens in Logger.
func handlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level:       slog.Level(LevelTrace),
		ReplaceAttr: levelAttr,
	}
}

// NewText creates a logger writing logfmt records to w.
func NewText(w io.Writer) *Logger {
	return newLogger(slog.NewTextHandler(w, handlerOptions()))
}

// NewJson creates a logger writing one JSON object per record to w.
func NewJson(w io.Writer) *Logger {
	return newLogger(slog.NewJSONHandler(w, handlerOptions()))
}

// SetLevel sets the minimum level and returns the previous one.
func (l *Logger) SetLevel(level Level) Level {
	return Level(l.level.Swap(int64(level)))
}

func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

func (l *Logger) enabled(level Level) bool {
	return level >= l.Level()
}

// log must be called directly from an exported logging function,
// so that the caller frame is found at a fixed depth.
func (l *Logger) log(t any, msg string, level Level, v ...any) {
	if !l.enabled(level) {
		return
	}

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, 0)
	if t != nil {
		r.AddAttrs(slog.String("tag", tagString(t)))
	}
	r.Add(v...)

	if l.enabled(LevelDebug) {
		var pcs [1]uintptr
		if runtime.Callers(3, pcs[:]) > 0 {
			frame, _ := runtime.CallersFrames(pcs[:]).Next()
			r.AddAttrs(slog.String(slog.SourceKey, frame.Function))
		}
	}

	_ = l.handler.Handle(context.Background(), r)
}

func tagString(t any) string {
	switch t := t.(type) {
	case Tag:
		return t.String()
	case string:
		return t
	default:
		return slog.AnyValue(t).String()
	}
}

func (l *Logger) Trace(t any, msg string, v ...any) {
	l.log(t, msg, LevelTrace, v...)
}

func (l *Logger) Debug(t any, msg string, v ...any) {
	l.log(t, msg, LevelDebug, v...)
}

func (l *Logger) Info(t any, msg string, v ...any) {
	l.log(t, msg, LevelInfo, v...)
}

func (l *Logger) Warn(t any, msg string, v ...any) {
	l.log(t, msg, LevelWarn, v...)
}

func (l *Logger) Error(t any, msg string, v ...any) {
	l.log(t, msg, LevelError, v...)
}

// Fatal logs at LevelFatal and exits the process.
func (l *Logger) Fatal(t any, msg string, v ...any) {
	l.log(t, msg, LevelFatal, v...)
	os.Exit(1)
}

// levelAttr prints our level names instead of slog's DEBUG-4 style.
func levelAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if level, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(Level(level).String())
		}
	}
	return a
}
