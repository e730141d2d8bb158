// Package logging provides file-based logging for git-issue-flow.
// It outputs logs to both a global log file (<configdir>/logs/git-issue-flow.log)
// and issue-specific log files (<configdir>/logs/issue-N.log).
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/runoshun/git-issue-flow/internal/domain"
)

// Attribute keys with special placement in a log line.
const (
	IssueKey    = domain.LogIssueKey
	CategoryKey = domain.LogCategoryKey
)

// Ensure Handler implements slog.Handler.
var _ slog.Handler = (*Handler)(nil)

// files holds the open log files shared by a handler and its derivatives.
// Fields are ordered to minimize memory padding.
type files struct {
	global    *os.File
	issues    map[int]*os.File
	configDir string
	mu        sync.Mutex
}

// Handler is a slog.Handler writing line-oriented log files.
type Handler struct {
	files *files
	attrs []slog.Attr
	group string
	level slog.Level
}

// New creates a new Handler that writes to the logs directory under configDir.
// If configDir is empty, logging is disabled.
func New(configDir string, level slog.Level) *Handler {
	return &Handler{
		files: &files{
			configDir: configDir,
			issues:    make(map[int]*os.File),
		},
		level: level,
	}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Enabled reports whether records at level are written.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.files.configDir != "" && level >= h.level
}

// WithAttrs returns a handler that adds attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, h.qualify(a))
	}
	return &clone
}

// WithGroup returns a handler that prefixes subsequent attribute keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if clone.group != "" {
		clone.group += "." + name
	} else {
		clone.group = name
	}
	return &clone
}

func (h *Handler) qualify(a slog.Attr) slog.Attr {
	if h.group != "" {
		a.Key = h.group + "." + a.Key
	}
	return a
}

// Handle writes a record to the global log and, when it carries an issue
// attribute, to that issue's log.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	if !h.Enabled(context.Background(), r.Level) {
		return nil
	}

	issue, hasIssue := 0, false
	category := "general"
	var extra []string

	collect := func(a slog.Attr) {
		switch a.Key {
		case IssueKey:
			if n, ok := attrInt(a.Value); ok {
				issue, hasIssue = n, true
				return
			}
		case CategoryKey:
			category = a.Value.String()
			return
		}
		extra = append(extra, fmt.Sprintf("%s=%v", a.Key, a.Value.Any()))
	}
	for _, a := range h.attrs {
		collect(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		collect(h.qualify(a))
		return true
	})

	msg := r.Message
	if len(extra) > 0 {
		msg += " " + strings.Join(extra, " ")
	}
	t := r.Time
	if t.IsZero() {
		t = time.Now()
	}
	entry := formatLog(t, r.Level, issue, hasIssue, category, msg)

	if gf, err := h.files.ensureGlobal(); err == nil {
		_, _ = io.WriteString(gf, entry)
	} else {
		return err
	}
	if hasIssue {
		if f, err := h.files.ensureIssue(issue); err == nil {
			_, _ = io.WriteString(f, entry)
		}
	}
	return nil
}

// Close closes all open log files.
func (h *Handler) Close() error {
	return h.files.close()
}

func attrInt(v slog.Value) (int, bool) {
	switch v.Kind() {
	case slog.KindInt64:
		return int(v.Int64()), true
	case slog.KindUint64:
		return int(v.Uint64()), true
	default:
		return 0, false
	}
}

// ensureLogsDir creates the logs directory if it doesn't exist.
func (f *files) ensureLogsDir() error {
	return os.MkdirAll(filepath.Join(f.configDir, "logs"), 0o750)
}

// ensureGlobal opens or returns the global log file.
func (f *files) ensureGlobal() (*os.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.global != nil {
		return f.global, nil
	}
	if err := f.ensureLogsDir(); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	path := domain.GlobalLogPath(f.configDir)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open global log file: %w", err)
	}
	f.global = file
	return file, nil
}

// ensureIssue opens or returns the log file of an issue.
func (f *files) ensureIssue(issue int) (*os.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if file, ok := f.issues[issue]; ok {
		return file, nil
	}
	if err := f.ensureLogsDir(); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	path := domain.IssueLogPath(f.configDir, issue)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open issue log file: %w", err)
	}
	f.issues[issue] = file
	return file, nil
}

func (f *files) close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var lastErr error
	if f.global != nil {
		if err := f.global.Close(); err != nil {
			lastErr = err
		}
		f.global = nil
	}
	for n, file := range f.issues {
		if err := file.Close(); err != nil {
			lastErr = err
		}
		delete(f.issues, n)
	}
	return lastErr
}

// formatLog formats a log entry in the specified format.
// Format: [2025-12-30 09:32:51] [INFO] [issue-7] [category] message
func formatLog(t time.Time, level slog.Level, issue int, hasIssue bool, category, msg string) string {
	scope := "global"
	if hasIssue {
		scope = fmt.Sprintf("issue-%d", issue)
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		scope,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
