package knuckleball

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gitlab.com/variadico/lctime"
)

// LogSink receives one request/response pair per call and writes it as
// one timestamped record line.
type LogSink interface {
	Record(input, output string)
	Close() error
}

// fileLogSink appends timestamped records to an open file, holding an
// advisory lock for the sink's lifetime so that two dispatcher
// processes logging to the same path never interleave writes.
// Locking is platform-specific; see log_unix.go and log_windows.go.
type fileLogSink struct {
	f *os.File
}

// OpenLogSink opens (creating and appending to) the file at path and
// takes an advisory lock on it. An empty path is invalid; callers that
// want no file sink should pass a nil LogSink instead of calling this.
func OpenLogSink(path string) (LogSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("knuckleball: open log file: %w", err)
	}
	if err := lockLogFile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("knuckleball: lock log file: %w", err)
	}
	return &fileLogSink{f: f}, nil
}

func (s *fileLogSink) Record(input, output string) {
	fmt.Fprintf(s.f, "%s %s -> %s\n", logTimestamp(), strings.TrimSpace(input), output)
}

func (s *fileLogSink) Close() error {
	unlockLogFile(s.f)
	return s.f.Close()
}

// stdoutLogSink writes records to an io.Writer, used when no logfile
// is configured and quiet mode is off.
type stdoutLogSink struct {
	w io.Writer
}

// NewStdoutLogSink wraps w (typically os.Stdout) as a LogSink.
func NewStdoutLogSink(w io.Writer) LogSink {
	return &stdoutLogSink{w: w}
}

func (s *stdoutLogSink) Record(input, output string) {
	fmt.Fprintf(s.w, "%s %s -> %s\n", logTimestamp(), strings.TrimSpace(input), output)
}

func (s *stdoutLogSink) Close() error { return nil }

// logTimestamp renders the current local time in the "[YYYY-MM-DD
// HH:MM:SS]" shape, using lctime rather than time.Format so the digits
// never shift under a locale that reorders %F or %T.
func logTimestamp() string {
	return "[" + lctime.Strftime("%F %T", time.Now()) + "]"
}

// log writes one record to whichever sink is configured, honoring
// quiet mode when there is no file sink.
func (c *Context) log(input, output string) {
	if c.sink != nil {
		c.sink.Record(input, output)
		return
	}
	if c.quiet {
		return
	}
	NewStdoutLogSink(os.Stdout).Record(input, output)
}
