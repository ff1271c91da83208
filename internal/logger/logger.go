package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
)

type Level int

const (
	Trace Level = iota - 1
	Debug
	Info
	Warn
	Error
)

// Logger writes leveled lines to an io.Writer. It never writes to stdout on
// its own; the stdio MCP transport owns that stream.
//
// Instances of Logger are safe for concurrent use.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	level  Level
	colors aurora.Aurora
}

// New returns a Logger writing lines at or above level to out. Colors are
// enabled only when out is a terminal.
func New(out io.Writer, level Level) *Logger {
	return &Logger{
		out:    out,
		level:  level,
		colors: aurora.NewAurora(isTerminal(out)),
	}
}

// FromEnv returns a Logger writing to out at the level named by the
// SKYPORT_LOG_LEVEL or LOG_LEVEL environment variables.
func FromEnv(out io.Writer) *Logger {
	return New(out, levelFromEnv())
}

func levelFromEnv() Level {
	lit, ok := os.LookupEnv("SKYPORT_LOG_LEVEL")
	if !ok {
		lit = os.Getenv("LOG_LEVEL")
	}
	return ParseLevel(lit)
}

// ParseLevel maps a level name to a Level. Unknown names yield Info.
func ParseLevel(lit string) Level {
	switch strings.ToLower(strings.TrimSpace(lit)) {
	default:
		return Info
	case "trace":
		return Trace
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	}
}

func (lvl Level) String() string {
	switch lvl {
	case Trace:
		return "trace"
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// Level returns the minimum level l writes.
func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) write(label interface{}, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.out, label, fmt.Sprint(v...))
}

func (l *Logger) Debug(v ...interface{}) {
	if l.level <= Debug {
		l.write(l.colors.Faint("DEBUG"), v...)
	}
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.level <= Debug {
		l.write(l.colors.Faint("DEBUG"), fmt.Sprintf(format, v...))
	}
}

func (l *Logger) Info(v ...interface{}) {
	if l.level <= Info {
		l.write(l.colors.Faint("INFO"), v...)
	}
}

func (l *Logger) Infof(format string, v ...interface{}) {
	if l.level <= Info {
		l.write(l.colors.Faint("INFO"), fmt.Sprintf(format, v...))
	}
}

func (l *Logger) Warn(v ...interface{}) {
	if l.level <= Warn {
		l.write(l.colors.Yellow("WARN"), v...)
	}
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	if l.level <= Warn {
		l.write(l.colors.Yellow("WARN"), fmt.Sprintf(format, v...))
	}
}

func (l *Logger) Error(v ...interface{}) {
	if l.level <= Error {
		l.write(l.colors.Red("ERROR"), v...)
	}
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	if l.level <= Error {
		l.write(l.colors.Red("ERROR"), fmt.Sprintf(format, v...))
	}
}
