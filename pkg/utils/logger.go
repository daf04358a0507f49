package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogLevel orders log messages by severity
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// ANSI colors: cyan, green, yellow, red
var levelColors = [...]string{"\033[36m", "\033[32m", "\033[33m", "\033[31m"}

const colorReset = "\033[0m"

func (l LogLevel) valid() bool {
	return l >= LogLevelDebug && l <= LogLevelError
}

// String returns the upper-case level name
func (l LogLevel) String() string {
	if !l.valid() {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ColorCode returns the ANSI escape used for l in colored text output
func (l LogLevel) ColorCode() string {
	if !l.valid() {
		return colorReset
	}
	return levelColors[l]
}

// ParseLogLevel converts a configuration value to a LogLevel
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug, nil
	case "", "info":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	default:
		return LogLevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// LogFormat selects how a log line is rendered
type LogFormat int

const (
	LogFormatText LogFormat = iota
	LogFormatJSON
	LogFormatCompact
)

// ParseLogFormat converts a configuration value to a LogFormat
func ParseLogFormat(s string) (LogFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return LogFormatText, nil
	case "json":
		return LogFormatJSON, nil
	case "compact":
		return LogFormatCompact, nil
	default:
		return LogFormatText, fmt.Errorf("unknown log format %q", s)
	}
}

// Logger is the leveled, printf-style logger used across the analyzer
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	WithField(key string, value interface{}) Logger
}

// LoggerConfig controls a ConsoleLogger
type LoggerConfig struct {
	Level       LogLevel
	Format      LogFormat
	Output      io.Writer
	EnableColor bool
}

// DefaultLoggerConfig logs info and above as colored text on stderr
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:       LogLevelInfo,
		Format:      LogFormatText,
		Output:      os.Stderr,
		EnableColor: true,
	}
}

// ConsoleLogger writes one line per message to a single writer. Loggers
// derived with WithField share the writer lock of their parent.
type ConsoleLogger struct {
	config *LoggerConfig
	fields map[string]interface{}
	mu     *sync.Mutex
	now    func() time.Time
}

// NewLogger creates a logger; a nil config selects DefaultLoggerConfig
func NewLogger(config *LoggerConfig) *ConsoleLogger {
	if config == nil {
		config = DefaultLoggerConfig()
	}
	if config.Output == nil {
		config.Output = os.Stderr
	}

	return &ConsoleLogger{
		config: config,
		fields: map[string]interface{}{},
		mu:     &sync.Mutex{},
		now:    time.Now,
	}
}

func (l *ConsoleLogger) Debug(msg string, args ...interface{}) { l.log(LogLevelDebug, msg, args) }
func (l *ConsoleLogger) Info(msg string, args ...interface{})  { l.log(LogLevelInfo, msg, args) }
func (l *ConsoleLogger) Warn(msg string, args ...interface{})  { l.log(LogLevelWarn, msg, args) }
func (l *ConsoleLogger) Error(msg string, args ...interface{}) { l.log(LogLevelError, msg, args) }

func (l *ConsoleLogger) log(level LogLevel, msg string, args []interface{}) {
	if level < l.config.Level {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	line := l.render(level, msg, l.now())

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.config.Output, line)
}

// render formats one entry:
//
//	text:    [2006-01-02 15:04:05] WARN {file=a.apk} message
//	compact: W 15:04:05 message
//	json:    {"file":"a.apk","level":"WARN","message":"message","timestamp":"..."}
func (l *ConsoleLogger) render(level LogLevel, msg string, ts time.Time) string {
	var line string
	switch l.config.Format {
	case LogFormatJSON:
		return l.jsonLine(level, msg, ts)
	case LogFormatCompact:
		line = fmt.Sprintf("%c %s %s", level.String()[0], ts.Format("15:04:05"), msg)
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "[%s] %s", ts.Format("2006-01-02 15:04:05"), level)
		if keys := l.sortedFieldKeys(); len(keys) > 0 {
			pairs := make([]string, len(keys))
			for i, k := range keys {
				pairs[i] = fmt.Sprintf("%s=%v", k, l.fields[k])
			}
			fmt.Fprintf(&b, " {%s}", strings.Join(pairs, ", "))
		}
		b.WriteString(" ")
		b.WriteString(msg)
		line = b.String()
	}

	if l.config.EnableColor {
		return level.ColorCode() + line + colorReset
	}
	return line
}

func (l *ConsoleLogger) jsonLine(level LogLevel, msg string, ts time.Time) string {
	entry := make(map[string]interface{}, len(l.fields)+3)
	for k, v := range l.fields {
		entry[k] = v
	}
	entry["timestamp"] = ts.Format(time.RFC3339)
	entry["level"] = level.String()
	entry["message"] = msg

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Sprintf(`{"level":%q,"message":%q}`, level.String(), msg)
	}
	return string(data)
}

func (l *ConsoleLogger) sortedFieldKeys() []string {
	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SetLevel changes the minimum level; derived loggers see the change too
func (l *ConsoleLogger) SetLevel(level LogLevel) {
	l.config.Level = level
}

// WithField returns a child logger that prefixes every entry with key=value
func (l *ConsoleLogger) WithField(key string, value interface{}) Logger {
	fields := make(map[string]interface{}, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value

	return &ConsoleLogger{config: l.config, fields: fields, mu: l.mu, now: l.now}
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Debug(string, ...interface{})           {}
func (NopLogger) Info(string, ...interface{})            {}
func (NopLogger) Warn(string, ...interface{})            {}
func (NopLogger) Error(string, ...interface{})           {}
func (n NopLogger) WithField(string, interface{}) Logger { return n }
