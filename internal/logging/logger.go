package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the process-wide logger. Use GetLogger rather than reading it directly.
var Logger *log.Logger

// LogLevel represents available log levels
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// LogFormat represents available output formats
type LogFormat string

const (
	TextFormat   LogFormat = "text"
	JSONFormat   LogFormat = "json"
	LogfmtFormat LogFormat = "logfmt"
)

// InitLogger initializes the global logger from LOG_LEVEL and LOG_FORMAT,
// writing to stderr.
func InitLogger() {
	Init(ParseLevel(os.Getenv("LOG_LEVEL")), ParseFormat(os.Getenv("LOG_FORMAT")), os.Stderr)
}

// Init replaces the global logger with one writing to w at the given level
// and format, and returns it.
func Init(level LogLevel, format LogFormat, w io.Writer) *log.Logger {
	Logger = log.New(w)
	setLogLevel(Logger, level)
	setFormat(Logger, format)

	Logger.SetReportTimestamp(format != TextFormat)
	Logger.SetPrefix("lvnoise")

	Logger.Debug("Logger initialized", "level", level, "format", format)

	return Logger
}

// ParseLevel maps a level name to a LogLevel. Unknown or empty names give InfoLevel.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// ParseFormat maps a format name to a LogFormat. Unknown or empty names give TextFormat.
func ParseFormat(s string) LogFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSONFormat
	case "logfmt":
		return LogfmtFormat
	default:
		return TextFormat
	}
}

// setLogLevel configures the logger with the specified level
func setLogLevel(logger *log.Logger, level LogLevel) {
	switch level {
	case DebugLevel:
		logger.SetLevel(log.DebugLevel)
	case WarnLevel:
		logger.SetLevel(log.WarnLevel)
	case ErrorLevel:
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

func setFormat(logger *log.Logger, format LogFormat) {
	switch format {
	case JSONFormat:
		logger.SetFormatter(log.JSONFormatter)
	case LogfmtFormat:
		logger.SetFormatter(log.LogfmtFormatter)
	default:
		logger.SetFormatter(log.TextFormatter)
	}
}

// GetLogger returns the global logger instance
func GetLogger() *log.Logger {
	if Logger == nil {
		InitLogger()
	}
	return Logger
}

// SetOutput redirects the global logger.
func SetOutput(w io.Writer) {
	GetLogger().SetOutput(w)
}

// WithFields creates a logger with contextual fields
func WithFields(fields ...interface{}) *log.Logger {
	return GetLogger().With(fields...)
}

// WithNode creates a logger with graph node context
func WithNode(name, kind string) *log.Logger {
	return WithFields("node", name, "type", kind)
}

// WithRecipe creates a logger with recipe source context
func WithRecipe(source string) *log.Logger {
	return WithFields("recipe", source)
}

// WithPoint creates a logger with sample coordinate context
func WithPoint(x, y, z float64) *log.Logger {
	return WithFields("x", x, "y", y, "z", z)
}
