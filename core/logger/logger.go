package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorGray   = "\033[90m"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) color() string {
	switch l {
	case DEBUG:
		return ColorGray
	case INFO:
		return ColorBlue
	case WARN:
		return ColorYellow
	case ERROR:
		return ColorRed
	case FATAL:
		return ColorPurple
	default:
		return ColorReset
	}
}

// Diagnostics go to stderr; stdout is reserved for report output.
type colorLogger struct {
	mu      sync.RWMutex
	verbose bool
	out     io.Writer
}

var global = &colorLogger{out: os.Stderr}

func SetVerbose(verbose bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.verbose = verbose
}

func IsVerbose() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.verbose
}

func SetOutput(w io.Writer) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.out = w
}

// AddOutput tees log output to an additional writer, e.g. a logfile.
func AddOutput(w io.Writer) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.out = io.MultiWriter(global.out, w)
}

func (cl *colorLogger) log(level LogLevel, format string, args ...interface{}) {
	cl.mu.RLock()
	if level == DEBUG && !cl.verbose {
		cl.mu.RUnlock()
		return
	}
	out := cl.out
	cl.mu.RUnlock()

	timestamp := time.Now().Format("06-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "%s[%s]%s %s%-5s%s %s\n",
		ColorGray, timestamp, ColorReset,
		level.color(), level.String(), ColorReset,
		message)

	if level == FATAL {
		os.Exit(1)
	}
}

func Debug(format string, args ...interface{}) {
	global.log(DEBUG, format, args...)
}

func Info(format string, args ...interface{}) {
	global.log(INFO, format, args...)
}

func Warn(format string, args ...interface{}) {
	global.log(WARN, format, args...)
}

func Error(format string, args ...interface{}) {
	global.log(ERROR, format, args...)
}

func Fatal(format string, args ...interface{}) {
	global.log(FATAL, format, args...)
}
