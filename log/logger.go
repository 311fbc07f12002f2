package log

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	unilogger "github.com/neuronlabs/uni-logger"
)

const (
	// LDEBUG3 is the logger DEBUG3 level.
	LDEBUG3 = unilogger.DEBUG3
	// LDEBUG2 is the logger DEBUG2 level.
	LDEBUG2 = unilogger.DEBUG2
	// LDEBUG is the logger DEBUG level.
	LDEBUG = unilogger.DEBUG
	// LINFO is the logger INFO level.
	LINFO = unilogger.INFO
	// LWARNING is the logger WARNING level.
	LWARNING = unilogger.WARNING
	// LERROR is the logger ERROR level.
	LERROR = unilogger.ERROR
	// LCRITICAL is the logger CRITICAL level.
	LCRITICAL = unilogger.CRITICAL
	// LUNKNOWN is the unspecified logger level.
	LUNKNOWN = unilogger.UNKNOWN
)

var (
	// ErrUnknownLevel is returned when a level name or value is not recognised.
	ErrUnknownLevel = errors.New("log: unknown level")
	// ErrNoLevelSetter is returned when the current logger cannot change its level.
	ErrNoLevelSetter = errors.New("log: logger doesn't implement LevelSetter")
)

var (
	mu           sync.RWMutex
	logger       unilogger.LeveledLogger
	currentLevel = LINFO
	debugLeveled unilogger.DebugLeveledLogger
)

var levelNames = map[string]unilogger.Level{
	"debug3":   LDEBUG3,
	"debug2":   LDEBUG2,
	"debug":    LDEBUG,
	"info":     LINFO,
	"warning":  LWARNING,
	"warn":     LWARNING,
	"error":    LERROR,
	"critical": LCRITICAL,
}

// ParseLevel parses a case-insensitive level name such as "debug" or "WARNING".
func ParseLevel(name string) (unilogger.Level, error) {
	lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return LUNKNOWN, fmt.Errorf("%q: %w", name, ErrUnknownLevel)
	}
	return lvl, nil
}

// Default creates and sets new unilogger.BasicLogger writing to os.Stderr.
func Default() {
	New(os.Stderr, "", log.Ldate|log.Ltime|log.Lshortfile)
}

// New creates new unilogger.BasicLogger that writes to 'out' with the given
// 'prefix' and 'flags' and sets it as the current logger.
func New(out io.Writer, prefix string, flags int) {
	basic := unilogger.NewBasicLogger(out, prefix, flags)
	basic.SetOutputDepth(4)
	SetLogger(basic)
}

// SetLogger sets 'l' as the current logger and propagates the current level to it
// and to every module logger.
func SetLogger(l unilogger.LeveledLogger) {
	mu.Lock()
	logger = l
	if depth, ok := l.(unilogger.OutputDepthGetter); ok {
		if setter, ok := l.(unilogger.OutputDepthSetter); ok {
			setter.SetOutputDepth(depth.GetOutputDepth() + 1)
		}
	}
	if lvlSetter, ok := l.(unilogger.LevelSetter); ok {
		lvlSetter.SetLevel(currentLevel)
	}
	debugLeveled, _ = l.(unilogger.DebugLeveledLogger)
	level := currentLevel
	mu.Unlock()

	for _, m := range registeredModules() {
		m.SetLevel(level)
	}
}

// SetLevel sets the level of the current logger and all module loggers.
func SetLevel(level unilogger.Level) error {
	if level == LUNKNOWN {
		return fmt.Errorf("SetLevel: %w", ErrUnknownLevel)
	}

	l := current()
	mu.Lock()
	currentLevel = level
	mu.Unlock()

	lvl, ok := l.(unilogger.LevelSetter)
	if !ok {
		return ErrNoLevelSetter
	}
	lvl.SetLevel(level)

	for _, m := range registeredModules() {
		m.SetLevel(level)
	}
	return nil
}

// Level returns the current logger level.
func Level() unilogger.Level {
	mu.RLock()
	defer mu.RUnlock()
	return currentLevel
}

// Logger returns the current logger, creating the default one if none is set.
func Logger() unilogger.LeveledLogger {
	return current()
}

func current() unilogger.LeveledLogger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l == nil {
		Default()
		mu.RLock()
		l = logger
		mu.RUnlock()
	}
	return l
}

// Debug3f writes the formatted LDEBUG3 level log.
func Debug3f(format string, args ...interface{}) {
	l := current()
	mu.RLock()
	dl := debugLeveled
	mu.RUnlock()
	if dl != nil {
		dl.Debug3f(format, args...)
		return
	}
	l.Debugf(format, args...)
}

// Debug2f writes the formatted LDEBUG2 level log.
func Debug2f(format string, args ...interface{}) {
	l := current()
	mu.RLock()
	dl := debugLeveled
	mu.RUnlock()
	if dl != nil {
		dl.Debug2f(format, args...)
		return
	}
	l.Debugf(format, args...)
}

// Debugf writes the formatted LDEBUG level log.
func Debugf(format string, args ...interface{}) {
	current().Debugf(format, args...)
}

// Infof writes the formatted LINFO level log.
func Infof(format string, args ...interface{}) {
	current().Infof(format, args...)
}

// Warningf writes the formatted LWARNING level log.
func Warningf(format string, args ...interface{}) {
	current().Warningf(format, args...)
}

// Errorf writes the formatted LERROR level log.
func Errorf(format string, args ...interface{}) {
	current().Errorf(format, args...)
}

// Fatalf writes the formatted fatal log and exits.
func Fatalf(format string, args ...interface{}) {
	current().Fatalf(format, args...)
}

// Panicf writes and panics formatted log.
func Panicf(format string, args ...interface{}) {
	current().Panicf(format, args...)
}
