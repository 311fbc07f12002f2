package log

import (
	"sync"

	unilogger "github.com/neuronlabs/uni-logger"
)

var (
	modulesMu sync.Mutex
	modules   []*ModuleLogger
)

func registeredModules() []*ModuleLogger {
	modulesMu.Lock()
	defer modulesMu.Unlock()
	return append([]*ModuleLogger(nil), modules...)
}

// ModuleLogger is the logger used by a single package of the module. It filters
// by its own level and prefixes every message with "[Name]".
type ModuleLogger struct {
	Name string

	mu    sync.RWMutex
	level unilogger.Level
}

// NewModuleLogger creates and registers a module logger named 'name'. The module
// follows the package level until SetLevel is called on it directly.
func NewModuleLogger(name string) *ModuleLogger {
	m := &ModuleLogger{Name: name, level: Level()}

	modulesMu.Lock()
	modules = append(modules, m)
	modulesMu.Unlock()

	return m
}

// Level gets the module logger level.
func (m *ModuleLogger) Level() unilogger.Level {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.level
}

// SetLevel sets the module logger level.
func (m *ModuleLogger) SetLevel(level unilogger.Level) {
	m.mu.Lock()
	m.level = level
	m.mu.Unlock()
}

// enabled reports whether messages at 'level' pass the module filter.
func (m *ModuleLogger) enabled(level unilogger.Level) bool {
	cur := m.Level()
	return cur == LUNKNOWN || level >= cur
}

func (m *ModuleLogger) prefix(format string) string {
	return "[" + m.Name + "] " + format
}

// Debug3f writes the formatted debug3 log.
func (m *ModuleLogger) Debug3f(format string, args ...interface{}) {
	if m.enabled(LDEBUG3) {
		Debug3f(m.prefix(format), args...)
	}
}

// Debug2f writes the formatted debug2 log.
func (m *ModuleLogger) Debug2f(format string, args ...interface{}) {
	if m.enabled(LDEBUG2) {
		Debug2f(m.prefix(format), args...)
	}
}

// Debugf writes the formatted debug log.
func (m *ModuleLogger) Debugf(format string, args ...interface{}) {
	if m.enabled(LDEBUG) {
		Debugf(m.prefix(format), args...)
	}
}

// Infof writes the formatted info log.
func (m *ModuleLogger) Infof(format string, args ...interface{}) {
	if m.enabled(LINFO) {
		Infof(m.prefix(format), args...)
	}
}

// Warningf writes the formatted warning log.
func (m *ModuleLogger) Warningf(format string, args ...interface{}) {
	if m.enabled(LWARNING) {
		Warningf(m.prefix(format), args...)
	}
}

// Errorf writes the formatted error log.
func (m *ModuleLogger) Errorf(format string, args ...interface{}) {
	if m.enabled(LERROR) {
		Errorf(m.prefix(format), args...)
	}
}
