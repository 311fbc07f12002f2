// Package log is the logging facade of the neta module. It keeps a single
// package-level unilogger.LeveledLogger plus named module loggers that prefix
// their messages with "[name]".
//
// The default logger is created lazily on first use and writes to os.Stderr at
// the INFO level. Callers replace it with SetLogger or New and adjust verbosity
// with SetLevel / ParseLevel.
package log
