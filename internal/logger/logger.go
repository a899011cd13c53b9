// Package logger writes the journal's diagnostic log: a rotating file next to
// the store, mirrored to stderr with --debug.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/mindping/internal/constants"
)

const (
	logDirName     = "logs"
	maxSizeMB      = 10
	maxBackupFiles = 3
	maxAgeDays     = 28
)

var (
	// Logger is nil until Init; every helper is a no-op before that.
	Logger *log.Logger

	sink *lumberjack.Logger
)

type Config struct {
	Debug     bool
	ConfigDir string // directory holding the journal store
}

// Path returns the log file used for a journal kept in configDir.
func Path(configDir string) string {
	return filepath.Join(configDir, logDirName, constants.AppName+".log")
}

// Init points the global logger at Path(cfg.ConfigDir). Calling it again
// closes the previous file.
func Init(cfg Config) error {
	path := Path(cfg.ConfigDir)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	Close()

	sink = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackupFiles,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}

	opts := log.Options{
		ReportTimestamp: true,
		Level:           log.InfoLevel,
		Prefix:          constants.AppName,
	}
	var w io.Writer = sink
	if cfg.Debug {
		opts.Level = log.DebugLevel
		opts.ReportCaller = true
		w = io.MultiWriter(os.Stderr, sink)
	}

	Logger = log.NewWithOptions(w, opts)
	return nil
}

// Close releases the log file. Logging after Close is dropped.
func Close() error {
	Logger = nil
	if sink == nil {
		return nil
	}
	err := sink.Close()
	sink = nil
	return err
}

// Component tags every line with the part of the journal that wrote it,
// e.g. logger.Component("backup").
type Component string

func (c Component) with() *log.Logger {
	if Logger == nil {
		return nil
	}
	return Logger.With("component", string(c))
}

func (c Component) Debug(msg string, keyvals ...interface{}) {
	if l := c.with(); l != nil {
		l.Debug(msg, keyvals...)
	}
}

func (c Component) Info(msg string, keyvals ...interface{}) {
	if l := c.with(); l != nil {
		l.Info(msg, keyvals...)
	}
}

func (c Component) Warn(msg string, keyvals ...interface{}) {
	if l := c.with(); l != nil {
		l.Warn(msg, keyvals...)
	}
}

func (c Component) Error(msg string, keyvals ...interface{}) {
	if l := c.with(); l != nil {
		l.Error(msg, keyvals...)
	}
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
