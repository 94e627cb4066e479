// Package lumber provides the application logger and its zap and logrus backends.
package lumber

import (
	"errors"
)

// A global variable so that log functions can be directly accessed
var log Logger

// Fields Type to pass when we want to call WithFields for structured logging
type Fields map[string]interface{}

const (
	// Debug has verbose message
	Debug = "debug"
	// Info is default log level
	Info = "info"
	// Warn is for logging messages about possible issues
	Warn = "warn"
	// Error is for logging errors
	Error = "error"
	// Fatal is for logging fatal messages. The system shuts down after logging the message.
	Fatal = "fatal"
)

const (
	// InstanceZapLogger selects the zap backend
	InstanceZapLogger int = iota
	// InstanceLogrusLogger selects the logrus backend
	InstanceLogrusLogger
)

var errInvalidLoggerInstance = errors.New("invalid logger instance")

// Logger is our contract for the logger
type Logger interface {
	Debugf(format string, args ...interface{})

	Infof(format string, args ...interface{})

	Warnf(format string, args ...interface{})

	Errorf(format string, args ...interface{})

	Fatalf(format string, args ...interface{})

	Panicf(format string, args ...interface{})

	WithFields(keyValues Fields) Logger
}

// LoggingConfig stores the config for the logger
// For some loggers there can only be one level across writers, for such the level of Console is picked by default
type LoggingConfig struct {
	EnableConsole     bool
	ConsoleJSONFormat bool
	ConsoleLevel      string
	EnableFile        bool
	FileJSONFormat    bool
	FileLevel         string
	FileLocation      string
}

// NewLogger returns an instance of logger
func NewLogger(config *LoggingConfig, verbose bool, loggerInstance int) (Logger, error) {
	if !verbose {
		config.ConsoleLevel = Info
		config.FileLevel = Info
	}
	switch loggerInstance {
	case InstanceZapLogger:
		logger, err := newZapLogger(config)
		if err != nil {
			return nil, err
		}
		log = logger
		return logger, nil
	case InstanceLogrusLogger:
		logger, err := newLogrusLogger(config)
		if err != nil {
			return nil, err
		}
		log = logger
		return logger, nil
	default:
		return nil, errInvalidLoggerInstance
	}
}

// Debugf logs through the logger created by the last NewLogger call.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Infof logs through the logger created by the last NewLogger call.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Warnf logs through the logger created by the last NewLogger call.
func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

// Errorf logs through the logger created by the last NewLogger call.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// Fatalf logs through the logger created by the last NewLogger call.
func Fatalf(format string, args ...interface{}) {
	log.Fatalf(format, args...)
}

// Panicf logs through the logger created by the last NewLogger call.
func Panicf(format string, args ...interface{}) {
	log.Panicf(format, args...)
}

// WithFields returns the global logger with the given fields attached.
func WithFields(keyValues Fields) Logger {
	return log.WithFields(keyValues)
}
