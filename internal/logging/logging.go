// Package logging builds the process logger.
package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	// Level is a zap level name; empty or unknown means info.
	Level string

	// File, when set, sends JSON logs to a rotating file instead of the
	// console. The terminal UI always logs to a file.
	File string

	// Console is the console destination. Defaults to stderr.
	Console io.Writer
}

// OptionsFromEnv reads STUDYPLANNER_LOG_LEVEL and STUDYPLANNER_LOG_FILE.
func OptionsFromEnv() Options {
	return Options{
		Level: os.Getenv("STUDYPLANNER_LOG_LEVEL"),
		File:  os.Getenv("STUDYPLANNER_LOG_FILE"),
	}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// New builds a logger from opts.
func New(opts Options) *zap.Logger {
	level := ParseLevel(opts.Level)

	var core zapcore.Core
	if opts.File != "" {
		core = zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig()),
			zapcore.AddSync(rotating(opts.File)),
			level,
		)
	} else {
		w := opts.Console
		if w == nil {
			w = os.Stderr
		}
		core = zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig()),
			zapcore.AddSync(w),
			level,
		)
	}
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(name string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(name))
	if err != nil || name == "" {
		return zap.InfoLevel
	}
	return lvl
}

func rotating(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
}
