// Package logging builds the application's zap logger.
//
// The TUI owns the terminal, so logs only ever go to a rotating file.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Params struct {
	File       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	Verbose    bool
}

// New returns a JSON logger writing to Params.File. An empty file returns a
// no-op logger.
func New(p Params) *zap.Logger {
	if strings.TrimSpace(p.File) == "" {
		return zap.NewNop()
	}

	level := ParseLevel(p.Level)
	if p.Verbose {
		level = zapcore.DebugLevel
	}

	maxSize := p.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}
	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   p.File,
		MaxSize:    maxSize, // megabytes
		MaxBackups: p.MaxBackups,
		LocalTime:  true,
	})

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.AddCaller())
}

func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
