package utils

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewApplicationLogger constructs a zap logger configured for human-readable console output.
// An empty or unknown levelName falls back to info.
func NewApplicationLogger(levelName string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.Level = zap.NewAtomicLevelAt(parseLevel(levelName))
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.NameKey = ""
	config.EncoderConfig.CallerKey = ""
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.StacktraceKey = ""
	return config.Build()
}

func parseLevel(levelName string) zapcore.Level {
	level, parseError := zapcore.ParseLevel(strings.TrimSpace(levelName))
	if parseError != nil || strings.TrimSpace(levelName) == "" {
		return zapcore.InfoLevel
	}
	return level
}
