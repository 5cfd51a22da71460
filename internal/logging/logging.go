// Package logging configures the process-wide zap logger.
package logging

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a console logger writing to stderr. The level defaults
// to info, may be overridden with the LOG_LEVEL environment variable,
// and is forced to debug when verbose is set.
func New(verbose bool) *zap.SugaredLogger {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if env, ok := os.LookupEnv("LOG_LEVEL"); ok {
		parsed, err := zap.ParseAtomicLevel(env)
		if err != nil {
			log.Printf("failed to parse LOG_LEVEL, falling back to INFO: %v", err)
		} else {
			level.SetLevel(parsed.Level())
		}
	}
	if verbose {
		level.SetLevel(zap.DebugLevel)
	}

	config := zap.Config{
		Level:    level,
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "M",
			LevelKey:       "L",
			TimeKey:        "T",
			NameKey:        "N",
			CallerKey:      zapcore.OmitKey,
			FunctionKey:    zapcore.OmitKey,
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := config.Build()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	return logger.Sugar()
}
