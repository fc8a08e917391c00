package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newProductionLoggerConfig() zap.Config {
	return zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
}

func newStagingLoggerConfig() zap.Config {
	cfg := newProductionLoggerConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true

	return cfg
}

func newDevelopmentLoggerConfig() zap.Config {
	return zap.Config{
		Level:             zap.NewAtomicLevelAt(zapcore.DebugLevel),
		Development:       true,
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

// newTestLoggerConfig discards all output so test runs stay quiet.
func newTestLoggerConfig() zap.Config {
	return zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{},
		ErrorOutputPaths: []string{},
	}
}
