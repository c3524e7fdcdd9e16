package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL"`
	// Sink is a zap output path, stdout when empty.
	Sink string `yaml:"sink" envconfig:"LOG_SINK"`
}

func NewLogger(cfg Log, name string) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.DisableStacktrace = cfg.LogLevel > zapcore.DebugLevel
	if cfg.Sink != "" {
		zcfg.OutputPaths = []string{cfg.Sink}
	}
	log, err := zcfg.Build()
	if err != nil {
		log = zap.NewExample()
		log.Error("logger build", zap.Error(err))
	}
	return log.Named(name)
}
