package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ecovolt-backend/internal/config"
)

var log *zap.Logger

// Init builds the global logger from config and installs it via zap.ReplaceGlobals.
func Init(cfg *config.Config) {
	var zapCfg zap.Config
	if cfg.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "timestamp"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level.SetLevel(level)

	var err error
	log, err = zapCfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	zap.ReplaceGlobals(log)
}

// Get returns the global logger, falling back to a production logger when Init
// has not run (tests, tooling).
func Get() *zap.Logger {
	if log == nil {
		log, _ = zap.NewProduction()
	}
	return log
}
