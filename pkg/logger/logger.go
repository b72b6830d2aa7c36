package logger

import (
	"sync"

	"booking-app/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once     sync.Once
	instance *zap.Logger
)

func GetLogger() *zap.Logger {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout"}
		if lvl, err := zapcore.ParseLevel(config.LOG_LEVEL); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
		logger, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		instance = logger
	})
	return instance
}
