package logger

import (
	"go.uber.org/zap"
)

// NewLogger builds the process-wide zap logger. Callers own the returned
// logger and should defer Sync on shutdown.
func NewLogger() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return l
}
