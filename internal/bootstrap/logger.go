package bootstrap

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the process-wide zap logger and installs it as the
// global so packages without an injected logger still get named children.
func NewLogger() (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if os.Getenv("APP_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
