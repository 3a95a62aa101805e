package logging

import "go.uber.org/zap"

// New creates a new zap logger and installs it as the global logger so the
// rest of the codebase can use zap.S() directly
func New() *zap.SugaredLogger {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)
	return logger.Sugar()
}
