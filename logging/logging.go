package logging

import (
	"go.uber.org/zap"
	"optassert/config"
)

// Init builds the logger for the loaded configuration and publishes it as
// zap's global logger. Until then zap.S() discards everything.
//
// Assertion failures and member traces log at debug level, which is only
// enabled when equivalency tracing is configured.
func Init() {
	c := config.Get()

	cfg := zap.NewDevelopmentConfig()
	if c.IsProduction() || c.IsStaging() {
		cfg = zap.NewProductionConfig()
	}

	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if c.Equivalency.Trace {
		cfg.Level.SetLevel(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	zap.ReplaceGlobals(logger)
}
