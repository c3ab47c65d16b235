package equivalency

import (
	"go.uber.org/zap"
	"optassert/config"
	"optassert/logging"
	"sync"
)

var (
	defaultsMu       sync.RWMutex
	defaults         Options
	loadDefaultsOnce sync.Once
)

func ensureDefaults() {
	loadDefaultsOnce.Do(func() {
		logging.Init()

		defaultsMu.Lock()
		defer defaultsMu.Unlock()
		defaults = fromConfig(config.Get())
	})
}

func fromConfig(c config.OptAssertConfig) Options {
	o := New()

	mode, err := ParseEnumMode(c.Equivalency.Enums)
	if err != nil {
		panic(err)
	}
	o.enums = mode
	o.strictOrdering = c.Equivalency.StrictOrdering
	o.includeUnexported = c.Equivalency.IncludeUnexported
	o.trace = c.Equivalency.Trace
	return o
}

// Defaults returns a copy of the process-wide default options.
func Defaults() Options {
	ensureDefaults()

	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults.Using()
}

// AssertEquivalencyUsing changes the process-wide defaults used by every
// later comparison.
func AssertEquivalencyUsing(cfg Config) {
	if cfg == nil {
		panic("cannot apply nil equivalency config")
	}
	ensureDefaults()

	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = cfg(defaults)

	zap.S().Debugw("Equivalency defaults changed", "configuration", defaults.String())
}

// ResetDefaults restores the defaults loaded from configuration.
func ResetDefaults() {
	ensureDefaults()

	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = fromConfig(config.Get())
}
