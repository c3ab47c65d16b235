package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
	"io/fs"
	"optassert/constants"
	"os"
	"sync"
)

type OptAssertConfig struct {
	Environment string

	Equivalency struct {
		Enums             string
		StrictOrdering    bool
		IncludeUnexported bool
		Trace             bool
	}
}

const (
	Production  = "Production"
	Staging     = "Staging"
	Development = "Development"
)

func (c *OptAssertConfig) IsProduction() bool {
	return c.Environment == Production
}

func (c *OptAssertConfig) IsStaging() bool {
	return c.Environment == Staging
}

func (c *OptAssertConfig) IsDevelopment() bool {
	return !(c.IsStaging() || c.IsProduction())
}

var C OptAssertConfig
var once sync.Once

// Init loads the configuration once per process. Later calls are no-ops.
func Init() {
	once.Do(func() {
		v := newViper()
		readConfigValues(v)
		validateConfig()
	})
}

// Get returns the loaded configuration, loading it on first use.
func Get() OptAssertConfig {
	Init()
	return C
}

func configFilePath() string {
	if p, ok := os.LookupEnv(constants.ConfigFileEnv); ok && p != "" {
		return p
	}
	return constants.DefaultConfigFile
}

func newViper() *viper.Viper {
	v := viper.NewWithOptions(viper.KeyDelimiter("_"))

	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	// defaults double as the key list AutomaticEnv needs for Unmarshal
	v.SetDefault("environment", Development)
	v.SetDefault("equivalency_enums", constants.EnumModeValue)
	v.SetDefault("equivalency_strictordering", true)
	v.SetDefault("equivalency_includeunexported", false)
	v.SetDefault("equivalency_trace", false)

	v.SetConfigFile(configFilePath())
	return v
}

func readConfigValues(v *viper.Viper) {
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		err = nil
	}
	if err != nil {
		panic(err)
	}

	if err := v.Unmarshal(&C); err != nil {
		panic(err)
	}
}

func validateConfig() {
	switch C.Equivalency.Enums {
	case constants.EnumModeValue, constants.EnumModeName:
	default:
		panic(fmt.Sprintf("enum comparison mode '%s' is not supported", C.Equivalency.Enums))
	}
}
