// Package config resolves hollowcheck's CLI-level settings — contract
// path, threshold override, color output — by merging flags over
// environment variables over defaults, the way viper is used throughout
// the example pack.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings that live outside the Contract: where to
// find it, and how the CLI itself should behave.
type Config struct {
	ContractPath string `mapstructure:"contract"`
	Threshold    int    `mapstructure:"threshold"`
	NoColor      bool   `mapstructure:"no_color"`
}

// Load builds a Config from environment variables (HOLLOWCHECK_CONTRACT,
// HOLLOWCHECK_THRESHOLD, NO_COLOR) and defaults; analyzeCmd uses the
// result as its flag defaults, so an explicitly set flag wins over both.
func Load() (*Config, *viper.Viper) {
	v := viper.New()
	v.SetEnvPrefix("HOLLOWCHECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("contract", "hollowcheck.yaml")
	v.SetDefault("threshold", 25)
	v.SetDefault("no_color", false)

	if os.Getenv("NO_COLOR") != "" {
		v.Set("no_color", true)
	}

	cfg := &Config{
		ContractPath: v.GetString("contract"),
		Threshold:    v.GetInt("threshold"),
		NoColor:      v.GetBool("no_color"),
	}
	return cfg, v
}
