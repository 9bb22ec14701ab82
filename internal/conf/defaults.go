package conf

import "github.com/spf13/viper"

// setDefaultConfig registers default values for every configuration
// parameter so a missing or partial config file still yields a complete
// Settings struct.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("log.enabled", true)
	viper.SetDefault("log.path", "logs/mock-provider.log")
	viper.SetDefault("log.maxsizemb", 100)
	viper.SetDefault("log.maxbackups", 3)
	viper.SetDefault("log.maxagedays", 28)

	viper.SetDefault("provider.id", "mock-provider")
	viper.SetDefault("provider.credentials", map[string]string{})
	// No rateLimit defaults here: the provider substitutes its own documented
	// defaults when fields are absent, and the two layers must not disagree.
	viper.SetDefault("provider.options", map[string]any{})
}

// defaultSettings returns the Settings used when no config file exists yet.
func defaultSettings() *Settings {
	return &Settings{
		Debug: false,
		Log: LogConfig{
			Enabled:    true,
			Path:       "logs/mock-provider.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Provider: ProviderSettings{
			ID:          "mock-provider",
			Credentials: map[string]string{},
			Options:     map[string]any{},
		},
	}
}
