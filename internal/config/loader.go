package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads the YAML file at path and applies APP_* environment overrides
// (APP_MONGO_URI, APP_MONGO_DATABASE, ...). Env always wins over the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	// Viper only overlays env vars onto keys it has seen, so bind the ones
	// that may be absent from the file entirely.
	for _, key := range []string{"mongo.uri", "mongo.database", "app.port"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.setDefaults()
	return &config, nil
}

func (c *Config) setDefaults() {
	if c.App.Name == "" {
		c.App.Name = "league-service"
	}
	if c.App.Port == 0 {
		c.App.Port = 8080
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "league"
	}
	if c.Mongo.ConnectTimeout <= 0 {
		c.Mongo.ConnectTimeout = 10
	}
	if c.Sim.Possessions <= 0 {
		c.Sim.Possessions = 111
	}
}
