package config

import (
	"github.com/hoopsim/league-service/internal/logger"
)

// AppConfig identifies the service instance and where it listens.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env"`
	Port    int    `mapstructure:"port"`
}

// MongoConfig describes the document store connection.
// URI carries credentials, so it is expected from the environment
// (APP_MONGO_URI) rather than the YAML file.
type MongoConfig struct {
	URI            string `mapstructure:"uri"`
	Database       string `mapstructure:"database"`
	ConnectTimeout int    `mapstructure:"connect_timeout"` // seconds
}

// SimConfig tunes the match engine. Possessions is the fixed length of every
// simulated game; the default reproduces the league's historical 111.
type SimConfig struct {
	Possessions int `mapstructure:"possessions"`
}

type Config struct {
	App    AppConfig           `mapstructure:"app"`
	Logger logger.LoggerConfig `mapstructure:"logger"`
	Mongo  MongoConfig         `mapstructure:"mongo"`
	Sim    SimConfig           `mapstructure:"sim"`
}
