package config

import (
	"fmt"
	"os"

	"BEARSTY_server/global"

	"github.com/caarlos0/env/v6"
)

// Store drivers
const (
	DriverMemory    = "memory"
	DriverRedis     = "redis"
	DriverCassandra = "cassandra"
)

// JSONConfig structure based on config.json
type JSONConfig struct {
	Origin    string          `json:"origin" env:"ORIGIN"`
	Port      string          `json:"port" env:"PORT"`
	Store     StoreConfig     `json:"store" envPrefix:"STORE_"`
	MinIO     MinIOConfig     `json:"minIO" envPrefix:"MINIO_"`
	Relations RelationsConfig `json:"relations" envPrefix:"RELATIONS_"`
	Schedule  ScheduleConfig  `json:"schedule" envPrefix:"SCHEDULE_"`
	Logs      LogsConfig      `json:"logs" envPrefix:"LOGS_"`
}

// StoreConfig selects and configures the document store backend
type StoreConfig struct {
	Driver    string          `json:"driver" env:"DRIVER"`
	Redis     RedisConfig     `json:"redis" envPrefix:"REDIS_"`
	Cassandra CassandraConfig `json:"cassandra" envPrefix:"CASSANDRA_"`
}

// RedisConfig structure based on store.redis part of config.json
type RedisConfig struct {
	Addr     string `json:"addr" env:"ADDR"`
	Password string `json:"password" env:"PASSWORD"`
	DB       int    `json:"db" env:"DB"`
}

// CassandraConfig structure based on store.cassandra part of config.json
type CassandraConfig struct {
	Hosts       []string `json:"hosts" env:"HOSTS" envSeparator:","`
	Keyspace    string   `json:"keyspace" env:"KEYSPACE"`
	Consistency string   `json:"consistency" env:"CONSISTENCY"`
}

// MinIOConfig structure is the config for MinIO connection. An empty
// Endpoint disables the media routes.
type MinIOConfig struct {
	Endpoint       string `json:"endpoint" env:"ENDPOINT"`
	User           string `json:"user" env:"USER"`
	Password       string `json:"password" env:"PASSWORD"`
	Bucket         string `json:"bucket" env:"BUCKET"`
	Secure         bool   `json:"secure" env:"SECURE"`
	PublicURL      string `json:"publicURL" env:"PUBLIC_URL"`
	MaxUploadBytes int    `json:"maxUploadBytes" env:"MAX_UPLOAD_BYTES"`
}

// RelationsConfig tunes the relationship coordinator
type RelationsConfig struct {
	SymmetricFriends bool `json:"symmetricFriends" env:"SYMMETRIC_FRIENDS"`
	CommitAttempts   int  `json:"commitAttempts" env:"COMMIT_ATTEMPTS"`
}

// ScheduleConfig configures the daily Today_Time refresh
type ScheduleConfig struct {
	DailyRefresh bool   `json:"dailyRefresh" env:"DAILY_REFRESH"`
	RefreshAt    string `json:"refreshAt" env:"REFRESH_AT"`
}

// LogsConfig holds the log file paths
type LogsConfig struct {
	Internal string `json:"internal" env:"INTERNAL"`
	Monitor  string `json:"monitor" env:"MONITOR"`
}

// Default returns the configuration used when config.json leaves a value unset
func Default() JSONConfig {
	return JSONConfig{
		Origin: "*",
		Port:   ":8080",
		Store: StoreConfig{
			Driver: DriverMemory,
			Redis: RedisConfig{
				Addr: "127.0.0.1:6379",
			},
			Cassandra: CassandraConfig{
				Hosts:       []string{"127.0.0.1:9042"},
				Keyspace:    "bearstydb",
				Consistency: "QUORUM",
			},
		},
		MinIO: MinIOConfig{
			Bucket:         "bearsty",
			MaxUploadBytes: 4 << 20,
		},
		Relations: RelationsConfig{
			CommitAttempts: 3,
		},
		Schedule: ScheduleConfig{
			RefreshAt: "00:00",
		},
		Logs: LogsConfig{
			Internal: "internal_errors.txt",
			Monitor:  "monitor_logs.txt",
		},
	}
}

// Load reads the config file at path over the defaults and then applies
// BEARSTY_* environment overrides. A missing file is not an error.
func Load(path string) (JSONConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := global.JSON.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	if err := env.Parse(&cfg, env.Options{Prefix: "BEARSTY_"}); err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}

	if cfg.Relations.CommitAttempts < 1 {
		cfg.Relations.CommitAttempts = 1
	}

	return cfg, nil
}
