package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"dronefleet/internal/adapters/out/postgres"

	"gopkg.in/yaml.v3"
)

// Config holds every setting of the service. Values come from defaults, then
// an optional YAML file, then the environment.
type Config struct {
	HTTPPort string `yaml:"http_port"`

	DBDriver       string        `yaml:"db_driver"`
	DBHost         string        `yaml:"db_host"`
	DBPort         string        `yaml:"db_port"`
	DBUser         string        `yaml:"db_user"`
	DBPassword     string        `yaml:"db_password"`
	DBName         string        `yaml:"db_name"`
	DBSslMode      string        `yaml:"db_sslmode"`
	DBPath         string        `yaml:"db_path"`
	DBMaxOpenConns int           `yaml:"db_max_open_conns"`
	DBMaxIdleConns int           `yaml:"db_max_idle_conns"`
	DBTimeout      time.Duration `yaml:"db_timeout"`

	BatterySampleInterval time.Duration `yaml:"battery_sample_interval"`
	SeedDrones            bool          `yaml:"seed_drones"`

	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`

	LogLevel string `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		HTTPPort:              "8080",
		DBDriver:              postgres.DriverPostgres,
		DBHost:                "localhost",
		DBPort:                "5432",
		DBUser:                "postgres",
		DBName:                "dronefleet",
		DBSslMode:             "disable",
		DBPath:                "dronefleet.db",
		DBMaxOpenConns:        10,
		DBMaxIdleConns:        5,
		DBTimeout:             5 * time.Second,
		BatterySampleInterval: 10 * time.Minute,
		RateLimitPerSec:       10,
		RateLimitBurst:        20,
		LogLevel:              "info",
	}
}

// LoadConfig builds the configuration. path may be empty; lookup is usually
// os.LookupEnv.
func LoadConfig(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// StoreConfig returns the connection settings for the Fleet Store.
func (c Config) StoreConfig() postgres.Config {
	return postgres.Config{
		Driver:       c.DBDriver,
		Host:         c.DBHost,
		Port:         c.DBPort,
		User:         c.DBUser,
		Password:     c.DBPassword,
		Name:         c.DBName,
		SSLMode:      c.DBSslMode,
		Path:         c.DBPath,
		MaxOpenConns: c.DBMaxOpenConns,
		MaxIdleConns: c.DBMaxIdleConns,
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"HTTP_PORT":   &c.HTTPPort,
		"DB_DRIVER":   &c.DBDriver,
		"DB_HOST":     &c.DBHost,
		"DB_PORT":     &c.DBPort,
		"DB_USER":     &c.DBUser,
		"DB_PASSWORD": &c.DBPassword,
		"DB_NAME":     &c.DBName,
		"DB_SSLMODE":  &c.DBSslMode,
		"DB_PATH":     &c.DBPath,
		"LOG_LEVEL":   &c.LogLevel,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"DB_MAX_OPEN_CONNS": &c.DBMaxOpenConns,
		"DB_MAX_IDLE_CONNS": &c.DBMaxIdleConns,
		"RATE_LIMIT_BURST":  &c.RateLimitBurst,
	}
	for key, dst := range ints {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = n
	}

	durations := map[string]*time.Duration{
		"DB_TIMEOUT":              &c.DBTimeout,
		"BATTERY_SAMPLE_INTERVAL": &c.BatterySampleInterval,
	}
	for key, dst := range durations {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = d
	}

	if v, ok := lookup("RATE_LIMIT_PER_SEC"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_PER_SEC: %w", err)
		}
		c.RateLimitPerSec = f
	}

	if v, ok := lookup("SEED_DRONES"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SEED_DRONES: %w", err)
		}
		c.SeedDrones = b
	}

	return nil
}
