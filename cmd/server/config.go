package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	dfltListenAddress    = ":8080"
	dfltReadTimeoutSecs  = 10
	dfltWriteTimeoutSecs = 30
	dfltMaxBodyBytes     = 1 << 20
)

// Config is the server configuration, read from an optional YAML file.
type Config struct {
	ListenAddress    string   `yaml:"listenAddress"`
	ReadTimeoutSecs  int      `yaml:"readTimeoutSecs"`
	WriteTimeoutSecs int      `yaml:"writeTimeoutSecs"`
	MaxBodyBytes     int64    `yaml:"maxBodyBytes"`
	AllowedOrigins   []string `yaml:"allowedOrigins"`
	LogPath          string   `yaml:"logPath"`
	LogLevel         string   `yaml:"logLevel"`
}

// defaultConfig returns the configuration used when no file is given.
func defaultConfig() *Config {
	return &Config{
		ListenAddress:    dfltListenAddress,
		ReadTimeoutSecs:  dfltReadTimeoutSecs,
		WriteTimeoutSecs: dfltWriteTimeoutSecs,
		MaxBodyBytes:     dfltMaxBodyBytes,
		AllowedOrigins:   []string{"*"},
		LogLevel:         "info",
	}
}

// loadConfig reads path over the defaults. An empty path yields the
// defaults.
func loadConfig(path string) (*Config, error) {
	conf := defaultConfig()
	if path == "" {
		return conf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (conf *Config) validate() error {
	if conf.ListenAddress == "" {
		return fmt.Errorf("invalid config: empty listenAddress")
	}
	if conf.ReadTimeoutSecs <= 0 || conf.WriteTimeoutSecs <= 0 {
		return fmt.Errorf("invalid config: timeouts must be positive")
	}
	if conf.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid config: maxBodyBytes must be positive")
	}
	return nil
}
