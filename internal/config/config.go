package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/annel0/pheonix/internal/logging"
	"github.com/annel0/pheonix/internal/world/block"
	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Blocks  BlocksConfig  `yaml:"blocks"`
}

type LoggingConfig struct {
	Dir          string `yaml:"dir"`
	ConsoleLevel string `yaml:"console_level"`
	FileLevel    string `yaml:"file_level"`
}

type ServerConfig struct {
	MetricsPort int `yaml:"metrics_port"`
}

type BlocksConfig struct {
	FallbackID string `yaml:"fallback_id"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Dir:          "logs",
			ConsoleLevel: "INFO",
			FileLevel:    "TRACE",
		},
		Blocks: BlocksConfig{
			FallbackID: block.DefaultFallbackID,
		},
	}
}

// GetMetricsPort возвращает Prometheus метрики порт с поддержкой fallback значений
func (s *ServerConfig) GetMetricsPort() int {
	return getPortWithEnvFallback(s.MetricsPort, "PHEONIX_METRICS_PORT", 2112)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// LoggerOptions переводит секцию logging в параметры логгера.
func (l LoggingConfig) LoggerOptions() (logging.Options, error) {
	console, err := logging.ParseLevel(l.ConsoleLevel)
	if err != nil {
		return logging.Options{}, fmt.Errorf("logging.console_level: %w", err)
	}
	file, err := logging.ParseLevel(l.FileLevel)
	if err != nil {
		return logging.Options{}, fmt.Errorf("logging.file_level: %w", err)
	}
	return logging.Options{
		Dir:          l.Dir,
		ConsoleLevel: console,
		FileLevel:    file,
	}, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if _, err := c.Logging.LoggerOptions(); err != nil {
		return err
	}
	if err := block.ValidateIdentifier(c.Blocks.FallbackID); err != nil {
		return fmt.Errorf("blocks.fallback_id: %w", err)
	}
	if c.Server.MetricsPort < 0 || c.Server.MetricsPort > 65535 {
		return fmt.Errorf("server.metrics_port: %d вне диапазона", c.Server.MetricsPort)
	}
	return nil
}

// Load читает YAML файл конфигурации поверх Default().
// Если path == "", пытается прочитать из ENV PHEONIX_CONFIG, иначе возвращает Default().
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("PHEONIX_CONFIG")
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}
