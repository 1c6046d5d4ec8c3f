package config

import (
	"fmt"
	"os"

	"github.com/annel0/addon-builder/internal/logging"
	"gopkg.in/yaml.v3"
)

// Значения по умолчанию
const (
	DefaultOutputDir   = "out"
	DefaultBackend     = BackendFS
	DefaultServiceName = "addon-builder"
)

// Переменные окружения, используемые как fallback
const (
	EnvConfigPath = "ADDON_CONFIG"
	EnvOutputDir  = "ADDON_OUTPUT_DIR"
	EnvLogLevel   = "ADDON_LOG_LEVEL"
)

// Backend тип хранилища артефактов
type Backend string

const (
	BackendFS     Backend = "fs"
	BackendBadger Backend = "badger"
	BackendMemory Backend = "memory"
)

// Config корневая структура конфигурации сборщика.
// Секция content описывает сам аддон декларативно.
type Config struct {
	Addon     AddonConfig     `yaml:"addon" json:"addon" jsonschema:"required"`
	Output    OutputConfig    `yaml:"output" json:"output,omitempty"`
	Logging   LoggingConfig   `yaml:"logging" json:"logging,omitempty"`
	Telemetry TelemetryConfig `yaml:"telemetry" json:"telemetry,omitempty"`
	Content   Content         `yaml:"content" json:"content,omitempty"`
}

type AddonConfig struct {
	Name        string `yaml:"name" json:"name" jsonschema:"required,description=Display name of the addon"`
	Description string `yaml:"description" json:"description,omitempty"`
	Namespace   string `yaml:"namespace" json:"namespace,omitempty" jsonschema:"description=Identifier namespace; derived from name when empty"`
	StableUUIDs bool   `yaml:"stable_uuids" json:"stable_uuids,omitempty" jsonschema:"description=Derive manifest UUIDs from the addon name"`
}

type OutputConfig struct {
	Dir        string  `yaml:"dir" json:"dir,omitempty"`
	Backend    Backend `yaml:"backend" json:"backend,omitempty" jsonschema:"enum=fs,enum=badger,enum=memory"`
	BadgerPath string  `yaml:"badger_path" json:"badger_path,omitempty"`
}

type LoggingConfig struct {
	ConsoleLevel string `yaml:"console_level" json:"console_level,omitempty"`
	FileLevel    string `yaml:"file_level" json:"file_level,omitempty"`
	Dir          string `yaml:"dir" json:"dir,omitempty"`
}

type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled" json:"enabled,omitempty"`
	ServiceName string `yaml:"service_name" json:"service_name,omitempty"`
}

// GetDir возвращает каталог вывода с приоритетом: config -> env -> default
func (o *OutputConfig) GetDir() string {
	return getStringWithEnvFallback(o.Dir, EnvOutputDir, DefaultOutputDir)
}

// GetBackend возвращает тип хранилища, по умолчанию файловая система
func (o *OutputConfig) GetBackend() (Backend, error) {
	switch o.Backend {
	case "":
		return DefaultBackend, nil
	case BackendFS, BackendBadger, BackendMemory:
		return o.Backend, nil
	default:
		return "", fmt.Errorf("unknown output backend %q", o.Backend)
	}
}

// GetBadgerPath путь к базе badger; по умолчанию рядом с каталогом вывода
func (o *OutputConfig) GetBadgerPath() string {
	if o.BadgerPath != "" {
		return o.BadgerPath
	}
	return o.GetDir() + ".badger"
}

// GetConsoleLevel уровень консольного вывода: config -> env -> INFO
func (l *LoggingConfig) GetConsoleLevel() (logging.LogLevel, error) {
	return logging.ParseLevel(getStringWithEnvFallback(l.ConsoleLevel, EnvLogLevel, ""), logging.INFO)
}

// GetFileLevel уровень файлового вывода, по умолчанию DEBUG
func (l *LoggingConfig) GetFileLevel() (logging.LogLevel, error) {
	return logging.ParseLevel(l.FileLevel, logging.DEBUG)
}

func (t *TelemetryConfig) GetServiceName() string {
	if t.ServiceName != "" {
		return t.ServiceName
	}
	return DefaultServiceName
}

// getStringWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getStringWithEnvFallback(value, envVar, def string) string {
	if value != "" {
		return value
	}
	if envVal := os.Getenv(envVar); envVal != "" {
		return envVal
	}
	return def
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV ADDON_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		if path == "" {
			return nil, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse разбирает YAML конфигурацию из памяти
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}
	if cfg.Addon.Name == "" {
		return nil, fmt.Errorf("конфигурация: addon.name обязателен")
	}
	return &cfg, nil
}
