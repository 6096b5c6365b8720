package config

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	InMemoryEngine = "in_memory"

	configPathEnv = "MULTIMAP_CONFIG_PATH"
)

type AppConfig struct {
	EngineConfig  EngineConfig  `yaml:"engine"`
	LoggingConfig LoggingConfig `yaml:"logging"`
	ConsoleConfig ConsoleConfig `yaml:"console"`
}

type EngineConfig struct {
	Type            string `yaml:"type" env:"MULTIMAP_ENGINE_TYPE" env-default:"in_memory"`
	StartSize       int    `yaml:"start_size" env:"MULTIMAP_ENGINE_START_SIZE" env-default:"1000"`
	PartitionsCount int    `yaml:"partitions_count" env:"MULTIMAP_ENGINE_PARTITIONS_COUNT" env-default:"0"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"MULTIMAP_LOGGING_LEVEL" env-default:"info"`
	Output string `yaml:"output" env:"MULTIMAP_LOGGING_OUTPUT"`
}

type ConsoleConfig struct {
	Prompt         string `yaml:"prompt" env:"MULTIMAP_CONSOLE_PROMPT" env-default:"> "`
	MaxLineSize    string `yaml:"max_line_size" env:"MULTIMAP_CONSOLE_MAX_LINE_SIZE" env-default:"4KB"`
	UnsortedOutput bool   `yaml:"unsorted_output" env:"MULTIMAP_CONSOLE_UNSORTED_OUTPUT"`
}

// Load reads the file named by MULTIMAP_CONFIG_PATH, or the environment alone when it is unset.
func Load() *AppConfig {
	cfg, err := Read(os.Getenv(configPathEnv))
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}

func Read(configPath string) (*AppConfig, error) {
	var cfg AppConfig

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read config from env: %w", err)
		}
	} else {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}

		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *AppConfig) error {
	if cfg.EngineConfig.Type != InMemoryEngine {
		return fmt.Errorf("unknown engine type: %s", cfg.EngineConfig.Type)
	}
	if cfg.EngineConfig.PartitionsCount < 0 {
		return fmt.Errorf("partitions_count must not be negative: %d", cfg.EngineConfig.PartitionsCount)
	}
	if _, err := ParseSizeInBytes(cfg.ConsoleConfig.MaxLineSize); err != nil {
		return err
	}
	return nil
}

func ParseSizeInBytes(val string) (int64, error) {
	rxp := regexp.MustCompile(`^(\d+)(b|kb|mb)$`)
	matches := rxp.FindStringSubmatch(strings.ToLower(val))

	if len(matches) != 3 {
		return 0, fmt.Errorf("unknown format of size in bytes: %s", val)
	}

	size, err := strconv.Atoi(matches[1])
	var sizeInBytes int64
	if err != nil {
		return 0, fmt.Errorf("cannot parse size in bytes: %s", val)
	}

	switch matches[2] {
	case "b":
		sizeInBytes = int64(size)
	case "kb":
		sizeInBytes = int64(size) << 10
	case "mb":
		sizeInBytes = int64(size) << 20
	default:
		return 0, fmt.Errorf("unknown dimension of size in bytes: %s", val)
	}

	return sizeInBytes, nil
}
