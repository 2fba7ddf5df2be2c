package config

import (
	"fmt"
	"os"
	platformerror "simple-list/internal/platform/error"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const envPrefix = "LIST_"

// Config drives the demo programs.
type Config struct {
	LogLevel   string   `yaml:"log_level"`
	Wallet     []string `yaml:"wallet"`
	StartIndex int      `yaml:"start_index"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		Wallet:     []string{"quarter", "dime", "nickel", "penny", "dollar", "halfdollar", "quarter"},
		StartIndex: 2,
	}
}

// LoadConfig overlays the YAML file at filePath and LIST_* environment
// variables on the defaults. An empty filePath skips the file.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, platformerror.NewStackTraceError(fmt.Sprintf("failed to read config file: %v", err), platformerror.ReadConfigErrorCode)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, platformerror.NewStackTraceError(fmt.Sprintf("failed to parse YAML config: %v", err), platformerror.ParseConfigErrorCode)
		}
	}

	if err := config.LoadFromEnv(); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFromEnv applies LIST_LOG_LEVEL, LIST_WALLET (comma separated) and LIST_START_INDEX.
func (c *Config) LoadFromEnv() error {
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(envPrefix + "WALLET"); ok {
		c.Wallet = nil
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				c.Wallet = append(c.Wallet, name)
			}
		}
	}
	if v, ok := os.LookupEnv(envPrefix + "START_INDEX"); ok {
		idx, err := strconv.Atoi(v)
		if err != nil {
			return platformerror.NewStackTraceError(fmt.Sprintf("invalid %sSTART_INDEX %q", envPrefix, v), platformerror.ParseConfigErrorCode)
		}
		c.StartIndex = idx
	}
	return nil
}

func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return platformerror.NewStackTraceError(fmt.Sprintf("config validation failed: %v", err), platformerror.InvalidConfigErrorCode)
	}
	if c.StartIndex < 0 {
		return platformerror.NewStackTraceError(fmt.Sprintf("config validation failed: start_index %d is negative", c.StartIndex), platformerror.InvalidConfigErrorCode)
	}
	return nil
}
