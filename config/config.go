package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jrh3k5/checkwriter/check"
)

type Config struct {
	DataFile            *string     `yaml:"data_file"`
	Demo                bool        `yaml:"demo"`
	LogLevel            *string     `yaml:"log_level"`
	VerificationBaseURL string      `yaml:"verification_base_url"`
	YNAB                *YNABConfig `yaml:"ynab"`
}

type YNABConfig struct {
	BudgetName string `yaml:"budget_name"`
	// Accounts maps the name of a bank account to the name of the YNAB account its checks are recorded in.
	Accounts map[string]string `yaml:"accounts"`
}

// Read reads the configuration in the given file. A missing file yields the default configuration.
func Read(file string) (*Config, error) {
	fileBytes, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", file, err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(fileBytes, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML in file '%s': %w", file, err)
	}

	return config, nil
}

func (c *Config) GetDataFile() string {
	if c.DataFile == nil {
		return "checks.yaml"
	}

	return *c.DataFile
}

func (c *Config) GetLogLevel() string {
	if c.LogLevel == nil {
		return "info"
	}

	return *c.LogLevel
}

// Capabilities returns what the session may do. Demo sessions are read-only.
func (c *Config) Capabilities() check.Capabilities {
	return check.Capabilities{CanWrite: !c.Demo}
}
