package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/deploymenttheory/go-form-composer/internal/common/errors"
	"github.com/deploymenttheory/go-form-composer/internal/common/fsutil"
	"github.com/deploymenttheory/go-form-composer/internal/common/osutil"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name used for config files and directories
	AppName = "go-form-composer"

	// EnvPrefix is the prefix for environment variables
	EnvPrefix = "FORM_COMPOSER"
)

// AppConfig holds the application configuration
type AppConfig struct {
	// Core settings
	Debug     bool   `mapstructure:"debug"`
	LogFormat string `mapstructure:"log_format"`
	LogFile   string `mapstructure:"log_file"`

	// Preview server settings
	Server struct {
		Address      string        `mapstructure:"address"`
		ReadTimeout  time.Duration `mapstructure:"read_timeout"`
		WriteTimeout time.Duration `mapstructure:"write_timeout"`
	} `mapstructure:"server"`

	// Evaluation settings
	Evaluation struct {
		Concurrency int    `mapstructure:"concurrency"` // parallel snapshots in batch runs
		Output      string `mapstructure:"output"`      // json or yaml
	} `mapstructure:"evaluation"`
}

// Global variables
var (
	// Global configuration instance
	Instance AppConfig

	// Status indicators
	ConfigLoaded bool
	ConfigFile   string

	// Ensure thread safety
	initOnce sync.Once
)

// Initialize loads the global configuration once
func Initialize(cfgFile string) error {
	var err error

	initOnce.Do(func() {
		var cfg *AppConfig
		var used string
		cfg, used, err = Load(cfgFile)
		if cfg != nil {
			Instance = *cfg
		}
		ConfigLoaded = used != ""
		ConfigFile = used
	})

	return err
}

// Reload replaces the global configuration from an explicit file
func Reload(cfgFile string) error {
	cfg, used, err := Load(cfgFile)
	if err != nil {
		return err
	}
	Instance = *cfg
	ConfigLoaded = used != ""
	ConfigFile = used
	return nil
}

// Load reads configuration from defaults, an optional file, a .env file and
// the environment. It returns the config and the file used, if any.
func Load(cfgFile string) (*AppConfig, string, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		if !fsutil.FileExists(cfgFile) {
			return nil, "", fmt.Errorf("%w: %s", errors.ErrConfigFileNotFound, cfgFile)
		}
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		addSearchPaths(v)
	}

	// A .env file in the working directory feeds the environment
	if fsutil.FileExists(".env") {
		if err := godotenv.Load(".env"); err != nil {
			return nil, "", fmt.Errorf("%w: .env: %s", errors.ErrConfigParseError, err.Error())
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	used := ""
	if readErr := v.ReadInConfig(); readErr != nil {
		if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
			return nil, "", fmt.Errorf("%w: %s", errors.ErrConfigParseError, readErr.Error())
		}
	} else {
		used = v.ConfigFileUsed()
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, "", fmt.Errorf("%w: %s", errors.ErrConfigParseError, err.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return cfg, used, nil
}

// Validate checks values viper cannot constrain
func (c *AppConfig) Validate() error {
	if c.LogFormat != "json" && c.LogFormat != "human" {
		return fmt.Errorf("%w: log_format must be json or human, got %q", errors.ErrConfigInvalid, c.LogFormat)
	}
	if c.Evaluation.Concurrency < 1 {
		return fmt.Errorf("%w: evaluation.concurrency must be at least 1", errors.ErrConfigInvalid)
	}
	if c.Evaluation.Output != "json" && c.Evaluation.Output != "yaml" {
		return fmt.Errorf("%w: evaluation.output must be json or yaml, got %q", errors.ErrConfigInvalid, c.Evaluation.Output)
	}
	return nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("log_format", "human")

	if logDir, err := fsutil.GetLogDir(AppName); err == nil && !osutil.IsRunningInPipeline() {
		v.SetDefault("log_file", filepath.Join(logDir, "composer.log"))
	} else {
		v.SetDefault("log_file", "")
	}

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("evaluation.concurrency", 4)
	v.SetDefault("evaluation.output", "json")
}

// addSearchPaths adds config search paths
func addSearchPaths(v *viper.Viper) {
	// Always check current directory first
	v.AddConfigPath(".")

	if osutil.IsDevEnvironment() {
		if configDir, err := fsutil.GetConfigDir(AppName); err == nil {
			v.AddConfigPath(configDir)
		}
		return
	}

	if osutil.IsRunningInPipeline() {
		v.AddConfigPath("/etc/" + AppName)
		return
	}

	if configDir, err := fsutil.GetConfigDir(AppName); err == nil {
		v.AddConfigPath(configDir)
	}

	if systemConfigDir, err := fsutil.GetSystemConfigDir(AppName); err == nil {
		v.AddConfigPath(systemConfigDir)
	}
}
