// Package config loads and validates the comparison tool's configuration
// from comparison.yaml and ADDRQA_* environment variables.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	InputDirectory  string        `yaml:"input_directory" mapstructure:"input_directory"`
	OutputDirectory string        `yaml:"output_directory" mapstructure:"output_directory"`
	Metrics         MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
	Log             LogConfig     `yaml:"log" mapstructure:"log"`
}

// MetricsConfig locates the report source files. ASF and APA share one
// physical report, distinguished only by the metric column value.
type MetricsConfig struct {
	ExistingSample SourceConfig `yaml:"existing_sample" mapstructure:"existing_sample"`
	ASFAPANew      SourceConfig `yaml:"asf_apa_new" mapstructure:"asf_apa_new"`
	PSFNew         SourceConfig `yaml:"psf_new" mapstructure:"psf_new"`
	SSFNew         SourceConfig `yaml:"ssf_new" mapstructure:"ssf_new"`
}

// SourceConfig locates one report file.
type SourceConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// ConfigError reports every required key the loaded configuration is
// missing, in one error.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: missing required keys: %s", strings.Join(e.Missing, ", "))
}

// Load reads configuration from comparison.yaml (searched in . and conf/)
// and the environment. A missing file is not itself an error; Validate
// reports any required keys left unset.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("comparison")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("conf")

	// Environment
	v.SetEnvPrefix("ADDRQA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks every required key once and returns a single ConfigError
// naming all that are missing.
func (c *Config) Validate() error {
	var missing []string
	required := []struct {
		key string
		val string
	}{
		{"input_directory", c.InputDirectory},
		{"output_directory", c.OutputDirectory},
		{"metrics.existing_sample.path", c.Metrics.ExistingSample.Path},
		{"metrics.asf_apa_new.path", c.Metrics.ASFAPANew.Path},
		{"metrics.psf_new.path", c.Metrics.PSFNew.Path},
		{"metrics.ssf_new.path", c.Metrics.SSFNew.Path},
	}
	for _, r := range required {
		if r.val == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

// SourcePath resolves a configured report path: absolute paths are used
// as-is, relative paths are anchored at the input directory.
func (c *Config) SourcePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.InputDirectory == "" {
		return p
	}
	return filepath.Join(c.InputDirectory, p)
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
