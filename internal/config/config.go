package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// AppName is the config file base name and the env var prefix source.
	AppName = "careerfit"

	// EnvPrefix is prepended to every environment override, e.g.
	// CAREERFIT_LOG_LEVEL for log.level.
	EnvPrefix = "CAREERFIT"
)

// Config keys.
const (
	KeyCatalog      = "catalog"
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
	KeyLogFile      = "log.file"
	KeyOutputFormat = "output.format"
	KeyOutputDir    = "output.dir"
)

// Config is the resolved runtime configuration.
type Config struct {
	// Catalog is an optional path to a question catalog JSON document. Empty
	// means the built-in catalog.
	Catalog string    `mapstructure:"catalog"`
	Log     LogConfig `mapstructure:"log"`
	Output  Output    `mapstructure:"output"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
	File   string `mapstructure:"file"`
}

type Output struct {
	Format string `mapstructure:"format"` // text, markdown or json
	Dir    string `mapstructure:"dir"`    // where saved reports are written
}

var (
	logLevels     = []string{"debug", "info", "warn", "error"}
	logFormats    = []string{"console", "json"}
	outputFormats = []string{"text", "markdown", "json"}
)

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyCatalog, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyOutputFormat, "text")
	v.SetDefault(KeyOutputDir, ".")
}

// Load resolves configuration from defaults, an optional config file, a
// .env file in the working directory, CAREERFIT_* environment variables and
// any flags already bound to v. cfgFile may be empty, in which case
// careerfit.yaml is looked up in the working directory and skipped if absent.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadDotEnv loads path into the process environment when it exists.
// Variables already set are left alone.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Output.Dir = strings.TrimSpace(c.Output.Dir)
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []string
	if !slices.Contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Sprintf("log.level %q must be one of %s", c.Log.Level, strings.Join(logLevels, ", ")))
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		errs = append(errs, fmt.Sprintf("log.format %q must be one of %s", c.Log.Format, strings.Join(logFormats, ", ")))
	}
	if !slices.Contains(outputFormats, c.Output.Format) {
		errs = append(errs, fmt.Sprintf("output.format %q must be one of %s", c.Output.Format, strings.Join(outputFormats, ", ")))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
