package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/harborwatch/route-risk/internal/monitoring"
)

// Config holds the full application configuration.
type Config struct {
	Store      StoreConfig              `yaml:"store" mapstructure:"store"`
	Assessor   AssessorConfig           `yaml:"assessor" mapstructure:"assessor"`
	OpenAI     OpenAIConfig             `yaml:"openai" mapstructure:"openai"`
	Anthropic  AnthropicConfig          `yaml:"anthropic" mapstructure:"anthropic"`
	Weather    WeatherConfig            `yaml:"weather" mapstructure:"weather"`
	Hazards    HazardsConfig            `yaml:"hazards" mapstructure:"hazards"`
	Memo       MemoConfig               `yaml:"memo" mapstructure:"memo"`
	Server     ServerConfig             `yaml:"server" mapstructure:"server"`
	Log        LogConfig                `yaml:"log" mapstructure:"log"`
	Alerting   monitoring.AlerterConfig `yaml:"alerting" mapstructure:"alerting"`
	Monitoring monitoring.CheckerConfig `yaml:"monitoring" mapstructure:"monitoring"`
}

// StoreConfig configures the audit log database.
type StoreConfig struct {
	Path          string `yaml:"path" mapstructure:"path"`
	RetentionDays int    `yaml:"retention_days" mapstructure:"retention_days"`
}

// AssessorConfig selects and tunes the external risk assessor.
type AssessorConfig struct {
	// Provider is one of "openai", "grok", "anthropic" or "none".
	Provider         string `yaml:"provider" mapstructure:"provider"`
	TimeoutSecs      int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries       int    `yaml:"max_retries" mapstructure:"max_retries"`
	FailureThreshold int    `yaml:"failure_threshold" mapstructure:"failure_threshold"`
	ResetTimeoutSecs int    `yaml:"reset_timeout_secs" mapstructure:"reset_timeout_secs"`
}

// OpenAIConfig holds OpenAI-compatible chat completion settings. The same
// client speaks to the xAI endpoint when the provider is "grok".
type OpenAIConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	Model   string `yaml:"model" mapstructure:"model"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key   string `yaml:"key" mapstructure:"key"`
	Model string `yaml:"model" mapstructure:"model"`
}

// WeatherConfig configures the optional marine forecast lookup.
type WeatherConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// HazardsConfig points at an optional hazard rules override file.
type HazardsConfig struct {
	RulesPath string `yaml:"rules_path" mapstructure:"rules_path"`
}

// MemoConfig configures the in-memory response memo.
type MemoConfig struct {
	TTLMinutes int `yaml:"ttl_minutes" mapstructure:"ttl_minutes"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	RateLimitRPS   float64  `yaml:"rate_limit_rps" mapstructure:"rate_limit_rps"`
	RateLimitBurst int      `yaml:"rate_limit_burst" mapstructure:"rate_limit_burst"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Validate checks that the configuration is usable for the given mode
// ("serve" or "assess"). All problems are reported at once.
func (c *Config) Validate(mode string) error {
	var problems []string

	switch mode {
	case "serve":
		if c.Server.Port <= 0 {
			problems = append(problems, "server.port must be > 0")
		}
		if c.Server.RateLimitRPS < 0 {
			problems = append(problems, "server.rate_limit_rps must be >= 0")
		}
	case "assess":
		// No server settings needed for one-shot assessments.
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	switch c.Assessor.Provider {
	case "openai", "grok":
		if c.OpenAI.Key == "" {
			problems = append(problems, "openai.key is required for provider "+c.Assessor.Provider)
		}
	case "anthropic":
		if c.Anthropic.Key == "" {
			problems = append(problems, "anthropic.key is required for provider anthropic")
		}
	case "none", "":
		// Fallback-only operation.
	default:
		problems = append(problems, "assessor.provider must be one of openai, grok, anthropic, none")
	}

	if c.Memo.TTLMinutes < 0 {
		problems = append(problems, "memo.ttl_minutes must be >= 0")
	}
	if c.Store.RetentionDays < 0 {
		problems = append(problems, "store.retention_days must be >= 0")
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// Load reads configuration from an optional YAML file and the environment.
// An empty path searches for config.yaml in the working directory; an explicit
// path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Environment
	v.SetEnvPrefix("ROUTERISK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.path", "route-risk.db")
	v.SetDefault("store.retention_days", 90)
	v.SetDefault("assessor.provider", "openai")
	v.SetDefault("assessor.timeout_secs", 45)
	v.SetDefault("assessor.max_retries", 3)
	v.SetDefault("assessor.failure_threshold", 5)
	v.SetDefault("assessor.reset_timeout_secs", 30)
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("weather.enabled", false)
	v.SetDefault("weather.base_url", "https://marine-api.open-meteo.com/v1")
	v.SetDefault("memo.ttl_minutes", 60)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_limit_rps", 10)
	v.SetDefault("server.rate_limit_burst", 20)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("alerting.fallback_rate_threshold", 0.25)
	v.SetDefault("alerting.high_risk_threshold", 9)
	v.SetDefault("monitoring.check_interval_secs", 300)
	v.SetDefault("monitoring.lookback_window_hours", 24)

	// Read config file (optional when searching; viper reports a missing
	// explicit file as a path error, which is not swallowed here)
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
