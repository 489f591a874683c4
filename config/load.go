package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable that overrides a config key, e.g. POLYPULSE_DATA_SOURCE_TIMEOUT
const EnvPrefix = "POLYPULSE"

// Load reads the configuration in increasing order of precedence from the defaults, the given TOML file,
// the given .env file and the environment. Empty paths are skipped and a missing .env file is not an error.
func Load(v *viper.Viper, file string, envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, errors.Wrapf(err, "failed to load env file %s", envFile)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultConfig())

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "failed to read config file %s", file)
		}
	}

	cfg := DefaultConfig()
	// configured chains replace the defaults instead of being merged into them
	if v.IsSet("chain") {
		cfg.Chains = nil
	}

	if err := v.Unmarshal(&cfg, AddDecodeHooks); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}

	if err := cfg.ValidateBasic(); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// setDefaults registers the scalar keys so that environment variables can override them
func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)
	v.SetDefault("data_source.source", string(cfg.DataSource.Source))
	v.SetDefault("data_source.timeout", cfg.DataSource.Timeout)
	v.SetDefault("data_source.auto_fallback", cfg.DataSource.AutoFallback)
	v.SetDefault("default_chain_id", cfg.DefaultChainID)
	v.SetDefault("voter", "")
	v.SetDefault("max_concurrent_reads", cfg.MaxConcurrentReads)
	v.SetDefault("index_http_timeout", cfg.IndexTimeout)
	v.SetDefault("gateway.listen_addr", cfg.Gateway.ListenAddr)
	v.SetDefault("gateway.read_timeout", cfg.Gateway.ReadTimeout)
	v.SetDefault("gateway.write_timeout", cfg.Gateway.WriteTimeout)
	v.SetDefault("gateway.metrics", cfg.Gateway.Metrics)
}
