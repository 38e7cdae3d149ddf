package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server Server `mapstructure:"server"`
	Chain  Chain  `mapstructure:"chain"`
	Agent  Agent  `mapstructure:"agent"`
	Redis  Redis  `mapstructure:"redis"`
	Cache  Cache  `mapstructure:"cache"`
	Scan   Scan   `mapstructure:"scan"`
	Log    Log    `mapstructure:"log"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// Chain holds upstream blockchain endpoints. Both have hardcoded public
// fallbacks so the service runs without any configuration.
type Chain struct {
	NeoRPCURL      string        `mapstructure:"neo_rpc_url"`
	ExplorerAPIURL string        `mapstructure:"explorer_api_url"`
	ExplorerAPIKey string        `mapstructure:"explorer_api_key"` // optional, raises rate limits
	EVMChainName   string        `mapstructure:"evm_chain_name"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// Agent holds the hosted SpoonOS agent endpoints (opaque collaborator).
type Agent struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type Redis struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r Redis) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Cache controls the short-lived wallet data cache. Disabled means every
// request recomputes from the upstream chain.
type Cache struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// Scan controls live chain scanning. When disabled, only the demo dataset is
// served and unknown addresses return 404.
type Scan struct {
	LiveEnabled bool `mapstructure:"live_enabled"`
}

type Log struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WG_ (Wallet Guardian).
// Nested keys use underscore: WG_CHAIN_NEO_RPC_URL, WG_AGENT_BASE_URL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("chain.neo_rpc_url", "https://testnet1.neo.coz.io:443")
	v.SetDefault("chain.explorer_api_url", "https://eth.blockscout.com/api")
	v.SetDefault("chain.explorer_api_key", "")
	v.SetDefault("chain.evm_chain_name", "ethereum")
	v.SetDefault("chain.timeout", "15s")
	v.SetDefault("agent.base_url", "http://localhost:8545")
	v.SetDefault("agent.timeout", "30s")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.ttl", "60s")
	v.SetDefault("scan.live_enabled", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: WG_CHAIN_NEO_RPC_URL -> chain.neo_rpc_url
	v.SetEnvPrefix("WG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional, env vars can suffice
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
