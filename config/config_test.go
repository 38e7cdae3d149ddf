package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.Equal(t, "https://testnet1.neo.coz.io:443", cfg.Chain.NeoRPCURL)
	assert.Equal(t, "https://eth.blockscout.com/api", cfg.Chain.ExplorerAPIURL)
	assert.Empty(t, cfg.Chain.ExplorerAPIKey)
	assert.Equal(t, "ethereum", cfg.Chain.EVMChainName)
	assert.Equal(t, 15*time.Second, cfg.Chain.Timeout)

	assert.Equal(t, 30*time.Second, cfg.Agent.Timeout)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 0, cfg.Redis.DB)

	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 60*time.Second, cfg.Cache.TTL)
	assert.True(t, cfg.Scan.LiveEnabled)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 9090
  mode: "release"
chain:
  neo_rpc_url: "https://mainnet1.neo.coz.io:443"
  explorer_api_url: "https://base.blockscout.com/api"
  explorer_api_key: "XYZ123"
  evm_chain_name: "base"
  timeout: "5s"
agent:
  base_url: "https://agent.example.com"
  timeout: "45s"
redis:
  host: "redis.example.com"
  port: 6380
  password: "redispwd"
  db: 2
cache:
  enabled: true
  ttl: "30s"
scan:
  live_enabled: false
log:
  level: "debug"
  pretty: true
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)

	assert.Equal(t, "https://mainnet1.neo.coz.io:443", cfg.Chain.NeoRPCURL)
	assert.Equal(t, "https://base.blockscout.com/api", cfg.Chain.ExplorerAPIURL)
	assert.Equal(t, "XYZ123", cfg.Chain.ExplorerAPIKey)
	assert.Equal(t, "base", cfg.Chain.EVMChainName)
	assert.Equal(t, 5*time.Second, cfg.Chain.Timeout)

	assert.Equal(t, "https://agent.example.com", cfg.Agent.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Agent.Timeout)

	assert.Equal(t, "redis.example.com", cfg.Redis.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, "redispwd", cfg.Redis.Password)
	assert.Equal(t, 2, cfg.Redis.DB)

	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.False(t, cfg.Scan.LiveEnabled)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverride(t *testing.T) {
	// Environment variables should override defaults.
	t.Setenv("WG_SERVER_PORT", "3000")
	t.Setenv("WG_CHAIN_NEO_RPC_URL", "https://rpc.example.org:10332")
	t.Setenv("WG_AGENT_BASE_URL", "https://agent.env.example.com")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "https://rpc.example.org:10332", cfg.Chain.NeoRPCURL)
	assert.Equal(t, "https://agent.env.example.com", cfg.Agent.BaseURL)
}

func TestRedis_Addr(t *testing.T) {
	r := Redis{
		Host: "redis.local",
		Port: 6380,
	}

	assert.Equal(t, "redis.local:6380", r.Addr())
}
