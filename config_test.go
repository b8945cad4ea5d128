package warp

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(logLevelEnv, "")

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultDreURL, config.DreURL)
	assert.Equal(t, DefaultGatewayURL, config.GatewayURL)
	assert.Equal(t, DefaultArweaveURL, config.ArweaveURL)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, 30*time.Second, config.Timeout())
	assert.Equal(t, 30*time.Second, config.HTTPClient().Timeout)

	journal, err := config.OpenJournal()
	assert.NoError(t, err)
	assert.Nil(t, journal)

	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfig_File(t *testing.T) {
	t.Setenv(logLevelEnv, "")

	dir := t.TempDir()
	path := filepath.Join(dir, "warp.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
dre_url = "https://dre-5.warp.cc"
wallet_path = "/secrets/jwk.json"
contract_address = "yS-CVbsg79p2sSrVAJZyRgE_d90BrxDjpAleRB-ZfXs"
journal_path = "`+filepath.Join(dir, "journal.db")+`"
log_level = "debug"
timeout_seconds = 5
`), 0600))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://dre-5.warp.cc", config.DreURL)
	assert.Equal(t, DefaultGatewayURL, config.GatewayURL)
	assert.Equal(t, "/secrets/jwk.json", config.WalletPath)
	assert.Equal(t, "yS-CVbsg79p2sSrVAJZyRgE_d90BrxDjpAleRB-ZfXs", config.ContractAddress)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, 5*time.Second, config.Timeout())

	journal, err := config.OpenJournal()
	require.NoError(t, err)
	require.NotNil(t, journal)
	assert.NoError(t, journal.Close())
}

func TestLoadConfig_EnvLogLevel(t *testing.T) {
	t.Setenv(logLevelEnv, "warn")

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "warn", config.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warp.toml")
	require.NoError(t, os.WriteFile(path, []byte(`dre_url = `), 0600))

	_, err := LoadConfig(path)
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestSetLogLevel(t *testing.T) {
	assert.NoError(t, SetLogLevel("debug"))
	assert.ErrorIs(t, SetLogLevel("loud"), ErrArgument)
	assert.NoError(t, SetLogLevel("info"))
}
