package warp

import (
	"net/http"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	DefaultDreURL     = "https://dre-1.warp.cc"
	DefaultGatewayURL = "https://d1o5nlqr4okus2.cloudfront.net/gateway"
	DefaultArweaveURL = "https://arweave.net"

	defaultTimeoutSeconds = 30
	logLevelEnv           = "WARP_LOG_LEVEL"
)

type Config struct {
	DreURL          string `toml:"dre_url"`
	GatewayURL      string `toml:"gateway_url"`
	ArweaveURL      string `toml:"arweave_url"`
	WalletPath      string `toml:"wallet_path"`
	ContractAddress string `toml:"contract_address"`
	JournalPath     string `toml:"journal_path"`
	LogLevel        string `toml:"log_level"`
	TimeoutSeconds  int    `toml:"timeout_seconds"`
}

func DefaultConfig() *Config {
	c := &Config{}
	c.setDefaults()
	return c
}

// LoadConfig reads a toml file over the defaults. An empty path yields the
// defaults alone. WARP_LOG_LEVEL, when set, overrides the file's log level.
func LoadConfig(path string) (config *Config, err error) {
	config = &Config{}

	if path != "" {
		log.Info().Msgf("loading config file: %s", path)

		if _, err = toml.DecodeFile(path, config); err != nil {
			err = errors.Wrapf(err, "failed to decode toml from config file: %s", path)
			return
		}
	}

	if envLogLevel := os.Getenv(logLevelEnv); envLogLevel != "" {
		config.LogLevel = envLogLevel
	}

	config.setDefaults()

	return
}

func (c *Config) setDefaults() {
	if c.DreURL == "" {
		c.DreURL = DefaultDreURL
	}

	if c.GatewayURL == "" {
		c.GatewayURL = DefaultGatewayURL
	}

	if c.ArweaveURL == "" {
		c.ArweaveURL = DefaultArweaveURL
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaultTimeoutSeconds
	}
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// HTTPClient builds the client shared by the DRE, sequencer and arweave
// node calls.
func (c *Config) HTTPClient() *http.Client {
	return &http.Client{Timeout: c.Timeout()}
}

// OpenJournal returns nil, nil when no journal path is configured.
func (c *Config) OpenJournal() (Journal, error) {
	if c.JournalPath == "" {
		return nil, nil
	}

	journal, err := NewSqliteJournal(c.JournalPath)
	if err != nil {
		return nil, err
	}

	return journal, nil
}
