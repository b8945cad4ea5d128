package main

import (
	"net/http"
	"os"

	. "github.com/alexdcox/warp-go"
	"github.com/urfave/cli/v2"
)

var log = Log()

var config *Config

// newHttpClient is swapped out in tests.
var newHttpClient = func(config *Config) *http.Client {
	return config.HTTPClient()
}

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to a toml config file",
	}
	dreUrlFlag = &cli.StringFlag{
		Name:  "dre-url",
		Usage: "Override the DRE node url",
	}
	gatewayUrlFlag = &cli.StringFlag{
		Name:  "gateway-url",
		Usage: "Override the Warp gateway url",
	}
	arweaveUrlFlag = &cli.StringFlag{
		Name:  "arweave-url",
		Usage: "Override the arweave node url",
	}
	journalFlag = &cli.StringFlag{
		Name:  "journal",
		Usage: "Path to the sqlite interaction journal",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "loglevel",
		Usage: "Set the log level (trace|debug|info|warn|error|fatal) Can also be set via the WARP_LOG_LEVEL environment variable",
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "warp",
		Usage: "query Warp DRE nodes and submit SmartWeave interactions",
		Flags: []cli.Flag{
			configFlag,
			dreUrlFlag,
			gatewayUrlFlag,
			arweaveUrlFlag,
			journalFlag,
			logLevelFlag,
		},
		Before: loadConfig,
		Commands: []*cli.Command{
			statusCommand,
			contractCommand,
			cachedCommand,
			blacklistCommand,
			errorsCommand,
			interactCommand,
			historyCommand,
		},
	}
}

func loadConfig(c *cli.Context) (err error) {
	config, err = LoadConfig(c.String(configFlag.Name))
	if err != nil {
		return
	}

	for _, override := range []struct {
		flag   *cli.StringFlag
		target *string
	}{
		{dreUrlFlag, &config.DreURL},
		{gatewayUrlFlag, &config.GatewayURL},
		{arweaveUrlFlag, &config.ArweaveURL},
		{journalFlag, &config.JournalPath},
		{logLevelFlag, &config.LogLevel},
	} {
		if v := c.String(override.flag.Name); v != "" {
			*override.target = v
		}
	}

	if err = SetLogLevel(config.LogLevel); err != nil {
		return
	}

	log.Debug().Msgf("using dre %s, gateway %s, arweave %s", config.DreURL, config.GatewayURL, config.ArweaveURL)
	return
}

// logError reports err, with its stack at debug level when it carries one.
func logError(err error) {
	log.Error().Msg(err.Error())
	if stack := StackTracerMessage(err); stack != "" {
		log.Debug().Msgf("stack:\n%s", stack)
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logError(err)
		os.Exit(1)
	}
}
