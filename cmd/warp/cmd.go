package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	. "github.com/alexdcox/warp-go"
	"github.com/alexdcox/warp-go/arweave"
	"github.com/alexdcox/warp-go/rpcclient"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var statusCommand = &cli.Command{
	Name:  "status",
	Usage: "Show the DRE node manifest, worker config and queues",
	Action: func(c *cli.Context) error {
		return withDre(c, func(dre *rpcclient.DreClient) (any, error) {
			return dre.GetStatus(c.Context)
		})
	},
}

var contractCommand = &cli.Command{
	Name:  "contract",
	Usage: "Show the evaluated state of a contract, optionally running a query",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "id", Usage: "Contract tx id", Required: true},
		&cli.StringSliceFlag{Name: "query", Usage: "Extra query parameter as key=value, may be repeated"},
	},
	Action: func(c *cli.Context) error {
		query, err := parseQuery(c.StringSlice("query"))
		if err != nil {
			return err
		}

		return withDre(c, func(dre *rpcclient.DreClient) (any, error) {
			if len(query) == 0 {
				return dre.GetContract(c.Context, c.String("id"))
			}
			return dre.GetContractWithQuery(c.Context, c.String("id"), query)
		})
	},
}

var cachedCommand = &cli.Command{
	Name:  "cached",
	Usage: "List the contracts cached by the DRE node",
	Action: func(c *cli.Context) error {
		return withDre(c, func(dre *rpcclient.DreClient) (any, error) {
			return dre.GetCached(c.Context)
		})
	},
}

var blacklistCommand = &cli.Command{
	Name:  "blacklist",
	Usage: "List blacklisted contracts and their failure counts",
	Action: func(c *cli.Context) error {
		return withDre(c, func(dre *rpcclient.DreClient) (any, error) {
			return dre.GetBlacklist(c.Context)
		})
	},
}

var errorsCommand = &cli.Command{
	Name:  "errors",
	Usage: "List evaluation errors recorded by the DRE node",
	Action: func(c *cli.Context) error {
		return withDre(c, func(dre *rpcclient.DreClient) (any, error) {
			return dre.GetErrors(c.Context)
		})
	},
}

var interactCommand = &cli.Command{
	Name:  "interact",
	Usage: "Sign an interaction with a contract and register it with the sequencer",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "contract", Usage: "Contract tx id (defaults to contract_address from config)"},
		&cli.StringFlag{Name: "input", Usage: "Interaction input json", Required: true},
		&cli.StringFlag{Name: "wallet", Usage: "Path to the arweave jwk keyfile (defaults to wallet_path from config)"},
	},
	Action: func(c *cli.Context) (err error) {
		contract := firstNonEmpty(c.String("contract"), config.ContractAddress)
		walletPath := firstNonEmpty(c.String("wallet"), config.WalletPath)
		if walletPath == "" {
			return errors.Wrap(ErrArgument, "a wallet keyfile is required")
		}

		input := json.RawMessage(c.String("input"))
		if !json.Valid(input) {
			return errors.Wrap(ErrArgument, "input is not valid json")
		}

		httpClient := newHttpClient(config)

		ledger, err := arweave.FromKeypairPath(walletPath, &arweave.Options{
			URL:        config.ArweaveURL,
			HTTPClient: httpClient,
			Log:        log,
		})
		if err != nil {
			return
		}

		journal, err := config.OpenJournal()
		if err != nil {
			return
		}
		if journal != nil {
			defer journal.Close()
		}

		interactor, err := rpcclient.NewInteractor(&rpcclient.InteractorOptions{
			URL:             config.GatewayURL,
			HTTPClient:      httpClient,
			ContractAddress: contract,
			Journal:         journal,
		}, ledger)
		if err != nil {
			return
		}

		log.Info().Msgf("submitting interaction to %s from %s", contract, ledger.Wallet().Address())

		rsp, err := interactor.Interact(c.Context, input)
		if err != nil {
			return
		}

		return printJson(c.App.Writer, rsp)
	},
}

var historyCommand = &cli.Command{
	Name:  "history",
	Usage: "List interactions recorded in the local journal",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "contract", Usage: "Only show interactions with this contract"},
		&cli.IntFlag{Name: "limit", Usage: "Maximum number of interactions to show", Value: 20},
	},
	Action: func(c *cli.Context) (err error) {
		journal, err := config.OpenJournal()
		if err != nil {
			return
		}
		if journal == nil {
			return errors.Wrap(ErrArgument, "no journal configured, set journal_path or --journal")
		}
		defer journal.Close()

		records, err := journal.ListInteractions(c.String("contract"), c.Int("limit"))
		if err != nil {
			return
		}

		return printJson(c.App.Writer, records)
	},
}

func withDre(c *cli.Context, call func(dre *rpcclient.DreClient) (any, error)) error {
	dre, err := rpcclient.NewDreClient(&rpcclient.DreOptions{
		URL:        config.DreURL,
		HTTPClient: newHttpClient(config),
	})
	if err != nil {
		return err
	}

	out, err := call(dre)
	if err != nil {
		return err
	}

	return printJson(c.App.Writer, out)
}

func parseQuery(pairs []string) (query map[string]string, err error) {
	query = make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			err = errors.Wrapf(ErrArgument, "query '%s' is not key=value", pair)
			return
		}
		query[k] = v
	}
	return
}

func printJson(w io.Writer, v any) error {
	j, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	_, err = fmt.Fprintln(w, string(j))
	return errors.WithStack(err)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
