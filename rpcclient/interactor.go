package rpcclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	. "github.com/alexdcox/warp-go"
	"github.com/alexdcox/warp-go/arweave"
	"github.com/pkg/errors"
)

// Ledger builds and signs the transaction an interaction is carried in.
// *arweave.Arweave satisfies it.
type Ledger interface {
	CreateTransaction(ctx context.Context, data []byte, tags []arweave.Tag) (*arweave.Transaction, error)
	SignTransaction(tx *arweave.Transaction) error
}

var _ Ledger = &arweave.Arweave{}

// interactionData is the placeholder payload; the input travels in the tags.
var interactionData = []byte{1}

type InteractorOptions struct {
	URL             string
	HTTPClient      *http.Client
	ContractAddress string
	// Journal, when set, records every interaction the sequencer accepts.
	Journal         Journal

	// MaxResponseBytes caps a response body, 64MiB when zero.
	MaxResponseBytes int64
}

func (o InteractorOptions) withDefaults() InteractorOptions {
	if o.URL == "" {
		o.URL = DefaultGatewayURL
	}
	return o
}

type Interactor struct {
	rpc             *rpcClient
	ledger          Ledger
	contractAddress string
	journal         Journal
}

func NewInteractor(options *InteractorOptions, ledger Ledger) (interactor *Interactor, err error) {
	opts := InteractorOptions{}
	if options != nil {
		opts = *options
	}

	if opts.ContractAddress == "" {
		err = errors.Wrap(ErrArgument, "contract address must be set")
		return
	}

	if ledger == nil {
		err = errors.Wrap(ErrArgument, "ledger must be set")
		return
	}

	opts = opts.withDefaults()

	rpc, err := newRpcClient(opts.URL, opts.HTTPClient, opts.MaxResponseBytes)
	if err != nil {
		return
	}

	interactor = &Interactor{
		rpc:             rpc,
		ledger:          ledger,
		contractAddress: opts.ContractAddress,
		journal:         opts.Journal,
	}
	return
}

func (i *Interactor) ContractAddress() string {
	return i.contractAddress
}

func (i *Interactor) Ledger() Ledger {
	return i.ledger
}

// Interact wraps input in a signed SmartWeave interaction and registers it
// with the sequencer.
func (i *Interactor) Interact(ctx context.Context, input any) (out *InteractionResponse, err error) {
	inputJson, err := EncodeInput(input)
	if err != nil {
		return
	}

	tx, err := i.ledger.CreateTransaction(ctx, interactionData, i.CreateTags(inputJson))
	if err != nil {
		err = errors.Wrapf(err, "could not create arweave transaction with input %s", inputJson)
		return
	}

	if err = i.ledger.SignTransaction(tx); err != nil {
		err = errors.Wrap(err, "could not sign arweave transaction")
		return
	}

	out = &InteractionResponse{}
	if err = i.rpc.post(ctx, sequencerRegisterPath, tx, out); err != nil {
		out = nil
		err = errors.Wrap(err, "could not register with warp sequencer")
		return
	}

	log.Debug().Msgf("interaction %s registered for contract %s", out.ID, i.contractAddress)

	if i.journal != nil {
		record := NewInteractionRecord(i.contractAddress, inputJson, out)
		if journalErr := i.journal.AddInteraction(record); journalErr != nil {
			log.Warn().Msgf("failed to journal interaction %s: %+v", out.ID, journalErr)
		}
	}

	return
}

// CreateTags returns the five tags identifying a Warp interaction, in the
// order the sequencer expects.
func (i *Interactor) CreateTags(input string) []arweave.Tag {
	return []arweave.Tag{
		arweave.NewTag(TagAppName, SmartWeaveAction),
		arweave.NewTag(TagAppVersion, AppVersion),
		arweave.NewTag(TagSdk, SdkName),
		arweave.NewTag(TagContractTxId, i.contractAddress),
		arweave.NewTag(TagInput, input),
	}
}

// EncodeInput renders input as compact json without html escaping. Raw json
// ([]byte or json.RawMessage) is validated and compacted.
func EncodeInput(input any) (string, error) {
	if raw, ok := input.([]byte); ok {
		input = json.RawMessage(raw)
	}

	if raw, ok := input.(json.RawMessage); ok && !json.Valid(raw) {
		return "", errors.Wrap(ErrArgument, "input is not valid json")
	}

	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(input); err != nil {
		return "", errors.Wrap(ErrArgument, err.Error())
	}

	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
