// Package arweave builds and signs format 2 arweave transactions.
package arweave

import (
	"context"
	"math/big"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const DefaultURL = "https://arweave.net"

type Options struct {
	URL        string
	HTTPClient *http.Client
	Log        *zerolog.Logger
	// RewardMultiplier scales the node's quoted price as Num/Den. A zero
	// value means 1/1.
	RewardMultiplier [2]int64
}

func (o *Options) setDefaults() {
	if o.URL == "" {
		o.URL = DefaultURL
	}

	if o.RewardMultiplier[0] <= 0 || o.RewardMultiplier[1] <= 0 {
		o.RewardMultiplier = [2]int64{1, 1}
	}
}

type Arweave struct {
	wallet  *Wallet
	client  *Client
	options *Options
}

func New(wallet *Wallet, options *Options) (*Arweave, error) {
	if wallet == nil {
		return nil, errors.Wrap(ErrInvalidKey, "wallet must be set")
	}

	opts := Options{}
	if options != nil {
		opts = *options
	}
	opts.setDefaults()

	return &Arweave{
		wallet:  wallet,
		client:  NewClient(opts.URL, opts.HTTPClient, opts.Log),
		options: &opts,
	}, nil
}

func FromKeypairPath(path string, options *Options) (*Arweave, error) {
	wallet, err := LoadWallet(path)
	if err != nil {
		return nil, err
	}
	return New(wallet, options)
}

func (a *Arweave) Wallet() *Wallet {
	return a.wallet
}

func (a *Arweave) Client() *Client {
	return a.client
}

// CreateTransaction prepares an unsigned data transaction owned by the
// wallet, with anchor and reward taken from the node.
func (a *Arweave) CreateTransaction(ctx context.Context, data []byte, tags []Tag) (tx *Transaction, err error) {
	anchor, err := a.client.GetTxAnchor(ctx)
	if err != nil {
		err = errors.Wrap(err, "failed to fetch tx anchor")
		return
	}

	price, err := a.client.GetPrice(ctx, len(data))
	if err != nil {
		err = errors.Wrap(err, "failed to fetch price")
		return
	}

	reward := new(big.Int).Mul(price, big.NewInt(a.options.RewardMultiplier[0]))
	reward.Quo(reward, big.NewInt(a.options.RewardMultiplier[1]))

	if tags == nil {
		tags = []Tag{}
	}

	tx = &Transaction{
		Format:   FormatV2,
		LastTx:   anchor,
		Owner:    a.wallet.Owner(),
		Tags:     tags,
		Target:   Base64String{},
		Quantity: "0",
		Data:     data,
		DataSize: strconv.Itoa(len(data)),
		DataRoot: DataRoot(data),
		Reward:   reward.String(),
	}

	return
}

// SignTransaction sets the signature and the id derived from it.
func (a *Arweave) SignTransaction(tx *Transaction) (err error) {
	if tx == nil {
		return errors.New("transaction is nil")
	}

	if len(tx.Owner) == 0 {
		tx.Owner = a.wallet.Owner()
	}

	data, err := tx.SignatureData()
	if err != nil {
		return
	}

	signature, err := a.wallet.Sign(data)
	if err != nil {
		return
	}

	tx.Signature = signature
	tx.ID = sha256Sum(signature)

	return
}

func VerifyTransaction(tx *Transaction) (err error) {
	if len(tx.Signature) == 0 {
		return errors.Wrap(ErrInvalidSignature, "transaction is unsigned")
	}

	if Base64String(sha256Sum(tx.Signature)).String() != tx.ID.String() {
		return errors.Wrap(ErrInvalidSignature, "id does not match signature")
	}

	data, err := tx.SignatureData()
	if err != nil {
		return
	}

	return Verify(tx.Owner, data, tx.Signature)
}
