package arweave

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Client talks to an arweave node's http api.
type Client struct {
	rest *resty.Client
	log  *zerolog.Logger
}

func NewClient(url string, httpClient *http.Client, log *zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}

	return &Client{
		rest: resty.NewWithClient(httpClient).SetBaseURL(strings.TrimRight(url, "/")),
		log:  log,
	}
}

func (c *Client) get(ctx context.Context, path string) (body string, err error) {
	rsp, err := c.rest.R().SetContext(ctx).Get(path)
	if err != nil {
		err = errors.Wrapf(err, "arweave request %s", path)
		return
	}

	c.log.Debug().Msgf("arweave response: [%d] GET %s", rsp.StatusCode(), path)

	if rsp.StatusCode() != http.StatusOK {
		err = errors.Wrapf(ErrRequestFailed, "response code %d with body %s", rsp.StatusCode(), rsp.String())
		return
	}

	return strings.TrimSpace(rsp.String()), nil
}

// GetTxAnchor returns the anchor new transactions reference as last_tx.
func (c *Client) GetTxAnchor(ctx context.Context) (anchor Base64String, err error) {
	body, err := c.get(ctx, "/tx_anchor")
	if err != nil {
		return
	}

	return DecodeBase64(body)
}

// GetPrice returns the winston fee for storing dataSize bytes.
func (c *Client) GetPrice(ctx context.Context, dataSize int) (price *big.Int, err error) {
	body, err := c.get(ctx, fmt.Sprintf("/price/%d", dataSize))
	if err != nil {
		return
	}

	price, ok := new(big.Int).SetString(body, 10)
	if !ok {
		err = errors.Errorf("unable to parse price '%s'", body)
		return
	}

	return
}
