package rpcclient

import (
	"context"
	"net/http"
	"net/url"

	. "github.com/alexdcox/warp-go"
	"github.com/pkg/errors"
)

type DreOptions struct {
	URL        string
	HTTPClient *http.Client

	// MaxResponseBytes caps a response body, 64MiB when zero.
	MaxResponseBytes int64
}

func (o DreOptions) withDefaults() DreOptions {
	if o.URL == "" {
		o.URL = DefaultDreURL
	}
	return o
}

// DreClient queries a DRE node for evaluated contract state and node
// bookkeeping.
type DreClient struct {
	rpc *rpcClient
}

func NewDreClient(options *DreOptions) (client *DreClient, err error) {
	opts := DreOptions{}
	if options != nil {
		opts = *options
	}
	opts = opts.withDefaults()

	rpc, err := newRpcClient(opts.URL, opts.HTTPClient, opts.MaxResponseBytes)
	if err != nil {
		return
	}

	client = &DreClient{rpc: rpc}
	return
}

func (c *DreClient) GetStatus(ctx context.Context) (out *Status, err error) {
	out = &Status{}
	err = c.rpc.get(ctx, "/status", nil, out)
	return
}

func (c *DreClient) GetContract(ctx context.Context, contractId string) (out *ContractRoot, err error) {
	if contractId == "" {
		err = errors.Wrap(ErrArgument, "contract id must be set")
		return
	}

	out = &ContractRoot{}
	err = c.rpc.get(ctx, "/contract", url.Values{"id": {contractId}}, out)
	return
}

// GetContractWithQuery passes query through as url parameters (for example
// "query" holding a json path). The id parameter always carries contractId.
func (c *DreClient) GetContractWithQuery(ctx context.Context, contractId string, query map[string]string) (out *ContractWithQuery, err error) {
	if contractId == "" {
		err = errors.Wrap(ErrArgument, "contract id must be set")
		return
	}

	params := url.Values{}
	for k, v := range query {
		params.Set(k, v)
	}
	params.Set("id", contractId)

	out = &ContractWithQuery{}
	err = c.rpc.get(ctx, "/contract", params, out)
	return
}

func (c *DreClient) GetCached(ctx context.Context) (out *Cached, err error) {
	out = &Cached{}
	err = c.rpc.get(ctx, "/cached", nil, out)
	return
}

func (c *DreClient) GetBlacklist(ctx context.Context) (out []BlacklistItem, err error) {
	out = []BlacklistItem{}
	err = c.rpc.get(ctx, "/blacklist", nil, &out)
	return
}

func (c *DreClient) GetErrors(ctx context.Context) (out []ErrorsItem, err error) {
	out = []ErrorsItem{}
	err = c.rpc.get(ctx, "/errors", nil, &out)
	return
}
