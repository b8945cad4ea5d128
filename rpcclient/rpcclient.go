package rpcclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	. "github.com/alexdcox/warp-go"
	"github.com/pkg/errors"
)

const (
	defaultTimeout        = 30 * time.Second
	maxReadContentLength  = 1024 * 1024 * 64
	maxQuotedBody         = 256
	contentTypeJson       = "application/json"
	sequencerRegisterPath = "/sequencer/register"
)

var log = Log()

func defaultHttpClient() *http.Client {
	return &http.Client{Timeout: defaultTimeout}
}

// rpcClient is the request/decode plumbing shared by the DRE client and the
// interactor.
type rpcClient struct {
	baseURL  string
	http     *http.Client
	maxBytes int64
}

func newRpcClient(baseURL string, httpClient *http.Client, maxBytes int64) (c *rpcClient, err error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		err = errors.Wrapf(ErrArgument, "invalid url '%s'", baseURL)
		return
	}

	if httpClient == nil {
		httpClient = defaultHttpClient()
	}

	if maxBytes <= 0 {
		maxBytes = maxReadContentLength
	}

	c = &rpcClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     httpClient,
		maxBytes: maxBytes,
	}
	return
}

func (c *rpcClient) req(ctx context.Context, method string, path string, query url.Values, body io.Reader) (rsp *http.Response, out []byte, err error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		err = errors.WithStack(err)
		return
	}

	if method == http.MethodPost {
		req.Header.Set("Content-Type", contentTypeJson)
	}
	req.Header.Set("Accept", contentTypeJson)

	rsp, err = c.http.Do(req)
	if err != nil {
		err = errors.Wrapf(err, "%s %s", method, path)
		return
	}
	defer rsp.Body.Close()

	out, err = io.ReadAll(io.LimitReader(rsp.Body, c.maxBytes+1))
	if err != nil {
		err = errors.WithStack(err)
		return
	}

	if int64(len(out)) > c.maxBytes {
		out = nil
		err = errors.Wrapf(ErrResponseTooLarge, "%s %s: response exceeds %d bytes", method, path, c.maxBytes)
		return
	}

	if rsp.StatusCode != http.StatusOK {
		log.Debug().Msgf("status is %d for %s %s", rsp.StatusCode, method, path)
		err = NewGatewayError(rsp.StatusCode, out)
		return
	}

	return
}

func (c *rpcClient) reqUnmarshal(ctx context.Context, method string, path string, query url.Values, body io.Reader, target any) (err error) {
	_, rspBody, err := c.req(ctx, method, path, query, body)
	if err != nil {
		return
	}

	err = json.Unmarshal(rspBody, target)
	if err != nil {
		err = errors.Wrapf(err, "unable to unmarshal body: %s", quoteBody(rspBody))
		return
	}

	return
}

func (c *rpcClient) get(ctx context.Context, path string, query url.Values, target any) (err error) {
	return c.reqUnmarshal(ctx, http.MethodGet, path, query, nil, target)
}

func (c *rpcClient) post(ctx context.Context, path string, in any, target any) (err error) {
	jsn, err := json.Marshal(in)
	if err != nil {
		err = errors.WithStack(err)
		return
	}

	return c.reqUnmarshal(ctx, http.MethodPost, path, nil, bytes.NewReader(jsn), target)
}

// quoteBody returns a prefix of body short enough to embed in an error.
func quoteBody(body []byte) string {
	if len(body) <= maxQuotedBody {
		return string(body)
	}
	return fmt.Sprintf("%s... (%d bytes)", body[:maxQuotedBody], len(body))
}
