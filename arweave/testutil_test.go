package arweave

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type fiberTransport struct {
	app *fiber.App
}

func (f fiberTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return f.app.Test(req, -1)
}

func fakeNode(anchor, price string) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/tx_anchor", func(c *fiber.Ctx) error {
		return c.SendString(anchor)
	})
	app.Get("/price/:bytes", func(c *fiber.Ctx) error {
		return c.SendString(price)
	})
	return app
}

func fakeNodeClient(app *fiber.App) *http.Client {
	return &http.Client{Transport: fiberTransport{app: app}}
}

var (
	testKey     *rsa.PrivateKey
	testKeyOnce sync.Once
)

func testWallet(t *testing.T) *Wallet {
	testKeyOnce.Do(func() {
		var err error
		testKey, err = rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(err)
		}
	})

	wallet, err := NewWallet(testKey)
	require.NoError(t, err)
	return wallet
}
