package rpcclient

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type fiberTransport struct {
	app *fiber.App
}

func (f fiberTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return f.app.Test(req, -1)
}

func newFakeApp() *fiber.App {
	return fiber.New(fiber.Config{DisableStartupMessage: true})
}

func fakeHttpClient(app *fiber.App) *http.Client {
	return &http.Client{Transport: fiberTransport{app: app}}
}
