package arweave

import (
	"context"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAnchor = "Y2hhaW4tYW5jaG9yLWZvci10ZXN0aW5nLXB1cnBvc2VzLW9ubHkx"

func TestClient(t *testing.T) {
	app := fakeNode(testAnchor, "1234567\n")
	client := NewClient("http://arweave.test/", fakeNodeClient(app), nil)

	anchor, err := client.GetTxAnchor(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testAnchor, anchor.String())

	price, err := client.GetPrice(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "1234567", price.String())
}

func TestClient_Errors(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/tx_anchor", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusServiceUnavailable).SendString("overloaded")
	})
	app.Get("/price/:bytes", func(c *fiber.Ctx) error {
		return c.SendString("not a number")
	})
	client := NewClient("http://arweave.test", fakeNodeClient(app), nil)

	_, err := client.GetTxAnchor(context.Background())
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "overloaded")

	_, err = client.GetPrice(context.Background(), 1)
	assert.Error(t, err)
}

func TestArweave_CreateAndSign(t *testing.T) {
	var priced []string
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/tx_anchor", func(c *fiber.Ctx) error {
		return c.SendString(testAnchor)
	})
	app.Get("/price/:bytes", func(c *fiber.Ctx) error {
		priced = append(priced, c.Params("bytes"))
		return c.SendString("1000")
	})

	ar, err := New(testWallet(t), &Options{
		URL:              "http://arweave.test",
		HTTPClient:       fakeNodeClient(app),
		RewardMultiplier: [2]int64{3, 2},
	})
	require.NoError(t, err)

	tags := []Tag{NewTag("App-Name", "SmartWeaveAction"), NewTag("Input", `{"function":"x"}`)}
	tx, err := ar.CreateTransaction(context.Background(), []byte{1}, tags)
	require.NoError(t, err)

	assert.Equal(t, FormatV2, tx.Format)
	assert.Equal(t, testAnchor, tx.LastTx.String())
	assert.Equal(t, "1500", tx.Reward)
	assert.Equal(t, "0", tx.Quantity)
	assert.Equal(t, "1", tx.DataSize)
	assert.Equal(t, DataRoot([]byte{1}), []byte(tx.DataRoot))
	assert.Equal(t, ar.Wallet().Owner(), tx.Owner)
	assert.Equal(t, tags, tx.Tags)
	assert.Empty(t, tx.Signature)
	assert.Equal(t, []string{strconv.Itoa(1)}, priced)

	require.NoError(t, ar.SignTransaction(tx))
	assert.Len(t, tx.ID, 32)
	assert.NoError(t, VerifyTransaction(tx))

	tx.Tags[1] = NewTag("Input", `{"function":"y"}`)
	assert.ErrorIs(t, VerifyTransaction(tx), ErrInvalidSignature)
}

func TestArweave_VerifyRejects(t *testing.T) {
	ar, err := New(testWallet(t), nil)
	require.NoError(t, err)

	tx := &Transaction{Format: FormatV2, Quantity: "0", Reward: "1", DataSize: "0", Tags: []Tag{}}
	assert.ErrorIs(t, VerifyTransaction(tx), ErrInvalidSignature)

	require.NoError(t, ar.SignTransaction(tx))
	require.NoError(t, VerifyTransaction(tx))

	tx.ID = Base64String("forged")
	assert.ErrorIs(t, VerifyTransaction(tx), ErrInvalidSignature)

	assert.Error(t, ar.SignTransaction(nil))
}

func TestNew_RequiresWallet(t *testing.T) {
	_, err := New(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestNew_OptionsUnchanged(t *testing.T) {
	options := &Options{}
	ar, err := New(testWallet(t), options)
	require.NoError(t, err)
	assert.Equal(t, &Options{}, options)
	assert.Equal(t, DefaultURL, ar.options.URL)
	assert.Equal(t, [2]int64{1, 1}, ar.options.RewardMultiplier)
}
