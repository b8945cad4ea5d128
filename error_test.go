package warp

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestGatewayError(t *testing.T) {
	testCases := []struct {
		body    string
		message string
	}{
		{body: `{"message":"contract blacklisted"}`, message: "contract blacklisted"},
		{body: `{"error":"bad input"}`, message: "bad input"},
		{body: `{"error":{"code":1}}`, message: ""},
		{body: `<html>502 Bad Gateway</html>`, message: ""},
		{body: ``, message: ""},
	}

	for _, tc := range testCases {
		err := NewGatewayError(502, []byte(tc.body))
		assert.Equal(t, tc.message, err.Message, tc.body)
		assert.Equal(t, tc.body, err.Body)
		assert.Equal(t, "warp gateway: status 502, error: "+tc.body, err.Error())
	}
}

func TestGatewayError_Wrapped(t *testing.T) {
	err := errors.Wrap(NewGatewayError(404, []byte("not found")), "get contract")

	assert.ErrorIs(t, err, ErrGateway)
	assert.NotErrorIs(t, err, ErrArgument)

	var gatewayErr *GatewayError
	assert.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, 404, gatewayErr.StatusCode)
	assert.NotEmpty(t, StackTracerMessage(err))
}
