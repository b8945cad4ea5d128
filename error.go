package warp

import (
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	ErrArgument            = fmt.Errorf("argument not valid")
	ErrGateway             = fmt.Errorf("warp gateway")
	ErrInteractionNotFound = fmt.Errorf("interaction not found")
	ErrResponseTooLarge    = fmt.Errorf("response too large")
)

// GatewayError is returned whenever a DRE node or the sequencer answers with
// anything other than 200. It unwraps to ErrGateway.
type GatewayError struct {
	StatusCode int
	Body       string
	Message    string
}

func NewGatewayError(statusCode int, body []byte) *GatewayError {
	e := &GatewayError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	if gjson.ValidBytes(body) {
		for _, key := range []string{"message", "error"} {
			if r := gjson.GetBytes(body, key); r.Type == gjson.String {
				e.Message = r.String()
				break
			}
		}
	}

	return e
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: status %d, error: %s", ErrGateway, e.StatusCode, e.Body)
}

func (e *GatewayError) Unwrap() error {
	return ErrGateway
}
