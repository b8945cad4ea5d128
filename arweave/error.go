package arweave

import (
	"fmt"
)

var (
	ErrInvalidKey        = fmt.Errorf("invalid arweave key")
	ErrInvalidSignature  = fmt.Errorf("invalid transaction signature")
	ErrUnsupportedFormat = fmt.Errorf("unsupported transaction format")
	ErrRequestFailed     = fmt.Errorf("arweave request failed")
)
