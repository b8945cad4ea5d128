package arweave

import (
	"crypto/sha512"
	"strconv"

	"github.com/pkg/errors"
)

// DeepHash hashes a tree of []byte leaves and []any lists with SHA-384,
// tagging every node with its kind and length.
func DeepHash(data any) ([]byte, error) {
	switch v := data.(type) {
	case []byte:
		tag := sha384([]byte("blob" + strconv.Itoa(len(v))))
		return sha384(append(tag, sha384(v)...)), nil
	case []any:
		acc := sha384([]byte("list" + strconv.Itoa(len(v))))
		for i, item := range v {
			h, err := DeepHash(item)
			if err != nil {
				return nil, errors.Wrapf(err, "item %d", i)
			}
			acc = sha384(append(acc, h...))
		}
		return acc, nil
	default:
		return nil, errors.Errorf("deep hash: unsupported type %T", data)
	}
}

func sha384(data []byte) []byte {
	h := sha512.Sum384(data)
	return h[:]
}
