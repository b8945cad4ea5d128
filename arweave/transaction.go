package arweave

import (
	"encoding/base64"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// Base64String is raw bytes carried as unpadded base64url in JSON, the
// encoding used for every binary field of an arweave transaction.
type Base64String []byte

func (b Base64String) String() string {
	return base64.RawURLEncoding.EncodeToString(b)
}

func (b Base64String) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *Base64String) UnmarshalJSON(data []byte) (err error) {
	var s string
	if err = json.Unmarshal(data, &s); err != nil {
		return errors.WithStack(err)
	}

	decoded, err := DecodeBase64(s)
	if err != nil {
		return
	}

	*b = decoded
	return
}

// DecodeBase64 accepts base64url with or without padding.
func DecodeBase64(s string) (Base64String, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(trimPadding(s))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base64url value '%s'", s)
	}
	return decoded, nil
}

func trimPadding(s string) string {
	for len(s) > 0 && s[len(s)-1] == '=' {
		s = s[:len(s)-1]
	}
	return s
}

type Tag struct {
	Name  Base64String `json:"name"`
	Value Base64String `json:"value"`
}

func NewTag(name, value string) Tag {
	return Tag{
		Name:  Base64String(name),
		Value: Base64String(value),
	}
}

// Transaction is a format 2 arweave transaction as accepted by nodes and
// the Warp sequencer.
type Transaction struct {
	Format    int          `json:"format"`
	ID        Base64String `json:"id"`
	LastTx    Base64String `json:"last_tx"`
	Owner     Base64String `json:"owner"`
	Tags      []Tag        `json:"tags"`
	Target    Base64String `json:"target"`
	Quantity  string       `json:"quantity"`
	Data      Base64String `json:"data"`
	DataSize  string       `json:"data_size"`
	DataRoot  Base64String `json:"data_root"`
	Reward    string       `json:"reward"`
	Signature Base64String `json:"signature"`
}

const FormatV2 = 2

// SignatureData is the deep hash the owner signs.
func (tx *Transaction) SignatureData() (data []byte, err error) {
	if tx.Format != FormatV2 {
		err = errors.Wrapf(ErrUnsupportedFormat, "format %d", tx.Format)
		return
	}

	tags := make([]any, 0, len(tx.Tags))
	for _, tag := range tx.Tags {
		tags = append(tags, []any{[]byte(tag.Name), []byte(tag.Value)})
	}

	return DeepHash([]any{
		[]byte(strconv.Itoa(tx.Format)),
		[]byte(tx.Owner),
		[]byte(tx.Target),
		[]byte(tx.Quantity),
		[]byte(tx.Reward),
		[]byte(tx.LastTx),
		tags,
		[]byte(tx.DataSize),
		[]byte(tx.DataRoot),
	})
}

// TagValue returns the decoded value of the first tag with the given name.
func (tx *Transaction) TagValue(name string) (value string, ok bool) {
	for _, tag := range tx.Tags {
		if string(tag.Name) == name {
			return string(tag.Value), true
		}
	}
	return "", false
}
