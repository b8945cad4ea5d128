package arweave

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"math/big"
	"os"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/pkg/errors"
)

// pssOptions matches the parameters arweave nodes verify with.
var pssOptions = &rsa.PSSOptions{
	SaltLength: 32,
	Hash:       crypto.SHA256,
}

type Wallet struct {
	key *rsa.PrivateKey
}

func NewWallet(key *rsa.PrivateKey) (*Wallet, error) {
	if key == nil {
		return nil, errors.Wrap(ErrInvalidKey, "nil private key")
	}
	return &Wallet{key: key}, nil
}

// ParseWallet reads an RSA private key in JWK form, the format arweave
// keyfiles are distributed in.
func ParseWallet(data []byte) (wallet *Wallet, err error) {
	key, err := jwk.ParseKey(data)
	if err != nil {
		err = errors.Wrap(ErrInvalidKey, err.Error())
		return
	}

	if key.KeyType() != jwa.RSA {
		err = errors.Wrapf(ErrInvalidKey, "unexpected key type %s", key.KeyType())
		return
	}

	raw := &rsa.PrivateKey{}
	if err = key.Raw(raw); err != nil {
		err = errors.Wrap(ErrInvalidKey, err.Error())
		return
	}

	return NewWallet(raw)
}

func LoadWallet(path string) (*Wallet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read keyfile: %s", path)
	}
	return ParseWallet(data)
}

// Owner is the public modulus, which arweave uses as the owner field.
func (w *Wallet) Owner() Base64String {
	return w.key.N.Bytes()
}

func (w *Wallet) Address() string {
	return OwnerToAddress(w.Owner())
}

func (w *Wallet) PublicKey() *rsa.PublicKey {
	return &w.key.PublicKey
}

func (w *Wallet) Sign(msg []byte) (signature []byte, err error) {
	digest := sha256.Sum256(msg)
	signature, err = rsa.SignPSS(rand.Reader, w.key, crypto.SHA256, digest[:], pssOptions)
	err = errors.WithStack(err)
	return
}

func OwnerToAddress(owner Base64String) string {
	digest := sha256.Sum256(owner)
	return Base64String(digest[:]).String()
}

// Verify checks signature over msg against an owner modulus. Arweave keys
// always use the public exponent 65537.
func Verify(owner Base64String, msg, signature []byte) error {
	pub := &rsa.PublicKey{
		N: new(big.Int).SetBytes(owner),
		E: 65537,
	}

	digest := sha256.Sum256(msg)
	if err := rsa.VerifyPSS(pub, crypto.SHA256, digest[:], signature, pssOptions); err != nil {
		return errors.Wrap(ErrInvalidSignature, err.Error())
	}

	return nil
}
