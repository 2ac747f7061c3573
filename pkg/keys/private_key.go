package keys

import (
	"crypto/ecdsa"
	"encoding/hex"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// SecretLength is the exact byte length of a secp256k1 secret scalar.
const SecretLength = 32

// PrivateKey owns a secp256k1 secret scalar. It is immutable after
// construction: signing never mutates key state, so one instance may be
// shared by concurrent callers.
type PrivateKey struct {
	key *ecdsa.PrivateKey
	raw [SecretLength]byte
}

// Generate produces a fresh BIP39 mnemonic and derives a key from it along
// DefaultDerivationPath. The mnemonic is returned alongside the key and is
// not retrievable again afterwards; the caller is responsible for its custody.
func Generate() (*PrivateKey, string, error) {
	mnemonic, err := NewMnemonic()
	if err != nil {
		return nil, "", err
	}
	key, err := FromMnemonic(mnemonic)
	if err != nil {
		return nil, "", err
	}
	return key, mnemonic, nil
}

// FromMnemonic validates the BIP39 phrase and derives a key along the given
// BIP32 path, defaulting to DefaultDerivationPath when none is supplied.
func FromMnemonic(mnemonic string, path ...string) (*PrivateKey, error) {
	derivationPath := DefaultDerivationPath
	if len(path) > 0 && path[0] != "" {
		derivationPath = path[0]
	}

	secret, err := deriveSecret(mnemonic, derivationPath)
	if err != nil {
		return nil, err
	}
	return FromBytes(secret)
}

// FromHex parses a hex-encoded secret. The 0x prefix is optional and
// case-insensitive.
func FromHex(secret string) (*PrivateKey, error) {
	b, err := hex.DecodeString(trimHexPrefix(secret))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidSecretValue, "decode hex: %v", err)
	}
	return FromBytes(b)
}

// FromBytes constructs a key from a raw 32-byte secret. The bytes must be a
// valid scalar on the curve: nonzero and below the curve order. Malformed
// input is rejected, never truncated or padded.
func FromBytes(secret []byte) (*PrivateKey, error) {
	if len(secret) != SecretLength {
		return nil, errors.Wrapf(ErrInvalidSecretLength, "got %d bytes, want %d", len(secret), SecretLength)
	}

	key, err := ethcrypto.ToECDSA(secret)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidSecretValue, "%v", err)
	}

	pk := &PrivateKey{key: key}
	copy(pk.raw[:], secret)
	return pk, nil
}

// FromPrivateKeyHex parses a hex-encoded secret.
//
// Deprecated: use FromHex, which additionally accepts raw bytes through
// FromBytes. Kept for backward compatibility with earlier SDK releases.
func FromPrivateKeyHex(secret string) (*PrivateKey, error) {
	return FromHex(secret)
}

// Hex exports the secret as a 0x-prefixed lowercase hex string. The prefix
// appears exactly once in the output.
func (k *PrivateKey) Hex() string {
	return ensureHexPrefix(hex.EncodeToString(k.raw[:]))
}

// Bytes returns a copy of the raw 32-byte secret.
func (k *PrivateKey) Bytes() []byte {
	out := make([]byte, SecretLength)
	copy(out, k.raw[:])
	return out
}

// PublicKey derives the public point directly from the stored secret via EC
// scalar multiplication, never through a hex round-trip.
func (k *PrivateKey) PublicKey() PublicKey {
	return PublicKey{pub: &k.key.PublicKey}
}

// Address derives the account identifier from the public key.
func (k *PrivateKey) Address() Address {
	return k.PublicKey().Address()
}

// AddressHex returns the derived address as a 0x-prefixed lowercase hex
// string.
func (k *PrivateKey) AddressHex() string {
	return k.Address().Hex()
}

// Bech32 returns the derived address under DefaultBech32Prefix. Both textual
// forms decode to the same underlying bytes.
func (k *PrivateKey) Bech32() (string, error) {
	return k.Address().Bech32(DefaultBech32Prefix)
}

// ECDSA returns the underlying go-ethereum key representation.
func (k *PrivateKey) ECDSA() *ecdsa.PrivateKey {
	return k.key
}
