package keys

import "github.com/pkg/errors"

// Error kinds raised by key construction and signing. All of them are
// detected synchronously: construction errors at construction time, signing
// errors at call time. A failed construction yields no PrivateKey and a
// failed sign yields no partial signature bytes.
var (
	// ErrInvalidMnemonic is returned when a phrase fails BIP39 word-list or
	// checksum validation. No key material is derived in that case.
	ErrInvalidMnemonic = errors.New("invalid mnemonic phrase")

	// ErrInvalidSecretLength is returned when a raw secret does not normalize
	// to exactly 32 bytes. Secrets are never truncated or padded.
	ErrInvalidSecretLength = errors.New("invalid secret length")

	// ErrInvalidSecretValue is returned when the 32-byte secret is not a
	// valid secp256k1 scalar (zero, or >= the curve order) or cannot be
	// decoded from its textual form.
	ErrInvalidSecretValue = errors.New("invalid secret value")

	// ErrInvalidDerivationPath is returned when a BIP32 path string cannot
	// be parsed or a child key cannot be derived along it.
	ErrInvalidDerivationPath = errors.New("invalid derivation path")

	// ErrSigning is returned when the curve primitive rejects the input,
	// e.g. a digest of the wrong length.
	ErrSigning = errors.New("signing failed")
)
