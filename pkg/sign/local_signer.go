package sign

import (
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/erc7824/walletkit/pkg/eip712"
	"github.com/erc7824/walletkit/pkg/keys"
)

// Ensure our types implement the interfaces at compile time.
var _ Signer = (*LocalSigner)(nil)

// LocalSigner implements Signer over an in-process private key.
type LocalSigner struct {
	key *keys.PrivateKey
}

// NewLocalSigner wraps an existing private key.
func NewLocalSigner(key *keys.PrivateKey) *LocalSigner {
	return &LocalSigner{key: key}
}

// NewLocalSignerFromHex creates a signer from a hex-encoded secret, with or
// without the 0x prefix.
func NewLocalSignerFromHex(secretHex string) (*LocalSigner, error) {
	key, err := keys.FromHex(secretHex)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse private key")
	}
	return &LocalSigner{key: key}, nil
}

// PublicKey returns the public key associated with this signer.
func (s *LocalSigner) PublicKey() keys.PublicKey {
	return s.key.PublicKey()
}

// Address returns the account identifier derived from the signer's key.
func (s *LocalSigner) Address() keys.Address {
	return s.key.Address()
}

// Sign hashes the payload with keccak-256 and returns the 64-byte r||s
// signature of the wallet signing routine.
func (s *LocalSigner) Sign(payload []byte) (Signature, error) {
	sig, err := s.key.Sign(payload)
	if err != nil {
		return nil, err
	}
	return Signature(sig), nil
}

// SignRecoverable signs the payload keeping the trailing recovery byte in
// Ethereum's 27/28 convention, for verifiers that recover the signer.
func (s *LocalSigner) SignRecoverable(payload []byte) (Signature, error) {
	sig, err := ethcrypto.Sign(ethcrypto.Keccak256(payload), s.key.ECDSA())
	if err != nil {
		return nil, err
	}
	if sig[64] < 27 {
		sig[64] += 27
	}
	return Signature(sig), nil
}

// SignTypedData signs a structured EIP-712 payload. The output keeps the
// recovery byte (65 bytes).
func (s *LocalSigner) SignTypedData(td eip712.TypedData) (Signature, error) {
	sig, err := s.key.SignTypedData(td)
	if err != nil {
		return nil, err
	}
	return Signature(sig), nil
}
