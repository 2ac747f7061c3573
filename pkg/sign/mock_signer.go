package sign

import (
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/erc7824/walletkit/pkg/keys"
)

var _ Signer = (*MockSigner)(nil)

// MockSigner is a Signer for tests. Its key material is derived
// deterministically from a string seed, so the same seed always produces the
// same addresses and signatures without any fixture management.
type MockSigner struct {
	key *keys.PrivateKey
}

// NewMockSigner derives a deterministic key from the given seed string.
func NewMockSigner(seed string) *MockSigner {
	// keccak-256 of the seed is a valid scalar for any practical seed; fall
	// back to hashing again in the astronomically unlikely rejection case.
	secret := ethcrypto.Keccak256([]byte(seed))
	key, err := keys.FromBytes(secret)
	for err != nil {
		secret = ethcrypto.Keccak256(secret)
		key, err = keys.FromBytes(secret)
	}
	return &MockSigner{key: key}
}

// PublicKey returns the mock signer's public key.
func (m *MockSigner) PublicKey() keys.PublicKey {
	return m.key.PublicKey()
}

// Sign produces a real deterministic signature with the derived key.
func (m *MockSigner) Sign(payload []byte) (Signature, error) {
	sig, err := m.key.Sign(payload)
	if err != nil {
		return nil, err
	}
	return Signature(sig), nil
}
