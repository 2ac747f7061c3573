package keys

import (
	"crypto/ecdsa"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// PublicKey is the non-secret point derived from exactly one PrivateKey.
type PublicKey struct {
	pub *ecdsa.PublicKey
}

// NewPublicKey wraps an ECDSA public key.
func NewPublicKey(pub *ecdsa.PublicKey) PublicKey {
	return PublicKey{pub: pub}
}

// PublicKeyFromBytes parses an uncompressed (65-byte) or compressed (33-byte)
// secp256k1 point.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) == secp256k1.PubKeyBytesLenCompressed {
		pub, err := ethcrypto.DecompressPubkey(b)
		if err != nil {
			return PublicKey{}, errors.Wrap(err, "decompress public key")
		}
		return PublicKey{pub: pub}, nil
	}
	pub, err := ethcrypto.UnmarshalPubkey(b)
	if err != nil {
		return PublicKey{}, errors.Wrap(err, "unmarshal public key")
	}
	return PublicKey{pub: pub}, nil
}

// Bytes returns the uncompressed 65-byte point encoding.
func (p PublicKey) Bytes() []byte {
	return ethcrypto.FromECDSAPub(p.pub)
}

// CompressedBytes returns the 33-byte compressed point encoding.
func (p PublicKey) CompressedBytes() []byte {
	return ethcrypto.CompressPubkey(p.pub)
}

// Hex returns the 0x-prefixed hex encoding of the uncompressed point.
func (p PublicKey) Hex() string {
	return hexutil.Encode(p.Bytes())
}

// Address derives the account identifier from the point's keccak-256 hash.
func (p PublicKey) Address() Address {
	return Address{addr: ethcrypto.PubkeyToAddress(*p.pub)}
}

// ECDSA returns the underlying public key.
func (p PublicKey) ECDSA() *ecdsa.PublicKey {
	return p.pub
}
