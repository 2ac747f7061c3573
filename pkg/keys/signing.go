package keys

import (
	"math/big"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/erc7824/walletkit/pkg/eip712"
)

// DigestLength is the byte length the curve primitive expects for a digest.
const DigestLength = 32

// Signature component lengths on the wire.
const (
	rsLength       = 64 // r (32) || s (32)
	recoverableLen = 65 // r || s || v
)

// Sign hashes the message with keccak-256 and signs the digest through the
// wallet signing routine, returning the signature's r and s components
// concatenated into 64 bytes. The recovery id is computed internally but
// discarded.
func (k *PrivateKey) Sign(msg []byte) ([]byte, error) {
	return k.SignHashed(ethcrypto.Keccak256(msg))
}

// SignHashed signs an already-hashed message. The caller guarantees the input
// is a correct 32-byte digest.
func (k *PrivateKey) SignHashed(digest []byte) ([]byte, error) {
	sig, err := ethcrypto.Sign(digest, k.key)
	if err != nil {
		return nil, errors.Wrapf(ErrSigning, "%v", err)
	}

	// Re-split and left-pad: big-integer components may serialize shorter
	// than 32 bytes and must stay byte-aligned on the wire.
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	out := make([]byte, rsLength)
	r.FillBytes(out[:32])
	s.FillBytes(out[32:])
	return out, nil
}

// SignEcda hashes the message with keccak-256 and signs the digest with the
// low-level secp256k1 primitive over the raw secret bytes. The output is the
// primitive's compact r||s form, 64 bytes, no recovery byte.
//
// This path must agree bit-for-bit with Sign on r||s for the same digest;
// both are RFC 6979 deterministic. The two are kept as separate strategies
// because downstream verifiers expect the historical byte layout of each.
func (k *PrivateKey) SignEcda(msg []byte) ([]byte, error) {
	return k.SignHashedEcda(ethcrypto.Keccak256(msg))
}

// SignHashedEcda signs a pre-hashed digest with the low-level primitive.
func (k *PrivateKey) SignHashedEcda(digest []byte) ([]byte, error) {
	if len(digest) != DigestLength {
		return nil, errors.Wrapf(ErrSigning, "digest must be %d bytes, got %d", DigestLength, len(digest))
	}

	priv := secp256k1.PrivKeyFromBytes(k.raw[:])
	compact := secpecdsa.SignCompact(priv, digest, false)

	// SignCompact places the recovery code first; strip it.
	out := make([]byte, rsLength)
	copy(out, compact[1:])
	return out, nil
}

// SignTypedData validates and hashes the EIP-712 payload, then signs the
// structured digest. Unlike every other signing path the output keeps the
// trailing recovery byte (65 bytes total, V in Ethereum's 27/28 convention):
// typed-data verifiers recover the signer via ecrecover and need the parity.
func (k *PrivateKey) SignTypedData(td eip712.TypedData) ([]byte, error) {
	digest, err := td.Hash()
	if err != nil {
		return nil, errors.Wrapf(ErrSigning, "hash typed data: %v", err)
	}

	sig, err := ethcrypto.Sign(digest, k.key)
	if err != nil {
		return nil, errors.Wrapf(ErrSigning, "%v", err)
	}
	if sig[recoverableLen-1] < 27 {
		sig[recoverableLen-1] += 27
	}
	return sig, nil
}

// SignHashedTypedData signs a pre-hashed EIP-712 digest with the low-level
// primitive, returning 64-byte r||s without the recovery byte.
func (k *PrivateKey) SignHashedTypedData(digest []byte) ([]byte, error) {
	return k.SignHashedEcda(digest)
}
