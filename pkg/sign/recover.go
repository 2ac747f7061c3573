package sign

import (
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/erc7824/walletkit/pkg/keys"
)

// RecoverAddress hashes the message with keccak-256 and recovers the signing
// address from a 65-byte recoverable signature.
func RecoverAddress(message []byte, sig Signature) (keys.Address, error) {
	return RecoverAddressFromHash(ethcrypto.Keccak256(message), sig)
}

// RecoverAddressFromHash recovers the signing address from a pre-computed
// digest and a 65-byte recoverable signature. V is accepted in both the 0/1
// and 27/28 conventions.
func RecoverAddressFromHash(digest []byte, sig Signature) (keys.Address, error) {
	if sig.Type() != TypeRecoverable {
		return keys.Address{}, errors.Errorf("signature is not recoverable: got %d bytes, want 65", len(sig))
	}

	localSig := make([]byte, len(sig))
	copy(localSig, sig)
	if localSig[64] >= 27 {
		localSig[64] -= 27
	}

	pub, err := ethcrypto.SigToPub(digest, localSig)
	if err != nil {
		return keys.Address{}, errors.Wrap(err, "signature recovery failed")
	}
	return keys.NewPublicKey(pub).Address(), nil
}
