package sign

import (
	"github.com/pkg/errors"

	"github.com/erc7824/walletkit/pkg/keys"
)

// ErrNoDeviceSession is returned when no compatible external signer session
// is available for the requested operation.
var ErrNoDeviceSession = errors.New("no compatible device session available")

// RemoteSigner is the boundary to an external signer (a hardware wallet or a
// remote signing service) capable of producing a signature for a given
// payload. The signature comes back in the same 64-byte r||s shape as the
// local wallet routine. Device transport and session management live outside
// this module.
type RemoteSigner interface {
	// SignWithPath signs the payload with the key at the given BIP32
	// derivation path, or fails if no compatible device session exists.
	SignWithPath(payload []byte, derivationPath string) (Signature, error)
	// Address reports the account at the given derivation path.
	Address(derivationPath string) (keys.Address, error)
}

var _ RemoteSigner = (*HardwareSigner)(nil)

// HardwareSigner is a placeholder RemoteSigner for hardware wallets. Device
// negotiation is handled by a separate transport component; until one is
// attached every call reports a missing session.
type HardwareSigner struct{}

// NewHardwareSigner creates a hardware wallet signer stub.
func NewHardwareSigner() *HardwareSigner {
	return &HardwareSigner{}
}

// SignWithPath signs the payload using the hardware wallet.
func (h *HardwareSigner) SignWithPath(_ []byte, _ string) (Signature, error) {
	return nil, ErrNoDeviceSession
}

// Address reports the account at the given derivation path.
func (h *HardwareSigner) Address(_ string) (keys.Address, error) {
	return keys.Address{}, ErrNoDeviceSession
}
