package sign

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/erc7824/walletkit/pkg/keys"
)

// Signer is a signing capability over an arbitrary byte payload. The two
// named strategies of the key core (wallet routine vs. low-level primitive)
// and external device-backed signers all fit behind this interface.
type Signer interface {
	// PublicKey returns the public key associated with this signer.
	PublicKey() keys.PublicKey
	// Sign produces a signature for the given payload. Implementations
	// define whether the payload is hashed internally or used as a digest.
	Sign(payload []byte) (Signature, error)
}

// Signature is a byte slice holding one of the wire encodings produced by
// the signing paths.
type Signature []byte

// Type discriminates the signature encodings used on the wire.
type Type uint8

const (
	// TypeCompact is the 64-byte r||s layout produced by the sign and
	// signEcda families; the recovery id is discarded.
	TypeCompact Type = iota
	// TypeRecoverable is the 65-byte r||s||v layout produced by typed-data
	// signing, where verifiers recover the signer via ecrecover.
	TypeRecoverable
	// TypeUnknown marks any other length.
	TypeUnknown Type = 255
)

// String returns the string representation of the signature type.
func (t Type) String() string {
	switch t {
	case TypeCompact:
		return "Compact"
	case TypeRecoverable:
		return "Recoverable"
	default:
		return "Unknown"
	}
}

// Type returns the signature type based on the byte layout.
func (s Signature) Type() Type {
	switch len(s) {
	case 64:
		return TypeCompact
	case 65:
		return TypeRecoverable
	default:
		return TypeUnknown
	}
}

// MarshalJSON implements the json.Marshaler interface, encoding the signature
// as a 0x-prefixed hex string.
func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var hexStr string
	if err := json.Unmarshal(data, &hexStr); err != nil {
		return err
	}
	decoded, err := hexutil.Decode(hexStr)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

// String implements the fmt.Stringer interface.
func (s Signature) String() string {
	return hexutil.Encode(s)
}

// R returns the 32-byte r component, or an error for unknown layouts.
func (s Signature) R() ([]byte, error) {
	if s.Type() == TypeUnknown {
		return nil, fmt.Errorf("unknown signature layout: %d bytes", len(s))
	}
	return s[:32], nil
}

// S returns the 32-byte s component, or an error for unknown layouts.
func (s Signature) S() ([]byte, error) {
	if s.Type() == TypeUnknown {
		return nil, fmt.Errorf("unknown signature layout: %d bytes", len(s))
	}
	return s[32:64], nil
}
