package keys

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// DefaultBech32Prefix is the human-readable part used for the chain-native
// textual form of an address when the caller supplies none.
const DefaultBech32Prefix = "inj"

// AddressLength is the byte length of a derived account identifier.
const AddressLength = common.AddressLength

// Address is the account identifier derived from a public key's keccak-256
// hash. It carries two textual encodings, a 0x-prefixed lowercase hex form
// and a bech32 form, which always decode to the same underlying bytes.
type Address struct {
	addr common.Address
}

// NewAddress wraps raw 20-byte address material.
func NewAddress(addr common.Address) Address {
	return Address{addr: addr}
}

// AddressFromHex parses a 0x-prefixed (optional, case-insensitive) hex string
// into an Address.
func AddressFromHex(s string) (Address, error) {
	h := trimHexPrefix(s)
	b, err := hex.DecodeString(h)
	if err != nil {
		return Address{}, errors.Wrap(err, "decode address hex")
	}
	if len(b) != AddressLength {
		return Address{}, errors.Errorf("invalid address length: got %d bytes, want %d", len(b), AddressLength)
	}
	return Address{addr: common.BytesToAddress(b)}, nil
}

// AddressFromBech32 decodes a bech32-encoded address and returns it together
// with the human-readable prefix it was encoded under.
func AddressFromBech32(s string) (Address, string, error) {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return Address{}, "", errors.Wrap(err, "decode bech32 address")
	}
	converted, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Address{}, "", errors.Wrap(err, "convert bech32 payload")
	}
	if len(converted) != AddressLength {
		return Address{}, "", errors.Errorf("invalid address length: got %d bytes, want %d", len(converted), AddressLength)
	}
	return Address{addr: common.BytesToAddress(converted)}, hrp, nil
}

// Bytes returns a copy of the underlying 20 address bytes.
func (a Address) Bytes() []byte {
	out := make([]byte, AddressLength)
	copy(out, a.addr.Bytes())
	return out
}

// Hex returns the 0x-prefixed lowercase hex encoding. The prefix is carried
// exactly once regardless of the stored form.
func (a Address) Hex() string {
	return ensureHexPrefix(hex.EncodeToString(a.addr.Bytes()))
}

// ChecksumHex returns the EIP-55 mixed-case encoding.
func (a Address) ChecksumHex() string {
	return a.addr.Hex()
}

// Bech32 encodes the address bytes under the given human-readable prefix.
func (a Address) Bech32(prefix string) (string, error) {
	converted, err := bech32.ConvertBits(a.addr.Bytes(), 8, 5, true)
	if err != nil {
		return "", errors.Wrap(err, "convert address payload")
	}
	encoded, err := bech32.Encode(prefix, converted)
	if err != nil {
		return "", errors.Wrap(err, "encode bech32 address")
	}
	return encoded, nil
}

// String implements fmt.Stringer using the hex form.
func (a Address) String() string {
	return a.Hex()
}

// Equals reports whether both addresses carry the same underlying bytes.
func (a Address) Equals(other Address) bool {
	return bytes.Equal(a.addr.Bytes(), other.addr.Bytes())
}

// Common returns the go-ethereum representation of the address.
func (a Address) Common() common.Address {
	return a.addr
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return s[2:]
	}
	return s
}

func ensureHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") {
		return s
	}
	return "0x" + s
}
