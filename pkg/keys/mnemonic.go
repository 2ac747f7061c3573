package keys

import (
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/pkg/errors"
	bip39 "github.com/tyler-smith/go-bip39"
)

// DefaultDerivationPath is the BIP32 path used when construction calls do not
// supply one. It is an explicit default-valued parameter, not hidden module
// state: every constructor that derives from a mnemonic accepts a path.
const DefaultDerivationPath = "m/44'/60'/0'/0/0"

// mnemonicEntropyBits sizes freshly generated phrases at 24 words.
const mnemonicEntropyBits = 256

// NewMnemonic generates a fresh BIP39 phrase from a cryptographically secure
// entropy source.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", errors.Wrap(err, "generate entropy")
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(err, "generate mnemonic")
	}
	return mnemonic, nil
}

// deriveSecret validates the phrase, derives along the BIP32 path and returns
// the resulting 32-byte scalar. The mnemonic and seed are not retained.
func deriveSecret(mnemonic, path string) ([]byte, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.Wrap(ErrInvalidMnemonic, "word-list or checksum validation failed")
	}

	indices, err := parseDerivationPath(path)
	if err != nil {
		return nil, err
	}

	seed := bip39.NewSeed(mnemonic, "")
	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, errors.Wrap(err, "create master key")
	}
	for _, idx := range indices {
		key, err = key.Derive(idx)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidDerivationPath, "derive child %d: %v", idx, err)
		}
	}

	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, errors.Wrap(err, "extract private key")
	}
	return priv.Serialize(), nil
}

// parseDerivationPath accepts "m/44'/60'/0'/0/0" or "44'/60'/0'/0/0" and
// returns the child indices, with hardened segments offset by
// hdkeychain.HardenedKeyStart.
func parseDerivationPath(path string) ([]uint32, error) {
	p := strings.TrimSpace(path)
	if strings.HasPrefix(p, "m/") || strings.HasPrefix(p, "M/") {
		p = p[2:]
	}
	if p == "" {
		return nil, errors.Wrap(ErrInvalidDerivationPath, "empty path")
	}

	parts := strings.Split(p, "/")
	indices := make([]uint32, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, errors.Wrap(ErrInvalidDerivationPath, "empty path segment")
		}
		hardened := strings.HasSuffix(part, "'")
		if hardened {
			part = strings.TrimSuffix(part, "'")
		}
		v, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidDerivationPath, "segment %q", part)
		}
		// The hardened offset is 2^31, so raw segment values must stay below
		// it whether or not the segment carries the hardened marker.
		if v >= hdkeychain.HardenedKeyStart {
			return nil, errors.Wrapf(ErrInvalidDerivationPath, "segment %q exceeds max child index %d", part, hdkeychain.HardenedKeyStart-1)
		}
		idx := uint32(v)
		if hardened {
			idx += hdkeychain.HardenedKeyStart
		}
		indices = append(indices, idx)
	}
	return indices, nil
}
