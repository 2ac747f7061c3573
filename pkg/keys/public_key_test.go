package keys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erc7824/walletkit/pkg/keys"
)

const (
	// Public point of the secret 0x0101...01.
	fixedKeyPubUncompressed = "0x041b84c5567b126440995d3ed5aaba0565d71e1834604819ff9c17f5e9d5dd078f" +
		"70beaf8f588b541507fed6a642c5ab42dfdf8120a7f639de5122d47a69a8e8d1"
	fixedKeyPubCompressed = "031b84c5567b126440995d3ed5aaba0565d71e1834604819ff9c17f5e9d5dd078f"
)

func TestPublicKeyDerivation(t *testing.T) {
	key := fixedKey(t)
	pub := key.PublicKey()

	assert.Equal(t, fixedKeyPubUncompressed, pub.Hex())
	assert.Len(t, pub.Bytes(), 65)
	assert.Len(t, pub.CompressedBytes(), 33)
	assert.Equal(t, fixedKeyAddressHex, pub.Address().Hex())
}

func TestPublicKeyFromBytes(t *testing.T) {
	key := fixedKey(t)
	pub := key.PublicKey()

	t.Run("uncompressed round trip", func(t *testing.T) {
		parsed, err := keys.PublicKeyFromBytes(pub.Bytes())
		require.NoError(t, err)
		assert.Equal(t, pub.Hex(), parsed.Hex())
		assert.Equal(t, pub.Address().Hex(), parsed.Address().Hex())
	})

	t.Run("compressed round trip", func(t *testing.T) {
		parsed, err := keys.PublicKeyFromBytes(pub.CompressedBytes())
		require.NoError(t, err)
		assert.Equal(t, pub.Hex(), parsed.Hex())
		assert.Equal(t, fixedKeyPubCompressed, "03"+pub.Hex()[4:68])
	})

	t.Run("rejects malformed point", func(t *testing.T) {
		bad := [][]byte{
			nil,
			make([]byte, 64),
			make([]byte, 33),
			make([]byte, 65),
		}
		for _, b := range bad {
			_, err := keys.PublicKeyFromBytes(b)
			assert.Error(t, err, "len %d", len(b))
		}
	})
}
