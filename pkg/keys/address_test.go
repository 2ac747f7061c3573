package keys_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erc7824/walletkit/pkg/keys"
)

const (
	// Address derived from the secret 0x0101...01.
	fixedKeyAddressHex    = "0x1a642f0e3c3af545e7acbd38b07251b3990914f1"
	fixedKeyAddressBech32 = "inj1rfjz7r3u8t65teavh5utquj3kwvsj983f4596g"
)

func TestAddressEncodings(t *testing.T) {
	key := fixedKey(t)
	addr := key.Address()

	t.Run("hex form", func(t *testing.T) {
		assert.Equal(t, fixedKeyAddressHex, addr.Hex())
		assert.Equal(t, fixedKeyAddressHex, addr.String())
		assert.Equal(t, fixedKeyAddressHex, key.AddressHex())
		assert.Equal(t, strings.ToLower(addr.ChecksumHex()), addr.Hex())
	})

	t.Run("bech32 form", func(t *testing.T) {
		bech, err := addr.Bech32(keys.DefaultBech32Prefix)
		require.NoError(t, err)
		assert.Equal(t, fixedKeyAddressBech32, bech)

		viaKey, err := key.Bech32()
		require.NoError(t, err)
		assert.Equal(t, bech, viaKey)
	})

	t.Run("both forms decode to the same bytes", func(t *testing.T) {
		fromHex, err := keys.AddressFromHex(addr.Hex())
		require.NoError(t, err)

		bech, err := addr.Bech32(keys.DefaultBech32Prefix)
		require.NoError(t, err)
		fromBech, hrp, err := keys.AddressFromBech32(bech)
		require.NoError(t, err)

		assert.Equal(t, keys.DefaultBech32Prefix, hrp)
		assert.Equal(t, fromHex.Bytes(), fromBech.Bytes())
		assert.True(t, fromHex.Equals(fromBech))
	})

	t.Run("custom prefix", func(t *testing.T) {
		bech, err := addr.Bech32("cosmos")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(bech, "cosmos1"))

		decoded, hrp, err := keys.AddressFromBech32(bech)
		require.NoError(t, err)
		assert.Equal(t, "cosmos", hrp)
		assert.Equal(t, addr.Bytes(), decoded.Bytes())
	})
}

func TestAddressFromHex(t *testing.T) {
	t.Run("accepted forms", func(t *testing.T) {
		forms := []string{
			fixedKeyAddressHex,
			strings.TrimPrefix(fixedKeyAddressHex, "0x"),
			"0X" + strings.ToUpper(strings.TrimPrefix(fixedKeyAddressHex, "0x")),
		}
		for _, form := range forms {
			addr, err := keys.AddressFromHex(form)
			require.NoError(t, err, "form %q", form)
			assert.Equal(t, fixedKeyAddressHex, addr.Hex())
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		bad := []string{
			"",
			"0x1234",
			fixedKeyAddressHex + "00",
			"0xzz42f0e3c3af545e7acbd38b07251b3990914f1",
		}
		for _, form := range bad {
			_, err := keys.AddressFromHex(form)
			assert.Error(t, err, "form %q", form)
		}
	})
}

func TestAddressFromBech32Rejects(t *testing.T) {
	bad := []string{
		"",
		"inj1",
		// Valid checksum but flipped payload character.
		strings.Replace(fixedKeyAddressBech32, "rfjz", "rfjx", 1),
	}
	for _, form := range bad {
		_, _, err := keys.AddressFromBech32(form)
		assert.Error(t, err, "form %q", form)
	}
}

func TestAddressHexPrefixOnce(t *testing.T) {
	addr, err := keys.AddressFromHex(fixedKeyAddressHex)
	require.NoError(t, err)

	h := addr.Hex()
	assert.True(t, strings.HasPrefix(h, "0x"))
	assert.Equal(t, 2+2*keys.AddressLength, len(h))
	assert.NotContains(t, h[2:], "0x")
}
