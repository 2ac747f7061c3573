package keystore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erc7824/walletkit/pkg/keys"
	"github.com/erc7824/walletkit/pkg/keystore"
)

func testRegistry(t *testing.T) *keystore.Registry {
	t.Helper()
	db, err := keystore.ConnectToDB(keystore.DatabaseConfig{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "registry.db"),
	})
	require.NoError(t, err)
	return keystore.NewRegistry(db, nil)
}

func TestRegistryRegister(t *testing.T) {
	reg := testRegistry(t)

	key, err := keys.FromHex("0x0101010101010101010101010101010101010101010101010101010101010101")
	require.NoError(t, err)

	acct, err := reg.Register(keystore.Account{
		Name:           "trading",
		Address:        key.AddressHex(),
		DerivationPath: keys.DefaultDerivationPath,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, acct.ID)
	assert.Equal(t, key.AddressHex(), acct.Address)
	assert.Equal(t, keystore.SignerTypeLocal, acct.SignerType)

	wantBech, err := key.Bech32()
	require.NoError(t, err)
	assert.Equal(t, wantBech, acct.Bech32Address)
}

func TestRegistryRegisterErrors(t *testing.T) {
	reg := testRegistry(t)

	t.Run("missing address", func(t *testing.T) {
		_, err := reg.Register(keystore.Account{Name: "no-address"})
		assert.Error(t, err)
	})

	t.Run("malformed address", func(t *testing.T) {
		_, err := reg.Register(keystore.Account{Address: "0x1234"})
		assert.Error(t, err)
	})

	t.Run("duplicate address", func(t *testing.T) {
		addr := "0x1a642f0e3c3af545e7acbd38b07251b3990914f1"
		_, err := reg.Register(keystore.Account{Address: addr})
		require.NoError(t, err)
		_, err = reg.Register(keystore.Account{Address: addr})
		assert.Error(t, err)
	})
}

func TestRegistryGetByAddress(t *testing.T) {
	reg := testRegistry(t)

	addr := "0x1a642f0e3c3af545e7acbd38b07251b3990914f1"
	stored, err := reg.Register(keystore.Account{Name: "lookup", Address: addr})
	require.NoError(t, err)

	t.Run("normalizes casing and prefix", func(t *testing.T) {
		forms := []string{
			addr,
			"0X1A642F0E3C3AF545E7ACBD38B07251B3990914F1",
			"1a642f0e3c3af545e7acbd38b07251b3990914f1",
		}
		for _, form := range forms {
			got, err := reg.GetByAddress(form)
			require.NoError(t, err, "form %q", form)
			assert.Equal(t, stored.ID, got.ID)
		}
	})

	t.Run("unknown address", func(t *testing.T) {
		_, err := reg.GetByAddress("0x0000000000000000000000000000000000000001")
		assert.ErrorIs(t, err, keystore.ErrAccountNotFound)
	})

	t.Run("malformed address", func(t *testing.T) {
		_, err := reg.GetByAddress("not-an-address")
		assert.Error(t, err)
	})
}

func TestRegistryList(t *testing.T) {
	reg := testRegistry(t)

	accounts, err := reg.List()
	require.NoError(t, err)
	assert.Empty(t, accounts)

	for _, addr := range []string{
		"0x0000000000000000000000000000000000000001",
		"0x0000000000000000000000000000000000000002",
		"0x0000000000000000000000000000000000000003",
	} {
		_, err := reg.Register(keystore.Account{Address: addr, SignerType: keystore.SignerTypeRemote})
		require.NoError(t, err)
	}

	accounts, err = reg.List()
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	for _, acct := range accounts {
		assert.Equal(t, keystore.SignerTypeRemote, acct.SignerType)
	}
}

func TestConnectToDBUnsupportedDriver(t *testing.T) {
	_, err := keystore.ConnectToDB(keystore.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}
