// Package keystore stores wallet keys encrypted at rest and keeps a
// persistent registry of the accounts derived from them.
//
// Key files use go-ethereum's scrypt-encrypted JSON keystore format, so they
// stay interoperable with other Ethereum-family tooling. The account
// registry is a small gorm-backed table holding the non-secret metadata of
// each account (addresses, derivation path, signer type).
package keystore

import (
	"os"

	gethkeystore "github.com/ethereum/go-ethereum/accounts/keystore"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/erc7824/walletkit/pkg/keys"
	"github.com/erc7824/walletkit/pkg/log"
)

// ErrAccountNotFound is returned when no key file matches the requested
// address.
var ErrAccountNotFound = errors.New("account not found")

// KeyStore manages scrypt-encrypted key files in a directory.
type KeyStore struct {
	ks *gethkeystore.KeyStore
	lg log.Logger
}

// New opens (or creates) a keystore directory with the standard scrypt
// parameters.
func New(dir string, lg log.Logger) (*KeyStore, error) {
	return NewWithScrypt(dir, gethkeystore.StandardScryptN, gethkeystore.StandardScryptP, lg)
}

// NewWithScrypt opens a keystore with custom scrypt parameters. Tests use
// the light parameters to keep key derivation fast.
func NewWithScrypt(dir string, scryptN, scryptP int, lg log.Logger) (*KeyStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrap(err, "create keystore directory")
	}
	if lg == nil {
		lg = log.NewNoopLogger()
	}
	return &KeyStore{
		ks: gethkeystore.NewKeyStore(dir, scryptN, scryptP),
		lg: lg.WithName("keystore"),
	}, nil
}

// Import encrypts the key under the password and writes it to the store.
func (s *KeyStore) Import(key *keys.PrivateKey, password string) (keys.Address, error) {
	acct, err := s.ks.ImportECDSA(key.ECDSA(), password)
	if err != nil {
		return keys.Address{}, errors.Wrap(err, "import key")
	}
	addr := keys.NewAddress(acct.Address)
	s.lg.Info("imported key", "address", addr.Hex())
	return addr, nil
}

// ImportHex parses a hex-encoded secret and imports it.
func (s *KeyStore) ImportHex(secretHex, password string) (keys.Address, error) {
	key, err := keys.FromHex(secretHex)
	if err != nil {
		return keys.Address{}, err
	}
	return s.Import(key, password)
}

// Addresses lists the accounts stored in the keystore directory.
func (s *KeyStore) Addresses() []keys.Address {
	accounts := s.ks.Accounts()
	out := make([]keys.Address, 0, len(accounts))
	for _, acct := range accounts {
		out = append(out, keys.NewAddress(acct.Address))
	}
	return out
}

// Contains reports whether a key file exists for the address.
func (s *KeyStore) Contains(addr keys.Address) bool {
	for _, acct := range s.ks.Accounts() {
		if acct.Address == addr.Common() {
			return true
		}
	}
	return false
}

// Export decrypts the key file for the address and returns the private key.
func (s *KeyStore) Export(addr keys.Address, password string) (*keys.PrivateKey, error) {
	for _, acct := range s.ks.Accounts() {
		if acct.Address != addr.Common() {
			continue
		}
		keyJSON, err := s.ks.Export(acct, password, password)
		if err != nil {
			return nil, errors.Wrap(err, "export key")
		}
		decrypted, err := gethkeystore.DecryptKey(keyJSON, password)
		if err != nil {
			return nil, errors.Wrap(err, "decrypt key")
		}
		return keys.FromBytes(ethcrypto.FromECDSA(decrypted.PrivateKey))
	}
	return nil, ErrAccountNotFound
}
