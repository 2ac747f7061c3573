package keystore

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/erc7824/walletkit/pkg/keys"
	"github.com/erc7824/walletkit/pkg/log"
)

// SignerType names where an account's key material lives.
type SignerType string

const (
	SignerTypeLocal    SignerType = "local"
	SignerTypeHardware SignerType = "hardware"
	SignerTypeRemote   SignerType = "remote"
)

// DatabaseConfig selects the registry backend.
type DatabaseConfig struct {
	// Driver is "sqlite" (default) or "postgres".
	Driver string `yaml:"driver" env:"DRIVER" env-default:"sqlite"`
	// DSN is the driver-specific source name. Empty selects an in-memory
	// sqlite database.
	DSN string `yaml:"dsn" env:"DSN"`
}

// Account is the persisted, non-secret metadata of a wallet account.
type Account struct {
	ID             string         `gorm:"primaryKey"`
	Name           string         `gorm:"index"`
	Address        string         `gorm:"uniqueIndex;not null"`
	Bech32Address  string         `gorm:"index"`
	DerivationPath string         ``
	SignerType     SignerType     `gorm:"not null"`
	Metadata       datatypes.JSON ``
	CreatedAt      time.Time      ``
}

// ConnectToDB opens the registry database and migrates its schema.
func ConnectToDB(cnf DatabaseConfig) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cnf.Driver {
	case "postgres":
		dial = postgres.Open(cnf.DSN)
	case "sqlite", "":
		dsn := cnf.DSN
		if dsn == "" {
			dsn = "file::memory:?cache=shared"
		} else {
			dsn = fmt.Sprintf("file:%s?cache=shared", dsn)
		}
		dial = sqlite.Open(dsn)
	default:
		return nil, errors.Errorf("unsupported driver: %s", cnf.Driver)
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open registry database")
	}
	if err := db.AutoMigrate(&Account{}); err != nil {
		return nil, errors.Wrap(err, "migrate registry schema")
	}
	return db, nil
}

// Registry persists account metadata.
type Registry struct {
	db *gorm.DB
	lg log.Logger
}

// NewRegistry wraps an open registry database.
func NewRegistry(db *gorm.DB, lg log.Logger) *Registry {
	if lg == nil {
		lg = log.NewNoopLogger()
	}
	return &Registry{db: db, lg: lg.WithName("registry")}
}

// Register stores a new account record. A missing ID is filled with a fresh
// uuid, a missing bech32 form is derived from the hex address under the
// default prefix.
func (r *Registry) Register(acct Account) (Account, error) {
	if acct.ID == "" {
		acct.ID = uuid.NewString()
	}
	if acct.Address == "" {
		return Account{}, errors.New("account address is required")
	}
	addr, err := keys.AddressFromHex(acct.Address)
	if err != nil {
		return Account{}, errors.Wrap(err, "invalid account address")
	}
	acct.Address = addr.Hex()
	if acct.Bech32Address == "" {
		bech, err := addr.Bech32(keys.DefaultBech32Prefix)
		if err != nil {
			return Account{}, err
		}
		acct.Bech32Address = bech
	}
	if acct.SignerType == "" {
		acct.SignerType = SignerTypeLocal
	}

	if err := r.db.Create(&acct).Error; err != nil {
		return Account{}, errors.Wrap(err, "store account")
	}
	r.lg.Info("registered account", "address", acct.Address, "signer_type", string(acct.SignerType))
	return acct, nil
}

// GetByAddress looks an account up by its hex address (any casing, optional
// 0x prefix).
func (r *Registry) GetByAddress(address string) (Account, error) {
	addr, err := keys.AddressFromHex(address)
	if err != nil {
		return Account{}, errors.Wrap(err, "invalid account address")
	}

	var acct Account
	err = r.db.Where("address = ?", addr.Hex()).First(&acct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Account{}, ErrAccountNotFound
	}
	if err != nil {
		return Account{}, errors.Wrap(err, "load account")
	}
	return acct, nil
}

// List returns all registered accounts ordered by creation time.
func (r *Registry) List() ([]Account, error) {
	var accounts []Account
	if err := r.db.Order("created_at").Find(&accounts).Error; err != nil {
		return nil, errors.Wrap(err, "list accounts")
	}
	return accounts, nil
}
