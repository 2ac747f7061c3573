// Package chains holds the chain registry and environment configuration of
// the wallet SDK.
//
// Chain parameters (bech32 prefix, chain IDs, derivation path) are loaded
// from a chains.yaml file and handed to callers as explicit values; nothing
// in the SDK reads them through hidden module state.
package chains

import (
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/erc7824/walletkit/pkg/keys"
)

const chainsFileName = "chains.yaml"

var validate = validator.New(validator.WithRequiredStructEnabled())

// ChainsConfig is the root structure of the chains.yaml registry.
type ChainsConfig struct {
	Chains []ChainConfig `yaml:"chains" validate:"required,min=1,dive"`
}

// ChainConfig describes one supported chain.
type ChainConfig struct {
	// Name is the human-readable chain name (e.g. "Injective Mainnet")
	Name string `yaml:"name" validate:"required"`
	// ChainID is the cosmos-side chain identifier (e.g. "injective-1")
	ChainID string `yaml:"chain_id" validate:"required"`
	// EthChainID is the EVM-side numeric chain ID used in EIP-712 domains
	EthChainID int64 `yaml:"eth_chain_id" validate:"gte=0"`
	// Bech32Prefix is the human-readable part of bech32 addresses
	Bech32Prefix string `yaml:"bech32_prefix" validate:"required"`
	// DerivationPath overrides the module default when set
	DerivationPath string `yaml:"derivation_path"`
	// Disabled excludes the chain from lookups
	Disabled bool `yaml:"disabled"`
}

// LoadChains reads and validates <configDirPath>/chains.yaml. Chains without
// an explicit derivation path inherit the module default.
func LoadChains(configDirPath string) (ChainsConfig, error) {
	path := filepath.Join(configDirPath, chainsFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return ChainsConfig{}, errors.Wrapf(err, "read %s", path)
	}

	var cfg ChainsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ChainsConfig{}, errors.Wrapf(err, "parse %s", path)
	}

	for i := range cfg.Chains {
		if cfg.Chains[i].DerivationPath == "" {
			cfg.Chains[i].DerivationPath = keys.DefaultDerivationPath
		}
	}
	if err := validate.Struct(cfg); err != nil {
		return ChainsConfig{}, errors.Wrapf(err, "validate %s", path)
	}
	return cfg, nil
}

// Get returns the enabled chain with the given cosmos chain ID.
func (c ChainsConfig) Get(chainID string) (ChainConfig, bool) {
	for _, chain := range c.Chains {
		if chain.ChainID == chainID && !chain.Disabled {
			return chain, true
		}
	}
	return ChainConfig{}, false
}
