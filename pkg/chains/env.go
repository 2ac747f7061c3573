package chains

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/erc7824/walletkit/pkg/keystore"
	"github.com/erc7824/walletkit/pkg/log"
)

// Config is the environment configuration of an SDK consumer.
type Config struct {
	// ConfigDir is the directory holding chains.yaml.
	ConfigDir string `env:"WALLETKIT_CONFIG_DIR" env-default:"config"`
	// Chain selects the default chain by its cosmos chain ID.
	Chain string `env:"WALLETKIT_CHAIN" env-default:"injective-1"`
	// KeystoreDir is where encrypted key files are stored.
	KeystoreDir string `env:"WALLETKIT_KEYSTORE_DIR" env-default:"keystore"`

	Log      log.Config              `env-prefix:"WALLETKIT_LOG_"`
	Database keystore.DatabaseConfig `env-prefix:"WALLETKIT_DB_"`
}

// LoadConfig reads configuration from the environment, after loading a .env
// file when one is present.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "read environment")
	}
	return cfg, nil
}
