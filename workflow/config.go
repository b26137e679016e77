package workflow

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/gagliardetto/solana-go"

	"paragonpool/token2022"
)

// TokenConfig - operator-edited token parameters shared by the workflows
type TokenConfig struct {
	Name        string
	Symbol      string
	URI         string
	Description string
	Website     string
	Decimals    uint8
}

// Metadata builds the inline metadata payload: base fields plus the
// description and website as additional (key, value) pairs.
func (c TokenConfig) Metadata() token2022.Metadata {
	return token2022.Metadata{
		Name:   c.Name,
		Symbol: c.Symbol,
		URI:    c.URI,
		Additional: [][2]string{
			{"description", c.Description},
			{"website", c.Website},
		},
	}
}

// Validate checks every configuration string before any network call. The
// config is hand-edited, so a stray character or truncated value must fail
// here, not on the ledger.
func (c TokenConfig) Validate() error {
	if err := c.Metadata().Validate(); err != nil {
		return err
	}
	if len(c.Symbol) > 10 {
		return fmt.Errorf("symbol %q is too long (max 10 characters)", c.Symbol)
	}
	if err := validateURL("uri", c.URI); err != nil {
		return err
	}
	if err := validateURL("website", c.Website); err != nil {
		return err
	}
	return nil
}

func validateURL(field, value string) error {
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", field, err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("%s must be an http(s) URL, got scheme %q", field, u.Scheme)
	}
	return nil
}

// LoadWallet reads the operator keypair from SOLANA_KEYPAIR, falling back to
// the standard solana CLI location.
func LoadWallet() (solana.PrivateKey, error) {
	path := os.Getenv("SOLANA_KEYPAIR")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate home directory: %w", err)
		}
		path = filepath.Join(home, ".config", "solana", "id.json")
	}

	key, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet keypair from %s: %w", path, err)
	}
	return key, nil
}
