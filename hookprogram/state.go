package hookprogram

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// HookConfig - on-chain hook configuration. The transfer hook reads
// WinnerWallet on every transfer to route the fee; Authority gates updates.
type HookConfig struct {
	Authority    solana.PublicKey
	WinnerWallet solana.PublicKey
	Bump         uint8
}

// accountDiscriminator - Anchor account data starts with
// sha256("account:<StructName>")[:8]
func accountDiscriminator(name string) []byte {
	hash := sha256.Sum256([]byte("account:" + name))
	return hash[:8]
}

var hookConfigDiscriminator = accountDiscriminator("HookConfig")

// DecodeHookConfig deserializes a fetched hook config account. The account
// discriminator is checked so an unrelated account at the same address is
// reported instead of yielding garbage fields.
func DecodeHookConfig(data []byte) (*HookConfig, error) {
	if len(data) < HookConfigLen {
		return nil, fmt.Errorf("hook config account too short: %d bytes, want %d", len(data), HookConfigLen)
	}
	if !bytes.Equal(data[:8], hookConfigDiscriminator) {
		return nil, fmt.Errorf("account is not a HookConfig (discriminator mismatch)")
	}

	var config HookConfig
	decoder := bin.NewBorshDecoder(data[8:])
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode hook config: %w", err)
	}
	return &config, nil
}

// EncodeHookConfig serializes a hook config the way the program stores it.
// The workflows only read this account; encoding exists for tests and tooling.
func EncodeHookConfig(config *HookConfig) []byte {
	data := make([]byte, 0, HookConfigLen)
	data = append(data, hookConfigDiscriminator...)
	data = append(data, config.Authority.Bytes()...)
	data = append(data, config.WinnerWallet.Bytes()...)
	data = append(data, config.Bump)
	return data
}
