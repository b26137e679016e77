package hookprogram

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookConfigRoundTrip(t *testing.T) {
	config := &HookConfig{
		Authority:    testAuthority,
		WinnerWallet: testPayer,
		Bump:         254,
	}

	data := EncodeHookConfig(config)
	require.Len(t, data, HookConfigLen)
	assert.Equal(t, []byte{0x89, 0x9b, 0x65, 0x5f, 0x8a, 0x48, 0x08, 0xb6}, data[:8])

	decoded, err := DecodeHookConfig(data)
	require.NoError(t, err)
	assert.Equal(t, config.Authority, decoded.Authority)
	assert.Equal(t, config.WinnerWallet, decoded.WinnerWallet)
	assert.Equal(t, config.Bump, decoded.Bump)
}

func TestDecodeHookConfig_WrongDiscriminator(t *testing.T) {
	data := make([]byte, HookConfigLen)
	copy(data, []byte("notanchor"))

	_, err := DecodeHookConfig(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "discriminator")
}

func TestDecodeHookConfig_TooShort(t *testing.T) {
	_, err := DecodeHookConfig([]byte{1, 2, 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}

func TestDecodeHookConfig_TrailingBytesTolerated(t *testing.T) {
	// Accounts can be allocated larger than the packed struct.
	config := &HookConfig{
		Authority:    testAuthority,
		WinnerWallet: solana.PublicKey{},
		Bump:         255,
	}
	data := append(EncodeHookConfig(config), 0, 0, 0, 0)

	decoded, err := DecodeHookConfig(data)
	require.NoError(t, err)
	assert.Equal(t, config.Authority, decoded.Authority)
	assert.True(t, decoded.WinnerWallet.IsZero())
}
