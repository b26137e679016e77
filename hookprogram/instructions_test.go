package hookprogram

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPayer     = solana.MustPublicKeyFromBase58("BgK6YKvDmriwY9p9hBQFmHDc3fnLsrMNxaxHfd1iF4DG")
	testAuthority = solana.MustPublicKeyFromBase58("4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T")
	testMint      = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
)

// Anchor discriminators are sha256("global:<method>")[:8]; pinned here so a
// rename of a program method shows up as a test failure, not a silent
// on-chain rejection.
func TestAnchorDiscriminators(t *testing.T) {
	assert.Equal(t, []byte{0x90, 0xef, 0x11, 0x55, 0xe4, 0x30, 0x36, 0x2b}, DiscriminatorInitializeHookConfig)
	assert.Equal(t, []byte{0x5c, 0xc5, 0xae, 0xc5, 0x29, 0x7c, 0x13, 0x03}, DiscriminatorInitializeExtraAccountMetaList)
	assert.Equal(t, []byte{0xd2, 0xb9, 0x8d, 0x06, 0x3b, 0xc3, 0x04, 0xa4}, DiscriminatorUpdateWinnerWallet)
}

func TestDeriveHookConfigPDA_Deterministic(t *testing.T) {
	first, bump1, err := DeriveHookConfigPDA(ProgramID)
	require.NoError(t, err)
	second, bump2, err := DeriveHookConfigPDA(ProgramID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, bump1, bump2)
	assert.False(t, first.IsOnCurve(), "PDA must be off-curve")
}

func TestDeriveExtraAccountMetaListPDA_PerMint(t *testing.T) {
	forMint, _, err := DeriveExtraAccountMetaListPDA(ProgramID, testMint)
	require.NoError(t, err)
	forOther, _, err := DeriveExtraAccountMetaListPDA(ProgramID, testAuthority)
	require.NoError(t, err)

	assert.NotEqual(t, forMint, forOther, "meta list is one per mint")
}

func TestBuildInitializeHookConfigInstruction(t *testing.T) {
	winner := testAuthority
	ix, err := BuildInitializeHookConfigInstruction(ProgramID, testPayer, testAuthority, winner)
	require.NoError(t, err)

	assert.Equal(t, ProgramID, ix.ProgramID())

	data, err := ix.Data()
	require.NoError(t, err)
	require.Len(t, data, 72)
	assert.Equal(t, DiscriminatorInitializeHookConfig, data[:8])
	assert.Equal(t, testAuthority.Bytes(), data[8:40])
	assert.Equal(t, winner.Bytes(), data[40:72])

	hookConfig, _, err := DeriveHookConfigPDA(ProgramID)
	require.NoError(t, err)

	accounts := ix.Accounts()
	require.Len(t, accounts, 3)
	assert.Equal(t, hookConfig, accounts[0].PublicKey)
	assert.True(t, accounts[0].IsWritable)
	assert.Equal(t, testPayer, accounts[1].PublicKey)
	assert.True(t, accounts[1].IsSigner)
	assert.True(t, accounts[1].IsWritable)
	assert.Equal(t, solana.SystemProgramID, accounts[2].PublicKey)
}

func TestBuildInitializeExtraAccountMetaListInstruction(t *testing.T) {
	ix, err := BuildInitializeExtraAccountMetaListInstruction(ProgramID, testPayer, testMint)
	require.NoError(t, err)

	data, err := ix.Data()
	require.NoError(t, err)
	assert.Equal(t, DiscriminatorInitializeExtraAccountMetaList, data)

	metaList, _, err := DeriveExtraAccountMetaListPDA(ProgramID, testMint)
	require.NoError(t, err)
	hookConfig, _, err := DeriveHookConfigPDA(ProgramID)
	require.NoError(t, err)

	accounts := ix.Accounts()
	require.Len(t, accounts, 5)
	assert.Equal(t, testPayer, accounts[0].PublicKey)
	assert.True(t, accounts[0].IsSigner)
	assert.Equal(t, metaList, accounts[1].PublicKey)
	assert.True(t, accounts[1].IsWritable)
	assert.Equal(t, testMint, accounts[2].PublicKey)
	assert.Equal(t, hookConfig, accounts[3].PublicKey)
	assert.Equal(t, solana.SystemProgramID, accounts[4].PublicKey)
}

func TestBuildUpdateWinnerInstruction(t *testing.T) {
	newWinner := testMint
	ix, err := BuildUpdateWinnerInstruction(ProgramID, testAuthority, newWinner)
	require.NoError(t, err)

	data, err := ix.Data()
	require.NoError(t, err)
	require.Len(t, data, 40)
	assert.Equal(t, DiscriminatorUpdateWinnerWallet, data[:8])
	assert.Equal(t, newWinner.Bytes(), data[8:40])

	accounts := ix.Accounts()
	require.Len(t, accounts, 2)
	assert.True(t, accounts[0].IsWritable)
	assert.False(t, accounts[0].IsSigner)
	assert.Equal(t, testAuthority, accounts[1].PublicKey)
	assert.True(t, accounts[1].IsSigner)
	assert.False(t, accounts[1].IsWritable)
}
