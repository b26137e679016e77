// Package hookprogram is the client-side interface of the Paragon transfer hook
// program: PDA derivation, Anchor instruction encoding and account state layout
// for the two accounts this toolkit initializes (hook config and the per-mint
// extra account meta list).
package hookprogram

import "github.com/gagliardetto/solana-go"

// ProgramID - transfer hook program (from the program's declare_id)
var ProgramID = solana.MustPublicKeyFromBase58("HookLb6XLcGwzaVWxk9T8yWbmejbLX4xwUxRp1zipNN")

// PDA Seeds
var (
	SeedHookConfig        = []byte("hook-config")
	SeedExtraAccountMetas = []byte("extra-account-metas")
)

// HookConfigLen - discriminator(8) + authority(32) + winner_wallet(32) + bump(1)
const HookConfigLen = 8 + 32 + 32 + 1
