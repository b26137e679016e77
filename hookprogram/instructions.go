package hookprogram

import (
	"crypto/sha256"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// getAnchorDiscriminator - Anchor selects instructions by
// sha256("global:<method_name>")[:8]
func getAnchorDiscriminator(methodName string) []byte {
	hash := sha256.Sum256([]byte("global:" + methodName))
	return hash[:8]
}

// Anchor instruction discriminators
var (
	DiscriminatorInitializeHookConfig           = getAnchorDiscriminator("initialize_hook_config")
	DiscriminatorInitializeExtraAccountMetaList = getAnchorDiscriminator("initialize_extra_account_meta_list")
	DiscriminatorUpdateWinnerWallet             = getAnchorDiscriminator("update_winner_wallet")
)

// DeriveHookConfigPDA derives the hook config address. One per hook program;
// the seed is a fixed literal.
func DeriveHookConfigPDA(programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	pda, bump, err := solana.FindProgramAddress(
		[][]byte{SeedHookConfig},
		programID,
	)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive hook config PDA: %w", err)
	}
	return pda, bump, nil
}

// DeriveExtraAccountMetaListPDA derives the extra account meta list address for
// a mint. One per mint; must exist before any transfer of that mint can succeed.
func DeriveExtraAccountMetaListPDA(programID, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	pda, bump, err := solana.FindProgramAddress(
		[][]byte{
			SeedExtraAccountMetas,
			mint.Bytes(),
		},
		programID,
	)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive extra account meta list PDA: %w", err)
	}
	return pda, bump, nil
}

// BuildInitializeHookConfigInstruction - record the hook authority and the
// initial winner wallet in the hook config PDA. The authority is set once here.
func BuildInitializeHookConfigInstruction(
	programID solana.PublicKey,
	payer solana.PublicKey,
	authority solana.PublicKey,
	winnerWallet solana.PublicKey,
) (solana.Instruction, error) {
	hookConfig, _, err := DeriveHookConfigPDA(programID)
	if err != nil {
		return nil, err
	}

	data := make([]byte, 0, 8+32+32)
	data = append(data, DiscriminatorInitializeHookConfig...)
	data = append(data, authority.Bytes()...)
	data = append(data, winnerWallet.Bytes()...)

	accounts := solana.AccountMetaSlice{
		solana.Meta(hookConfig).WRITE(),
		solana.Meta(payer).SIGNER().WRITE(),
		solana.Meta(solana.SystemProgramID),
	}

	return solana.NewInstruction(programID, accounts, data), nil
}

// BuildInitializeExtraAccountMetaListInstruction - create the per-mint account
// list the token program hands to the hook on every transfer. References the
// hook config, which must already be initialized.
func BuildInitializeExtraAccountMetaListInstruction(
	programID solana.PublicKey,
	payer solana.PublicKey,
	mint solana.PublicKey,
) (solana.Instruction, error) {
	metaList, _, err := DeriveExtraAccountMetaListPDA(programID, mint)
	if err != nil {
		return nil, err
	}
	hookConfig, _, err := DeriveHookConfigPDA(programID)
	if err != nil {
		return nil, err
	}

	data := DiscriminatorInitializeExtraAccountMetaList

	accounts := solana.AccountMetaSlice{
		solana.Meta(payer).SIGNER().WRITE(),
		solana.Meta(metaList).WRITE(),
		solana.Meta(mint),
		solana.Meta(hookConfig),
		solana.Meta(solana.SystemProgramID),
	}

	return solana.NewInstruction(programID, accounts, data), nil
}

// BuildUpdateWinnerInstruction - point the hook's fee routing at a new winner
// wallet. The stored authority must sign; the program enforces this with a
// has_one constraint, and callers should verify locally first to avoid fees.
func BuildUpdateWinnerInstruction(
	programID solana.PublicKey,
	authority solana.PublicKey,
	newWinner solana.PublicKey,
) (solana.Instruction, error) {
	hookConfig, _, err := DeriveHookConfigPDA(programID)
	if err != nil {
		return nil, err
	}

	data := make([]byte, 0, 8+32)
	data = append(data, DiscriminatorUpdateWinnerWallet...)
	data = append(data, newWinner.Bytes()...)

	accounts := solana.AccountMetaSlice{
		solana.Meta(hookConfig).WRITE(),
		solana.Meta(authority).SIGNER(),
	}

	return solana.NewInstruction(programID, accounts, data), nil
}
