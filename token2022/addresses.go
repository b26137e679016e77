package token2022

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// FindAssociatedTokenAddress derives the associated token account for a wallet
// and a Token-2022 mint. Deterministic: seeds are wallet + token program + mint
// under the associated token program.
func FindAssociatedTokenAddress(wallet, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	ata, bump, err := solana.FindProgramAddress(
		[][]byte{
			wallet.Bytes(),
			solana.Token2022ProgramID.Bytes(),
			mint.Bytes(),
		},
		solana.SPLAssociatedTokenAccountProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive associated token address: %w", err)
	}
	return ata, bump, nil
}
