package workflow

import (
	"context"
	"fmt"
	"math"

	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"

	"paragonpool/token2022"
)

// MintParams - inputs for minting supply to an existing token account
type MintParams struct {
	Mint      solana.PublicKey
	Recipient solana.PublicKey // zero value mints to the authority's own wallet
	Amount    uint64           // human-readable token units, scaled by decimals here
	Decimals  uint8
	Authority solana.PrivateKey // mint authority, also the fee payer
}

type MintResult struct {
	Signature    solana.Signature
	TokenAccount solana.PublicKey
	BaseAmount   uint64
	Balance      string // post-mint balance; empty if the read failed
}

// ScaleAmount converts a human-readable amount to base units
// (amount x 10^decimals), rejecting overflow.
func ScaleAmount(amount uint64, decimals uint8) (uint64, error) {
	scaled := amount
	for i := uint8(0); i < decimals; i++ {
		if scaled > math.MaxUint64/10 {
			return 0, fmt.Errorf("amount %d overflows at %d decimals", amount, decimals)
		}
		scaled *= 10
	}
	return scaled, nil
}

// MintTokens mints supply to the recipient's associated token account. The
// account must already exist: minting never auto-creates it, so every use of
// the mint authority stays explicit and auditable.
func MintTokens(ctx context.Context, ledger Ledger, params MintParams) (*MintResult, error) {
	authority := params.Authority.PublicKey()
	recipient := params.Recipient
	if recipient.IsZero() {
		recipient = authority
	}
	log := logrus.WithFields(logrus.Fields{
		"workflow":  "mint",
		"mint":      params.Mint,
		"recipient": recipient,
	})

	tokenAccount, _, err := token2022.FindAssociatedTokenAddress(recipient, params.Mint)
	if err != nil {
		return nil, err
	}

	exists, err := ledger.AccountExists(ctx, tokenAccount)
	if err != nil {
		return nil, fmt.Errorf("failed to check token account: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s (run setup, or create the recipient's token account first)", ErrTokenAccountMissing, tokenAccount)
	}

	baseAmount, err := ScaleAmount(params.Amount, params.Decimals)
	if err != nil {
		return nil, err
	}
	log.WithField("base_amount", baseAmount).Info("minting tokens")

	ix := token2022.BuildMintToInstruction(params.Mint, tokenAccount, authority, baseAmount)
	sig, err := ledger.Submit(ctx, []solana.Instruction{ix}, authority, []solana.PrivateKey{params.Authority})
	if err != nil {
		return nil, fmt.Errorf("mint transaction failed: %w", err)
	}

	result := &MintResult{
		Signature:    sig,
		TokenAccount: tokenAccount,
		BaseAmount:   baseAmount,
	}

	// Best effort only: the mint already succeeded, a failed balance read just
	// suppresses the display.
	if balance, err := ledger.TokenBalance(ctx, tokenAccount); err != nil {
		log.WithError(err).Warn("could not fetch updated token balance")
	} else {
		result.Balance = balance
	}

	return result, nil
}
