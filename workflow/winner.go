package workflow

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"

	"paragonpool/hookprogram"
)

// UpdateWinnerParams - inputs for the winner-update workflow. NewWinner is the
// raw operator-edited string; it is validated here before any network call.
type UpdateWinnerParams struct {
	HookProgramID solana.PublicKey
	NewWinner     string
	Authority     solana.PrivateKey
}

type UpdateWinnerResult struct {
	Signature      solana.Signature
	HookConfig     solana.PublicKey
	Authority      solana.PublicKey
	PreviousWinner solana.PublicKey
	NewWinner      solana.PublicKey
}

// UpdateWinner points the hook's fee routing at a new winner wallet.
//
// The stored authority is compared against the caller before anything is
// submitted: the program would reject a wrong signer anyway, but only after
// fees were paid, and the local check gives a precise diagnostic. After the
// update confirms, the account is re-fetched and the stored winner compared
// to the requested one; a mismatch there is an anomaly, not a rejection.
func UpdateWinner(ctx context.Context, ledger Ledger, params UpdateWinnerParams) (*UpdateWinnerResult, error) {
	newWinner, err := solana.PublicKeyFromBase58(params.NewWinner)
	if err != nil {
		return nil, fmt.Errorf("invalid winner wallet address %q: %w", params.NewWinner, err)
	}

	hookConfig, _, err := hookprogram.DeriveHookConfigPDA(params.HookProgramID)
	if err != nil {
		return nil, err
	}
	log := logrus.WithFields(logrus.Fields{
		"workflow":    "update-winner",
		"hook_config": hookConfig,
	})

	data, err := ledger.AccountData(ctx, hookConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hook config (was setup completed?): %w", err)
	}
	current, err := hookprogram.DecodeHookConfig(data)
	if err != nil {
		return nil, err
	}

	caller := params.Authority.PublicKey()
	if !current.Authority.Equals(caller) {
		return nil, fmt.Errorf("%w: authority is %s, caller is %s", ErrNotAuthority, current.Authority, caller)
	}

	log.WithFields(logrus.Fields{
		"current_winner": current.WinnerWallet,
		"new_winner":     newWinner,
	}).Info("updating winner wallet")

	ix, err := hookprogram.BuildUpdateWinnerInstruction(params.HookProgramID, caller, newWinner)
	if err != nil {
		return nil, err
	}
	sig, err := ledger.Submit(ctx, []solana.Instruction{ix}, caller, []solana.PrivateKey{params.Authority})
	if err != nil {
		return nil, fmt.Errorf("winner update transaction failed: %w", err)
	}

	// Read-after-write verification.
	data, err = ledger.AccountData(ctx, hookConfig)
	if err != nil {
		return nil, fmt.Errorf("update confirmed but verification read failed: %w", err)
	}
	updated, err := hookprogram.DecodeHookConfig(data)
	if err != nil {
		return nil, fmt.Errorf("update confirmed but verification failed: %w", err)
	}
	if !updated.WinnerWallet.Equals(newWinner) {
		return nil, fmt.Errorf("%w: stored winner is %s, expected %s", ErrWinnerMismatch, updated.WinnerWallet, newWinner)
	}

	return &UpdateWinnerResult{
		Signature:      sig,
		HookConfig:     hookConfig,
		Authority:      updated.Authority,
		PreviousWinner: current.WinnerWallet,
		NewWinner:      updated.WinnerWallet,
	}, nil
}
