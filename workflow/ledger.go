// Package workflow implements the three operator workflows: one-time token
// setup, minting supply, and updating the hook's winner wallet. Each workflow
// is a strictly sequential pipeline: every transaction is confirmed before the
// next one is built, because later steps reference accounts the earlier steps
// create.
package workflow

import (
	"context"
	"errors"

	"github.com/gagliardetto/solana-go"
)

// Ledger is the subset of chain operations the workflows depend on.
// *chainsol.Client satisfies it; tests substitute a stub.
type Ledger interface {
	Balance(ctx context.Context, account solana.PublicKey) (uint64, error)
	AccountExists(ctx context.Context, account solana.PublicKey) (bool, error)
	AccountData(ctx context.Context, account solana.PublicKey) ([]byte, error)
	MinimumRentBalance(ctx context.Context, space uint64) (uint64, error)
	TokenBalance(ctx context.Context, account solana.PublicKey) (string, error)
	Submit(ctx context.Context, instructions []solana.Instruction, payer solana.PublicKey, signers []solana.PrivateKey) (solana.Signature, error)
}

// Precondition failures, detected locally before any mutating network call.
var (
	ErrInsufficientFunds   = errors.New("insufficient SOL balance")
	ErrTokenAccountMissing = errors.New("destination token account does not exist")
	ErrNotAuthority        = errors.New("wallet is not the hook config authority")

	// ErrWinnerMismatch is an anomaly, not a rejection: the update transaction
	// confirmed but the re-fetched account does not hold the requested winner.
	ErrWinnerMismatch = errors.New("winner wallet verification failed after update")
)
