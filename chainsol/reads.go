package chainsol

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// ErrAccountNotFound is returned by AccountData when the account does not
// exist on the ledger.
var ErrAccountNotFound = errors.New("account not found")

// Balance - native balance in lamports
func (c *Client) Balance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	out, err := c.http.GetBalance(ctx, account, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return out.Value, nil
}

// AccountExists - existence lookup used for workflow preconditions and for
// skipping already-initialized setup steps
func (c *Client) AccountExists(ctx context.Context, account solana.PublicKey) (bool, error) {
	info, err := c.http.GetAccountInfo(ctx, account)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get account info: %w", err)
	}
	return info != nil && info.Value != nil, nil
}

// AccountData - raw account data, ErrAccountNotFound if the account is missing
func (c *Client) AccountData(ctx context.Context, account solana.PublicKey) ([]byte, error) {
	info, err := c.http.GetAccountInfo(ctx, account)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account info: %w", err)
	}
	if info == nil || info.Value == nil {
		return nil, ErrAccountNotFound
	}
	return info.Value.Data.GetBinary(), nil
}

// MinimumRentBalance - lamports required for an account of the given size to be
// rent exempt, from the ledger's current rent schedule
func (c *Client) MinimumRentBalance(ctx context.Context, space uint64) (uint64, error) {
	lamports, err := c.http.GetMinimumBalanceForRentExemption(ctx, space, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to get rent exemption balance: %w", err)
	}
	return lamports, nil
}

// TokenBalance - human-readable token balance of a token account
func (c *Client) TokenBalance(ctx context.Context, account solana.PublicKey) (string, error) {
	out, err := c.http.GetTokenAccountBalance(ctx, account, rpc.CommitmentConfirmed)
	if err != nil {
		return "", fmt.Errorf("failed to get token balance: %w", err)
	}
	if out == nil || out.Value == nil {
		return "", fmt.Errorf("no token balance returned")
	}
	return out.Value.UiAmountString, nil
}
