package chainsol

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	confirm "github.com/gagliardetto/solana-go/rpc/sendAndConfirmTransaction"
	"github.com/sirupsen/logrus"
)

// Submit - build, sign and submit one atomic transaction, then block until the
// ledger confirms it. All instructions succeed or none do. No automatic retry:
// an expired blockhash or timeout surfaces to the caller, who decides whether
// to re-run (safe, since confirmed steps fail fast as already-initialized).
func (c *Client) Submit(
	ctx context.Context,
	instructions []solana.Instruction,
	payer solana.PublicKey,
	signers []solana.PrivateKey,
) (solana.Signature, error) {
	recent, err := c.http.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to get recent blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(
		instructions,
		recent.Value.Blockhash,
		solana.TransactionPayer(payer),
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	// Every account mutated with authorization needs its key here.
	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		for i := range signers {
			if signers[i].PublicKey().Equals(key) {
				return &signers[i]
			}
		}
		return nil
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	sig, err := confirm.SendAndConfirmTransaction(ctx, c.http, c.ws, tx)
	if err != nil {
		for _, line := range ExtractLogMessages(err) {
			logrus.WithField("program_log", line).Debug("transaction log")
		}
		return solana.Signature{}, fmt.Errorf("transaction failed: %s: %w", ParseProgramError(err), err)
	}
	return sig, nil
}
