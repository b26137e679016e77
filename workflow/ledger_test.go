package workflow

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"paragonpool/chainsol"
)

// stubLedger - in-memory Ledger for exercising the workflows without a network
type stubLedger struct {
	balance         uint64
	rent            uint64
	accounts        map[solana.PublicKey][]byte
	tokenBalance    string
	tokenBalanceErr error
	submitErr       error
	submitted       [][]solana.Instruction
	onSubmit        func(instructions []solana.Instruction)
}

func newStubLedger() *stubLedger {
	return &stubLedger{
		balance:  MinSetupBalance,
		rent:     2_000_000,
		accounts: map[solana.PublicKey][]byte{},
	}
}

func (s *stubLedger) Balance(context.Context, solana.PublicKey) (uint64, error) {
	return s.balance, nil
}

func (s *stubLedger) AccountExists(_ context.Context, account solana.PublicKey) (bool, error) {
	_, ok := s.accounts[account]
	return ok, nil
}

func (s *stubLedger) AccountData(_ context.Context, account solana.PublicKey) ([]byte, error) {
	data, ok := s.accounts[account]
	if !ok {
		return nil, chainsol.ErrAccountNotFound
	}
	return data, nil
}

func (s *stubLedger) MinimumRentBalance(context.Context, uint64) (uint64, error) {
	return s.rent, nil
}

func (s *stubLedger) TokenBalance(context.Context, solana.PublicKey) (string, error) {
	return s.tokenBalance, s.tokenBalanceErr
}

func (s *stubLedger) Submit(_ context.Context, instructions []solana.Instruction, _ solana.PublicKey, _ []solana.PrivateKey) (solana.Signature, error) {
	if s.submitErr != nil {
		return solana.Signature{}, s.submitErr
	}
	s.submitted = append(s.submitted, instructions)
	if s.onSubmit != nil {
		s.onSubmit(instructions)
	}
	var sig solana.Signature
	sig[0] = byte(len(s.submitted))
	return sig, nil
}

func testKeypair(t *testing.T) solana.PrivateKey {
	t.Helper()
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return key
}
