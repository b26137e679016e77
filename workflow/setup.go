package workflow

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/sirupsen/logrus"

	"paragonpool/hookprogram"
	"paragonpool/token2022"
)

// MinSetupBalance - 0.1 SOL. Setup creates several rent-exempt accounts; below
// this the run would fail mid-way after paying fees, so it is rejected locally.
const MinSetupBalance uint64 = 100_000_000

// SetupParams - inputs for the one-time token creation
type SetupParams struct {
	Token         TokenConfig
	HookProgramID solana.PublicKey
	Payer         solana.PrivateKey
	Authority     solana.PublicKey // allowed to update the winner later
	InitialWinner solana.PublicKey
}

// SetupResult - addresses created by setup plus the confirmed signatures,
// in step order
type SetupResult struct {
	Mint                 solana.PublicKey
	TokenAccount         solana.PublicKey
	HookConfig           solana.PublicKey
	ExtraAccountMetaList solana.PublicKey
	Signatures           []solana.Signature
}

// Setup performs the one-time token creation as four sequential transactions:
//
//  1. create the mint account sized for its extensions, initialize the
//     transfer-hook and metadata-pointer extensions, initialize the mint, and
//     write the inline metadata - all atomic, because extensions must exist
//     before initialize-mint and the account must be funded for the metadata
//     it is about to hold
//  2. initialize the hook config PDA (authority + initial winner)
//  3. initialize the extra account meta list for this mint
//  4. create the operator's associated token account
//
// Steps 2-4 are skipped when their target account already exists, so a run
// interrupted after step 1 can be resumed. Confirmed steps are never rolled
// back; they are valid on-ledger state.
func Setup(ctx context.Context, ledger Ledger, params SetupParams) (*SetupResult, error) {
	if err := params.Token.Validate(); err != nil {
		return nil, fmt.Errorf("invalid token config: %w", err)
	}

	payer := params.Payer.PublicKey()
	log := logrus.WithField("workflow", "setup")

	balance, err := ledger.Balance(ctx, payer)
	if err != nil {
		return nil, fmt.Errorf("failed to check payer balance: %w", err)
	}
	if balance < MinSetupBalance {
		return nil, fmt.Errorf("%w: have %d lamports, need at least %d", ErrInsufficientFunds, balance, MinSetupBalance)
	}

	mintKey, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate mint keypair: %w", err)
	}
	mint := mintKey.PublicKey()

	extensions := []token2022.ExtensionType{
		token2022.ExtensionMetadataPointer,
		token2022.ExtensionTransferHook,
	}
	mintLen, err := token2022.MintLen(extensions)
	if err != nil {
		return nil, err
	}
	meta := params.Token.Metadata()

	// Fund the account for the mint layout plus the metadata it will hold;
	// the create-account space covers only the fixed layout, the token program
	// grows the account when the metadata is written.
	lamports, err := ledger.MinimumRentBalance(ctx, mintLen+meta.Space())
	if err != nil {
		return nil, fmt.Errorf("failed to query rent schedule: %w", err)
	}

	log.WithFields(logrus.Fields{
		"mint":     mint,
		"space":    mintLen,
		"lamports": lamports,
	}).Info("creating token mint")

	freezeAuthority := payer
	instructions := []solana.Instruction{
		system.NewCreateAccountInstruction(lamports, mintLen, solana.Token2022ProgramID, payer, mint).Build(),
		token2022.BuildInitializeTransferHookInstruction(mint, payer, params.HookProgramID),
		token2022.BuildInitializeMetadataPointerInstruction(mint, payer, mint),
		token2022.BuildInitializeMintInstruction(mint, params.Token.Decimals, payer, &freezeAuthority),
		token2022.BuildInitializeMetadataInstruction(mint, payer, payer, meta),
	}
	for _, kv := range meta.Additional {
		instructions = append(instructions, token2022.BuildUpdateMetadataFieldInstruction(mint, payer, kv[0], kv[1]))
	}

	result := &SetupResult{Mint: mint}

	sig, err := ledger.Submit(ctx, instructions, payer, []solana.PrivateKey{params.Payer, mintKey})
	if err != nil {
		return nil, fmt.Errorf("setup step 1 (create mint) failed: %w", err)
	}
	result.Signatures = append(result.Signatures, sig)
	log.WithField("signature", sig).Info("mint created and initialized")

	// Step 2: hook config. The PDA is global per hook program, so a previous
	// run (or another mint on the same hook) may have initialized it already.
	hookConfig, _, err := hookprogram.DeriveHookConfigPDA(params.HookProgramID)
	if err != nil {
		return nil, err
	}
	result.HookConfig = hookConfig

	exists, err := ledger.AccountExists(ctx, hookConfig)
	if err != nil {
		return nil, fmt.Errorf("setup step 2 (hook config) failed: %w", err)
	}
	if exists {
		log.WithField("hook_config", hookConfig).Info("hook config already initialized, skipping")
	} else {
		ix, err := hookprogram.BuildInitializeHookConfigInstruction(params.HookProgramID, payer, params.Authority, params.InitialWinner)
		if err != nil {
			return nil, err
		}
		sig, err = ledger.Submit(ctx, []solana.Instruction{ix}, payer, []solana.PrivateKey{params.Payer})
		if err != nil {
			return nil, fmt.Errorf("setup step 2 (hook config) failed: %w", err)
		}
		result.Signatures = append(result.Signatures, sig)
		log.WithField("signature", sig).Info("hook config initialized")
	}

	// Step 3: extra account meta list, one per mint, referencing the hook config.
	metaList, _, err := hookprogram.DeriveExtraAccountMetaListPDA(params.HookProgramID, mint)
	if err != nil {
		return nil, err
	}
	result.ExtraAccountMetaList = metaList

	ix, err := hookprogram.BuildInitializeExtraAccountMetaListInstruction(params.HookProgramID, payer, mint)
	if err != nil {
		return nil, err
	}
	sig, err = ledger.Submit(ctx, []solana.Instruction{ix}, payer, []solana.PrivateKey{params.Payer})
	if err != nil {
		return nil, fmt.Errorf("setup step 3 (extra account meta list) failed: %w", err)
	}
	result.Signatures = append(result.Signatures, sig)
	log.WithField("signature", sig).Info("extra account meta list initialized")

	// Step 4: the operator's associated token account for the new mint.
	tokenAccount, _, err := token2022.FindAssociatedTokenAddress(payer, mint)
	if err != nil {
		return nil, err
	}
	result.TokenAccount = tokenAccount

	ataIx, err := token2022.BuildCreateAssociatedTokenAccountInstruction(payer, payer, mint)
	if err != nil {
		return nil, err
	}
	sig, err = ledger.Submit(ctx, []solana.Instruction{ataIx}, payer, []solana.PrivateKey{params.Payer})
	if err != nil {
		return nil, fmt.Errorf("setup step 4 (token account) failed: %w", err)
	}
	result.Signatures = append(result.Signatures, sig)
	log.WithField("signature", sig).Info("operator token account created")

	return result, nil
}
