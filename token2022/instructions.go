package token2022

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Token-2022 instruction discriminators (first byte of instruction data).
// Extension instructions carry a second byte selecting the sub-instruction.
const (
	instructionInitializeMint     = 0
	instructionMintTo             = 7
	instructionTransferHookExt    = 36
	instructionMetadataPointerExt = 39
	extensionSubInstructionInit   = 0
)

// splDiscriminator - token metadata interface instructions are selected by
// sha256("<namespace>:<name>")[:8], same scheme Anchor uses.
func splDiscriminator(name string) []byte {
	hash := sha256.Sum256([]byte(name))
	return hash[:8]
}

var (
	DiscriminatorMetadataInitialize  = splDiscriminator("spl_token_metadata_interface:initialize_account")
	DiscriminatorMetadataUpdateField = splDiscriminator("spl_token_metadata_interface:updating_field")
)

// metadata UpdateField variant for a custom key (0..2 select name/symbol/uri)
const fieldVariantKey = 3

// BuildInitializeTransferHookInstruction - enable the transfer hook extension on
// an uninitialized mint account. Must run before initialize-mint.
func BuildInitializeTransferHookInstruction(
	mint solana.PublicKey,
	authority solana.PublicKey,
	hookProgramID solana.PublicKey,
) solana.Instruction {
	data := make([]byte, 0, 2+64)
	data = append(data, instructionTransferHookExt, extensionSubInstructionInit)
	data = append(data, authority.Bytes()...)
	data = append(data, hookProgramID.Bytes()...)

	return solana.NewInstruction(
		solana.Token2022ProgramID,
		solana.AccountMetaSlice{
			solana.Meta(mint).WRITE(),
		},
		data,
	)
}

// BuildInitializeMetadataPointerInstruction - enable the metadata pointer
// extension. For inline metadata the pointer targets the mint itself.
func BuildInitializeMetadataPointerInstruction(
	mint solana.PublicKey,
	authority solana.PublicKey,
	metadataAddress solana.PublicKey,
) solana.Instruction {
	data := make([]byte, 0, 2+64)
	data = append(data, instructionMetadataPointerExt, extensionSubInstructionInit)
	data = append(data, authority.Bytes()...)
	data = append(data, metadataAddress.Bytes()...)

	return solana.NewInstruction(
		solana.Token2022ProgramID,
		solana.AccountMetaSlice{
			solana.Meta(mint).WRITE(),
		},
		data,
	)
}

// BuildInitializeMintInstruction - finalize the account as a mint. Extensions
// must already be present; the token program rejects extension initialization
// after this instruction has run.
func BuildInitializeMintInstruction(
	mint solana.PublicKey,
	decimals uint8,
	mintAuthority solana.PublicKey,
	freezeAuthority *solana.PublicKey,
) solana.Instruction {
	data := make([]byte, 0, 2+32+33)
	data = append(data, instructionInitializeMint, decimals)
	data = append(data, mintAuthority.Bytes()...)
	if freezeAuthority != nil {
		data = append(data, 1)
		data = append(data, freezeAuthority.Bytes()...)
	} else {
		data = append(data, 0)
	}

	return solana.NewInstruction(
		solana.Token2022ProgramID,
		solana.AccountMetaSlice{
			solana.Meta(mint).WRITE(),
			solana.Meta(solana.SysVarRentPubkey),
		},
		data,
	)
}

// BuildInitializeMetadataInstruction - write name/symbol/uri into the mint's
// inline metadata TLV entry. The mint authority must sign.
func BuildInitializeMetadataInstruction(
	mint solana.PublicKey,
	updateAuthority solana.PublicKey,
	mintAuthority solana.PublicKey,
	meta Metadata,
) solana.Instruction {
	data := append([]byte{}, DiscriminatorMetadataInitialize...)
	data = appendBorshString(data, meta.Name)
	data = appendBorshString(data, meta.Symbol)
	data = appendBorshString(data, meta.URI)

	return solana.NewInstruction(
		solana.Token2022ProgramID,
		solana.AccountMetaSlice{
			solana.Meta(mint).WRITE(), // metadata account (same as mint for inline metadata)
			solana.Meta(updateAuthority),
			solana.Meta(mint),
			solana.Meta(mintAuthority).SIGNER(),
		},
		data,
	)
}

// BuildUpdateMetadataFieldInstruction - append or overwrite one custom
// (key, value) pair in the inline metadata. Signed by the update authority.
func BuildUpdateMetadataFieldInstruction(
	mint solana.PublicKey,
	updateAuthority solana.PublicKey,
	key string,
	value string,
) solana.Instruction {
	data := append([]byte{}, DiscriminatorMetadataUpdateField...)
	data = append(data, fieldVariantKey)
	data = appendBorshString(data, key)
	data = appendBorshString(data, value)

	return solana.NewInstruction(
		solana.Token2022ProgramID,
		solana.AccountMetaSlice{
			solana.Meta(mint).WRITE(),
			solana.Meta(updateAuthority).SIGNER(),
		},
		data,
	)
}

// BuildMintToInstruction - mint amount base units to destination. Amount must
// already be scaled by the mint's decimals.
func BuildMintToInstruction(
	mint solana.PublicKey,
	destination solana.PublicKey,
	mintAuthority solana.PublicKey,
	amount uint64,
) solana.Instruction {
	data := make([]byte, 0, 9)
	data = append(data, instructionMintTo)
	data = binary.LittleEndian.AppendUint64(data, amount)

	return solana.NewInstruction(
		solana.Token2022ProgramID,
		solana.AccountMetaSlice{
			solana.Meta(mint).WRITE(),
			solana.Meta(destination).WRITE(),
			solana.Meta(mintAuthority).SIGNER(),
		},
		data,
	)
}

// BuildCreateAssociatedTokenAccountInstruction - create the wallet's associated
// token account for a Token-2022 mint at its derived address.
func BuildCreateAssociatedTokenAccountInstruction(
	payer solana.PublicKey,
	wallet solana.PublicKey,
	mint solana.PublicKey,
) (solana.Instruction, error) {
	ata, _, err := FindAssociatedTokenAddress(wallet, mint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive associated token address: %w", err)
	}

	return solana.NewInstruction(
		solana.SPLAssociatedTokenAccountProgramID,
		solana.AccountMetaSlice{
			solana.Meta(payer).SIGNER().WRITE(),
			solana.Meta(ata).WRITE(),
			solana.Meta(wallet),
			solana.Meta(mint),
			solana.Meta(solana.SystemProgramID),
			solana.Meta(solana.Token2022ProgramID),
			solana.Meta(solana.SysVarRentPubkey),
		},
		[]byte{},
	), nil
}

func appendBorshString(data []byte, s string) []byte {
	data = binary.LittleEndian.AppendUint32(data, uint32(len(s)))
	return append(data, s...)
}
