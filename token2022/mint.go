package token2022

import "fmt"

// ExtensionType - Token-2022 extension discriminants (subset this token uses)
type ExtensionType uint16

const (
	ExtensionTransferHook    ExtensionType = 14
	ExtensionMetadataPointer ExtensionType = 18
	ExtensionTokenMetadata   ExtensionType = 19
)

// Account layout sizes
const (
	// MintBaseLen - legacy mint layout without extensions
	MintBaseLen = 82

	// AccountBaseLen - legacy token account layout; extension TLV data starts after it
	AccountBaseLen = 165

	// AccountTypeLen - one byte marking the account kind (mint vs token account)
	AccountTypeLen = 1

	// TypeSize / LengthSize - TLV entry header: u16 type + u16 length
	TypeSize   = 2
	LengthSize = 2

	// multisigLen - Multisig::LEN; an extended account must never land on this size
	multisigLen = 355
)

// extensionDataLen - fixed TLV payload length per extension kind
var extensionDataLen = map[ExtensionType]uint64{
	ExtensionTransferHook:    64, // authority (32) + hook program id (32)
	ExtensionMetadataPointer: 64, // authority (32) + metadata address (32)
}

// MintLen calculates the byte length a mint account must reserve for the given
// extension set. Variable-length extensions (inline metadata) are not part of the
// reserved space; they are accounted for separately when funding rent.
func MintLen(extensions []ExtensionType) (uint64, error) {
	if len(extensions) == 0 {
		return MintBaseLen, nil
	}

	size := uint64(AccountBaseLen + AccountTypeLen)
	for _, ext := range extensions {
		dataLen, ok := extensionDataLen[ext]
		if !ok {
			return 0, fmt.Errorf("extension %d has no fixed length", ext)
		}
		size += TypeSize + LengthSize + dataLen
	}

	// A size equal to Multisig::LEN would make the account type ambiguous.
	if size == multisigLen {
		size += TypeSize + LengthSize
	}

	return size, nil
}
