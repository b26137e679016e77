package token2022

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Metadata - inline token metadata stored on the mint itself through the
// metadata pointer extension. Additional holds ordered (key, value) pairs
// written after the base fields.
type Metadata struct {
	Name       string
	Symbol     string
	URI        string
	Additional [][2]string
}

// PackedLen - borsh-serialized length of the metadata payload:
// update authority (32) + mint (32) + three length-prefixed strings +
// length-prefixed vec of (key, value) string pairs.
func (m Metadata) PackedLen() uint64 {
	n := uint64(32 + 32)
	n += 4 + uint64(len(m.Name))
	n += 4 + uint64(len(m.Symbol))
	n += 4 + uint64(len(m.URI))
	n += 4
	for _, kv := range m.Additional {
		n += 4 + uint64(len(kv[0]))
		n += 4 + uint64(len(kv[1]))
	}
	return n
}

// Space - full TLV footprint of the metadata entry on the mint account.
// Must be part of the rent-exempt funding before the mint account is created;
// under-funding makes the whole setup transaction fail.
func (m Metadata) Space() uint64 {
	return TypeSize + LengthSize + m.PackedLen()
}

// Validate checks every metadata string before anything is sent to the ledger.
// The configuration is operator-edited, so garbled values must be caught here.
func (m Metadata) Validate() error {
	if err := validateText("name", m.Name); err != nil {
		return err
	}
	if err := validateText("symbol", m.Symbol); err != nil {
		return err
	}
	if err := validateText("uri", m.URI); err != nil {
		return err
	}
	for _, kv := range m.Additional {
		if err := validateText("metadata key", kv[0]); err != nil {
			return err
		}
		if err := validateText(fmt.Sprintf("metadata value for %q", kv[0]), kv[1]); err != nil {
			return err
		}
	}
	return nil
}

func validateText(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	if !utf8.ValidString(value) {
		return fmt.Errorf("%s is not valid UTF-8", field)
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return fmt.Errorf("%s contains a control character", field)
		}
	}
	return nil
}
