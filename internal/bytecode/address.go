package bytecode

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AddressLength is the fixed width of an account address in bytes.
const AddressLength = 16

// AccountAddress is the fixed-width on-chain account address that owns a module.
type AccountAddress [AddressLength]byte

// Hex returns the full-width lowercase hex form without a prefix.
func (a AccountAddress) Hex() string {
	return hex.EncodeToString(a[:])
}

func (a AccountAddress) String() string {
	return "0x" + a.Hex()
}

// AddressFromHex parses an address from a hex string, with or without the 0x
// prefix. Short strings are left-padded with zeros.
func AddressFromHex(s string) (AccountAddress, error) {
	var addr AccountAddress
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 != 0 {
		s = "0" + s
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return addr, fmt.Errorf("bytecode: invalid address hex: %w", err)
	}
	if len(raw) > AddressLength {
		return addr, fmt.Errorf("bytecode: address is %d bytes, max %d", len(raw), AddressLength)
	}
	copy(addr[AddressLength-len(raw):], raw)
	return addr, nil
}
