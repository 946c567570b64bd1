package common

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Address is an identity of an external account interacting with the
// custody system.
type Address [20]byte

// Token identifies an external token contract whose units can be held
// in custody. It shares the address space with Address but is kept as
// a distinct type so that account and token arguments cannot be mixed
// up at call sites.
type Token [20]byte

// Hash is a 32-byte Keccak256 digest.
type Hash [32]byte

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (t Token) String() string {
	return "0x" + hex.EncodeToString(t[:])
}

func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// HexToAddress parses a 0x-prefixed or bare hex string into an Address.
func HexToAddress(s string) (Address, error) {
	var a Address
	if err := decodeHex(s, a[:]); err != nil {
		return Address{}, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return a, nil
}

// HexToToken parses a 0x-prefixed or bare hex string into a Token.
func HexToToken(s string) (Token, error) {
	var t Token
	if err := decodeHex(s, t[:]); err != nil {
		return Token{}, fmt.Errorf("invalid token %q: %w", s, err)
	}
	return t, nil
}

func decodeHex(s string, dst []byte) error {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	if len(raw) != len(dst) {
		return fmt.Errorf("expected %d bytes, got %d", len(dst), len(raw))
	}
	copy(dst, raw)
	return nil
}

// Keccak256 computes the Keccak256 hash of the given data.
func Keccak256(data []byte) Hash {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)
	var res Hash
	hasher.Sum(res[0:0])
	return res
}
