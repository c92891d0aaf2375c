package feature

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// IDSize is the length of a feature identifier in bytes.
const IDSize = 32

// ErrInvalidID is returned when a textual identifier does not decode to IDSize bytes.
var ErrInvalidID = errors.New("invalid feature id")

// ID identifies a feature. It is the address of the feature's on-chain account.
type ID [IDSize]byte

// ParseID decodes a base58 encoded identifier.
func ParseID(s string) (ID, error) {
	var id ID
	if s == "" {
		return id, fmt.Errorf("%w: empty", ErrInvalidID)
	}
	raw := base58.Decode(s)
	if len(raw) != IDSize {
		return id, fmt.Errorf("%w: %q decodes to %d bytes", ErrInvalidID, s, len(raw))
	}
	copy(id[:], raw)
	return id, nil
}

// MustParseID is like ParseID but panics on malformed input.
// It is meant for identifiers declared in source code.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the base58 form of the identifier.
func (id ID) String() string {
	return base58.Encode(id[:])
}

// Bytes returns the canonical byte representation fed to the identity hash.
func (id ID) Bytes() []byte {
	return id[:]
}

// Compare orders identifiers lexicographically by their bytes.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
