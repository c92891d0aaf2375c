package feature

import (
	"fmt"
	"slices"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/minio/sha256-simd"
)

// DigestSize is the length of an identity digest in bytes.
const DigestSize = sha256.Size

// Digest summarizes a set of feature identifiers. It is exchanged with peers
// and must stay byte compatible across implementations.
type Digest [DigestSize]byte

// ComputeIdentity hashes ids in ascending order. The input order and duplicates
// within ids do not affect the result.
func ComputeIdentity(ids []ID) Digest {
	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, ID.Compare)
	return hashSorted(slices.Compact(sorted))
}

func hashSorted(ids []ID) Digest {
	h := sha256.New()
	for _, id := range ids {
		// hash.Hash never returns an error on Write.
		_, _ = h.Write(id.Bytes())
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// ParseDigest decodes a base58 encoded digest.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	raw := base58.Decode(s)
	if len(raw) != DigestSize {
		return d, fmt.Errorf("invalid digest %q: decodes to %d bytes", s, len(raw))
	}
	copy(d[:], raw)
	return d, nil
}

// String returns the base58 form of the digest.
func (d Digest) String() string {
	return base58.Encode(d[:])
}

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Digest) UnmarshalText(text []byte) error {
	parsed, err := ParseDigest(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
