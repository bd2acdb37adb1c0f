package serialization

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/nexum-ml/nexum/internal/tensor"
)

// Checksum returns the SHA-256 digest of t's binary encoding.
// Equal digests mean equal shapes and bit-identical elements.
func Checksum(t *tensor.Tensor) ([32]byte, error) {
	h := sha256.New()
	if err := WriteBinary(h, t); err != nil {
		return [32]byte{}, err
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// HexDigest renders a digest as lowercase hex.
func HexDigest(sum [32]byte) string {
	return hex.EncodeToString(sum[:])
}
