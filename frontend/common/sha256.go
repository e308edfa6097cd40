package common

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex hashes parts separated by NUL bytes, so ("ab", "c") and ("a", "bc")
// produce different keys.
func SHA256Hex(parts ...string) string {
	h := sha256.New()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte{0})
		}
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}
