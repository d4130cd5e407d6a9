package util

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short stable digest of s for logging identifiers
// such as email addresses without recording them.
func Fingerprint(s string) string {
	sum := blake2b.Sum256([]byte(strings.ToLower(strings.TrimSpace(s))))
	return hex.EncodeToString(sum[:8])
}
