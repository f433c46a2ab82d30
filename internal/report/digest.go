package report

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Digest returns the hex-encoded SHA3-256 hash of a rendered report.
// Two runs over the same document and settings produce the same digest.
func Digest(report []byte) string {
	sum := sha3.Sum256(report)
	return hex.EncodeToString(sum[:])
}
