// Package logging provides request IDs for correlating a chat request's
// stream with its background history write.
package logging

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRequestID creates an 8-character hex request ID.
func GenerateRequestID() string {
	b := make([]byte, 4)
	rand.Read(b)
	return hex.EncodeToString(b)
}
