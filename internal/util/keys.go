package util

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

// StorageKey isolates key under namespace ns. An empty ns leaves key unchanged.
func StorageKey(ns, key string) string {
	if ns == "" {
		return key
	}
	return ns + ":" + key
}

// SafeName encodes key with the URL-safe base64 alphabet (no padding) so it is a
// valid NATS KV key or Firestore document ID whatever bytes it contains.
func SafeName(key string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(key))
}

// HashedPath maps key to a fixed-length path with a two-character fan-out
// directory: "ab/abcdef...". Used by file and object stores where raw keys could
// contain separators or exceed name limits.
func HashedPath(key string) string {
	sum := sha256.Sum256([]byte(key))
	h := hex.EncodeToString(sum[:])
	return h[:2] + "/" + h
}
