package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over data using hashKey and
// returns a hex-encoded digest. Used by the relay to hash account passwords
// and by the address-book store for its record integrity check.
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashBytes([]byte(data), hashKey))
}

// VerifyHashString reports whether signature is a valid HMAC-SHA256
// signature of data under hashKey. Comparison is constant-time.
func VerifyHashString(data, signature, hashKey string) bool {
	want := hashBytes([]byte(data), hashKey)
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(want, got)
}

func hashBytes(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
