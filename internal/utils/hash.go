package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ContentHash computes a SHA-256 digest over the given byte slice and
// returns it hex-encoded. File payloads are addressed by this digest, so
// re-uploading identical content always lands on the same object key.
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ObjectKey builds the content-addressed storage key for one file payload.
// The key embeds the owning user, the file record id and the payload digest:
// a changed payload gets a new key, so stale objects are never overwritten
// in place.
func ObjectKey(userID, fileID, contentHash string) string {
	return fmt.Sprintf("users/%s/files/%s/%s", userID, fileID, contentHash)
}
