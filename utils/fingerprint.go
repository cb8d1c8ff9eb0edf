package utils

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// FingerprintFile streams the file through blake3 and returns the first 32
// hex characters of the digest. It identifies an upload in the run output.
func FingerprintFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", fmt.Errorf("hashing %q: %w", path, err)
	}

	return hex.EncodeToString(hasher.Sum(nil))[:32], nil
}
