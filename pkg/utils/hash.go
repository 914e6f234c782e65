package utils

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
)

func HashString(input string) string {
	hash := md5.Sum([]byte(input))
	return fmt.Sprintf("%x", hash)
}

// HashFiles fingerprints a set of files so stored runs can be matched to
// the exact dataset revision they were computed from.
func HashFiles(paths []string) (string, error) {
	h := md5.New()
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return "", fmt.Errorf("failed to open %s: %w", p, err)
		}
		_, err = io.Copy(h, f)
		f.Close()
		if err != nil {
			return "", fmt.Errorf("failed to hash %s: %w", p, err)
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
