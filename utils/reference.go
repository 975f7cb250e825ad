package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Charset excludes 0/O and 1/I so codes survive being read over the phone.
const referenceCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randomCode(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(referenceCharset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random code: %w", err)
		}
		out[i] = referenceCharset[n.Int64()]
	}
	return string(out), nil
}

// GenerateBookingReference returns a human-readable booking code like
// "BK-7XK2M9QF". Uniqueness is enforced by the database; callers retry on
// collision.
func GenerateBookingReference() (string, error) {
	code, err := randomCode(8)
	if err != nil {
		return "", err
	}
	return "BK-" + code, nil
}
