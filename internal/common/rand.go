package common

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// MakeRandDigitCode generates a random code of exactly n decimal digits,
// zero-padded on the left. It draws from crypto/rand without modulo bias.
//
// Example:
//
//	code, err := MakeRandDigitCode(6)
//	// code == "042137"
func MakeRandDigitCode(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("code length must be positive, got %d", n)
	}

	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	v, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", n, v), nil
}
