package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"strings"
)

func IsProd() bool {
	return os.Getenv("API_ENV") == "prod"
}

// RandomDigits draws n decimal digits uniformly from a cryptographic source.
// Leading zeros are kept, so every value in [0, 10^n) is possible.
func RandomDigits(n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("invalid digit count: %d", n)
	}
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	v, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", n, v.Int64()), nil
}

// IsDigits reports whether s is exactly n ASCII digits.
func IsDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
