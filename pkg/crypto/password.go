package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost matches the cost the platform has always used for user
	// passwords; raising it invalidates no existing hashes but slows register.
	DefaultCost = 8

	// OTPLength is the number of digits in a password-reset code.
	OTPLength = 6
)

var (
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	randInt                    = rand.Int
)

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcryptGenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword compares a password with a hash.
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateOTP returns a code of `length` decimal digits with no leading zero,
// e.g. "492817" for length 6.
func GenerateOTP(length int) (string, error) {
	if length < 1 {
		length = OTPLength
	}
	min := pow10(length - 1)
	max := pow10(length) - 1

	n, err := randInt(rand.Reader, big.NewInt(max-min+1))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%d", min+n.Int64()), nil
}

func pow10(n int) int64 {
	out := int64(1)
	for i := 0; i < n; i++ {
		out *= 10
	}
	return out
}
