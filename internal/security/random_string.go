package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	secretKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	tokenIDAlphabet   = "abcdefghijklmnopqrstuvwxyz0123456789"

	SecretKeyLength = 48
	tokenIDLength   = 16
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString draws length characters from alphabet with crypto/rand and
// no modulo bias.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}
	return string(value), nil
}

// GenerateSecretKey returns a signing key long enough to pass startup
// validation.
func GenerateSecretKey() (string, error) {
	return RandomString(SecretKeyLength, secretKeyAlphabet)
}

func newTokenID() (string, error) {
	return RandomString(tokenIDLength, tokenIDAlphabet)
}
