package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	// Interactive-login scrypt parameters.
	scryptN = 1 << 14
	scryptR = 8
	scryptP = 1

	derivedKeyLen = 64
	saltLen       = 16
)

var errEmptyPassword = errors.New("auth: refusing to hash an empty password")

// HashPassword derives a storable credential from a plaintext password.
// The result is "<hashHex>.<saltHex>" where the salt is 16 random bytes.
// The hex-encoded salt text itself is fed to scrypt, so the stored string
// is self-contained: everything needed to verify is on either side of
// the dot.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errEmptyPassword
	}
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	saltHex := hex.EncodeToString(salt)
	key, err := scrypt.Key([]byte(password), []byte(saltHex), scryptN, scryptR, scryptP, derivedKeyLen)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key) + "." + saltHex, nil
}

// VerifyPassword reports whether password matches a credential produced by
// HashPassword. Any malformed stored value (missing separator, non-hex
// hash, empty hash) fails closed.
func VerifyPassword(password, stored string) bool {
	hashHex, saltHex, found := strings.Cut(stored, ".")
	if !found {
		return false
	}
	want, err := hex.DecodeString(hashHex)
	if err != nil || len(want) == 0 {
		return false
	}
	got, err := scrypt.Key([]byte(password), []byte(saltHex), scryptN, scryptR, scryptP, len(want))
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(got, want) == 1
}
