package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// Stored credentials are "hexdigest.hexsalt": a 64-byte scrypt digest and
// a 16-byte random salt. The parameters match Node's crypto.scrypt
// defaults so credentials seeded from the original deployment keep
// verifying.
const (
	scryptN = 16384
	scryptR = 8
	scryptP = 1
	keyLen  = 64
	saltLen = 16
)

// HashPassword derives a fresh salted scrypt digest for password.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	digest, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(digest) + "." + hex.EncodeToString(salt), nil
}

// CheckPassword reports whether password matches the stored credential.
// Comparison of the derived and stored digests is constant-time. Any
// malformed stored value (wrong shape, non-hex parts) compares false, so
// the caller fails identically to a wrong password.
func CheckPassword(password, stored string) bool {
	parts := strings.SplitN(stored, ".", 2)
	if len(parts) != 2 {
		return false
	}

	digest, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}

	derived, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, len(digest))
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(digest, derived) == 1
}

// ValidatePassword enforces minimal credential strength at registration.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters long")
	}
	return nil
}
