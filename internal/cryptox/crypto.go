// Package cryptox implements the password proof used by login: an argon2id
// key derived from the password and a per-user salt, and a SHA-256 verifier
// of that key which is the only value the server ever stores.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/morvin2701/pixelwalls/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SaltSize = 16
	KeySize  = 32
)

// DeriveMasterKey stretches password with argon2id.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, KeySize)
}

// MakeVerifier returns SHA-256(masterKey).
func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

// NewSalt returns a fresh random salt.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// VerifierFor derives the verifier for password and salt, wiping the
// intermediate key.
func VerifierFor(password, salt []byte) []byte {
	key := DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)
	return MakeVerifier(key)
}

// EqualVerifiers compares in constant time.
func EqualVerifiers(a, b []byte) bool {
	return len(a) > 0 && subtle.ConstantTimeCompare(a, b) == 1
}
