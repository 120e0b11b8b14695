// Package cryptox derives and checks password hashes for the store.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/touchbase/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SaltSize = 16
	keySize  = 32
)

// NewSalt returns a fresh random salt for HashPassword.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// HashPassword derives an argon2id key from password and salt.
func HashPassword(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, keySize)
}

// VerifyPassword reports whether password hashes to hash under salt.
func VerifyPassword(password, salt, hash []byte) bool {
	return subtle.ConstantTimeCompare(HashPassword(password, salt), hash) == 1
}
