package services

import (
	"crypto/sha256"
	"encoding/hex"

	"assetmgr/internal/config"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher turns a plaintext password into a storable credential.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// SHA256Hasher is a deterministic salted digest. It is fast rather than
// adaptive; prefer the bcrypt scheme for new deployments.
type SHA256Hasher struct {
	salt string
}

func NewSHA256Hasher(salt string) *SHA256Hasher {
	return &SHA256Hasher{salt: salt}
}

func (h *SHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(h.salt + password))
	return hex.EncodeToString(sum[:]), nil
}

func (h *SHA256Hasher) Verify(hashedPassword, password string) bool {
	hashed, _ := h.Hash(password)
	return hashed == hashedPassword
}

// BcryptHasher hashes passwords using bcrypt
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

func (h *BcryptHasher) Verify(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// NewPasswordHasher selects the hasher from configuration.
func NewPasswordHasher(cfg *config.Config) PasswordHasher {
	if cfg.Security.PasswordScheme == "bcrypt" {
		return NewBcryptHasher(cfg.Security.BcryptCost)
	}
	return NewSHA256Hasher(cfg.Security.PasswordSalt)
}
