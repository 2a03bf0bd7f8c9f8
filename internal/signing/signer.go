// Package signing produces and checks keyed-hash tags. One Signer holds one
// secret; callers keep separate Signers per key domain (gateway webhooks,
// ticket minting) and never share a key between them.
package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"
)

var (
	ErrEmptyKey  = errors.New("signing: key is empty")
	ErrMalformed = errors.New("signing: tag is not valid hex")
	ErrMismatch  = errors.New("signing: tag mismatch")
)

type Signer struct {
	key     []byte
	newHash func() hash.Hash
}

func New(key []byte, newHash func() hash.Hash) (*Signer, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &Signer{key: k, newHash: newHash}, nil
}

// NewSHA512 matches the gateway's webhook signature (hex HMAC-SHA512 over
// the raw body).
func NewSHA512(key string) (*Signer, error) {
	return New([]byte(key), sha512.New)
}

// NewSHA256 is used for ticket tokens.
func NewSHA256(key string) (*Signer, error) {
	return New([]byte(key), sha256.New)
}

func (s *Signer) Sign(message []byte) []byte {
	mac := hmac.New(s.newHash, s.key)
	mac.Write(message)
	return mac.Sum(nil)
}

func (s *Signer) SignHex(message []byte) string {
	return hex.EncodeToString(s.Sign(message))
}

// Verify recomputes the tag and compares in constant time.
func (s *Signer) Verify(message, tag []byte) bool {
	return hmac.Equal(s.Sign(message), tag)
}

// VerifyHex checks a hex-encoded tag, with or without a "sha256="/"sha512="
// prefix. The returned error never contains the expected tag.
func (s *Signer) VerifyHex(message []byte, tag string) error {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexByte(tag, '='); i > 0 && strings.HasPrefix(tag, "sha") {
		tag = tag[i+1:]
	}
	if tag == "" {
		return fmt.Errorf("%w: empty", ErrMalformed)
	}
	raw, err := hex.DecodeString(tag)
	if err != nil {
		return ErrMalformed
	}
	if !s.Verify(message, raw) {
		return ErrMismatch
	}
	return nil
}
