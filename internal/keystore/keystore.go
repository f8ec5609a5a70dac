// Package keystore holds account key material encrypted at rest. Plaintext
// keys only exist inside a KeyHandle, which is zeroed when closed.
package keystore

import (
	"crypto/ecdsa"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// KeyMaterial is implemented by *HDKeystore and *SingleKeystore only.
type KeyMaterial interface {
	Kind() Kind
	ID() string
	Addresses() []common.Address
	// Unlock decrypts the key of account. The caller must Close the handle.
	Unlock(password []byte, account common.Address) (*KeyHandle, error)
	VerifyPassword(password []byte) bool
	// Record returns a copy of the persisted form.
	Record() *Record

	isKeyMaterial()
}

// Load rebuilds key material from a persisted record.
func Load(rec *Record) (KeyMaterial, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	switch rec.Kind {
	case KindHD:
		return &HDKeystore{rec: rec.Clone()}, nil
	case KindSingle:
		return &SingleKeystore{rec: rec.Clone()}, nil
	}
	return nil, fmt.Errorf("%w: unknown kind %q", ErrMalformedKeystore, rec.Kind)
}

// WithKey unlocks account, runs fn and zeroes the key afterwards regardless
// of the outcome.
func WithKey(km KeyMaterial, password []byte, account common.Address, fn func(*KeyHandle) error) error {
	handle, err := km.Unlock(password, account)
	if err != nil {
		return err
	}
	defer handle.Close()

	return fn(handle)
}

// KeyHandle is a plaintext private key scoped to a single use.
type KeyHandle struct {
	mu      sync.Mutex
	address common.Address
	key     *ecdsa.PrivateKey
}

func newKeyHandle(key *ecdsa.PrivateKey) *KeyHandle {
	return &KeyHandle{
		address: crypto.PubkeyToAddress(key.PublicKey),
		key:     key,
	}
}

func (h *KeyHandle) Address() common.Address {
	return h.address
}

// SignHash produces a deterministic [R || S || V] signature over a 32 byte hash.
func (h *KeyHandle) SignHash(hash []byte) ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.key == nil {
		return nil, ErrHandleClosed
	}
	return crypto.Sign(hash, h.key)
}

// PrivateKeyBytes returns a copy of the raw key. The caller owns the slice
// and should clear it after use.
func (h *KeyHandle) PrivateKeyBytes() ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.key == nil {
		return nil, ErrHandleClosed
	}
	return crypto.FromECDSA(h.key), nil
}

// Close zeroes the key. It is safe to call more than once.
func (h *KeyHandle) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.key != nil {
		zeroKey(h.key)
		h.key = nil
	}
}

func zeroKey(k *ecdsa.PrivateKey) {
	b := k.D.Bits()
	clear(b)
}
