package keystore

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

// SingleKeystore wraps one imported private key.
type SingleKeystore struct {
	rec *Record
}

// NewFromPrivateKey validates a hex encoded secp256k1 scalar and encrypts it
// under password.
func NewFromPrivateKey(hexKey string, password []byte, params ScryptParams) (*SingleKeystore, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: not hex", ErrInvalidKey)
	}
	defer clear(raw)

	key, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	defer zeroKey(key)

	rec := &Record{
		Version:   RecordVersion,
		ID:        uuid.NewString(),
		Kind:      KindSingle,
		Addresses: []string{crypto.PubkeyToAddress(key.PublicKey).Hex()},
		CreatedAt: time.Now().UTC(),
	}

	rec.Crypto, err = seal(raw, password, params, rec.additionalData())
	if err != nil {
		return nil, fmt.Errorf("encrypt private key: %w", err)
	}

	return &SingleKeystore{rec: rec}, nil
}

func (s *SingleKeystore) isKeyMaterial() {}

func (s *SingleKeystore) Kind() Kind {
	return KindSingle
}

func (s *SingleKeystore) ID() string {
	return s.rec.ID
}

func (s *SingleKeystore) Addresses() []common.Address {
	return []common.Address{common.HexToAddress(s.rec.Addresses[0])}
}

func (s *SingleKeystore) Record() *Record {
	return s.rec.Clone()
}

func (s *SingleKeystore) Unlock(password []byte, account common.Address) (*KeyHandle, error) {
	if !s.rec.HasAddress(account) {
		return nil, ErrUnknownAccount
	}

	raw, err := open(s.rec.Crypto, password, s.rec.additionalData())
	if err != nil {
		return nil, err
	}
	defer clear(raw)

	key, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: decrypted key: %v", ErrMalformedKeystore, err)
	}
	if crypto.PubkeyToAddress(key.PublicKey) != account {
		zeroKey(key)
		return nil, fmt.Errorf("%w: key does not match address", ErrMalformedKeystore)
	}

	return newKeyHandle(key), nil
}

func (s *SingleKeystore) VerifyPassword(password []byte) bool {
	handle, err := s.Unlock(password, s.Addresses()[0])
	if err != nil {
		return false
	}
	handle.Close()
	return true
}
