package keystore

import (
	"crypto/ecdsa"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/tyler-smith/go-bip39"
)

// BasePath is the BIP-44 Ethereum account branch. Account i lives at BasePath/i.
const BasePath = "m/44'/60'/0'/0"

const mnemonicEntropyBits = 128

// HDKeystore holds an encrypted BIP-39 seed and the accounts derived from it.
type HDKeystore struct {
	mu  sync.RWMutex
	rec *Record
}

// NewMnemonic generates a fresh 12 word mnemonic.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	defer clear(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// NewFromMnemonic validates mnemonic, derives the first account and encrypts
// the seed under password.
func NewFromMnemonic(mnemonic string, password []byte, params ScryptParams) (*HDKeystore, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	seed := bip39.NewSeed(mnemonic, "")
	defer clear(seed)

	key, err := deriveKey(seed, BasePath, 0)
	if err != nil {
		return nil, err
	}
	address := crypto.PubkeyToAddress(key.PublicKey)
	zeroKey(key)

	rec := &Record{
		Version:   RecordVersion,
		ID:        uuid.NewString(),
		Kind:      KindHD,
		Addresses: []string{address.Hex()},
		HD:        &HDParams{Path: BasePath, NextIndex: 1},
		CreatedAt: time.Now().UTC(),
	}

	rec.Crypto, err = seal(seed, password, params, rec.additionalData())
	if err != nil {
		return nil, fmt.Errorf("encrypt seed: %w", err)
	}

	return &HDKeystore{rec: rec}, nil
}

func (h *HDKeystore) isKeyMaterial() {}

func (h *HDKeystore) Kind() Kind {
	return KindHD
}

func (h *HDKeystore) ID() string {
	return h.rec.ID
}

func (h *HDKeystore) Addresses() []common.Address {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]common.Address, 0, len(h.rec.Addresses))
	for _, a := range h.rec.Addresses {
		out = append(out, common.HexToAddress(a))
	}
	return out
}

func (h *HDKeystore) Record() *Record {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.rec.Clone()
}

func (h *HDKeystore) Unlock(password []byte, account common.Address) (*KeyHandle, error) {
	h.mu.RLock()
	rec := h.rec.Clone()
	h.mu.RUnlock()

	index := rec.indexOf(account)
	if index < 0 {
		return nil, ErrUnknownAccount
	}

	seed, err := open(rec.Crypto, password, rec.additionalData())
	if err != nil {
		return nil, err
	}
	defer clear(seed)

	key, err := deriveKey(seed, rec.HD.Path, uint32(index))
	if err != nil {
		return nil, err
	}
	if crypto.PubkeyToAddress(key.PublicKey) != account {
		zeroKey(key)
		return nil, fmt.Errorf("%w: derived key does not match address", ErrMalformedKeystore)
	}

	return newKeyHandle(key), nil
}

func (h *HDKeystore) VerifyPassword(password []byte) bool {
	h.mu.RLock()
	rec := h.rec.Clone()
	h.mu.RUnlock()

	seed, err := open(rec.Crypto, password, rec.additionalData())
	if err != nil {
		return false
	}
	clear(seed)
	return true
}

// DeriveChildAccount derives the account at the next sequential index,
// appends it and re-encrypts the seed with a fresh salt and nonce.
func (h *HDKeystore) DeriveChildAccount(password []byte) (common.Address, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	seed, err := open(h.rec.Crypto, password, h.rec.additionalData())
	if err != nil {
		return common.Address{}, err
	}
	defer clear(seed)

	index := h.rec.HD.NextIndex
	key, err := deriveKey(seed, h.rec.HD.Path, index)
	if err != nil {
		return common.Address{}, err
	}
	address := crypto.PubkeyToAddress(key.PublicKey)
	zeroKey(key)

	next := h.rec.Clone()
	next.Addresses = append(next.Addresses, address.Hex())
	next.HD.NextIndex = index + 1

	next.Crypto, err = seal(seed, password, h.rec.scryptParams(), next.additionalData())
	if err != nil {
		return common.Address{}, fmt.Errorf("encrypt seed: %w", err)
	}

	h.rec = next
	return address, nil
}

// deriveKey walks base/index from the BIP-32 master key of seed.
func deriveKey(seed []byte, base string, index uint32) (*ecdsa.PrivateKey, error) {
	path, err := accounts.ParseDerivationPath(base)
	if err != nil {
		return nil, fmt.Errorf("%w: derivation path: %v", ErrMalformedKeystore, err)
	}
	path = append(path, index)

	extended, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}

	for _, component := range path {
		child, err := extended.Derive(component)
		extended.Zero()
		if err != nil {
			return nil, fmt.Errorf("derive %s: %w", path, err)
		}
		extended = child
	}
	defer extended.Zero()

	priv, err := extended.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("extract private key: %w", err)
	}

	raw := priv.Serialize()
	defer clear(raw)
	priv.Zero()

	return crypto.ToECDSA(raw)
}
