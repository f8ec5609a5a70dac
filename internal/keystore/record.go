package keystore

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

const RecordVersion = 1

type Kind string

const (
	KindHD     Kind = "hd"
	KindSingle Kind = "single"
)

// Record is the persisted, encrypted form of a keystore. It never holds
// plaintext key material.
type Record struct {
	Version   int          `json:"version"`
	ID        string       `json:"id"`
	Kind      Kind         `json:"kind"`
	Addresses []string     `json:"addresses"`
	Crypto    CryptoParams `json:"crypto"`
	HD        *HDParams    `json:"hd,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

type CryptoParams struct {
	Cipher       string       `json:"cipher"`
	CipherText   string       `json:"ciphertext"`
	CipherParams CipherParams `json:"cipherparams"`
	KDF          string       `json:"kdf"`
	KDFParams    KDFParams    `json:"kdfparams"`
}

type CipherParams struct {
	IV string `json:"iv"`
}

type KDFParams struct {
	N     int    `json:"n"`
	R     int    `json:"r"`
	P     int    `json:"p"`
	DKLen int    `json:"dklen"`
	Salt  string `json:"salt"`
}

// HDParams holds the derivation base path. Addresses[i] is the account at
// Path/i and NextIndex is always len(Addresses).
type HDParams struct {
	Path      string `json:"path"`
	NextIndex uint32 `json:"nextIndex"`
}

// Validate checks the structure of r without decrypting anything.
func (r *Record) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: nil record", ErrMalformedKeystore)
	}
	if r.Version != RecordVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrMalformedKeystore, r.Version)
	}
	if _, err := uuid.Parse(r.ID); err != nil {
		return fmt.Errorf("%w: id: %v", ErrMalformedKeystore, err)
	}
	if len(r.Addresses) == 0 {
		return fmt.Errorf("%w: no addresses", ErrMalformedKeystore)
	}
	for _, a := range r.Addresses {
		if !common.IsHexAddress(a) {
			return fmt.Errorf("%w: address %q", ErrMalformedKeystore, a)
		}
	}

	switch r.Kind {
	case KindSingle:
		if len(r.Addresses) != 1 || r.HD != nil {
			return fmt.Errorf("%w: single key record must hold exactly one address", ErrMalformedKeystore)
		}
	case KindHD:
		if r.HD == nil {
			return fmt.Errorf("%w: missing derivation parameters", ErrMalformedKeystore)
		}
		if _, err := accounts.ParseDerivationPath(r.HD.Path); err != nil {
			return fmt.Errorf("%w: derivation path: %v", ErrMalformedKeystore, err)
		}
		if int(r.HD.NextIndex) != len(r.Addresses) {
			return fmt.Errorf("%w: next index %d does not match %d addresses", ErrMalformedKeystore, r.HD.NextIndex, len(r.Addresses))
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrMalformedKeystore, r.Kind)
	}

	c := r.Crypto
	if c.Cipher != cipherName || c.KDF != kdfName {
		return fmt.Errorf("%w: unsupported cipher %q or kdf %q", ErrMalformedKeystore, c.Cipher, c.KDF)
	}
	params := ScryptParams{N: c.KDFParams.N, R: c.KDFParams.R, P: c.KDFParams.P}
	if !params.valid() || c.KDFParams.DKLen != keyLen {
		return fmt.Errorf("%w: kdf parameters", ErrMalformedKeystore)
	}
	if salt, err := hex.DecodeString(c.KDFParams.Salt); err != nil || len(salt) == 0 {
		return fmt.Errorf("%w: salt", ErrMalformedKeystore)
	}
	if iv, err := hex.DecodeString(c.CipherParams.IV); err != nil || len(iv) != nonceLen {
		return fmt.Errorf("%w: iv", ErrMalformedKeystore)
	}
	if ct, err := hex.DecodeString(c.CipherText); err != nil || len(ct) == 0 {
		return fmt.Errorf("%w: ciphertext", ErrMalformedKeystore)
	}
	return nil
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	out := *r
	out.Addresses = append([]string(nil), r.Addresses...)
	if r.HD != nil {
		hd := *r.HD
		out.HD = &hd
	}
	return &out
}

// HasAddress reports whether addr is one of the record's accounts.
func (r *Record) HasAddress(addr common.Address) bool {
	return r.indexOf(addr) >= 0
}

func (r *Record) indexOf(addr common.Address) int {
	for i, a := range r.Addresses {
		if common.HexToAddress(a) == addr {
			return i
		}
	}
	return -1
}

func (r *Record) scryptParams() ScryptParams {
	return ScryptParams{N: r.Crypto.KDFParams.N, R: r.Crypto.KDFParams.R, P: r.Crypto.KDFParams.P}
}

func (r *Record) additionalData() []byte {
	return []byte(string(r.Kind) + "|" + r.ID)
}
