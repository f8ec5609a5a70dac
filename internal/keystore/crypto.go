package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

const (
	cipherName = "aes-256-gcm"
	kdfName    = "scrypt"

	saltLen  = 32
	nonceLen = 12
	keyLen   = 32

	// bounds on work factors read from stored records
	maxScryptN = 1 << 22
	maxScryptR = 32
	maxScryptP = 16
)

// ScryptParams is the work factor of the password key derivation.
type ScryptParams struct {
	N int
	R int
	P int
}

var (
	DefaultScryptParams = ScryptParams{N: 1 << 18, R: 8, P: 1}

	// LightScryptParams trades security for speed. Tests only.
	LightScryptParams = ScryptParams{N: 1 << 12, R: 8, P: 1}
)

func (p ScryptParams) valid() bool {
	return p.N > 1 && p.N <= maxScryptN && p.N&(p.N-1) == 0 &&
		p.R > 0 && p.R <= maxScryptR &&
		p.P > 0 && p.P <= maxScryptP
}

// seal encrypts plaintext under a key derived from password with a fresh
// salt and nonce. aad binds the ciphertext to the record it belongs to.
func seal(plaintext, password []byte, params ScryptParams, aad []byte) (CryptoParams, error) {
	if !params.valid() {
		return CryptoParams{}, fmt.Errorf("invalid scrypt parameters N=%d r=%d p=%d", params.N, params.R, params.P)
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return CryptoParams{}, fmt.Errorf("generate salt: %w", err)
	}
	nonce := make([]byte, nonceLen)
	if _, err := rand.Read(nonce); err != nil {
		return CryptoParams{}, fmt.Errorf("generate nonce: %w", err)
	}

	key, err := scrypt.Key(password, salt, params.N, params.R, params.P, keyLen)
	if err != nil {
		return CryptoParams{}, fmt.Errorf("derive key: %w", err)
	}
	defer clear(key)

	gcm, err := newGCM(key)
	if err != nil {
		return CryptoParams{}, err
	}

	return CryptoParams{
		Cipher:       cipherName,
		CipherText:   hex.EncodeToString(gcm.Seal(nil, nonce, plaintext, aad)),
		CipherParams: CipherParams{IV: hex.EncodeToString(nonce)},
		KDF:          kdfName,
		KDFParams: KDFParams{
			N:     params.N,
			R:     params.R,
			P:     params.P,
			DKLen: keyLen,
			Salt:  hex.EncodeToString(salt),
		},
	}, nil
}

// open reverses seal. An authentication failure is reported as
// ErrInvalidPassword and no plaintext is returned.
func open(c CryptoParams, password, aad []byte) ([]byte, error) {
	salt, err := hex.DecodeString(c.KDFParams.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: salt: %v", ErrMalformedKeystore, err)
	}
	nonce, err := hex.DecodeString(c.CipherParams.IV)
	if err != nil || len(nonce) != nonceLen {
		return nil, fmt.Errorf("%w: iv", ErrMalformedKeystore)
	}
	ciphertext, err := hex.DecodeString(c.CipherText)
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext: %v", ErrMalformedKeystore, err)
	}

	key, err := scrypt.Key(password, salt, c.KDFParams.N, c.KDFParams.R, c.KDFParams.P, c.KDFParams.DKLen)
	if err != nil {
		return nil, fmt.Errorf("%w: kdf: %v", ErrMalformedKeystore, err)
	}
	defer clear(key)

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, ErrInvalidPassword
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
