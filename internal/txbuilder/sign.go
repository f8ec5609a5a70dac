package txbuilder

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
)

// Signer produces a recoverable secp256k1 signature over a hash.
type Signer interface {
	Address() common.Address
	SignHash(hash []byte) ([]byte, error)
}

// SignedTransaction is immutable once returned by Sign.
type SignedTransaction struct {
	UnsignedTransaction
	Hash common.Hash
	V    *big.Int
	R    *big.Int
	S    *big.Int
	Raw  []byte

	tx *types.Transaction
}

// Transaction returns the signed go-ethereum transaction for submission.
func (s *SignedTransaction) Transaction() *types.Transaction {
	return s.tx
}

// RawHex is the 0x-prefixed RLP encoding accepted by eth_sendRawTransaction.
func (s *SignedTransaction) RawHex() string {
	return hexutil.Encode(s.Raw)
}

// Sign hashes u with the EIP-155 signer for its chain and signs the hash.
func Sign(u UnsignedTransaction, signer Signer) (*SignedTransaction, error) {
	if signer == nil {
		return nil, fmt.Errorf("%w: no key", ErrSigning)
	}
	if signer.Address() != u.From {
		return nil, fmt.Errorf("%w: key for %s cannot sign for %s", ErrSigning, signer.Address().Hex(), u.From.Hex())
	}
	if u.ChainID == nil || u.GasPrice == nil || u.Value == nil {
		return nil, fmt.Errorf("%w: incomplete transaction", ErrSigning)
	}

	eip155 := types.NewEIP155Signer(u.ChainID)
	tx := u.legacy()

	sig, err := signer.SignHash(eip155.Hash(tx).Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigning, err)
	}

	signed, err := tx.WithSignature(eip155, sig)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigning, err)
	}

	sender, err := types.Sender(eip155, signed)
	if err != nil || sender != u.From {
		return nil, fmt.Errorf("%w: signature does not recover to sender", ErrSigning)
	}

	raw, err := rlp.EncodeToBytes(signed)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %w", ErrSigning, err)
	}

	v, r, s := signed.RawSignatureValues()
	return &SignedTransaction{
		UnsignedTransaction: u,
		Hash:                signed.Hash(),
		V:                   v,
		R:                   r,
		S:                   s,
		Raw:                 raw,
		tx:                  signed,
	}, nil
}
