package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type TokenBalance struct {
	Contract common.Address
	Balance  *big.Int
}

type tokenResult struct {
	index   int
	balance *big.Int
	err     error
}

type TxStatus string

const (
	TxPending TxStatus = "pending"
	TxSuccess TxStatus = "success"
	TxFailed  TxStatus = "failed"
)

type TransactionStatus struct {
	Hash        string
	Status      TxStatus
	BlockNumber uint64
	GasUsed     uint64
}
