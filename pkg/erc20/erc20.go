// Package erc20 packs and unpacks the subset of the ERC-20 interface the
// wallet needs.
package erc20

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const tokenABI = `[
	{"constant":false,"inputs":[{"name":"_to","type":"address"},{"name":"_value","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"type":"function"},
	{"constant":true,"inputs":[{"name":"_owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"balance","type":"uint256"}],"type":"function"}
]`

const (
	methodTransfer  = "transfer"
	methodBalanceOf = "balanceOf"
)

var ErrUnexpectedOutput error = errors.New("unexpected contract output")

var parsedABI abi.ABI

func init() {
	var err error
	parsedABI, err = abi.JSON(strings.NewReader(tokenABI))
	if err != nil {
		panic(fmt.Sprintf("parse erc20 abi: %v", err))
	}
}

// TransferSelector returns the 4-byte method id of transfer(address,uint256).
func TransferSelector() []byte {
	return parsedABI.Methods[methodTransfer].ID
}

// PackTransfer encodes a transfer(to, amount) call: the selector followed by
// the address left-padded to 32 bytes and the big-endian amount.
func PackTransfer(to common.Address, amount *big.Int) ([]byte, error) {
	data, err := parsedABI.Pack(methodTransfer, to, amount)
	if err != nil {
		return nil, fmt.Errorf("pack transfer: %w", err)
	}
	return data, nil
}

func PackBalanceOf(owner common.Address) ([]byte, error) {
	data, err := parsedABI.Pack(methodBalanceOf, owner)
	if err != nil {
		return nil, fmt.Errorf("pack balanceOf: %w", err)
	}
	return data, nil
}

func UnpackBalanceOf(output []byte) (*big.Int, error) {
	values, err := parsedABI.Unpack(methodBalanceOf, output)
	if err != nil {
		return nil, fmt.Errorf("unpack balanceOf: %w", err)
	}
	if len(values) != 1 {
		return nil, ErrUnexpectedOutput
	}
	balance, ok := values[0].(*big.Int)
	if !ok {
		return nil, ErrUnexpectedOutput
	}
	return balance, nil
}
