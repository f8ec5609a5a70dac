// Package txbuilder assembles legacy EIP-155 transactions for native and
// ERC-20 transfers and signs them with an unlocked key.
package txbuilder

import (
	"errors"
	"ethwallet/internal/network"
	"ethwallet/internal/units"
	"ethwallet/pkg/erc20"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
)

var (
	ErrInvalidAddress error = errors.New("invalid address")
	ErrInvalidGas     error = errors.New("invalid gas parameters")
	ErrSigning        error = errors.New("signing failed")
)

const (
	NativeTransferGas uint64 = 21000
	TokenTransferGas  uint64 = 210000
)

type UnsignedTransaction struct {
	From     common.Address
	To       common.Address
	Value    *big.Int
	Data     []byte
	GasPrice *big.Int
	GasLimit uint64
	ChainID  *big.Int
	Nonce    uint64
}

// WithNonce returns a copy of u carrying nonce.
func (u UnsignedTransaction) WithNonce(nonce uint64) UnsignedTransaction {
	u.Nonce = nonce
	return u
}

func (u UnsignedTransaction) legacy() *types.Transaction {
	return types.NewTx(&types.LegacyTx{
		Nonce:    u.Nonce,
		GasPrice: new(big.Int).Set(u.GasPrice),
		Gas:      u.GasLimit,
		To:       &u.To,
		Value:    new(big.Int).Set(u.Value),
		Data:     append([]byte(nil), u.Data...),
	})
}

// MaxCost is value + gasLimit*gasPrice, the most the sender can be charged.
func (u UnsignedTransaction) MaxCost() *big.Int {
	fee := new(big.Int).Mul(new(big.Int).SetUint64(u.GasLimit), u.GasPrice)
	return fee.Add(fee, u.Value)
}

// ParseAddress accepts a 0x-prefixed 20 byte hex address. Mixed-case input
// must carry a valid EIP-55 checksum.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return common.Address{}, fmt.Errorf("%w: %q lacks 0x prefix", ErrInvalidAddress, s)
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	addr := common.HexToAddress(s)
	body := s[2:]
	if body != strings.ToLower(body) && body != strings.ToUpper(body) && addr.Hex()[2:] != body {
		return common.Address{}, fmt.Errorf("%w: %q has a bad checksum", ErrInvalidAddress, s)
	}
	return addr, nil
}

// BuildNativeTransfer moves amount ether from from to to.
func BuildNativeTransfer(from common.Address, to, amount, gasPriceGwei string, gasLimit uint64, net network.Network) (UnsignedTransaction, error) {
	recipient, err := ParseAddress(to)
	if err != nil {
		return UnsignedTransaction{}, err
	}

	value, err := units.ParseEther(amount)
	if err != nil {
		return UnsignedTransaction{}, err
	}

	return build(from, recipient, value, nil, gasPriceGwei, gasLimit, net)
}

// BuildTokenTransfer calls transfer(to, amount) on contract. The amount is
// scaled by the token's decimals and no ether is attached.
func BuildTokenTransfer(from common.Address, to, contract, amount string, decimals int, gasPriceGwei string, gasLimit uint64, net network.Network) (UnsignedTransaction, error) {
	recipient, err := ParseAddress(to)
	if err != nil {
		return UnsignedTransaction{}, err
	}
	token, err := ParseAddress(contract)
	if err != nil {
		return UnsignedTransaction{}, err
	}

	value, err := units.ParseAmount(amount, decimals)
	if err != nil {
		return UnsignedTransaction{}, err
	}

	data, err := erc20.PackTransfer(recipient, value)
	if err != nil {
		return UnsignedTransaction{}, err
	}

	return build(from, token, new(big.Int), data, gasPriceGwei, gasLimit, net)
}

func build(from, to common.Address, value *big.Int, data []byte, gasPriceGwei string, gasLimit uint64, net network.Network) (UnsignedTransaction, error) {
	if net.ChainID == nil || net.ChainID.Sign() <= 0 {
		return UnsignedTransaction{}, fmt.Errorf("%w: chain id", network.ErrInvalidNetwork)
	}
	if gasLimit == 0 {
		return UnsignedTransaction{}, fmt.Errorf("%w: gas limit must be positive", ErrInvalidGas)
	}

	gasPrice, err := units.ParseGwei(gasPriceGwei)
	if err != nil {
		return UnsignedTransaction{}, fmt.Errorf("%w: gas price: %w", ErrInvalidGas, err)
	}

	if _, err := units.ToUint256(value); err != nil {
		return UnsignedTransaction{}, err
	}

	price, overflow := uint256.FromBig(gasPrice)
	if overflow {
		return UnsignedTransaction{}, fmt.Errorf("%w: gas price overflows", ErrInvalidGas)
	}
	if _, overflow := new(uint256.Int).MulOverflow(price, uint256.NewInt(gasLimit)); overflow {
		return UnsignedTransaction{}, fmt.Errorf("%w: gas limit * gas price overflows 256 bits", ErrInvalidGas)
	}

	return UnsignedTransaction{
		From:     from,
		To:       to,
		Value:    value,
		Data:     data,
		GasPrice: gasPrice,
		GasLimit: gasLimit,
		ChainID:  new(big.Int).Set(net.ChainID),
	}, nil
}
