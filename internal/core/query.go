package core

import (
	"context"
	"encoding/base64"
	"errors"
	"ethwallet/internal/ethereum"
	"ethwallet/internal/network"
	"ethwallet/internal/repository"
	"ethwallet/internal/txbuilder"
	"ethwallet/internal/units"
	"fmt"
	"math/big"
	"strconv"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/skip2/go-qrcode"
)

const qrSize = 256

// session resolves what every read needs: the current wallet, the active
// network and a client for it.
func (w *WalletService) session(ctx context.Context) (repository.Wallet, network.Network, ChainClient, error) {
	wallet, err := w.selected(ctx)
	if err != nil {
		return repository.Wallet{}, network.Network{}, nil, err
	}

	net, err := w.networks.Current(ctx)
	if err != nil {
		return repository.Wallet{}, network.Network{}, nil, fmt.Errorf("resolve network: %w", err)
	}

	client, err := w.dialer.Dial(ctx, net.RPCURL)
	if err != nil {
		return repository.Wallet{}, network.Network{}, nil, fmt.Errorf("dial %s: %w", net.Name, err)
	}

	return wallet, net, client, nil
}

// GetBalance returns the current wallet's balance with four fractional
// digits. An empty contract queries the native currency, otherwise the
// ERC-20 balance is scaled by decimals.
func (w *WalletService) GetBalance(ctx context.Context, contract string, decimals int) (string, error) {
	var token common.Address
	if contract != "" {
		addr, err := txbuilder.ParseAddress(contract)
		if err != nil {
			return "", err
		}
		token = addr
	}

	wallet, _, client, err := w.session(ctx)
	if err != nil {
		return "", err
	}
	owner := walletAddress(wallet)

	if contract == "" {
		balance, err := client.GetBalance(ctx, owner)
		if err != nil {
			return "", fmt.Errorf("get balance: %w", err)
		}
		return units.FormatAmount(balance, units.EtherDecimals, units.DisplayPrecision), nil
	}

	balance, err := client.GetTokenBalance(ctx, owner, token)
	if err != nil {
		return "", fmt.Errorf("get token balance: %w", err)
	}
	return units.FormatAmount(balance, decimals, units.DisplayPrecision), nil
}

// TokenBalances reads several token balances at once. Balances that could be
// read are returned together with the joined errors of the rest.
func (w *WalletService) TokenBalances(ctx context.Context, tokens []TokenQuery) ([]TokenAmount, error) {
	contracts := make([]common.Address, len(tokens))
	decimals := make(map[common.Address]int, len(tokens))
	for i, t := range tokens {
		addr, err := txbuilder.ParseAddress(t.Contract)
		if err != nil {
			return nil, fmt.Errorf("contract %q: %w", t.Contract, err)
		}
		contracts[i] = addr
		decimals[addr] = t.Decimals
	}

	wallet, _, client, err := w.session(ctx)
	if err != nil {
		return nil, err
	}

	balances, err := client.GetTokenBalances(ctx, walletAddress(wallet), contracts)

	amounts := make([]TokenAmount, 0, len(balances))
	for _, b := range balances {
		amounts = append(amounts, TokenAmount{
			Contract: b.Contract.Hex(),
			Amount:   units.FormatAmount(b.Balance, decimals[b.Contract], units.DisplayPrecision),
		})
	}
	if err != nil {
		return amounts, fmt.Errorf("get token balances: %w", err)
	}
	return amounts, nil
}

// GasPrice is the node's suggested gas price in gwei.
func (w *WalletService) GasPrice(ctx context.Context) (string, error) {
	_, _, client, err := w.session(ctx)
	if err != nil {
		return "", err
	}

	price, err := client.GetGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("get gas price: %w", err)
	}
	return units.FormatAmount(price, units.GweiDecimals, units.DisplayPrecision), nil
}

// EstimateGas returns the gas units a plain transfer to the given address
// would use when priced at gasPriceGwei.
func (w *WalletService) EstimateGas(ctx context.Context, to, gasPriceGwei string) (string, error) {
	recipient, err := txbuilder.ParseAddress(to)
	if err != nil {
		return "", err
	}
	gasPrice, err := units.ParseGwei(defaultGasPrice(gasPriceGwei))
	if err != nil {
		return "", err
	}

	wallet, _, client, err := w.session(ctx)
	if err != nil {
		return "", err
	}

	gas, err := client.EstimateGas(ctx, geth.CallMsg{
		From:     walletAddress(wallet),
		To:       &recipient,
		GasPrice: gasPrice,
		Value:    new(big.Int),
	})
	if err != nil {
		return "", fmt.Errorf("estimate gas: %w", err)
	}

	return strconv.FormatUint(gas, 10), nil
}

// ReceiveAddress returns the current address and a PNG QR code of it.
func (w *WalletService) ReceiveAddress(ctx context.Context) (ReceiveInfo, error) {
	wallet, err := w.selected(ctx)
	if err != nil {
		return ReceiveInfo{}, err
	}

	net, err := w.networks.Current(ctx)
	if err != nil {
		return ReceiveInfo{}, fmt.Errorf("resolve network: %w", err)
	}

	png, err := qrcode.Encode(wallet.Address, qrcode.Medium, qrSize)
	if err != nil {
		return ReceiveInfo{}, fmt.Errorf("encode qr code: %w", err)
	}

	return ReceiveInfo{
		Address: wallet.Address,
		Network: net.Name,
		QRCode:  base64.StdEncoding.EncodeToString(png),
	}, nil
}

// TransactionStatus looks up the receipt of hash on the active network.
func (w *WalletService) TransactionStatus(ctx context.Context, hash string) (TxStatusRecord, error) {
	if !isTxHash(hash) {
		return TxStatusRecord{}, fmt.Errorf("%w: %q", ErrInvalidTxHash, hash)
	}

	net, err := w.networks.Current(ctx)
	if err != nil {
		return TxStatusRecord{}, fmt.Errorf("resolve network: %w", err)
	}

	client, err := w.dialer.Dial(ctx, net.RPCURL)
	if err != nil {
		return TxStatusRecord{}, fmt.Errorf("dial %s: %w", net.Name, err)
	}

	status, err := client.TransactionStatus(ctx, common.HexToHash(hash))
	if err != nil {
		if errors.Is(err, ethereum.ErrTxNotFound) {
			return TxStatusRecord{}, err
		}
		return TxStatusRecord{}, fmt.Errorf("get transaction status: %w", err)
	}

	return TxStatusRecord{
		Hash:        status.Hash,
		Status:      string(status.Status),
		BlockNumber: status.BlockNumber,
		GasUsed:     status.GasUsed,
		ExplorerURL: net.TxURL(status.Hash),
	}, nil
}

func isTxHash(s string) bool {
	b, err := hexutil.Decode(s)
	return err == nil && len(b) == common.HashLength
}
