package handler

import (
	"context"
	"ethwallet/internal/core"
	"ethwallet/internal/network"
	"math/big"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name WalletService . WalletService
type WalletService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	Authorize(token string) (string, error)
	VerifyPassword(ctx context.Context, password string) (bool, error)
	ImportFromMnemonic(ctx context.Context, mnemonic, password, name string) (core.WalletRecord, error)
	ImportFromPrivateKey(ctx context.Context, hexKey, password, name string) (core.WalletRecord, error)
	CreateMnemonicWallet(ctx context.Context, password, name string) (core.WalletRecord, string, error)
	CreateChildAccount(ctx context.Context, password, name string) (core.WalletRecord, error)
	ExportPrivateKey(ctx context.Context, password string) (string, error)
	ListWallets(ctx context.Context) ([]core.WalletRecord, error)
	CurrentWallet(ctx context.Context) (core.WalletRecord, error)
	SelectWallet(ctx context.Context, id string) error
	RenameWallet(ctx context.Context, id, name string) error
	DeleteWallet(ctx context.Context, id string) error
	LoadAllKeystores(ctx context.Context) ([]core.KeystoreInfo, error)
	SendNative(ctx context.Context, req core.NativeTransfer) core.SendResult
	SendToken(ctx context.Context, req core.TokenTransfer) core.SendResult
	GetBalance(ctx context.Context, contract string, decimals int) (string, error)
	TokenBalances(ctx context.Context, tokens []core.TokenQuery) ([]core.TokenAmount, error)
	GasPrice(ctx context.Context) (string, error)
	EstimateGas(ctx context.Context, to, gasPriceGwei string) (string, error)
	ReceiveAddress(ctx context.Context) (core.ReceiveInfo, error)
	TransactionStatus(ctx context.Context, hash string) (core.TxStatusRecord, error)
}

//counterfeiter:generate -o fake -fake-name NetworkService . NetworkService
type NetworkService interface {
	Current(ctx context.Context) (network.Network, error)
	All(ctx context.Context) ([]network.Network, error)
	AddCustom(ctx context.Context, network network.Network) (network.Network, error)
	Remove(ctx context.Context, chainID *big.Int) error
	SetPreferred(ctx context.Context, chainID *big.Int) error
}
