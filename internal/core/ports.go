package core

import (
	"context"
	"ethwallet/internal/ethereum"
	"ethwallet/internal/keystore"
	"ethwallet/internal/network"
	"ethwallet/internal/repository"
	tokenIssuer "ethwallet/pkg/jwt"
	"math/big"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name KeystoreStore . KeystoreStore
type KeystoreStore interface {
	Save(ctx context.Context, rec *keystore.Record, isFirst bool) error
	LoadAll(ctx context.Context) ([]*keystore.Record, error)
	LoadByID(ctx context.Context, id string) (*keystore.Record, error)
	LoadByAddress(ctx context.Context, addr common.Address) (*keystore.Record, error)
	Delete(ctx context.Context, addr common.Address) error
}

//counterfeiter:generate -o fake -fake-name WalletRepository . WalletRepository
type WalletRepository interface {
	SaveWallet(ctx context.Context, wallet repository.Wallet) error
	ListWallets(ctx context.Context) ([]repository.Wallet, error)
	GetWallet(ctx context.Context, id string) (repository.Wallet, error)
	GetWalletByAddress(ctx context.Context, address string) (repository.Wallet, error)
	GetSelectedWallet(ctx context.Context) (repository.Wallet, error)
	GetWalletsByKeystore(ctx context.Context, keystoreID string) ([]repository.Wallet, error)
	SelectWallet(ctx context.Context, id string) error
	RenameWallet(ctx context.Context, id, name string) error
	DeleteWallet(ctx context.Context, id string) error
}

//counterfeiter:generate -o fake -fake-name NetworkProvider . NetworkProvider
type NetworkProvider interface {
	Current(ctx context.Context) (network.Network, error)
}

//counterfeiter:generate -o fake -fake-name ChainClient . ChainClient
type ChainClient interface {
	GetBalance(ctx context.Context, account common.Address) (*big.Int, error)
	GetTokenBalance(ctx context.Context, owner, contract common.Address) (*big.Int, error)
	GetTokenBalances(ctx context.Context, owner common.Address, contracts []common.Address) ([]ethereum.TokenBalance, error)
	GetGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg geth.CallMsg) (uint64, error)
	PendingNonce(ctx context.Context, account common.Address) (uint64, error)
	SubmitTransaction(ctx context.Context, tx *types.Transaction) (string, error)
	TransactionStatus(ctx context.Context, hash common.Hash) (*ethereum.TransactionStatus, error)
}

//counterfeiter:generate -o fake -fake-name ChainDialer . ChainDialer
type ChainDialer interface {
	Dial(ctx context.Context, rpcURL string) (ChainClient, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
