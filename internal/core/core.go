// Package core is the wallet facade. It selects the current wallet, unlocks
// its keystore for the shortest possible scope and drives transfers through
// build, sign and submit.
package core

import (
	"context"
	"errors"
	"ethwallet/internal/keystore"
	"ethwallet/internal/repository"
	"ethwallet/pkg/keylock"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	ErrNoWalletSelected error = errors.New("no wallet selected")
	ErrWalletNotFound   error = errors.New("wallet not found")
	ErrWalletExists     error = errors.New("wallet already exists")
	ErrInvalidName      error = errors.New("invalid wallet name")
	ErrInvalidTxHash    error = errors.New("invalid transaction hash")
)

// WalletService holds all wallet state for one process. Nothing in it is
// global; tests build as many instances as they need.
type WalletService struct {
	logs      *zap.SugaredLogger
	store     KeystoreStore
	wallets   WalletRepository
	networks  NetworkProvider
	dialer    ChainDialer
	jwtIssuer JWTIssuer
	scrypt    keystore.ScryptParams

	keystoreLocks *keylock.KeyedMutex
	senderLocks   *keylock.KeyedMutex

	nonceMu sync.Mutex
	nonces  map[string]uint64
}

// NewWalletService is a constructor function for the WalletService type.
func NewWalletService(
	logger *zap.SugaredLogger,
	store KeystoreStore,
	wallets WalletRepository,
	networks NetworkProvider,
	dialer ChainDialer,
	jwt JWTIssuer,
	scrypt keystore.ScryptParams,
) *WalletService {
	return &WalletService{
		logs:          logger,
		store:         store,
		wallets:       wallets,
		networks:      networks,
		dialer:        dialer,
		jwtIssuer:     jwt,
		scrypt:        scrypt,
		keystoreLocks: keylock.New(),
		senderLocks:   keylock.New(),
		nonces:        make(map[string]uint64),
	}
}

func (w *WalletService) selected(ctx context.Context) (repository.Wallet, error) {
	wallet, err := w.wallets.GetSelectedWallet(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			return repository.Wallet{}, ErrNoWalletSelected
		}
		return repository.Wallet{}, fmt.Errorf("get selected wallet: %w", err)
	}
	return wallet, nil
}

func (w *WalletService) keyMaterial(ctx context.Context, wallet repository.Wallet) (keystore.KeyMaterial, error) {
	rec, err := w.store.LoadByID(ctx, wallet.KeystoreID)
	if err != nil {
		return nil, fmt.Errorf("load keystore of %s: %w", wallet.Address, err)
	}

	km, err := keystore.Load(rec)
	if err != nil {
		return nil, fmt.Errorf("load key material: %w", err)
	}
	return km, nil
}

func toRecord(wallet repository.Wallet) WalletRecord {
	return WalletRecord{
		ID:         wallet.ID,
		Address:    wallet.Address,
		KeystoreID: wallet.KeystoreID,
		Name:       wallet.Name,
		IsHD:       wallet.IsHD,
		IsSelected: wallet.IsSelected,
		IsImported: wallet.IsImported,
		CreatedAt:  wallet.CreatedAt,
	}
}

func walletAddress(wallet repository.Wallet) common.Address {
	return common.HexToAddress(wallet.Address)
}
