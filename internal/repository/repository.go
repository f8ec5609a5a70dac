package repository

import (
	"context"
	"errors"
	"ethwallet/internal/db"
	"fmt"
)

var (
	ErrWalletNotFound  error = errors.New("wallet not found")
	ErrDuplicateWallet error = errors.New("wallet already exists")
)

type WalletRepository struct {
	db Storage
}

func NewWalletRepository(db Storage) *WalletRepository {
	return &WalletRepository{
		db: db,
	}
}

func (r *WalletRepository) Migrate() error {
	err := r.db.MigrateTable(&Wallet{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *WalletRepository) SaveWallet(ctx context.Context, wallet Wallet) error {
	err := r.db.Insert(ctx, &wallet)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return fmt.Errorf("%w: %s", ErrDuplicateWallet, wallet.Address)
		}
		return fmt.Errorf("save wallet: %w", err)
	}

	return nil
}

func (r *WalletRepository) ListWallets(ctx context.Context) ([]Wallet, error) {
	wallets := []Wallet{}
	err := r.db.GetAll(ctx, "created_at, id", &wallets)
	if err != nil {
		return wallets, fmt.Errorf("list wallets: %w", err)
	}

	return wallets, nil
}

func (r *WalletRepository) GetWallet(ctx context.Context, id string) (Wallet, error) {
	return r.getBy(ctx, "id", id)
}

func (r *WalletRepository) GetWalletByAddress(ctx context.Context, address string) (Wallet, error) {
	return r.getBy(ctx, "address", address)
}

// GetSelectedWallet returns ErrWalletNotFound when no wallet is selected.
func (r *WalletRepository) GetSelectedWallet(ctx context.Context) (Wallet, error) {
	return r.getBy(ctx, "is_selected", true)
}

func (r *WalletRepository) GetWalletsByKeystore(ctx context.Context, keystoreID string) ([]Wallet, error) {
	wallets := []Wallet{}
	err := r.db.GetAllBy(ctx, "keystore_id", []string{keystoreID}, &wallets)
	if err != nil {
		return wallets, fmt.Errorf("get wallets by keystore: %w", err)
	}

	return wallets, nil
}

func (r *WalletRepository) SelectWallet(ctx context.Context, id string) error {
	err := r.db.SelectExclusive(ctx, &Wallet{}, "is_selected", "id", id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrWalletNotFound
		}
		return fmt.Errorf("select wallet: %w", err)
	}

	return nil
}

func (r *WalletRepository) RenameWallet(ctx context.Context, id, name string) error {
	err := r.db.UpdateBy(ctx, &Wallet{}, "id", id, map[string]any{"name": name})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrWalletNotFound
		}
		return fmt.Errorf("rename wallet: %w", err)
	}

	return nil
}

func (r *WalletRepository) DeleteWallet(ctx context.Context, id string) error {
	err := r.db.DeleteBy(ctx, &Wallet{}, "id", id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrWalletNotFound
		}
		return fmt.Errorf("delete wallet: %w", err)
	}

	return nil
}

func (r *WalletRepository) getBy(ctx context.Context, column string, value any) (Wallet, error) {
	var wallet Wallet

	err := r.db.GetOneBy(ctx, column, value, &wallet)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Wallet{}, ErrWalletNotFound
		}
		return Wallet{}, fmt.Errorf("get wallet by %s: %w", column, err)
	}

	return wallet, nil
}
