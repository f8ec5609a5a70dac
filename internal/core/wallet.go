package core

import (
	"context"
	"errors"
	"ethwallet/internal/keystore"
	"ethwallet/internal/repository"
	"ethwallet/internal/storage"
	tokenIssuer "ethwallet/pkg/jwt"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
)

// ImportFromMnemonic stores an HD keystore for mnemonic with its first
// account and makes that account the current wallet.
func (w *WalletService) ImportFromMnemonic(ctx context.Context, mnemonic, password, name string) (WalletRecord, error) {
	km, err := keystore.NewFromMnemonic(mnemonic, []byte(password), w.scrypt)
	if err != nil {
		return WalletRecord{}, fmt.Errorf("create hd keystore: %w", err)
	}

	return w.register(ctx, km, name, true)
}

// CreateMnemonicWallet generates a new mnemonic and imports it. The phrase is
// returned once and never stored in plaintext.
func (w *WalletService) CreateMnemonicWallet(ctx context.Context, password, name string) (WalletRecord, string, error) {
	mnemonic, err := keystore.NewMnemonic()
	if err != nil {
		return WalletRecord{}, "", fmt.Errorf("generate mnemonic: %w", err)
	}

	km, err := keystore.NewFromMnemonic(mnemonic, []byte(password), w.scrypt)
	if err != nil {
		return WalletRecord{}, "", fmt.Errorf("create hd keystore: %w", err)
	}

	wallet, err := w.register(ctx, km, name, false)
	if err != nil {
		return WalletRecord{}, "", err
	}
	return wallet, mnemonic, nil
}

// ImportFromPrivateKey stores a single-key keystore and makes it current.
func (w *WalletService) ImportFromPrivateKey(ctx context.Context, hexKey, password, name string) (WalletRecord, error) {
	km, err := keystore.NewFromPrivateKey(hexKey, []byte(password), w.scrypt)
	if err != nil {
		return WalletRecord{}, fmt.Errorf("create keystore: %w", err)
	}

	return w.register(ctx, km, name, true)
}

func (w *WalletService) register(ctx context.Context, km keystore.KeyMaterial, name string, imported bool) (WalletRecord, error) {
	address := km.Addresses()[0]

	name, err := w.walletName(ctx, name)
	if err != nil {
		return WalletRecord{}, err
	}

	rec := km.Record()
	if err := w.store.Save(ctx, rec, true); err != nil {
		if errors.Is(err, storage.ErrDuplicateKeystore) {
			return WalletRecord{}, fmt.Errorf("%w: %s", ErrWalletExists, address.Hex())
		}
		return WalletRecord{}, fmt.Errorf("save keystore: %w", err)
	}

	wallet := repository.Wallet{
		ID:         uuid.NewString(),
		Address:    address.Hex(),
		KeystoreID: rec.ID,
		Name:       name,
		IsHD:       km.Kind() == keystore.KindHD,
		IsImported: imported,
		CreatedAt:  time.Now().UTC(),
	}

	if err := w.wallets.SaveWallet(ctx, wallet); err != nil {
		if delErr := w.store.Delete(ctx, address); delErr != nil {
			w.logs.Warnw("failed to roll back keystore",
				"keystore_id", rec.ID,
				"error", delErr)
		}
		if errors.Is(err, repository.ErrDuplicateWallet) {
			return WalletRecord{}, fmt.Errorf("%w: %s", ErrWalletExists, address.Hex())
		}
		return WalletRecord{}, fmt.Errorf("save wallet: %w", err)
	}

	if err := w.wallets.SelectWallet(ctx, wallet.ID); err != nil {
		return WalletRecord{}, fmt.Errorf("select wallet: %w", err)
	}
	wallet.IsSelected = true

	w.logs.Infow("wallet added",
		"wallet_id", wallet.ID,
		"address", wallet.Address,
		"kind", km.Kind(),
		"imported", imported)

	return toRecord(wallet), nil
}

// CreateChildAccount derives the next account of the current wallet's HD
// keystore and stores it as a new wallet.
func (w *WalletService) CreateChildAccount(ctx context.Context, password, name string) (WalletRecord, error) {
	current, err := w.selected(ctx)
	if err != nil {
		return WalletRecord{}, err
	}
	if !current.IsHD {
		return WalletRecord{}, keystore.ErrNotHD
	}

	unlock, err := w.keystoreLocks.Lock(ctx, current.KeystoreID)
	if err != nil {
		return WalletRecord{}, fmt.Errorf("lock keystore: %w", err)
	}
	defer unlock()

	km, err := w.keyMaterial(ctx, current)
	if err != nil {
		return WalletRecord{}, err
	}
	hd, ok := km.(*keystore.HDKeystore)
	if !ok {
		return WalletRecord{}, keystore.ErrNotHD
	}

	address, index, err := w.nextChildAccount(ctx, hd, password)
	if err != nil {
		return WalletRecord{}, err
	}

	if strings.TrimSpace(name) == "" {
		name = fmt.Sprintf("Account %d", index+1)
	}

	wallet := repository.Wallet{
		ID:         uuid.NewString(),
		Address:    address.Hex(),
		KeystoreID: hd.ID(),
		Name:       strings.TrimSpace(name),
		IsHD:       true,
		CreatedAt:  time.Now().UTC(),
	}
	if err := w.wallets.SaveWallet(ctx, wallet); err != nil {
		w.logs.Warnw("child account stored without a wallet record",
			"keystore_id", wallet.KeystoreID,
			"address", wallet.Address,
			"error", err)
		return WalletRecord{}, fmt.Errorf("save wallet: %w", err)
	}

	w.logs.Infow("child account derived",
		"wallet_id", wallet.ID,
		"keystore_id", wallet.KeystoreID,
		"address", wallet.Address,
		"index", index)

	return toRecord(wallet), nil
}

// nextChildAccount returns the first account of hd that has no wallet record
// yet, left behind by an earlier failed save. Otherwise it derives and stores
// the next account.
func (w *WalletService) nextChildAccount(ctx context.Context, hd *keystore.HDKeystore, password string) (common.Address, int, error) {
	for i, addr := range hd.Addresses() {
		_, err := w.wallets.GetWalletByAddress(ctx, addr.Hex())
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrWalletNotFound) {
			return common.Address{}, 0, fmt.Errorf("get wallet by address: %w", err)
		}

		if !hd.VerifyPassword([]byte(password)) {
			return common.Address{}, 0, keystore.ErrInvalidPassword
		}
		w.logs.Infow("reattaching child account", "keystore_id", hd.ID(), "address", addr.Hex())
		return addr, i, nil
	}

	address, err := hd.DeriveChildAccount([]byte(password))
	if err != nil {
		return common.Address{}, 0, fmt.Errorf("derive child account: %w", err)
	}

	if err := w.store.Save(ctx, hd.Record(), false); err != nil {
		return common.Address{}, 0, fmt.Errorf("save keystore: %w", err)
	}
	return address, len(hd.Addresses()) - 1, nil
}

// VerifyPassword reports whether password opens the current wallet.
func (w *WalletService) VerifyPassword(ctx context.Context, password string) (bool, error) {
	wallet, err := w.selected(ctx)
	if err != nil {
		return false, err
	}

	km, err := w.keyMaterial(ctx, wallet)
	if err != nil {
		return false, err
	}

	return km.VerifyPassword([]byte(password)), nil
}

// ExportPrivateKey returns the hex private key of the current account.
func (w *WalletService) ExportPrivateKey(ctx context.Context, password string) (string, error) {
	wallet, err := w.selected(ctx)
	if err != nil {
		return "", err
	}

	km, err := w.keyMaterial(ctx, wallet)
	if err != nil {
		return "", err
	}

	var exported string
	err = keystore.WithKey(km, []byte(password), walletAddress(wallet), func(h *keystore.KeyHandle) error {
		key, err := h.PrivateKeyBytes()
		if err != nil {
			return err
		}
		defer clear(key)
		exported = hexutil.Encode(key)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("unlock keystore: %w", err)
	}

	w.logs.Warnw("private key exported", "wallet_id", wallet.ID, "address", wallet.Address)
	return exported, nil
}

// Authenticate issues a session token for the current wallet when password
// opens it.
func (w *WalletService) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	wallet, err := w.selected(ctx)
	if err != nil {
		return "", err
	}

	ok, err := w.VerifyPassword(ctx, msg.Password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", keystore.ErrInvalidPassword
	}

	token := w.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		Subject:    wallet.ID,
		WalletName: wallet.Name,
		Address:    wallet.Address,
		TTL:        sessionTTL,
	})
	signed, err := w.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Authorize validates a session token and returns the wallet id it was
// issued for.
func (w *WalletService) Authorize(token string) (string, error) {
	claims, err := w.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("validate jwt token: %w", err)
	}

	walletID, ok := claims["sub"].(string)
	if !ok || walletID == "" {
		return "", fmt.Errorf("validate jwt token: %w", tokenIssuer.ErrTokenNotValid)
	}
	return walletID, nil
}

func (w *WalletService) ListWallets(ctx context.Context) ([]WalletRecord, error) {
	wallets, err := w.wallets.ListWallets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}

	records := make([]WalletRecord, len(wallets))
	for i, wallet := range wallets {
		records[i] = toRecord(wallet)
	}
	return records, nil
}

func (w *WalletService) CurrentWallet(ctx context.Context) (WalletRecord, error) {
	wallet, err := w.selected(ctx)
	if err != nil {
		return WalletRecord{}, err
	}
	return toRecord(wallet), nil
}

func (w *WalletService) SelectWallet(ctx context.Context, id string) error {
	if err := w.wallets.SelectWallet(ctx, id); err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			return fmt.Errorf("%w: %s", ErrWalletNotFound, id)
		}
		return fmt.Errorf("select wallet: %w", err)
	}

	w.logs.Infow("wallet selected", "wallet_id", id)
	return nil
}

func (w *WalletService) RenameWallet(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}

	if err := w.wallets.RenameWallet(ctx, id, name); err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			return fmt.Errorf("%w: %s", ErrWalletNotFound, id)
		}
		return fmt.Errorf("rename wallet: %w", err)
	}
	return nil
}

// DeleteWallet removes the wallet and, once no other wallet uses it, its
// keystore file. Deleting the current wallet selects the oldest remaining
// one.
func (w *WalletService) DeleteWallet(ctx context.Context, id string) error {
	wallet, err := w.wallets.GetWallet(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			return fmt.Errorf("%w: %s", ErrWalletNotFound, id)
		}
		return fmt.Errorf("get wallet: %w", err)
	}

	unlock, err := w.keystoreLocks.Lock(ctx, wallet.KeystoreID)
	if err != nil {
		return fmt.Errorf("lock keystore: %w", err)
	}
	defer unlock()

	if err := w.wallets.DeleteWallet(ctx, id); err != nil {
		return fmt.Errorf("delete wallet: %w", err)
	}

	siblings, err := w.wallets.GetWalletsByKeystore(ctx, wallet.KeystoreID)
	if err != nil {
		return fmt.Errorf("get wallets by keystore: %w", err)
	}
	if len(siblings) == 0 {
		err := w.store.Delete(ctx, walletAddress(wallet))
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("delete keystore: %w", err)
		}
	}

	if wallet.IsSelected {
		remaining, err := w.wallets.ListWallets(ctx)
		if err != nil {
			return fmt.Errorf("list wallets: %w", err)
		}
		if len(remaining) > 0 {
			if err := w.wallets.SelectWallet(ctx, remaining[0].ID); err != nil {
				return fmt.Errorf("select wallet: %w", err)
			}
		}
	}

	w.logs.Infow("wallet deleted",
		"wallet_id", id,
		"address", wallet.Address,
		"keystore_removed", len(siblings) == 0)
	return nil
}

// LoadAllKeystores lists every readable keystore in the store.
func (w *WalletService) LoadAllKeystores(ctx context.Context) ([]KeystoreInfo, error) {
	records, err := w.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load keystores: %w", err)
	}

	infos := make([]KeystoreInfo, 0, len(records))
	for _, rec := range records {
		infos = append(infos, KeystoreInfo{
			ID:        rec.ID,
			Kind:      string(rec.Kind),
			Addresses: append([]string(nil), rec.Addresses...),
			CreatedAt: rec.CreatedAt,
		})
	}
	return infos, nil
}

func (w *WalletService) walletName(ctx context.Context, name string) (string, error) {
	if name = strings.TrimSpace(name); name != "" {
		return name, nil
	}

	wallets, err := w.wallets.ListWallets(ctx)
	if err != nil {
		return "", fmt.Errorf("list wallets: %w", err)
	}
	return fmt.Sprintf("Wallet %d", len(wallets)+1), nil
}
