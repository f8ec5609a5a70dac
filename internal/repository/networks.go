package repository

import (
	"context"
	"errors"
	"ethwallet/internal/db"
	"fmt"
)

var (
	ErrNetworkNotFound  error = errors.New("network not found")
	ErrDuplicateNetwork error = errors.New("network already exists")
)

type NetworkRepository struct {
	db Storage
}

func NewNetworkRepository(db Storage) *NetworkRepository {
	return &NetworkRepository{
		db: db,
	}
}

func (r *NetworkRepository) Migrate() error {
	err := r.db.MigrateTable(&Network{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// SeedNetworks stores presets on first start only.
func (r *NetworkRepository) SeedNetworks(ctx context.Context, presets []Network) error {
	err := r.db.SaveToTable(ctx, &presets)
	if err != nil {
		return fmt.Errorf("seed networks: %w", err)
	}

	return nil
}

func (r *NetworkRepository) AddNetwork(ctx context.Context, network Network) error {
	err := r.db.Insert(ctx, &network)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrDuplicateNetwork
		}
		return fmt.Errorf("add network: %w", err)
	}

	return nil
}

func (r *NetworkRepository) AllNetworks(ctx context.Context) ([]Network, error) {
	networks := []Network{}
	err := r.db.GetAll(ctx, "is_preset DESC, name", &networks)
	if err != nil {
		return networks, fmt.Errorf("get all networks: %w", err)
	}

	return networks, nil
}

func (r *NetworkRepository) GetNetwork(ctx context.Context, chainID string) (Network, error) {
	var network Network

	err := r.db.GetOneBy(ctx, "chain_id", chainID, &network)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Network{}, ErrNetworkNotFound
		}
		return Network{}, fmt.Errorf("get network by chain id: %w", err)
	}

	return network, nil
}

func (r *NetworkRepository) DeleteNetwork(ctx context.Context, chainID string) error {
	err := r.db.DeleteBy(ctx, &Network{}, "chain_id", chainID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrNetworkNotFound
		}
		return fmt.Errorf("delete network: %w", err)
	}

	return nil
}

// PreferredNetwork returns nil without error when no network is selected.
func (r *NetworkRepository) PreferredNetwork(ctx context.Context) (*Network, error) {
	var network Network

	err := r.db.GetOneBy(ctx, "is_selected", true, &network)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get preferred network: %w", err)
	}

	return &network, nil
}

func (r *NetworkRepository) SetPreferred(ctx context.Context, chainID string) error {
	err := r.db.SelectExclusive(ctx, &Network{}, "is_selected", "chain_id", chainID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrNetworkNotFound
		}
		return fmt.Errorf("set preferred network: %w", err)
	}

	return nil
}
