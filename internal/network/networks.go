package network

import (
	"context"
	"errors"
	"ethwallet/internal/repository"
	"fmt"
	"math/big"
	"sync"

	"go.uber.org/zap"
)

// Networks resolves the active chain. An override set for the process
// wins over the persisted preference, which wins over the Ethereum preset.
type Networks struct {
	logs     *zap.SugaredLogger
	registry Registry
	presets  []Network

	mu       sync.RWMutex
	override *Network
}

func NewNetworks(logger *zap.SugaredLogger, registry Registry, infuraToken string) *Networks {
	return &Networks{
		logs:     logger,
		registry: registry,
		presets:  []Network{Mainnet(infuraToken), BSC()},
	}
}

// Seed stores the presets on first start.
func (n *Networks) Seed(ctx context.Context) error {
	models := make([]repository.Network, 0, len(n.presets))
	for _, p := range n.presets {
		models = append(models, toModel(p))
	}

	if err := n.registry.SeedNetworks(ctx, models); err != nil {
		return fmt.Errorf("seed preset networks: %w", err)
	}
	return nil
}

func (n *Networks) Current(ctx context.Context) (Network, error) {
	n.mu.RLock()
	override := n.override
	n.mu.RUnlock()

	if override != nil {
		return *override, nil
	}

	preferred, err := n.registry.PreferredNetwork(ctx)
	if err != nil {
		return Network{}, fmt.Errorf("get preferred network: %w", err)
	}
	if preferred == nil {
		return n.presets[0], nil
	}

	return n.resolve(*preferred)
}

// SetOverride pins the active network for this process without touching the
// stored preference. A nil network clears the override.
func (n *Networks) SetOverride(network *Network) error {
	if network != nil {
		if err := network.Validate(); err != nil {
			return err
		}
		cp := *network
		cp.ChainID = new(big.Int).Set(network.ChainID)
		network = &cp
	}

	n.mu.Lock()
	n.override = network
	n.mu.Unlock()
	return nil
}

func (n *Networks) SetPreferred(ctx context.Context, chainID *big.Int) error {
	if chainID == nil {
		return fmt.Errorf("%w: missing chain id", ErrNetworkNotFound)
	}

	err := n.registry.SetPreferred(ctx, chainID.String())
	if err != nil {
		if errors.Is(err, repository.ErrNetworkNotFound) {
			return fmt.Errorf("%w: chain id %s", ErrNetworkNotFound, chainID)
		}
		return fmt.Errorf("set preferred network: %w", err)
	}

	n.logs.Infow("preferred network changed", "chain_id", chainID.String())
	return nil
}

// AddCustom registers a user network. Every field is required up front.
func (n *Networks) AddCustom(ctx context.Context, network Network) (Network, error) {
	network.IsPreset = false
	network.IsSelected = false
	if network.DisplayName == "" {
		network.DisplayName = network.Name
	}
	if err := network.Validate(); err != nil {
		return Network{}, err
	}
	for _, p := range n.presets {
		if p.ChainID.Cmp(network.ChainID) == 0 {
			return Network{}, fmt.Errorf("%w: chain id %s", ErrDuplicateNetwork, network.ChainID)
		}
	}

	err := n.registry.AddNetwork(ctx, toModel(network))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateNetwork) {
			return Network{}, fmt.Errorf("%w: chain id %s", ErrDuplicateNetwork, network.ChainID)
		}
		return Network{}, fmt.Errorf("add custom network: %w", err)
	}

	n.logs.Infow("custom network added",
		"chain_id", network.ChainID.String(),
		"name", network.Name,
	)
	return network, nil
}

func (n *Networks) Remove(ctx context.Context, chainID *big.Int) error {
	if chainID == nil {
		return fmt.Errorf("%w: missing chain id", ErrNetworkNotFound)
	}
	for _, p := range n.presets {
		if p.ChainID.Cmp(chainID) == 0 {
			return fmt.Errorf("%w: %s", ErrPresetNetwork, p.Name)
		}
	}

	stored, err := n.registry.GetNetwork(ctx, chainID.String())
	if err != nil {
		if errors.Is(err, repository.ErrNetworkNotFound) {
			return fmt.Errorf("%w: chain id %s", ErrNetworkNotFound, chainID)
		}
		return fmt.Errorf("get network: %w", err)
	}
	if stored.IsPreset {
		return fmt.Errorf("%w: %s", ErrPresetNetwork, stored.Name)
	}

	err = n.registry.DeleteNetwork(ctx, chainID.String())
	if err != nil {
		if errors.Is(err, repository.ErrNetworkNotFound) {
			return fmt.Errorf("%w: chain id %s", ErrNetworkNotFound, chainID)
		}
		return fmt.Errorf("delete network: %w", err)
	}

	n.mu.Lock()
	if n.override != nil && n.override.ChainID.Cmp(chainID) == 0 {
		n.override = nil
	}
	n.mu.Unlock()

	n.logs.Infow("custom network removed", "chain_id", chainID.String())
	return nil
}

func (n *Networks) ListPresets() []Network {
	out := make([]Network, len(n.presets))
	copy(out, n.presets)
	return out
}

func (n *Networks) ListCustom(ctx context.Context) ([]Network, error) {
	all, err := n.All(ctx)
	if err != nil {
		return nil, err
	}

	custom := make([]Network, 0, len(all))
	for _, net := range all {
		if !net.IsPreset {
			custom = append(custom, net)
		}
	}
	return custom, nil
}

// All returns presets first, then custom networks.
func (n *Networks) All(ctx context.Context) ([]Network, error) {
	models, err := n.registry.AllNetworks(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all networks: %w", err)
	}

	out := make([]Network, 0, len(models))
	for _, m := range models {
		net, err := n.resolve(m)
		if err != nil {
			n.logs.Warnw("skipping invalid stored network", "chain_id", m.ChainID, "error", err)
			continue
		}
		out = append(out, net)
	}
	return out, nil
}

// FromChainID looks a network up among presets and stored networks.
func (n *Networks) FromChainID(ctx context.Context, chainID *big.Int) (Network, error) {
	if chainID == nil {
		return Network{}, fmt.Errorf("%w: missing chain id", ErrNetworkNotFound)
	}
	for _, p := range n.presets {
		if p.ChainID.Cmp(chainID) == 0 {
			return p, nil
		}
	}

	stored, err := n.registry.GetNetwork(ctx, chainID.String())
	if err != nil {
		if errors.Is(err, repository.ErrNetworkNotFound) {
			return Network{}, fmt.Errorf("%w: chain id %s", ErrNetworkNotFound, chainID)
		}
		return Network{}, fmt.Errorf("get network: %w", err)
	}
	return n.resolve(stored)
}

// resolve converts a stored network, taking connection details of presets
// from configuration rather than the database.
func (n *Networks) resolve(m repository.Network) (Network, error) {
	net, err := fromModel(m)
	if err != nil {
		return Network{}, err
	}

	for _, p := range n.presets {
		if p.ChainID.Cmp(net.ChainID) == 0 {
			p.IsSelected = net.IsSelected
			return p, nil
		}
	}
	return net, nil
}
