package network

import (
	"context"
	"ethwallet/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Registry . Registry
type Registry interface {
	SeedNetworks(ctx context.Context, presets []repository.Network) error
	AddNetwork(ctx context.Context, network repository.Network) error
	AllNetworks(ctx context.Context) ([]repository.Network, error)
	GetNetwork(ctx context.Context, chainID string) (repository.Network, error)
	DeleteNetwork(ctx context.Context, chainID string) error
	PreferredNetwork(ctx context.Context) (*repository.Network, error)
	SetPreferred(ctx context.Context, chainID string) error
}
