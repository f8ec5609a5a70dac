package network

import (
	"errors"
	"ethwallet/internal/repository"
	"fmt"
	"math/big"
	"strings"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

var (
	ErrDuplicateNetwork error = errors.New("network already exists")
	ErrNetworkNotFound  error = errors.New("network not found")
	ErrPresetNetwork    error = errors.New("preset networks cannot be removed")
	ErrInvalidNetwork   error = errors.New("invalid network")
)

const (
	infuraMainnetURL = "https://mainnet.infura.io/v3/"
	bscDataseedURL   = "https://bsc-dataseed.binance.org/"
)

// Network identifies a chain and where to reach it.
type Network struct {
	Name         string
	DisplayName  string
	ChainID      *big.Int
	RPCURL       string
	NativeSymbol string
	ExplorerURL  string
	IsPreset     bool
	IsSelected   bool
}

func (n Network) Validate() error {
	err := validation.ValidateStruct(&n,
		validation.Field(&n.Name, validation.Required, validation.Length(1, 32)),
		validation.Field(&n.DisplayName, validation.Length(0, 255)),
		validation.Field(&n.RPCURL, validation.Required, is.URL),
		validation.Field(&n.NativeSymbol, validation.Required, validation.Length(1, 16)),
		validation.Field(&n.ExplorerURL, is.URL),
		validation.Field(&n.ChainID, validation.Required, validation.By(positiveChainID)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidNetwork, err)
	}
	return nil
}

func positiveChainID(value any) error {
	id, _ := value.(*big.Int)
	if id == nil || id.Sign() <= 0 {
		return errors.New("must be a positive integer")
	}
	return nil
}

// Mainnet is the Ethereum preset. The infura token is appended to the RPC URL.
func Mainnet(infuraToken string) Network {
	return Network{
		Name:         "ETH",
		DisplayName:  "Ethereum Mainnet",
		ChainID:      big.NewInt(1),
		RPCURL:       infuraMainnetURL + infuraToken,
		NativeSymbol: "ETH",
		ExplorerURL:  "https://etherscan.io",
		IsPreset:     true,
	}
}

func BSC() Network {
	return Network{
		Name:         "BSC",
		DisplayName:  "BNB Smart Chain",
		ChainID:      big.NewInt(56),
		RPCURL:       bscDataseedURL,
		NativeSymbol: "BNB",
		ExplorerURL:  "https://bscscan.com",
		IsPreset:     true,
	}
}

// TxURL links a transaction hash to the network's explorer.
func (n Network) TxURL(hash string) string {
	if n.ExplorerURL == "" {
		return ""
	}
	return strings.TrimRight(n.ExplorerURL, "/") + "/tx/" + hash
}

func toModel(n Network) repository.Network {
	return repository.Network{
		ChainID:      n.ChainID.String(),
		Name:         n.Name,
		DisplayName:  n.DisplayName,
		RPCURL:       n.RPCURL,
		NativeSymbol: n.NativeSymbol,
		ExplorerURL:  n.ExplorerURL,
		IsPreset:     n.IsPreset,
		IsSelected:   n.IsSelected,
	}
}

func fromModel(m repository.Network) (Network, error) {
	id, ok := new(big.Int).SetString(m.ChainID, 10)
	if !ok {
		return Network{}, fmt.Errorf("%w: stored chain id %q", ErrInvalidNetwork, m.ChainID)
	}
	return Network{
		Name:         m.Name,
		DisplayName:  m.DisplayName,
		ChainID:      id,
		RPCURL:       m.RPCURL,
		NativeSymbol: m.NativeSymbol,
		ExplorerURL:  m.ExplorerURL,
		IsPreset:     m.IsPreset,
		IsSelected:   m.IsSelected,
	}, nil
}
