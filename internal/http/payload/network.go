package payload

import (
	"ethwallet/internal/network"
	"fmt"
	"math/big"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

type NetworkRequest struct {
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	ChainID      string `json:"chainId"`
	RPCURL       string `json:"rpcUrl"`
	NativeSymbol string `json:"nativeSymbol"`
	ExplorerURL  string `json:"explorerUrl"`
}

func (n NetworkRequest) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Name, validation.Required, validation.Length(1, 32)),
		validation.Field(&n.ChainID, validation.Required, validation.Match(chainIDRegex)),
		validation.Field(&n.RPCURL, validation.Required, is.URL),
		validation.Field(&n.NativeSymbol, validation.Required, validation.Length(1, 16)),
		validation.Field(&n.ExplorerURL, is.URL),
	)
}

func (n NetworkRequest) ToNetwork() network.Network {
	chainID, _ := new(big.Int).SetString(n.ChainID, 10)
	return network.Network{
		Name:         n.Name,
		DisplayName:  n.DisplayName,
		ChainID:      chainID,
		RPCURL:       n.RPCURL,
		NativeSymbol: n.NativeSymbol,
		ExplorerURL:  n.ExplorerURL,
	}
}

// ParseChainID reads a decimal chain id from a path segment.
func ParseChainID(s string) (*big.Int, error) {
	if !chainIDRegex.MatchString(s) {
		return nil, fmt.Errorf("invalid chain id %q", s)
	}
	chainID, _ := new(big.Int).SetString(s, 10)
	return chainID, nil
}
