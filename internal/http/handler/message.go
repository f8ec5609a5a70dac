package handler

import (
	"ethwallet/internal/network"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

const authHeader = "AUTH_TOKEN"

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

type NetworkView struct {
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	ChainID      string `json:"chainId"`
	RPCURL       string `json:"rpcUrl,omitempty"`
	NativeSymbol string `json:"nativeSymbol"`
	ExplorerURL  string `json:"explorerUrl,omitempty"`
	IsPreset     bool   `json:"isPreset"`
	IsSelected   bool   `json:"isSelected"`
}

func toNetworkView(n network.Network) NetworkView {
	chainID := ""
	if n.ChainID != nil {
		chainID = n.ChainID.String()
	}
	// preset endpoints may embed an API token
	rpcURL := n.RPCURL
	if n.IsPreset {
		rpcURL = ""
	}
	return NetworkView{
		Name:         n.Name,
		DisplayName:  n.DisplayName,
		ChainID:      chainID,
		RPCURL:       rpcURL,
		NativeSymbol: n.NativeSymbol,
		ExplorerURL:  n.ExplorerURL,
		IsPreset:     n.IsPreset,
		IsSelected:   n.IsSelected,
	}
}
