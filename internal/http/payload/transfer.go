package payload

import (
	"ethwallet/internal/core"
	"ethwallet/internal/units"

	"github.com/jellydator/validation"
)

type SendNativeRequest struct {
	To           string `json:"to"`
	Amount       string `json:"amount"`
	Password     string `json:"password"`
	GasPriceGwei string `json:"gasPriceGwei"`
	GasLimit     uint64 `json:"gasLimit"`
}

func (s SendNativeRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.To, validation.Required, addressRule),
		validation.Field(&s.Amount, validation.Required, amountRule),
		validation.Field(&s.Password, validation.Required, passwordRule),
		validation.Field(&s.GasPriceGwei, amountRule),
	)
}

func (s SendNativeRequest) ToCoreTransfer() core.NativeTransfer {
	return core.NativeTransfer{
		To:           s.To,
		Amount:       s.Amount,
		Password:     s.Password,
		GasPriceGwei: s.GasPriceGwei,
		GasLimit:     s.GasLimit,
	}
}

type SendTokenRequest struct {
	To           string `json:"to"`
	Contract     string `json:"contract"`
	Amount       string `json:"amount"`
	Decimals     *int   `json:"decimals"`
	Password     string `json:"password"`
	GasPriceGwei string `json:"gasPriceGwei"`
	GasLimit     uint64 `json:"gasLimit"`
}

func (s SendTokenRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.To, validation.Required, addressRule),
		validation.Field(&s.Contract, validation.Required, addressRule),
		validation.Field(&s.Amount, validation.Required, amountRule),
		validation.Field(&s.Decimals, validation.Min(0), validation.Max(maxDecimals)),
		validation.Field(&s.Password, validation.Required, passwordRule),
		validation.Field(&s.GasPriceGwei, amountRule),
	)
}

// ToCoreTransfer defaults missing decimals to 18.
func (s SendTokenRequest) ToCoreTransfer() core.TokenTransfer {
	decimals := units.EtherDecimals
	if s.Decimals != nil {
		decimals = *s.Decimals
	}

	return core.TokenTransfer{
		To:           s.To,
		Contract:     s.Contract,
		Amount:       s.Amount,
		Decimals:     decimals,
		Password:     s.Password,
		GasPriceGwei: s.GasPriceGwei,
		GasLimit:     s.GasLimit,
	}
}
