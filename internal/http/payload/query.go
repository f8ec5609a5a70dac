package payload

import (
	"ethwallet/internal/core"
	"ethwallet/internal/units"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jellydator/validation"
)

type BalanceRequest struct {
	Contract string
	Decimals int
}

// NewBalanceRequest reads contract and decimals from the query string.
// Decimals default to 18.
func NewBalanceRequest(values url.Values) (BalanceRequest, error) {
	req := BalanceRequest{
		Contract: values.Get("contract"),
		Decimals: units.EtherDecimals,
	}

	if raw := values.Get("decimals"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			return BalanceRequest{}, fmt.Errorf("parse decimals: %w", err)
		}
		req.Decimals = d
	}

	return req, req.Validate()
}

func (b BalanceRequest) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Contract, addressRule),
		validation.Field(&b.Decimals, validation.Min(0), validation.Max(maxDecimals)),
	)
}

type TokenBalancesRequest struct {
	Contracts []string
	Decimals  []int
}

// NewTokenBalancesRequest pairs repeated contract and decimals parameters
// by position.
func NewTokenBalancesRequest(values url.Values) (TokenBalancesRequest, error) {
	req := TokenBalancesRequest{
		Contracts: values["contract"],
	}

	for _, raw := range values["decimals"] {
		d, err := strconv.Atoi(raw)
		if err != nil {
			return TokenBalancesRequest{}, fmt.Errorf("parse decimals: %w", err)
		}
		req.Decimals = append(req.Decimals, d)
	}

	return req, req.Validate()
}

func (t TokenBalancesRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Contracts, validation.Required, validation.Each(addressRule)),
		validation.Field(&t.Decimals, validation.Required, validation.Length(len(t.Contracts), len(t.Contracts)),
			validation.Each(validation.Min(0), validation.Max(maxDecimals))),
	)
}

func (t TokenBalancesRequest) ToCoreQueries() []core.TokenQuery {
	queries := make([]core.TokenQuery, len(t.Contracts))
	for i, contract := range t.Contracts {
		queries[i] = core.TokenQuery{Contract: contract, Decimals: t.Decimals[i]}
	}
	return queries
}

type EstimateGasRequest struct {
	To           string
	GasPriceGwei string
}

func NewEstimateGasRequest(values url.Values) (EstimateGasRequest, error) {
	req := EstimateGasRequest{
		To:           values.Get("to"),
		GasPriceGwei: values.Get("gasPrice"),
	}
	return req, req.Validate()
}

func (e EstimateGasRequest) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.To, validation.Required, addressRule),
		validation.Field(&e.GasPriceGwei, amountRule),
	)
}

type TransactionRequest struct {
	Hash string
}

func (t TransactionRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Hash, validation.Required, validation.Match(txHashRegex)),
	)
}
