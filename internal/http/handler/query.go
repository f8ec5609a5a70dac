package handler

import (
	"ethwallet/internal/http/payload"
	"fmt"
	"net/http"
)

func (h *WalletHandler) badQuery(w http.ResponseWriter, err error, route, requestId string) {
	respond(h.logs, w, Response{
		Message: "Request failed",
		Error:   fmt.Errorf("validate query parameters: %w", err).Error(),
	}, http.StatusBadRequest, requestId)
	h.logs.Errorw("failed to validate query parameters",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *WalletHandler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	req, err := payload.NewBalanceRequest(r.URL.Query())
	if err != nil {
		h.badQuery(w, err, Balance, requestId)
		return
	}

	balance, err := h.wallet.GetBalance(r.Context(), req.Contract, req.Decimals)
	if err != nil {
		h.fail(w, "Could not get balance", err, Balance, requestId)
		return
	}

	resp := map[string]string{
		"balance": balance,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleTokenBalances(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	req, err := payload.NewTokenBalancesRequest(r.URL.Query())
	if err != nil {
		h.badQuery(w, err, TokenBalances, requestId)
		return
	}

	amounts, err := h.wallet.TokenBalances(r.Context(), req.ToCoreQueries())
	if err != nil {
		if len(amounts) == 0 {
			h.fail(w, "Could not get token balances", err, TokenBalances, requestId)
			return
		}
		h.logs.Warnw("some token balances could not be read",
			"error", err,
			"handler", TokenBalances,
			"request_id", requestId)
		respond(h.logs, w, Response{
			Message: "Some balances could not be read",
			Data:    amounts,
		}, http.StatusPartialContent, requestId)
		return
	}

	respond(h.logs, w, Response{Data: amounts}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGasPrice(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	price, err := h.wallet.GasPrice(r.Context())
	if err != nil {
		h.fail(w, "Could not get gas price", err, GasPrice, requestId)
		return
	}

	resp := map[string]string{
		"gasPriceGwei": price,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleEstimateGas(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	req, err := payload.NewEstimateGasRequest(r.URL.Query())
	if err != nil {
		h.badQuery(w, err, EstimateGas, requestId)
		return
	}

	gas, err := h.wallet.EstimateGas(r.Context(), req.To, req.GasPriceGwei)
	if err != nil {
		h.fail(w, "Could not estimate gas", err, EstimateGas, requestId)
		return
	}

	resp := map[string]string{
		"gas": gas,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleAddress(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	info, err := h.wallet.ReceiveAddress(r.Context())
	if err != nil {
		h.fail(w, "Could not get address", err, Address, requestId)
		return
	}

	respond(h.logs, w, Response{Data: info}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleTxStatus(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	req := payload.TransactionRequest{Hash: r.PathValue("hash")}
	if err := req.Validate(); err != nil {
		h.badQuery(w, err, TxStatus, requestId)
		return
	}

	status, err := h.wallet.TransactionStatus(r.Context(), req.Hash)
	if err != nil {
		h.fail(w, "Could not get transaction status", err, TxStatus, requestId)
		return
	}

	respond(h.logs, w, Response{Data: status}, http.StatusOK, requestId)
}
