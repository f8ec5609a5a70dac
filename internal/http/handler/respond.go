package handler

import (
	"encoding/json"
	"errors"
	"ethwallet/internal/core"
	"ethwallet/internal/ethereum"
	"ethwallet/internal/http/handler/middleware"
	"ethwallet/internal/keystore"
	"ethwallet/internal/network"
	"ethwallet/internal/txbuilder"
	"ethwallet/internal/units"
	"net/http"

	"go.uber.org/zap"
)

func requestID(r *http.Request) string {
	return middleware.FromContext(r.Context())
}

func respond(logs *zap.SugaredLogger, w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

// errorStatus maps domain errors to an HTTP status and the detail shown to
// the client. Unexpected errors are hidden behind oopsErr.
func errorStatus(err error) (int, string) {
	var chainErr *ethereum.ChainError

	switch {
	case errors.Is(err, keystore.ErrInvalidMnemonic),
		errors.Is(err, keystore.ErrInvalidKey),
		errors.Is(err, txbuilder.ErrInvalidAddress),
		errors.Is(err, txbuilder.ErrInvalidGas),
		errors.Is(err, units.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidName),
		errors.Is(err, core.ErrInvalidTxHash),
		errors.Is(err, network.ErrInvalidNetwork):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, keystore.ErrInvalidPassword):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, core.ErrWalletNotFound),
		errors.Is(err, network.ErrNetworkNotFound),
		errors.Is(err, ethereum.ErrTxNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, core.ErrNoWalletSelected),
		errors.Is(err, core.ErrWalletExists),
		errors.Is(err, keystore.ErrNotHD),
		errors.Is(err, network.ErrDuplicateNetwork),
		errors.Is(err, network.ErrPresetNetwork):
		return http.StatusConflict, err.Error()
	case errors.As(err, &chainErr):
		return http.StatusBadGateway, chainErr.Error()
	}
	return http.StatusInternalServerError, oopsErr
}

// sendStatus is 200 for a submitted transaction, 502 when the node refused
// it and 400 for anything rejected locally.
func sendStatus(result core.SendResult) int {
	switch {
	case result.Code == core.CodeOK:
		return http.StatusOK
	case result.Code > 0:
		return http.StatusBadGateway
	}
	return http.StatusBadRequest
}
