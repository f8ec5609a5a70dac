package handler

import (
	"ethwallet/internal/http/payload"
	"net/http"
)

func (h *WalletHandler) HandleSendNative(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.SendNativeRequest
	if !h.decode(w, r, &req, "Transfer failed", SendNative) {
		return
	}

	result := h.wallet.SendNative(r.Context(), req.ToCoreTransfer())

	h.logs.Infow("native transfer finished",
		"code", result.Code,
		"state", result.State,
		"tx_hash", result.TxHash,
		"handler", SendNative,
		"request_id", requestId)

	respond(h.logs, w, result, sendStatus(result), requestId)
}

func (h *WalletHandler) HandleSendToken(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.SendTokenRequest
	if !h.decode(w, r, &req, "Transfer failed", SendToken) {
		return
	}

	result := h.wallet.SendToken(r.Context(), req.ToCoreTransfer())

	h.logs.Infow("token transfer finished",
		"code", result.Code,
		"state", result.State,
		"tx_hash", result.TxHash,
		"contract", req.Contract,
		"handler", SendToken,
		"request_id", requestId)

	respond(h.logs, w, result, sendStatus(result), requestId)
}
