package handler

import (
	"ethwallet/internal/http/payload"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

type WalletHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	wallet           WalletService
}

func NewWalletHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, walletService WalletService) *WalletHandler {
	return &WalletHandler{
		logs:             logger,
		requestValidator: requestValidator,
		wallet:           walletService,
	}
}

// RequireToken rejects requests without a valid AUTH_TOKEN header.
func (h *WalletHandler) RequireToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestId := requestID(r)

		authToken := r.Header.Get(authHeader)
		if authToken == "" {
			respond(h.logs, w, Response{
				Message: "Authentication failed",
				Error:   "AUTH_TOKEN header is required",
			}, http.StatusUnauthorized, requestId)
			h.logs.Errorw("missing AUTH_TOKEN header", "path", r.URL.Path, "request_id", requestId)
			return
		}

		if _, err := h.wallet.Authorize(authToken); err != nil {
			respond(h.logs, w, Response{
				Message: "Authentication failed",
				Error:   "token is not valid",
			}, http.StatusUnauthorized, requestId)
			h.logs.Errorw("invalid AUTH_TOKEN", "error", err, "path", r.URL.Path, "request_id", requestId)
			return
		}

		next(w, r)
	}
}

func (h *WalletHandler) fail(w http.ResponseWriter, message string, err error, route, requestId string) {
	code, detail := errorStatus(err)
	respond(h.logs, w, Response{
		Message: message,
		Error:   detail,
	}, code, requestId)
	h.logs.Errorw(message,
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *WalletHandler) decode(w http.ResponseWriter, r *http.Request, object any, message, route string) bool {
	err := h.requestValidator.DecodeJSONPayload(r, object)
	if err != nil {
		requestId := requestID(r)
		respond(h.logs, w, Response{
			Message: message,
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return false
	}
	return true
}

func (h *WalletHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.AuthRequest
	if !h.decode(w, r, &req, "Could not authenticate", Authenticate) {
		return
	}

	token, err := h.wallet.Authenticate(r.Context(), req.ToCoreAuthMessage())
	if err != nil {
		h.fail(w, "Login failed", err, Authenticate, requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleVerifyPassword(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.AuthRequest
	if !h.decode(w, r, &req, "Could not verify password", VerifyPassword) {
		return
	}

	ok, err := h.wallet.VerifyPassword(r.Context(), req.Password)
	if err != nil {
		h.fail(w, "Could not verify password", err, VerifyPassword, requestId)
		return
	}

	resp := map[string]bool{
		"valid": ok,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleImportMnemonic(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.ImportMnemonicRequest
	if !h.decode(w, r, &req, "Could not import wallet", ImportMnemonic) {
		return
	}

	wallet, err := h.wallet.ImportFromMnemonic(r.Context(), req.Mnemonic, req.Password, req.Name)
	if err != nil {
		h.fail(w, "Could not import wallet", err, ImportMnemonic, requestId)
		return
	}

	h.logs.Infow("wallet imported from mnemonic",
		"wallet_id", wallet.ID,
		"handler", ImportMnemonic,
		"request_id", requestId)

	respond(h.logs, w, Response{Message: "Wallet imported", Data: wallet}, http.StatusCreated, requestId)
}

func (h *WalletHandler) HandleImportKey(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.ImportKeyRequest
	if !h.decode(w, r, &req, "Could not import wallet", ImportKey) {
		return
	}

	wallet, err := h.wallet.ImportFromPrivateKey(r.Context(), req.PrivateKey, req.Password, req.Name)
	if err != nil {
		h.fail(w, "Could not import wallet", err, ImportKey, requestId)
		return
	}

	h.logs.Infow("wallet imported from private key",
		"wallet_id", wallet.ID,
		"handler", ImportKey,
		"request_id", requestId)

	respond(h.logs, w, Response{Message: "Wallet imported", Data: wallet}, http.StatusCreated, requestId)
}

func (h *WalletHandler) HandleCreateWallet(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.CreateRequest
	if !h.decode(w, r, &req, "Could not create wallet", CreateWallet) {
		return
	}

	wallet, mnemonic, err := h.wallet.CreateMnemonicWallet(r.Context(), req.Password, req.Name)
	if err != nil {
		h.fail(w, "Could not create wallet", err, CreateWallet, requestId)
		return
	}

	resp := Response{
		Message: "Wallet created. Write the mnemonic down, it is not shown again",
		Data: map[string]any{
			"wallet":   wallet,
			"mnemonic": mnemonic,
		},
	}
	respond(h.logs, w, resp, http.StatusCreated, requestId)
}

func (h *WalletHandler) HandleCreateAccount(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.CreateRequest
	if !h.decode(w, r, &req, "Could not create account", CreateAccount) {
		return
	}

	wallet, err := h.wallet.CreateChildAccount(r.Context(), req.Password, req.Name)
	if err != nil {
		h.fail(w, "Could not create account", err, CreateAccount, requestId)
		return
	}

	respond(h.logs, w, Response{Message: "Account created", Data: wallet}, http.StatusCreated, requestId)
}

func (h *WalletHandler) HandleExportKey(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.AuthRequest
	if !h.decode(w, r, &req, "Could not export key", ExportKey) {
		return
	}

	key, err := h.wallet.ExportPrivateKey(r.Context(), req.Password)
	if err != nil {
		h.fail(w, "Could not export key", err, ExportKey, requestId)
		return
	}

	resp := map[string]string{
		"privateKey": key,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleListWallets(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	wallets, err := h.wallet.ListWallets(r.Context())
	if err != nil {
		h.fail(w, "Could not list wallets", err, ListWallets, requestId)
		return
	}

	respond(h.logs, w, Response{Data: wallets}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleCurrentWallet(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	wallet, err := h.wallet.CurrentWallet(r.Context())
	if err != nil {
		h.fail(w, "Could not get current wallet", err, CurrentWallet, requestId)
		return
	}

	respond(h.logs, w, Response{Data: wallet}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleSelectWallet(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	id := r.PathValue("id")

	if err := h.wallet.SelectWallet(r.Context(), id); err != nil {
		h.fail(w, "Could not select wallet", err, SelectWallet, requestId)
		return
	}

	respond(h.logs, w, Response{Message: "Wallet selected"}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleRenameWallet(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	id := r.PathValue("id")

	var req payload.RenameRequest
	if !h.decode(w, r, &req, "Could not rename wallet", RenameWallet) {
		return
	}

	if err := h.wallet.RenameWallet(r.Context(), id, req.Name); err != nil {
		h.fail(w, "Could not rename wallet", err, RenameWallet, requestId)
		return
	}

	respond(h.logs, w, Response{Message: "Wallet renamed"}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleDeleteWallet(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	id := r.PathValue("id")

	if err := h.wallet.DeleteWallet(r.Context(), id); err != nil {
		h.fail(w, "Could not delete wallet", err, DeleteWallet, requestId)
		return
	}

	respond(h.logs, w, Response{Message: "Wallet deleted"}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleListKeystores(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	keystores, err := h.wallet.LoadAllKeystores(r.Context())
	if err != nil {
		h.fail(w, "Could not load keystores", err, ListKeystores, requestId)
		return
	}

	respond(h.logs, w, Response{Data: keystores}, http.StatusOK, requestId)
}
