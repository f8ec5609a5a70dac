package handler

import (
	"ethwallet/internal/http/payload"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

type NetworkHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	networks         NetworkService
}

func NewNetworkHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, networkService NetworkService) *NetworkHandler {
	return &NetworkHandler{
		logs:             logger,
		requestValidator: requestValidator,
		networks:         networkService,
	}
}

func (h *NetworkHandler) fail(w http.ResponseWriter, message string, err error, route, requestId string) {
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

func (h *NetworkHandler) HandleListNetworks(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	networks, err := h.networks.All(r.Context())
	if err != nil {
		h.fail(w, "Could not list networks", err, ListNetworks, requestId)
		return
	}

	views := make([]NetworkView, len(networks))
	for i, n := range networks {
		views[i] = toNetworkView(n)
	}
	respond(h.logs, w, Response{Data: views}, http.StatusOK, requestId)
}

func (h *NetworkHandler) HandleCurrentNetwork(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	current, err := h.networks.Current(r.Context())
	if err != nil {
		h.fail(w, "Could not get current network", err, CurrentNetwork, requestId)
		return
	}

	respond(h.logs, w, Response{Data: toNetworkView(current)}, http.StatusOK, requestId)
}

func (h *NetworkHandler) HandleAddNetwork(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.NetworkRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not add network",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", AddNetwork,
			"request_id", requestId)
		return
	}

	added, err := h.networks.AddCustom(r.Context(), req.ToNetwork())
	if err != nil {
		h.fail(w, "Could not add network", err, AddNetwork, requestId)
		return
	}

	respond(h.logs, w, Response{Message: "Network added", Data: toNetworkView(added)}, http.StatusCreated, requestId)
}

func (h *NetworkHandler) HandleDeleteNetwork(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	chainID, err := payload.ParseChainID(r.PathValue("chainId"))
	if err != nil {
		respond(h.logs, w, Response{Message: "Could not delete network", Error: err.Error()}, http.StatusBadRequest, requestId)
		return
	}

	if err := h.networks.Remove(r.Context(), chainID); err != nil {
		h.fail(w, "Could not delete network", err, DeleteNetwork, requestId)
		return
	}

	respond(h.logs, w, Response{Message: "Network deleted"}, http.StatusOK, requestId)
}

func (h *NetworkHandler) HandleSelectNetwork(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	chainID, err := payload.ParseChainID(r.PathValue("chainId"))
	if err != nil {
		respond(h.logs, w, Response{Message: "Could not select network", Error: err.Error()}, http.StatusBadRequest, requestId)
		return
	}

	if err := h.networks.SetPreferred(r.Context(), chainID); err != nil {
		h.fail(w, "Could not select network", err, SelectNetwork, requestId)
		return
	}

	respond(h.logs, w, Response{Message: "Network selected"}, http.StatusOK, requestId)
}
