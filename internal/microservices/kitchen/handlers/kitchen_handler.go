package handlers

import (
	"encoding/json"
	"net/http"

	"patio-system/internal/common/httpx"
	"patio-system/internal/identity"
	"patio-system/internal/microservices/kitchen/service"
)

type KitchenHandler struct {
	service service.KitchenServiceInterface
}

func NewKitchenHandler(svc service.KitchenServiceInterface) *KitchenHandler {
	return &KitchenHandler{service: svc}
}

func (h *KitchenHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.service.Board(r.Context())
	if err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, board)
}

func (h *KitchenHandler) AssignBuzzer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BuzzerNumber string `json:"buzzer_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	orderID := r.PathValue("order_id")
	operator := r.Header.Get(identity.Header)
	if err := h.service.AssignBuzzer(r.Context(), orderID, req.BuzzerNumber, operator); err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"order_id": orderID, "status": "IN_PROGRESS", "buzzer_number": req.BuzzerNumber,
	})
}

func (h *KitchenHandler) Complete(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("order_id")
	operator := r.Header.Get(identity.Header)
	if err := h.service.Complete(r.Context(), orderID, operator); err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"order_id": orderID, "status": "COMPLETED"})
}
