package handlers

import (
	"net/http"

	"patio-system/internal/identity"
	"patio-system/internal/microservices/kitchen/service"
)

type Handler struct {
	KitchenHandler *KitchenHandler
}

func New(svc service.KitchenServiceInterface) *Handler {
	return &Handler{KitchenHandler: NewKitchenHandler(svc)}
}

func Router(h *Handler, dir *identity.Directory) *http.ServeMux {
	mux := http.NewServeMux()
	kitchen := func(next http.HandlerFunc) http.HandlerFunc { return dir.Require(identity.RoleKitchen, next) }

	mux.HandleFunc("GET /api/v1/kitchen/orders", kitchen(h.KitchenHandler.GetBoard))
	mux.HandleFunc("POST /api/v1/kitchen/orders/{order_id}/buzzer", kitchen(h.KitchenHandler.AssignBuzzer))
	mux.HandleFunc("POST /api/v1/kitchen/orders/{order_id}/complete", kitchen(h.KitchenHandler.Complete))
	return mux
}
