package handlers

import (
	"net/http"

	"patio-system/internal/identity"
)

func Router(h *Handler, dir *identity.Directory) *http.ServeMux {
	mux := http.NewServeMux()
	staff := func(next http.HandlerFunc) http.HandlerFunc { return dir.Require(identity.RoleStaff, next) }

	mux.HandleFunc("GET /api/v1/menu", staff(h.OrderHandler.GetMenu))
	mux.HandleFunc("POST /api/v1/orders", staff(h.OrderHandler.Submit))
	mux.HandleFunc("GET /api/v1/orders", staff(h.OrderHandler.List))
	mux.HandleFunc("GET /api/v1/orders/{order_id}", staff(h.OrderHandler.Get))
	return mux
}
