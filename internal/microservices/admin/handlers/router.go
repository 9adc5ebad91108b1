package handlers

import (
	"net/http"

	"patio-system/internal/identity"
	"patio-system/internal/microservices/admin/service"
	menuservice "patio-system/internal/microservices/menu/service"
)

type Handler struct {
	AdminHandler *AdminHandler
}

func New(reports service.ReportServiceInterface, menu menuservice.MenuServiceInterface) *Handler {
	return &Handler{AdminHandler: NewAdminHandler(reports, menu)}
}

func Router(h *Handler, dir *identity.Directory) *http.ServeMux {
	mux := http.NewServeMux()
	admin := func(next http.HandlerFunc) http.HandlerFunc { return dir.Require(identity.RoleAdmin, next) }

	mux.HandleFunc("GET /api/v1/admin/orders", admin(h.AdminHandler.ListOrders))
	mux.HandleFunc("GET /api/v1/admin/reports/payroll", admin(h.AdminHandler.Payroll))
	mux.HandleFunc("GET /api/v1/admin/reports/happy-hour", admin(h.AdminHandler.HappyHour))
	mux.HandleFunc("GET /api/v1/admin/reports/orders", admin(h.AdminHandler.OrdersDump))

	mux.HandleFunc("GET /api/v1/admin/menu", admin(h.AdminHandler.ListMenu))
	mux.HandleFunc("POST /api/v1/admin/menu", admin(h.AdminHandler.SaveMenuItem))
	mux.HandleFunc("DELETE /api/v1/admin/menu/{item_id}", admin(h.AdminHandler.DeleteMenuItem))
	mux.HandleFunc("POST /api/v1/admin/menu/{item_id}/sold-out", admin(h.AdminHandler.SetSoldOut))
	mux.HandleFunc("POST /api/v1/admin/menu/reset", admin(h.AdminHandler.ResetMenu))

	mux.HandleFunc("GET /api/v1/admin/addons", admin(h.AdminHandler.ListAddons))
	mux.HandleFunc("POST /api/v1/admin/addons", admin(h.AdminHandler.SaveAddon))
	mux.HandleFunc("DELETE /api/v1/admin/addons/{addon_id}", admin(h.AdminHandler.DeleteAddon))
	return mux
}
