package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"patio-system/internal/common/httpx"
	"patio-system/internal/domain"
	"patio-system/internal/microservices/admin/service"
	menuservice "patio-system/internal/microservices/menu/service"
)

type AdminHandler struct {
	reports service.ReportServiceInterface
	menu    menuservice.MenuServiceInterface
}

func NewAdminHandler(reports service.ReportServiceInterface, menu menuservice.MenuServiceInterface) *AdminHandler {
	return &AdminHandler{reports: reports, menu: menu}
}

// --- order queries and reports ---

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.reports.OrdersInRange(r.Context(), r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

// Payroll streams the payroll report for the requested local-date range,
// as CSV by default or XLSX with ?format=xlsx.
func (h *AdminHandler) Payroll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	orders, err := h.reports.OrdersInRange(r.Context(), q.Get("start"), q.Get("end"))
	if err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	rows := h.reports.PayrollRows(orders)
	name := fmt.Sprintf("patio_payroll_%s_to_%s", q.Get("start"), q.Get("end"))

	if q.Get("format") == "xlsx" {
		f, err := service.BuildPayrollXLSX(rows)
		if err != nil {
			httpx.WriteProblem(w, http.StatusInternalServerError, "export_error", err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+name+`.xlsx"`)
		_ = f.Write(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`.csv"`)
	_ = service.WritePayrollCSV(w, rows)
}

func (h *AdminHandler) HappyHour(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	orders, err := h.reports.OrdersInRange(r.Context(), q.Get("start"), q.Get("end"))
	if err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	rows := h.reports.HappyHourRows(orders)
	name := fmt.Sprintf("patio_happy_hour_%s_to_%s.csv", q.Get("start"), q.Get("end"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_ = service.WriteHappyHourCSV(w, rows)
}

func (h *AdminHandler) OrdersDump(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	orders, err := h.reports.OrdersInRange(r.Context(), q.Get("start"), q.Get("end"))
	if err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	name := fmt.Sprintf("patio_orders_%s_to_%s.csv", q.Get("start"), q.Get("end"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_ = service.WriteOrdersCSV(w, orders)
}

// --- catalog management ---

func (h *AdminHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.menu.ListAll(r.Context())
	if err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *AdminHandler) SaveMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	if err := h.menu.Save(r.Context(), item); err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, item)
}

func (h *AdminHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.menu.Delete(r.Context(), r.PathValue("item_id")); err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) SetSoldOut(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SoldOut bool `json:"sold_out"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	id := r.PathValue("item_id")
	if err := h.menu.SetSoldOut(r.Context(), id, req.SoldOut); err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"id": id, "sold_out": req.SoldOut})
}

func (h *AdminHandler) ResetMenu(w http.ResponseWriter, r *http.Request) {
	if err := h.menu.ResetToSeed(r.Context()); err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	items, err := h.menu.ListAll(r.Context())
	if err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *AdminHandler) ListAddons(w http.ResponseWriter, r *http.Request) {
	addons, err := h.menu.ListAddons(r.Context())
	if err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	if addons == nil {
		addons = []domain.GlobalAddon{}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"addons": addons})
}

func (h *AdminHandler) SaveAddon(w http.ResponseWriter, r *http.Request) {
	var addon domain.GlobalAddon
	if err := json.NewDecoder(r.Body).Decode(&addon); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	if err := h.menu.SaveAddon(r.Context(), addon); err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, addon)
}

func (h *AdminHandler) DeleteAddon(w http.ResponseWriter, r *http.Request) {
	if err := h.menu.DeleteAddon(r.Context(), r.PathValue("addon_id")); err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
