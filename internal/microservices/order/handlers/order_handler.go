package handlers

import (
	"encoding/json"
	"net/http"

	"patio-system/internal/common/httpx"
	"patio-system/internal/domain"
	menuservice "patio-system/internal/microservices/menu/service"
	"patio-system/internal/microservices/order/service"
	"patio-system/internal/timewindow"
)

type OrderHandler struct {
	orders service.OrderServiceInterface
	menu   menuservice.MenuServiceInterface
	clock  timewindow.Clock
}

func NewOrderHandler(orders service.OrderServiceInterface, menu menuservice.MenuServiceInterface, clock timewindow.Clock) *OrderHandler {
	return &OrderHandler{orders: orders, menu: menu, clock: clock}
}

// GetMenu returns today's visible menu (specials gated to their weekday)
// together with the global add-ons and the live happy-hour flag, so staff
// devices need a single poll per minute.
func (h *OrderHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()
	items, err := h.menu.Visible(r.Context(), timewindow.DayOfWeek(now))
	if err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	addons, err := h.menu.ListAddons(r.Context())
	if err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"items":        items,
		"addons":       addons,
		"happy_hour":   timewindow.IsHappyHour(now),
		"day_of_week":  timewindow.DayOfWeek(now),
		"server_local": timewindow.LocalDate(now) + " " + timewindow.LocalTimeOfDay(now),
	})
}

func (h *OrderHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req service.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	if req.EmployeeEmail == "" {
		req.EmployeeEmail = r.Header.Get("X-Staff-Email")
	}
	order, err := h.orders.Submit(r.Context(), req)
	if err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Get(r.Context(), r.PathValue("order_id"))
	if err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, order)
}

// List serves ?status=, ?start=&end= (local civil dates, inclusive) or the
// full history when no filter is given.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var (
		orders []domain.Order
		err    error
	)
	switch {
	case q.Get("status") != "":
		orders, err = h.orders.ListByStatus(r.Context(), domain.OrderStatus(q.Get("status")))
	case q.Get("start") != "" || q.Get("end") != "":
		orders, err = h.orders.ListByDateRange(r.Context(), q.Get("start"), q.Get("end"))
	default:
		orders, err = h.orders.ListAll(r.Context())
	}
	if err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}
