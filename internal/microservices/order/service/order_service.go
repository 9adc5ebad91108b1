package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"

	"patio-system/internal/common/logger"
	"patio-system/internal/connections/rabbitmq"
	"patio-system/internal/domain"
	"patio-system/internal/microservices/order/repository"
	"patio-system/internal/pricing"
	"patio-system/internal/timewindow"
)

// Catalog is the read-only view of the menu the pricing path needs.
// The menu repository satisfies it.
type Catalog interface {
	GetMenuItem(ctx context.Context, id string) (domain.MenuItem, error)
	ListAddons(ctx context.Context) ([]domain.GlobalAddon, error)
}

// TicketPublisher fans a submitted order out to the kitchen printer.
type TicketPublisher interface {
	Publish(ctx context.Context, exchange, key string, body []byte, headers amqp091.Table) error
}

type SubmitItem struct {
	MenuItemID string                       `json:"menu_item_id"`
	Quantity   int                          `json:"quantity"`
	Answers    map[string]domain.StringList `json:"answers,omitempty"`
	AddonIDs   []string                     `json:"addon_ids,omitempty"`
	// DietaryNotes is stored as a zero-cost "Dietary/Subs" selection.
	DietaryNotes string `json:"dietary_notes,omitempty"`
}

type SubmitRequest struct {
	EmployeeEmail string       `json:"employee_email"`
	Items         []SubmitItem `json:"items"`
}

type OrderServiceInterface interface {
	Submit(ctx context.Context, req SubmitRequest) (domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error)
	ListByDateRange(ctx context.Context, start, end string) ([]domain.Order, error)
}

type OrderService struct {
	orders  repository.OrderRepositoryInterface
	catalog Catalog
	tickets TicketPublisher
	clock   timewindow.Clock
	lg      *logger.Logger
}

func NewOrderService(orders repository.OrderRepositoryInterface, catalog Catalog,
	tickets TicketPublisher, clock timewindow.Clock, lg *logger.Logger) OrderServiceInterface {
	return &OrderService{orders: orders, catalog: catalog, tickets: tickets, clock: clock, lg: lg}
}

// Submit validates and prices the cart, freezes the happy-hour decision at
// the submission instant and persists the order as an immutable PENDING
// snapshot. A validation failure blocks the whole submission; nothing is
// dropped silently.
func (s *OrderService) Submit(ctx context.Context, req SubmitRequest) (domain.Order, error) {
	if strings.TrimSpace(req.EmployeeEmail) == "" {
		return domain.Order{}, &domain.ValidationError{Reason: "employee email is required"}
	}
	if len(req.Items) == 0 {
		return domain.Order{}, &domain.ValidationError{Reason: "at least one item is required"}
	}

	now := s.clock.Now()
	happyHour := timewindow.IsHappyHour(now)

	allAddons, err := s.catalog.ListAddons(ctx)
	if err != nil {
		return domain.Order{}, err
	}
	addonByID := make(map[string]domain.GlobalAddon, len(allAddons))
	for _, a := range allAddons {
		addonByID[a.ID] = a
	}

	var (
		items      []domain.CartItem
		lineTotals []decimal.Decimal
	)
	for _, in := range req.Items {
		item, err := s.catalog.GetMenuItem(ctx, in.MenuItemID)
		if err == domain.ErrNotFound {
			return domain.Order{}, &domain.ValidationError{Reason: fmt.Sprintf("unknown menu item %q", in.MenuItemID)}
		}
		if err != nil {
			return domain.Order{}, err
		}
		if item.SoldOut {
			return domain.Order{}, &domain.ValidationError{Reason: fmt.Sprintf("%s is sold out", item.Name)}
		}

		var addons []domain.GlobalAddon
		for _, id := range in.AddonIDs {
			a, ok := addonByID[id]
			if !ok {
				return domain.Order{}, &domain.ValidationError{Reason: fmt.Sprintf("unknown add-on %q", id)}
			}
			addons = append(addons, a)
		}

		selections, err := pricing.BuildSelections(item, in.Answers, addons, in.DietaryNotes)
		if err != nil {
			return domain.Order{}, err
		}
		unit := pricing.UnitPrice(item, selections)
		lineTotal, err := pricing.LineTotal(unit, in.Quantity)
		if err != nil {
			return domain.Order{}, err
		}

		items = append(items, domain.CartItem{
			CartID:          uuid.NewString(),
			MenuItem:        item,
			Quantity:        in.Quantity,
			SelectedOptions: selections,
			ItemTotal:       lineTotal,
		})
		lineTotals = append(lineTotals, lineTotal)
	}

	totals := pricing.OrderTotals(lineTotals, happyHour)
	order := domain.Order{
		ID:              uuid.NewString(),
		CreatedAt:       now.UTC(),
		EmployeeEmail:   req.EmployeeEmail,
		Items:           items,
		Subtotal:        totals.Subtotal,
		DiscountApplied: happyHour,
		FinalTotal:      totals.FinalTotal,
		Status:          domain.StatusPending,
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return domain.Order{}, err
	}
	s.lg.Info("order_submitted", map[string]any{
		"order_id":         order.ID,
		"employee":         order.EmployeeEmail,
		"items":            len(order.Items),
		"final_total":      order.FinalTotal.String(),
		"discount_applied": order.DiscountApplied,
	})

	s.publishTicket(ctx, order)
	return order, nil
}

// publishTicket is best-effort: the order is already durable, and the
// kitchen board reads from the store, so a broker outage only costs the
// printed ticket.
func (s *OrderService) publishTicket(ctx context.Context, order domain.Order) {
	body, err := json.Marshal(order)
	if err != nil {
		s.lg.Error("ticket_encode_failed", err, map[string]any{"order_id": order.ID})
		return
	}
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.tickets.Publish(pctx, rabbitmq.OrdersExchange, "", body, amqp091.Table{
		"x-source": "order-service",
	}); err != nil {
		s.lg.Warn("ticket_publish_failed", err, map[string]any{"order_id": order.ID})
		return
	}
	s.lg.Debug("ticket_published", map[string]any{"order_id": order.ID})
}

func (s *OrderService) Get(ctx context.Context, id string) (domain.Order, error) {
	return s.orders.GetOrder(ctx, id)
}

func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListAll(ctx)
}

func (s *OrderService) ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	switch status {
	case domain.StatusPending, domain.StatusInProgress, domain.StatusCompleted:
	default:
		return nil, &domain.ValidationError{Reason: fmt.Sprintf("unknown status %q", status)}
	}
	return s.orders.ListByStatus(ctx, status)
}

func (s *OrderService) ListByDateRange(ctx context.Context, start, end string) ([]domain.Order, error) {
	if err := validateDate(start); err != nil {
		return nil, err
	}
	if err := validateDate(end); err != nil {
		return nil, err
	}
	return s.orders.ListByLocalDateRange(ctx, start, end)
}

func validateDate(d string) error {
	if _, err := time.Parse("2006-01-02", d); err != nil {
		return &domain.ValidationError{Reason: fmt.Sprintf("bad date %q, want YYYY-MM-DD", d)}
	}
	return nil
}
