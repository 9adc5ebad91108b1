package service

import (
	"context"
	"strings"

	"patio-system/internal/common/logger"
	"patio-system/internal/domain"
	"patio-system/internal/microservices/kitchen/repository"
	orderrepo "patio-system/internal/microservices/order/repository"
)

// Board is one poll of the kitchen dashboard: open work plus the most
// recent completions for reference. Polling is read-only and idempotent.
type Board struct {
	Pending    []domain.Order `json:"pending"`
	InProgress []domain.Order `json:"in_progress"`
	Completed  []domain.Order `json:"completed"`
}

// recentCompleted caps how many finished orders the board shows.
const recentCompleted = 5

type KitchenServiceInterface interface {
	Board(ctx context.Context) (Board, error)
	AssignBuzzer(ctx context.Context, orderID, buzzer, operator string) error
	Complete(ctx context.Context, orderID, operator string) error
}

type KitchenService struct {
	repo   repository.KitchenRepositoryInterface
	orders orderrepo.OrderRepositoryInterface
	lg     *logger.Logger
}

func NewKitchenService(repo repository.KitchenRepositoryInterface, orders orderrepo.OrderRepositoryInterface, lg *logger.Logger) KitchenServiceInterface {
	return &KitchenService{repo: repo, orders: orders, lg: lg}
}

func (s *KitchenService) Board(ctx context.Context) (Board, error) {
	pending, err := s.orders.ListByStatus(ctx, domain.StatusPending)
	if err != nil {
		return Board{}, err
	}
	inProgress, err := s.orders.ListByStatus(ctx, domain.StatusInProgress)
	if err != nil {
		return Board{}, err
	}
	completed, err := s.orders.ListByStatus(ctx, domain.StatusCompleted)
	if err != nil {
		return Board{}, err
	}
	// newest completions first, capped
	for i, j := 0, len(completed)-1; i < j; i, j = i+1, j-1 {
		completed[i], completed[j] = completed[j], completed[i]
	}
	if len(completed) > recentCompleted {
		completed = completed[:recentCompleted]
	}
	b := Board{Pending: pending, InProgress: inProgress, Completed: completed}
	if b.Pending == nil {
		b.Pending = []domain.Order{}
	}
	if b.InProgress == nil {
		b.InProgress = []domain.Order{}
	}
	if b.Completed == nil {
		b.Completed = []domain.Order{}
	}
	return b, nil
}

func (s *KitchenService) AssignBuzzer(ctx context.Context, orderID, buzzer, operator string) error {
	if strings.TrimSpace(buzzer) == "" {
		return &domain.ValidationError{Reason: "buzzer number is required"}
	}
	if err := s.repo.AssignBuzzer(ctx, orderID, buzzer, operator); err != nil {
		return err
	}
	s.lg.Info("order_status_changed", map[string]any{
		"order_id": orderID, "status": domain.StatusInProgress, "buzzer": buzzer, "operator": operator,
	})
	return nil
}

func (s *KitchenService) Complete(ctx context.Context, orderID, operator string) error {
	if err := s.repo.Complete(ctx, orderID, operator); err != nil {
		return err
	}
	s.lg.Info("order_status_changed", map[string]any{
		"order_id": orderID, "status": domain.StatusCompleted, "operator": operator,
	})
	return nil
}
