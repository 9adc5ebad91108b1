package service

import (
	"patio-system/internal/common/logger"
	"patio-system/internal/microservices/order/repository"
	"patio-system/internal/timewindow"
)

type Service struct {
	OrderService OrderServiceInterface
}

func New(repo *repository.Repository, catalog Catalog, tickets TicketPublisher, lg *logger.Logger) *Service {
	return &Service{
		OrderService: NewOrderService(repo.OrderRepo, catalog, tickets, timewindow.RealClock(), lg),
	}
}
