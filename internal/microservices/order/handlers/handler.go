package handlers

import (
	menuservice "patio-system/internal/microservices/menu/service"
	"patio-system/internal/microservices/order/service"
	"patio-system/internal/timewindow"
)

type Handler struct {
	OrderHandler *OrderHandler
}

func New(s *service.Service, menu menuservice.MenuServiceInterface) *Handler {
	return &Handler{
		OrderHandler: NewOrderHandler(s.OrderService, menu, timewindow.RealClock()),
	}
}
