package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"patio-system/internal/common/logger"
	"patio-system/internal/connections/rabbitmq"
	"patio-system/internal/domain"
)

// PrinterService drains the kitchen-ticket queue and prints each submitted
// order. It stands in for the real ePOS / IPP integration; the rendered
// ticket goes to stdout.
type PrinterService struct {
	rmq *rabbitmq.Client
	lg  *logger.Logger
}

func NewPrinterService(rmq *rabbitmq.Client, lg *logger.Logger) *PrinterService {
	return &PrinterService{rmq: rmq, lg: lg}
}

func (s *PrinterService) Run(ctx context.Context) error {
	msgs, err := s.rmq.Consume(rabbitmq.TicketQueue, "ticket-printer", 1)
	if err != nil {
		return fmt.Errorf("consume %s: %w", rabbitmq.TicketQueue, err)
	}
	s.lg.Info("printer_listening", map[string]any{"queue": rabbitmq.TicketQueue})

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("ticket queue channel closed")
			}
			var order domain.Order
			if err := json.Unmarshal(d.Body, &order); err != nil {
				// unparseable message, nothing a retry can fix
				s.lg.Error("ticket_decode_failed", err, nil)
				_ = d.Nack(false, false)
				continue
			}
			fmt.Fprintln(os.Stdout, RenderTicket(order))
			s.lg.Info("ticket_printed", map[string]any{"order_id": order.ID, "items": len(order.Items)})
			_ = d.Ack(false)
		}
	}
}
