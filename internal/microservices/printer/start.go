package printer

import (
	"context"

	"patio-system/internal/common/logger"
	"patio-system/internal/connections/rabbitmq"
	"patio-system/internal/microservices/printer/service"
)

func Run(ctx context.Context, rmq *rabbitmq.Client) error {
	lg := logger.New("ticket-printer")
	return service.NewPrinterService(rmq, lg).Run(ctx)
}
