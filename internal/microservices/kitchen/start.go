package kitchen

import (
	"context"
	"database/sql"
	"strconv"

	"patio-system/internal/common/httpx"
	"patio-system/internal/common/logger"
	"patio-system/internal/config"
	"patio-system/internal/identity"
	"patio-system/internal/microservices/kitchen/handlers"
	"patio-system/internal/microservices/kitchen/repository"
	"patio-system/internal/microservices/kitchen/service"
	orderrepo "patio-system/internal/microservices/order/repository"
)

// Run wires the kitchen board API and blocks until shutdown.
func Run(ctx context.Context, port int, db *sql.DB, cfg *config.Config) error {
	lg := logger.New("kitchen-service")

	repo := repository.NewKitchenRepository(db)
	orders := orderrepo.NewOrderRepository(db)
	svc := service.NewKitchenService(repo, orders, lg)
	dir := identity.NewDirectory(cfg.Roles.Kitchen, cfg.Roles.Admin)
	h := handlers.New(svc)

	srv := httpx.New(":"+strconv.Itoa(port), handlers.Router(h, dir))
	lg.Info("service_started", map[string]any{"port": port})
	return srv.Run(ctx)
}
