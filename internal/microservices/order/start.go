package order

import (
	"context"
	"database/sql"
	"strconv"

	"patio-system/internal/common/httpx"
	"patio-system/internal/common/logger"
	"patio-system/internal/config"
	"patio-system/internal/connections/rabbitmq"
	"patio-system/internal/identity"
	menurepo "patio-system/internal/microservices/menu/repository"
	menuservice "patio-system/internal/microservices/menu/service"
	"patio-system/internal/microservices/order/handlers"
	"patio-system/internal/microservices/order/repository"
	"patio-system/internal/microservices/order/service"
)

// Run wires the staff-facing ordering API and blocks until shutdown.
func Run(ctx context.Context, port int, db *sql.DB, rmq *rabbitmq.Client, cfg *config.Config) error {
	lg := logger.New("order-service")

	menuRepo := menurepo.NewMenuRepository(db)
	menuSvc := menuservice.NewMenuService(menuRepo, lg)
	if err := menuSvc.EnsureSeeded(ctx); err != nil {
		return err
	}

	repo := repository.New(db)
	svc := service.New(repo, menuRepo, rmq, lg)
	dir := identity.NewDirectory(cfg.Roles.Kitchen, cfg.Roles.Admin)
	h := handlers.New(svc, menuSvc)

	srv := httpx.New(":"+strconv.Itoa(port), handlers.Router(h, dir))
	lg.Info("service_started", map[string]any{"port": port})
	return srv.Run(ctx)
}
