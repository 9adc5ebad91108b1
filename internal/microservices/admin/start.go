package admin

import (
	"context"
	"database/sql"
	"strconv"

	"patio-system/internal/common/httpx"
	"patio-system/internal/common/logger"
	"patio-system/internal/config"
	"patio-system/internal/identity"
	"patio-system/internal/microservices/admin/handlers"
	"patio-system/internal/microservices/admin/service"
	menurepo "patio-system/internal/microservices/menu/repository"
	menuservice "patio-system/internal/microservices/menu/service"
	orderrepo "patio-system/internal/microservices/order/repository"
)

// Run wires the admin API (catalog management and reports) and blocks
// until shutdown.
func Run(ctx context.Context, port int, db *sql.DB, cfg *config.Config) error {
	lg := logger.New("admin-service")

	menuRepo := menurepo.NewMenuRepository(db)
	menuSvc := menuservice.NewMenuService(menuRepo, lg)
	if err := menuSvc.EnsureSeeded(ctx); err != nil {
		return err
	}

	reports := service.NewReportService(orderrepo.NewOrderRepository(db), lg)
	dir := identity.NewDirectory(cfg.Roles.Kitchen, cfg.Roles.Admin)
	h := handlers.New(reports, menuSvc)

	srv := httpx.New(":"+strconv.Itoa(port), handlers.Router(h, dir))
	lg.Info("service_started", map[string]any{"port": port})
	return srv.Run(ctx)
}
