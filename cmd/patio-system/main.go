package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"patio-system/internal/common/logger"
	"patio-system/internal/config"
	"patio-system/internal/connections/database"
	"patio-system/internal/connections/rabbitmq"
	"patio-system/internal/microservices/admin"
	"patio-system/internal/microservices/kitchen"
	"patio-system/internal/microservices/order"
	"patio-system/internal/microservices/printer"
)

func main() {
	mode := flag.String("mode", "", "order-service | kitchen-service | admin-service | ticket-printer")
	port := flag.Int("port", 0, "http port for services that expose HTTP")
	cfgPath := flag.String("config", "", "path to YAML config")
	flag.Parse()

	lg := logger.New("bootstrap")
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	path := *cfgPath
	if path == "" {
		p, err := config.FindConfig()
		if err != nil {
			fmt.Fprintln(os.Stderr, "no config.yaml found; pass --config")
			os.Exit(2)
		}
		path = p
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		lg.Error("config_load_failed", err, map[string]any{"path": path})
		os.Exit(1)
	}

	switch *mode {
	case "order-service":
		if *port == 0 {
			*port = 3000
		}
		db := mustDB(ctx, lg, cfg)
		defer db.Close()
		rmq := mustRMQ(lg, cfg)
		defer rmq.Close()
		if err := order.Run(ctx, *port, db, rmq, cfg); err != nil {
			fatal(lg, err)
		}
	case "kitchen-service":
		if *port == 0 {
			*port = 3001
		}
		db := mustDB(ctx, lg, cfg)
		defer db.Close()
		if err := kitchen.Run(ctx, *port, db, cfg); err != nil {
			fatal(lg, err)
		}
	case "admin-service":
		if *port == 0 {
			*port = 3002
		}
		db := mustDB(ctx, lg, cfg)
		defer db.Close()
		if err := admin.Run(ctx, *port, db, cfg); err != nil {
			fatal(lg, err)
		}
	case "ticket-printer":
		rmq := mustRMQ(lg, cfg)
		defer rmq.Close()
		if err := printer.Run(ctx, rmq); err != nil {
			fatal(lg, err)
		}
	default:
		fmt.Fprintln(os.Stderr, "--mode is required: order-service | kitchen-service | admin-service | ticket-printer")
		os.Exit(2)
	}
}

func mustDB(ctx context.Context, lg *logger.Logger, cfg *config.Config) *sql.DB {
	db, err := database.ConnectDB(ctx, cfg.Database)
	if err != nil {
		lg.Error("db_connect_failed", err, nil)
		os.Exit(1)
	}
	return db
}

func mustRMQ(lg *logger.Logger, cfg *config.Config) *rabbitmq.Client {
	rmq, err := rabbitmq.Dial(cfg.RabbitMQ)
	if err != nil {
		lg.Error("rabbitmq_connect_failed", err, nil)
		os.Exit(1)
	}
	if err := rmq.Ping(); err != nil {
		lg.Error("rabbitmq_connect_failed", err, nil)
		os.Exit(1)
	}
	if err := rmq.DeclareTopology(); err != nil {
		lg.Error("rabbitmq_declare_failed", err, nil)
		os.Exit(1)
	}
	return rmq
}

func fatal(lg *logger.Logger, err error) {
	lg.Error("fatal", err, nil)
	os.Exit(1)
}
