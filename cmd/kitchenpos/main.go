package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/kitchenpos/internal/config"
	"github.com/Skotchmaster/kitchenpos/internal/events"
	"github.com/Skotchmaster/kitchenpos/internal/httpserver"
	"github.com/Skotchmaster/kitchenpos/internal/qrcode"
	"github.com/Skotchmaster/kitchenpos/internal/repo"
	"github.com/Skotchmaster/kitchenpos/internal/service"
	pkgdb "github.com/Skotchmaster/kitchenpos/pkg/db"
	"github.com/Skotchmaster/kitchenpos/pkg/logging"
	loggingmw "github.com/Skotchmaster/kitchenpos/pkg/middleware/logging"
)

type publisher interface {
	service.Publisher
	Close() error
}

func main() {
	config.LoadEnvFile(".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := repo.Migrate(db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	var pub publisher = events.NopPublisher{}
	if cfg.KafkaEnabled() {
		pub = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		logger.Info("kafka_publisher_enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	r := &repo.GormRepo{DB: db}

	catalog := &httpserver.CatalogHTTP{
		Products:   service.NewProductService(r),
		MenuGroups: service.NewMenuGroupService(r),
		Menus:      service.NewMenuService(r),
	}
	tables := &httpserver.TableHTTP{
		Tables: service.NewTableService(r),
		Groups: service.NewTableGroupService(r, pub),
		QR:     qrcode.NewTableGenerator(cfg.PublicURL),
	}
	orders := &httpserver.OrderHTTP{Svc: service.NewOrderService(r, pub)}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		CatalogHandler: catalog,
		TableHandler:   tables,
		OrderHandler:   orders,
		JWTSecret:      cfg.JWTAccessSecret,
		Ready: func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return sqlDB.PingContext(ctx)
		},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info("http_listen", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http_shutdown_failed", "error", err)
	}
	if err := pub.Close(); err != nil {
		logger.Warn("publisher_close_failed", "error", err)
	}
	if err := pkgdb.Close(db); err != nil {
		logger.Warn("db_close_failed", "error", err)
	}

	logger.Info("kitchenpos_stopped")
}
