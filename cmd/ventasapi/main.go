package main

import (
	"context"
	"fmt"

	"github.com/jvillalobos/ventasapi/internal/adapter/config"
	"github.com/jvillalobos/ventasapi/internal/adapter/handler/http"
	"github.com/jvillalobos/ventasapi/internal/adapter/logger"
	"github.com/jvillalobos/ventasapi/internal/adapter/metrics"
	"github.com/jvillalobos/ventasapi/internal/adapter/storage"
	"github.com/jvillalobos/ventasapi/internal/adapter/storage/repository"
	"github.com/jvillalobos/ventasapi/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repo creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	m := metrics.New()

	clientHandler, err := http.NewClientHandler(svc, log.Named("Client handler"))
	if err != nil {
		log.Error("client handler creating error", zap.Error(err))
		return
	}
	productHandler, err := http.NewProductHandler(svc, log.Named("Product handler"))
	if err != nil {
		log.Error("product handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, m, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	orderLineHandler, err := http.NewOrderLineHandler(svc, log.Named("Order line handler"))
	if err != nil {
		log.Error("order line handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, m,
		clientHandler, productHandler, orderHandler, orderLineHandler,
		log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
