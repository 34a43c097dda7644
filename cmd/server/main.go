package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hooknest/craftstock-service/config"
	bomhandler "github.com/hooknest/craftstock-service/internal/bom/handler"
	bomrepository "github.com/hooknest/craftstock-service/internal/bom/repository"
	bomusecase "github.com/hooknest/craftstock-service/internal/bom/usecase"
	"github.com/hooknest/craftstock-service/internal/customer"
	customerhandler "github.com/hooknest/craftstock-service/internal/customer/handler"
	customerrepository "github.com/hooknest/craftstock-service/internal/customer/repository"
	customerusecase "github.com/hooknest/craftstock-service/internal/customer/usecase"
	materialhandler "github.com/hooknest/craftstock-service/internal/material/handler"
	materialrepository "github.com/hooknest/craftstock-service/internal/material/repository"
	materialusecase "github.com/hooknest/craftstock-service/internal/material/usecase"
	orderhandler "github.com/hooknest/craftstock-service/internal/order/handler"
	orderrepository "github.com/hooknest/craftstock-service/internal/order/repository"
	orderusecase "github.com/hooknest/craftstock-service/internal/order/usecase"
	producthandler "github.com/hooknest/craftstock-service/internal/product/handler"
	"github.com/hooknest/craftstock-service/internal/product/listener"
	productrepository "github.com/hooknest/craftstock-service/internal/product/repository"
	productusecase "github.com/hooknest/craftstock-service/internal/product/usecase"
	"github.com/hooknest/craftstock-service/pkg/broker"
	"github.com/hooknest/craftstock-service/pkg/cache"
	"github.com/hooknest/craftstock-service/pkg/logger"
	"github.com/hooknest/craftstock-service/pkg/postgres"
	"github.com/hooknest/craftstock-service/pkg/search"
)

func main() {
	// .env is optional; real env vars still apply.
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	log := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.Server.AppEnv == "dev",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer log.Sync()

	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.RunMigrations(db, cfg.Postgres.MigrationsPath, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis and Elasticsearch are accelerators, not sources of truth. The
	// service starts without them and falls back to postgres.
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("redis unavailable, caching and locking disabled", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		log.Warn("elasticsearch unavailable, search falls back to postgres", zap.Error(err))
		esClient = nil
	}

	brokerCfg := &broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	}
	producer := broker.NewProducer(brokerCfg)
	defer producer.Close()
	consumer := broker.NewConsumer(brokerCfg)
	defer consumer.Close()

	yarnRepo := materialrepository.NewYarnPGRepository(db)
	eyesRepo := materialrepository.NewSafetyEyesPGRepository(db)
	stuffingRepo := materialrepository.NewStuffingPGRepository(db)
	productRepo := productrepository.NewPGRepository(db)
	customerRepo := customerrepository.NewPGRepository(db)
	bomRepo := bomrepository.NewPGRepository(db)
	orderRepo := orderrepository.NewPGRepository(db)

	var locker customer.Locker
	if redisClient != nil {
		locker = redisClient
	}

	materialUC := materialusecase.NewMaterialUseCase(yarnRepo, eyesRepo, stuffingRepo, log)
	productUC := productusecase.NewProductUseCase(productRepo, redisClient, esClient, log)
	customerUC := customerusecase.NewCustomerUseCase(customerRepo, locker, log)
	bomUC := bomusecase.NewBomUseCase(bomRepo, productRepo, yarnRepo, eyesRepo, stuffingRepo, log)
	orderUC := orderusecase.NewOrderUseCase(orderRepo, customerUC, productRepo, producer, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stockListener := listener.NewStockListener(consumer, productUC, log)
	go stockListener.Start(ctx)

	if cfg.Server.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	materialhandler.NewMaterialHandler(materialUC, log).RegisterRoutes(api)
	producthandler.NewProductHandler(productUC, log).RegisterRoutes(api)
	customerhandler.NewCustomerHandler(customerUC, log).RegisterRoutes(api)
	bomhandler.NewBomHandler(bomUC, log).RegisterRoutes(api)
	orderhandler.NewOrderHandler(orderUC, log).RegisterRoutes(api)

	srv := &http.Server{
		Addr:         cfg.Server.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info("http server listening", zap.String("addr", cfg.Server.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
