package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"washly/config"
	"washly/database"
	recordsRepo "washly/database/repository/records"
	"washly/handlers"
	"washly/middleware"
	"washly/routes"
	"washly/services/gateway"
	"washly/services/order"
	"washly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitOrderCache()
	utils.InitAuthCache()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	recordRepo := recordsRepo.NewMongoOrderRecordRepo()
	gatewayClient := gateway.NewHTTPClient()

	orderService := &order.DefaultOrderSessionService{
		Catalog:  gatewayClient,
		Pricing:  gatewayClient,
		Orders:   gatewayClient,
		Records:  recordRepo,
		Sessions: order.NewRedisSessionStore(),
		Logger:   logger,
	}

	orderHandler := handlers.NewOrderHandler(orderService, recordRepo)
	authHandler := handlers.NewAuthHandler()
	routes.RegisterRoutes(router, orderHandler, authHandler)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.OrderCacheClient, utils.AuthCacheClient},
		database.MongoClient,
		map[string]string{
			"catalog": config.AppConfig.CatalogGatewayURL,
			"pricing": config.AppConfig.PricingServiceURL,
			"orders":  config.AppConfig.OrderServiceURL,
		},
	)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("forced shutdown: %v", err)
	}
	logger.Info("server exited")
}
