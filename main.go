// File: ybhotels/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ybhotels/config"
	"ybhotels/cron"
	"ybhotels/database"
	bookingRepoPkg "ybhotels/database/repository/booking"
	complaintRepoPkg "ybhotels/database/repository/complaint"
	hotelRepoPkg "ybhotels/database/repository/hotel"
	notificationRepoPkg "ybhotels/database/repository/notification"
	orderRepoPkg "ybhotels/database/repository/order"
	receptionRepoPkg "ybhotels/database/repository/reception"
	roomRepoPkg "ybhotels/database/repository/room"
	userRepoPkg "ybhotels/database/repository/user"
	"ybhotels/handlers"
	"ybhotels/middleware"
	"ybhotels/routes"
	"ybhotels/services/booking"
	ai "ybhotels/services/intelligence"
	"ybhotels/services/notification"
	"ybhotels/services/reception"
	"ybhotels/services/retrieval"
	"ybhotels/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitContextCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()
	complaintRepo := complaintRepoPkg.NewMongoComplaintRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	receptionRepo := receptionRepoPkg.NewMongoReceptionRepo()
	hotelRepo := hotelRepoPkg.NewMongoHotelRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Repo: notificationRepo,
	}
	stateMachine := booking.NewStateMachine(bookingRepo, roomRepo, notificationService)
	opsService := booking.NewService(roomRepo, bookingRepo, orderRepo, complaintRepo, stateMachine)

	retriever := retrieval.NewRetriever(
		retrieval.NewCollectionSource("rooms", nil),
		retrieval.NewCollectionSource("hotel", nil),
		retrieval.NewCollectionSource("complaints", nil),
	)
	ctxStore := ai.NewRedisContextStore(utils.GetContextCacheClient(), utils.ContextCacheTTL)
	geminiClient := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)

	resolver := reception.NewResolver(opsService, geminiClient, ctxStore, retriever,
		hotelRepo, userRepo, receptionRepo)

	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()
	channel := reception.NewChannel(receptionRepo, queueClient)

	// Start the background resolver worker.
	cron.InitReceptionWorker(resolver)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:      userRepo,
		Reception:     handlers.NewReceptionHandler(channel),
		Rooms:         handlers.NewRoomHandler(roomRepo, opsService),
		Bookings:      handlers.NewBookingHandler(opsService),
		Orders:        handlers.NewOrderHandler(opsService, orderRepo),
		Complaints:    handlers.NewComplaintHandler(opsService, complaintRepo),
		Notifications: handlers.NewNotificationHandler(notificationRepo),
		Users:         handlers.NewUserHandler(userRepo),
		Admin:         handlers.NewAdminHandler(opsService, bookingRepo, complaintRepo, orderRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Monitor external dependencies for the health endpoint.
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetContextCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
