package app

import (
	"fmt"

	"github.com/Xae97/TaskFundi/internal/auth"
	"github.com/Xae97/TaskFundi/internal/config"
	"github.com/Xae97/TaskFundi/internal/email"
	"github.com/Xae97/TaskFundi/internal/handlers"
	"github.com/Xae97/TaskFundi/internal/logger"
	"github.com/Xae97/TaskFundi/internal/middleware"
	"github.com/Xae97/TaskFundi/internal/routes"
	"github.com/Xae97/TaskFundi/internal/services"
	"github.com/Xae97/TaskFundi/internal/store"
	"github.com/Xae97/TaskFundi/ws"

	"github.com/gin-gonic/gin"
)

// Run boots the application and blocks serving HTTP.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	auth.Init(cfg.JWT.Secret, cfg.JWT.TTL)

	ginRouter := SetupRouter(cfg, store.DefaultSeed())

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles stores, services, handlers and routes into a ready
// gin engine. Tests call it directly with their own seed data.
func SetupRouter(cfg *config.Config, seed *store.SeedData) *gin.Engine {
	serviceContainer := initializeServices(cfg, seed)

	appHandlers := handlers.NewAppHandlers(serviceContainer)

	wsManager := ws.NewManager()
	go wsManager.Run()
	serviceContainer.ChatService.SetNotifier(wsManager)
	wsHandler := ws.NewWebSocketHandler(wsManager, serviceContainer.ChatService)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	return ginRouter
}

func initializeServices(cfg *config.Config, seed *store.SeedData) *services.ServiceContainer {
	emailProvider := email.NewMockProvider()

	userStore := store.NewUserStore(seed.Users)
	jobStore := store.NewJobStore(seed.Jobs)
	chatStore := store.NewChatStore(seed.Conversations)

	authService := services.NewAuthService(userStore, emailProvider)
	userService := services.NewUserService(userStore)
	jobService := services.NewJobService(jobStore, userStore)
	searchService := services.NewSearchService(jobStore, userStore)
	chatService := services.NewChatService(chatStore, userStore, jobStore, cfg.Chat.MaxMessageLength)

	return &services.ServiceContainer{
		AuthService:   authService,
		UserService:   userService,
		JobService:    jobService,
		SearchService: searchService,
		ChatService:   chatService,
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
