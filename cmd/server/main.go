package main

import (
	"context"

	apicontrollers "github.com/drujensen/aichat/internal/api/controllers"
	"github.com/drujensen/aichat/internal/api/websocket"
	"github.com/drujensen/aichat/internal/domain/services"
	"github.com/drujensen/aichat/internal/impl/config"
	"github.com/drujensen/aichat/internal/impl/database"
	"github.com/drujensen/aichat/internal/impl/integrations"
	repositoriesMongo "github.com/drujensen/aichat/internal/impl/repositories/mongo"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/drujensen/aichat/docs" // Import the generated docs package
)

//	@title			AI Chat API
//	@version		1.0
//	@description	This is the API for the AI Chat application.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

// @host	localhost:8080
// @BasePath	/
func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cfg, err := config.InitConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := database.NewMongoDB(cfg.MongoURI, cfg.DatabaseName, logger)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer db.Disconnect(context.Background())

	conversationRepo := repositoriesMongo.NewMongoConversationRepository(db.Collection("conversation"))
	messageRepo := repositoriesMongo.NewMongoMessageRepository(db.Collection("message"))

	replyBot := integrations.NewReplyBot()

	conversationService := services.NewConversationService(conversationRepo, logger)
	messageService := services.NewMessageService(conversationRepo, messageRepo, replyBot, logger)

	// Controllers
	conversationController := apicontrollers.NewConversationController(logger, conversationService)
	messageController := apicontrollers.NewMessageController(logger, messageService)
	healthController := apicontrollers.NewHealthController(logger, db)

	// WebSocket hub
	hub := websocket.NewChatHub()
	go hub.Run()
	unsubscribe := hub.Subscribe()
	defer unsubscribe()

	// Initialize Echo
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("logger", logger)
			return next(c)
		}
	})

	// API Routes
	api := e.Group("/api")
	conversationController.RegisterRoutes(api)
	messageController.RegisterRoutes(api)
	healthController.RegisterRoutes(e, api)

	// WebSocket route
	e.GET("/ws/chat", echo.WrapHandler(websocket.ChatHandler(hub, messageService)))

	// Swagger route
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start server
	logger.Info("Starting HTTP server on :" + cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
