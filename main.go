package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"

	apicontrollers "github.com/drujensen/aichat/internal/api/controllers"
	"github.com/drujensen/aichat/internal/api/websocket"
	"github.com/drujensen/aichat/internal/domain/interfaces"
	"github.com/drujensen/aichat/internal/domain/services"
	"github.com/drujensen/aichat/internal/impl/config"
	"github.com/drujensen/aichat/internal/impl/database"
	"github.com/drujensen/aichat/internal/impl/integrations"
	repositoriesJson "github.com/drujensen/aichat/internal/impl/repositories/json"
	repositoriesMongo "github.com/drujensen/aichat/internal/impl/repositories/mongo"
	repositoriesSqlite "github.com/drujensen/aichat/internal/impl/repositories/sqlite"
	"github.com/drujensen/aichat/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/drujensen/aichat/docs" // Import the generated docs package
)

var (
	version = "unknown" // This should be set during build with -ldflags="-X main.version=1.0.0"
)

func main() {
	// Check version flag first
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Println(version)
		os.Exit(0)
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: aichat [serve|tui] [--storage=type]\n")
		flag.PrintDefaults()
	}

	storage := flag.String("storage", "file", "Storage type: file, mongo or sqlite")

	// Preserve the flags by not calling flag.Parse() yet
	flag.CommandLine.Parse([]string{})

	// Default mode is "serve"
	modeStr := "serve"

	// Check the first non-flag argument for the mode
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		modeStr = "serve"
		os.Args = slices.Delete(os.Args, 0, 1)
	}

	if len(os.Args) > 1 && os.Args[1] == "tui" {
		modeStr = "tui"
		os.Args = slices.Delete(os.Args, 0, 1)
	}

	// Parse the remaining arguments which are flags
	flag.Parse()

	if *storage != "file" && *storage != "mongo" && *storage != "sqlite" {
		fmt.Fprintf(os.Stderr, "Invalid storage type: %s\n", *storage)
		flag.Usage()
		os.Exit(1)
	}

	// The TUI owns the terminal, so keep logging quiet there
	logConfig := zap.NewDevelopmentConfig()
	if modeStr == "tui" {
		logConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := logConfig.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.InitConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	var conversationRepo interfaces.ConversationRepository
	var messageRepo interfaces.MessageRepository
	var diagnostics interfaces.StoreDiagnostics

	switch *storage {
	case "mongo":
		db, err := database.NewMongoDB(cfg.MongoURI, cfg.DatabaseName, logger)
		if err != nil {
			logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
		defer db.Disconnect(context.Background())

		conversationRepo = repositoriesMongo.NewMongoConversationRepository(db.Collection("conversation"))
		messageRepo = repositoriesMongo.NewMongoMessageRepository(db.Collection("message"))
		diagnostics = db
	case "sqlite":
		db, err := database.NewSQLiteDB(cfg.SQLitePath, logger)
		if err != nil {
			logger.Fatal("Failed to open SQLite database", zap.Error(err))
		}
		defer db.Close()

		conversationRepo = repositoriesSqlite.NewSQLiteConversationRepository(db.DB())
		messageRepo = repositoriesSqlite.NewSQLiteMessageRepository(db.DB())
		diagnostics = db
	default:
		conversationRepo, err = repositoriesJson.NewJSONConversationRepository(cfg.DataDir)
		if err != nil {
			logger.Fatal("Failed to initialize conversation repository", zap.Error(err))
		}
		messageRepo, err = repositoriesJson.NewJSONMessageRepository(cfg.DataDir)
		if err != nil {
			logger.Fatal("Failed to initialize message repository", zap.Error(err))
		}
		diagnostics = database.NewFileStore(cfg.DataDir)
	}

	replyBot := integrations.NewReplyBot()

	conversationService := services.NewConversationService(conversationRepo, logger)
	messageService := services.NewMessageService(conversationRepo, messageRepo, replyBot, logger)

	if modeStr == "serve" {
		conversationController := apicontrollers.NewConversationController(logger, conversationService)
		messageController := apicontrollers.NewMessageController(logger, messageService)
		healthController := apicontrollers.NewHealthController(logger, diagnostics)

		hub := websocket.NewChatHub()
		go hub.Run()
		unsubscribe := hub.Subscribe()
		defer unsubscribe()

		e := echo.New()

		e.Use(middleware.Logger())
		e.Use(middleware.Recover())
		e.Use(middleware.RequestID())
		e.Use(middleware.CORS())

		api := e.Group("/api")
		conversationController.RegisterRoutes(api)
		messageController.RegisterRoutes(api)
		healthController.RegisterRoutes(e, api)

		e.GET("/ws/chat", echo.WrapHandler(websocket.ChatHandler(hub, messageService)))

		e.GET("/swagger/*", echoSwagger.WrapHandler)

		logger.Info("Starting HTTP server on :" + cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	} else {
		p := tea.NewProgram(tui.NewTUI(conversationService, messageService), tea.WithAltScreen())

		if _, err := p.Run(); err != nil {
			log.Fatal(err)
		}
	}
}
