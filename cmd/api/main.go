package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ccjb/compliance-backend/internal/handlers/dto"
	httphandlers "github.com/ccjb/compliance-backend/internal/handlers/http"
	"github.com/ccjb/compliance-backend/internal/handlers/middleware"
	"github.com/ccjb/compliance-backend/internal/handlers/ws"
	"github.com/ccjb/compliance-backend/internal/infrastructure/config"
	"github.com/ccjb/compliance-backend/internal/infrastructure/i18n"
	"github.com/ccjb/compliance-backend/internal/infrastructure/logging"
	"github.com/ccjb/compliance-backend/internal/infrastructure/persistence/postgres"
	"github.com/ccjb/compliance-backend/internal/infrastructure/registry"
	"github.com/ccjb/compliance-backend/internal/services"
)

func main() {
	// Carregar variáveis de ambiente (.env é opcional em produção)
	_ = godotenv.Load()

	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting ccjb compliance backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Validações customizadas (cnpj, cpf)
	if err := dto.RegisterCustomValidators(); err != nil {
		logger.Error("failed to register validators", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	repRepo := postgres.NewRepresentanteRepository(db)
	flowRepo := postgres.NewFlowRepository(db)
	noteRepo := postgres.NewNoteRepository(db)
	parecerRepo := postgres.NewParecerRepository(db)
	taskRepo := postgres.NewTaskRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Hub de notificações em tempo real
	hub := ws.NewHub(logger)

	// Inicializar services
	authService := services.NewAuthService(userRepo, &cfg.JWT, logger)
	userService := services.NewUserService(userRepo, logger)
	notificationService := services.NewNotificationService(notificationRepo, hub, logger)
	taskService := services.NewTaskService(taskRepo, userRepo, notificationService, logger)
	companyService := services.NewCompanyService(companyRepo, repRepo, flowRepo, noteRepo, parecerRepo, uow, logger)
	registryClient := registry.NewClient(&cfg.Registry, logger)
	registryService := services.NewRegistryService(registryClient, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService)
	userHandler := httphandlers.NewUserHandler(userService)
	companyHandler := httphandlers.NewCompanyHandler(companyService, logger)
	taskHandler := httphandlers.NewTaskHandler(taskService, logger)
	notificationHandler := httphandlers.NewNotificationHandler(notificationService, logger)
	registryHandler := httphandlers.NewRegistryHandler(registryService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	authMiddleware := middleware.NewAuthMiddleware(authService)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
		}

		protected := v1.Group("")
		protected.Use(authMiddleware.RequireAuth())

		// Users
		users := protected.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PATCH("/:id", userHandler.UpdateUser)
		}

		// Companies
		companies := protected.Group("/companies")
		{
			companies.POST("", companyHandler.CreateCompany)
			companies.GET("", companyHandler.ListCompanies)
			companies.GET("/buckets", companyHandler.ListBuckets)
			companies.GET("/:id", companyHandler.GetCompany)
			companies.PATCH("/:id", companyHandler.UpdateCompany)
			companies.PATCH("/:id/status", companyHandler.ChangeCompanyStatus)
			companies.POST("/:id/archive", companyHandler.ArchiveCompany)
			companies.POST("/:id/restore", companyHandler.RestoreCompany)
			companies.PUT("/:id/representante-legal", companyHandler.UpsertRepresentante)
		}

		// Flows e notas (histórico de verificação)
		flows := protected.Group("/flows")
		{
			flows.POST("", companyHandler.CreateFlow)
			flows.PATCH("/:id", companyHandler.UpdateFlow)
			flows.DELETE("/:id", companyHandler.DeleteFlow)
		}

		notes := protected.Group("/notes")
		{
			notes.POST("", companyHandler.CreateNote)
			notes.PATCH("/:id", companyHandler.UpdateNote)
			notes.DELETE("/:id", companyHandler.DeleteNote)
		}

		// Parecer final
		pareceres := protected.Group("/pareceres")
		{
			pareceres.PUT("", companyHandler.UpsertParecer)
			pareceres.DELETE("/:id", companyHandler.DeleteParecer)
		}

		// Tasks
		tasks := protected.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
			tasks.POST("/:id/trash", taskHandler.MoveTaskToTrash)
			tasks.POST("/:id/restore", taskHandler.RestoreTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.DELETE("", taskHandler.EmptyTrash)
		}

		// Notifications
		notifications := protected.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.POST("/:id/read", notificationHandler.MarkNotificationRead)
			notifications.DELETE("/:id", notificationHandler.DeleteNotification)
		}

		// Consulta pública de CNPJ
		protected.GET("/registry/cnpj/:cnpj", registryHandler.LookupCNPJ)

		// Push de notificações em tempo real
		protected.GET("/ws", hub.Serve)
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
