package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	printingapp "github.com/printhub/backend/internal/application/printing"
	domainprinting "github.com/printhub/backend/internal/domain/printing"
	"github.com/printhub/backend/internal/infrastructure/backendreg"
	"github.com/printhub/backend/internal/infrastructure/config"
	"github.com/printhub/backend/internal/infrastructure/hooks"
	"github.com/printhub/backend/internal/infrastructure/logger"
	"github.com/printhub/backend/internal/infrastructure/persistence"
	infraprinting "github.com/printhub/backend/internal/infrastructure/printing"
	"github.com/printhub/backend/internal/infrastructure/printnode"
	"github.com/printhub/backend/internal/infrastructure/storage"
	"github.com/printhub/backend/internal/interfaces/http/handler"
	"github.com/printhub/backend/internal/interfaces/http/middleware"
	"github.com/printhub/backend/internal/interfaces/http/router"
)

//	@title			PrintHub Backend API
//	@version		1.0
//	@description	Label printing service with pluggable print backends

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting PrintHub Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection with zap-backed GORM logging
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database connected successfully")

	// Initialize repositories
	providerRepo := persistence.NewGormProviderRepository(db.DB)
	printerRepo := persistence.NewGormPrinterRepository(db.DB)
	tableRepo := persistence.NewGormLabelTableRepository(db.DB)
	templateRepo := persistence.NewGormTemplateRepository(db.DB)
	jobRepo := persistence.NewGormPrintJobRepository(db.DB)

	// Template resolution and PDF rendering
	templateResolver := infraprinting.NewTemplateFileResolver(cfg.Template.DesignRoot, cfg.Template.WebRoot)
	renderer, err := infraprinting.NewChromedpRenderer(&infraprinting.ChromedpConfig{
		DefaultTimeout: cfg.Renderer.Timeout,
		RemoteURL:      cfg.Renderer.RemoteURL,
		NoSandbox:      cfg.Renderer.NoSandbox,
		Logger:         log,
	})
	if err != nil {
		log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
	}
	defer renderer.Close()

	labelGenerator := infraprinting.NewTemplateLabelGenerator(
		templateResolver,
		renderer,
		cfg.Template.LabelWidthMM,
		cfg.Template.LabelHeightMM,
		log,
	)

	// Backend registry. Each provider row names one of these
	// implementations; new connectors register here.
	registry := backendreg.NewRegistry(log)
	if err := registry.Register(printnode.Implementation, func() domainprinting.Backend {
		return printnode.NewBackend(labelGenerator, log)
	}); err != nil {
		log.Fatal("Failed to register print backend", zap.Error(err))
	}

	// Label generation hooks. The barcode hook serves shipment labels;
	// without a lookup it falls back to the record ID as barcode value.
	hookPipeline := hooks.NewPipeline([]domainprinting.GenerateLabelHook{
		hooks.NewBarcodeHook(nil, "M_InOut"),
	}, log)

	// Label archive: S3 when configured, local filesystem otherwise
	var archive printingapp.LabelArchive
	if cfg.Archive.Enabled {
		if cfg.Archive.S3Enabled {
			s3Archive, err := storage.NewS3LabelArchive(&cfg.Archive)
			if err != nil {
				log.Fatal("Failed to initialize S3 label archive", zap.Error(err))
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := s3Archive.EnsureBucket(ctx); err != nil {
				cancel()
				log.Fatal("Failed to ensure label bucket", zap.Error(err))
			}
			cancel()
			archive = s3Archive
			log.Info("Label archive enabled", zap.String("backend", "s3"), zap.String("bucket", cfg.Archive.Bucket))
		} else {
			fsArchive, err := storage.NewFSLabelArchive(cfg.Archive.Dir)
			if err != nil {
				log.Fatal("Failed to initialize label archive", zap.Error(err))
			}
			archive = fsArchive
			log.Info("Label archive enabled", zap.String("backend", "filesystem"), zap.String("dir", cfg.Archive.Dir))
		}
	}

	// Application services
	reconciler := printingapp.NewPrinterReconciler(printerRepo, log)
	printService := printingapp.NewPrintService(
		providerRepo,
		printerRepo,
		tableRepo,
		templateRepo,
		jobRepo,
		registry,
		hookPipeline,
		reconciler,
		archive,
		log,
	)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID first so everything downstream logs it
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// API routes
	printHandler := handler.NewPrintHandler(printService)
	systemHandler := handler.NewSystemHandler()

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.PrintRoutes(printHandler)).
		Register(handler.SystemRoutes(systemHandler))
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
