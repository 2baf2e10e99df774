package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"io.winapps.portfolio/internal/auth"
	"io.winapps.portfolio/internal/config"
	"io.winapps.portfolio/internal/contact"
	"io.winapps.portfolio/internal/content"
	"io.winapps.portfolio/internal/db"
	firebaseutil "io.winapps.portfolio/internal/firebase"
	"io.winapps.portfolio/internal/handlers"
	"io.winapps.portfolio/internal/jobs"
	"io.winapps.portfolio/internal/logging"
	"io.winapps.portfolio/internal/middleware"
	"io.winapps.portfolio/internal/profile"
	"io.winapps.portfolio/internal/realtime"
	"io.winapps.portfolio/internal/render"
	"io.winapps.portfolio/internal/site"
)

const (
	submitGuardTTL = 30 * time.Second
	resyncTimeout  = 30 * time.Second
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	firebaseApp, err := firebaseutil.InitFirebase(ctx, cfg.Firebase)
	if err != nil {
		logger.Fatalw("failed to initialize Firebase", "error", err)
	}
	databaseClient, err := firebaseutil.GetDatabaseClient(ctx, firebaseApp)
	if err != nil {
		logger.Fatalw("failed to initialize Realtime Database", "error", err)
	}

	postgresDB, err := db.InitPostgres(ctx)
	if err != nil {
		logger.Fatalw("failed to initialize PostgreSQL", "error", err)
	}
	defer postgresDB.Close()

	redisClient, err := db.InitRedis(ctx)
	if err != nil {
		logger.Fatalw("failed to initialize Redis", "error", err)
	}
	defer redisClient.Close()

	hub := realtime.NewHub()
	broadcaster := realtime.NewRedisBroadcaster(redisClient, hub, logger)
	go broadcaster.Run(ctx)

	store := content.NewStore(
		firebaseutil.NewRealtimeDB(databaseClient),
		db.NewRedisCache(redisClient),
		broadcaster,
		cfg.CacheTTL,
		logger,
	)

	scheduler := jobs.NewScheduler()
	resync := jobs.NewResync(store, broadcaster, content.Collections, logger)
	if _, err := jobs.Schedule(scheduler, cfg.ResyncSchedule, resync, resyncTimeout); err != nil {
		logger.Fatalw("invalid resync schedule", "schedule", cfg.ResyncSchedule, "error", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	siteContent, err := site.Load(cfg.SiteContentPath)
	if err != nil {
		logger.Fatalw("failed to load site content", "path", cfg.SiteContentPath, "error", err)
	}

	var profileReader profile.Reader
	if firestoreClient, err := firebaseutil.GetFirestoreClient(ctx, firebaseApp); err != nil {
		logger.Warnw("Firestore unavailable, about page will omit profile", "error", err)
	} else {
		defer firestoreClient.Close()
		profileReader = profile.NewFirestoreReader(firestoreClient, cfg.Firebase.ProfileDocID)
	}

	var minter handlers.TokenMinter
	if authClient, err := firebaseutil.GetAuthClient(ctx, firebaseApp); err != nil {
		logger.Warnw("Firebase Auth unavailable, logins will not carry a custom token", "error", err)
	} else {
		minter = authClient
	}

	var contactNotifier contact.Notifier
	if messagingClient, err := firebaseutil.GetMessagingClient(ctx, firebaseApp); err != nil {
		logger.Warnw("Firebase Messaging unavailable, contact messages will not be pushed", "error", err)
	} else {
		contactNotifier = contact.NewFCMNotifier(messagingClient, cfg.ContactTopic)
	}

	sessions := auth.NewManager(
		auth.Credentials{Email: cfg.AdminEmail, Password: cfg.AdminPassword},
		cfg.JWTSecret,
		cfg.SessionTTL,
		auth.NewRedisSessions(redisClient),
	)
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logger.Warn("ADMIN_EMAIL or ADMIN_PASSWORD is not set, every admin login will be rejected")
	}

	contactRepo := db.NewContactRepository(postgresDB)
	subscribeHandler := handlers.NewSubscribeHandler(store, hub, logger)

	router := newRouter(cfg, logger)
	handlers.RegisterRoutes(router, handlers.Handlers{
		Admin:       handlers.NewAdminHandler(sessions, store, db.NewRedisGuard(redisClient, submitGuardTTL, logger), minter, cfg.Firebase.AdminUID, logger),
		Pages:       handlers.NewPagesHandler(store, siteContent, profileReader, render.NewMarkdown(), logger),
		Collections: handlers.NewCollectionsHandler(store, logger),
		Theme:       handlers.NewThemeHandler(!cfg.IsDevelopment()),
		Contact:     handlers.NewContactHandler(contact.NewService(contactRepo, contactNotifier, logger), contactRepo, logger),
		Subscribe:   subscribeHandler,
		AdminAuth:   middleware.AdminAuthMiddleware(sessions),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
	srv.RegisterOnShutdown(subscribeHandler.Shutdown)

	go func() {
		logger.Infow("server starting", "port", cfg.Port, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalw("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("server forced to shutdown", "error", err)
	}

	// Stops the Redis relay and anything still holding a request context.
	stop()

	logger.Info("server exited")
}

func newRouter(cfg *config.Config, logger *zap.SugaredLogger) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.RequestLoggingMiddleware(logger, "/health"))

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 0 || (len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AddAllowHeaders("Authorization", "X-Request-ID")
	corsConfig.AddExposeHeaders("X-Request-ID")
	router.Use(cors.New(corsConfig))

	return router
}
