package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/persnickety/venues-ms-go/internal/cache"
	"github.com/persnickety/venues-ms-go/internal/config"
	"github.com/persnickety/venues-ms-go/internal/db"
	"github.com/persnickety/venues-ms-go/internal/handler"
	"github.com/persnickety/venues-ms-go/internal/handler/api"
	"github.com/persnickety/venues-ms-go/internal/logger"
	cMiddleware "github.com/persnickety/venues-ms-go/internal/middleware"
	"github.com/persnickety/venues-ms-go/internal/notifier"
	"github.com/persnickety/venues-ms-go/internal/port"
	"github.com/persnickety/venues-ms-go/internal/repository/mongodb"
	"github.com/persnickety/venues-ms-go/internal/storage"
	"github.com/persnickety/venues-ms-go/internal/task"
	"github.com/persnickety/venues-ms-go/internal/thumbnailer"
	commentSvc "github.com/persnickety/venues-ms-go/internal/usecase/comment"
	mediaSvc "github.com/persnickety/venues-ms-go/internal/usecase/media"
	userSvc "github.com/persnickety/venues-ms-go/internal/usecase/user"
	venueSvc "github.com/persnickety/venues-ms-go/internal/usecase/venue"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(cfg.JWTPublicKey)

	strg := initStorage(ctx, cfg)
	if err := strg.InitBucket(cfg.MediaBucket); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.MediaBucket, err)
		os.Exit(1)
	}

	mediumRepo := mongodb.NewMediumRepository(database.DB)
	venueRepo := mongodb.NewVenueRepository(database.DB)
	commentRepo := mongodb.NewCommentRepository(database.DB)
	userRepo := mongodb.NewUserRepository(database.DB)

	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured — caching and async cleanup are disabled")
	}

	var notif port.Notifier
	if cfg.WSEnabled {
		hub := notifier.NewHub()
		r.Get("/ws", hub.ServeWS())
		notif = hub
	} else {
		notif = notifier.NewNoop()
		logger.Warn(ctx, "⚠️  Websockets disabled — broadcast events are discarded")
	}

	thumb := thumbnailer.New()

	ingestSvc := mediaSvc.NewMediumIngester(mediumRepo, venueRepo, strg, thumb, notif, ca, dispatcher, mediaSvc.NewStorageKey, cfg.MediaBucket)
	r.Post("/media", api.UploadMediumHandler(ingestSvc))

	listMediaSvc := mediaSvc.NewMediumLister(mediumRepo, venueRepo, ca)
	r.Get("/media", api.ListVenueMediaHandler(listMediaSvc))

	getMediumSvc := mediaSvc.NewMediumGetter(mediumRepo, userRepo, venueRepo)
	r.With(cMiddleware.WithObjectID()).
		Get("/media/{id}", api.GetMediumHandler(getMediumSvc))

	moderateSvc := mediaSvc.NewMediumModerator(mediumRepo, ca)
	r.With(cMiddleware.WithObjectID()).
		Post("/media/flag/{id}", api.FlagMediumHandler(moderateSvc))

	venues := venueSvc.NewVenueService(venueRepo, notif)
	r.Post("/venues", api.CreateVenueHandler(venues))
	r.Get("/venues", api.ListVenuesHandler(venues))
	r.With(cMiddleware.WithObjectID()).
		Get("/venues/{id}", api.GetVenueHandler(venues))
	r.With(cMiddleware.WithObjectID()).
		Delete("/venues/{id}", api.DeleteVenueHandler(venues))

	comments := commentSvc.NewCommentService(commentRepo, venueRepo, notif)
	r.Post("/comments", api.CreateCommentHandler(comments))
	r.Get("/comments", api.ListCommentsHandler(comments))
	r.With(cMiddleware.WithObjectID()).
		Get("/comments/{id}", api.GetCommentHandler(comments))
	r.With(cMiddleware.WithObjectID()).
		Post("/comments/flag/{id}", api.FlagCommentHandler(comments))

	users := userSvc.NewUserService(userRepo)
	r.Post("/users", api.FindOrCreateUserHandler(users))
	r.With(cMiddleware.WithObjectID()).
		Get("/users/{id}", api.GetUserHandler(users))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(jwtKey string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(cMiddleware.WithAuth(jwtKey))

	r.NotFound(handler.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(shutdownCtx); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
