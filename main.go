package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Madhav-Gupta-28/catalog-backend-go/config"
	"github.com/Madhav-Gupta-28/catalog-backend-go/database"
	"github.com/Madhav-Gupta-28/catalog-backend-go/handlers"
	customMiddleware "github.com/Madhav-Gupta-28/catalog-backend-go/middleware"
	"github.com/Madhav-Gupta-28/catalog-backend-go/repository"
	"github.com/Madhav-Gupta-28/catalog-backend-go/routes"
	"github.com/Madhav-Gupta-28/catalog-backend-go/storage"
	"github.com/Madhav-Gupta-28/catalog-backend-go/utils"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	utils.SetupLogger(cfg.Log.Level, cfg.Log.Pretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.CollectorHost != "" {
		traceProvider, err := utils.InitTracing(ctx, utils.TracingConfig{
			Endpoint:    cfg.CollectorEndpoint(),
			SampleRatio: cfg.TraceSampleRatio,
		})
		if err != nil {
			return err
		}
		defer func() {
			if err := traceProvider.Shutdown(context.Background()); err != nil {
				log.Error().Err(err).Msg("shutdown tracer provider")
			}
		}()
	}

	db, err := database.ConnectDB(ctx, cfg.MongoDB)
	if err != nil {
		return errors.Wrap(err, "connect database")
	}
	defer func() {
		if err := db.Client().Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("disconnect database")
		}
	}()

	images, err := storage.NewDiskImageStore(cfg.Upload.ImageDir)
	if err != nil {
		return err
	}

	products := repository.NewMongoDBProductRepository(db, cfg.MongoDB.Timeout)
	users := repository.NewMongoDBUserRepository(db, cfg.MongoDB.Timeout)
	tokens := utils.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	e := routes.NewEcho(routes.Dependencies{
		Products: handlers.NewProductHandler(products, images),
		Users:    handlers.NewUserHandler(users, tokens),
		Health: handlers.NewHealthHandler(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}),
		Gate:          customMiddleware.NewGate(tokens, users),
		CORSWhitelist: cfg.CORSWhitelist,
		ImageDir:      images.Dir(),
		BodyLimit:     cfg.Upload.MaxSize,
	})

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "start server")
		}
		return nil
	})
	group.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
