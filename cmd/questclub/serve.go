package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"questclub/internal/db"
	"questclub/internal/moderation"
	"questclub/internal/notify"
	"questclub/internal/server"
	"questclub/internal/storage"
	"questclub/internal/store"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the moderation HTTP API",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	pool, err := db.Connect(ctx, config)
	if err != nil {
		return err
	}
	defer pool.Close()

	photoRepo := store.NewPhotoRepository(pool)
	profileRepo := store.NewProfileRepository(pool)
	activityRepo := store.NewActivityRepository(pool)
	accountRepo := store.NewAccountRepository(pool)

	objects := storage.NewSupabaseStorage(
		config.SupabaseProjectID,
		config.SupabaseServiceKey,
		config.StorageBucketName,
	)

	queueClient := asynq.NewClient(asynq.RedisClientOpt{Addr: config.RedisAddr})
	defer queueClient.Close()

	moderationSvc := moderation.New(
		logger,
		photoRepo,
		profileRepo,
		activityRepo,
		accountRepo,
		objects,
		notify.NewQueue(queueClient),
	)

	srv, err := server.New(config, logger, moderationSvc)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
