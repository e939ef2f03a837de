package main

import (
	"context"

	"questclub/internal/db"
	"questclub/internal/notify"
	"questclub/internal/store"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var workerCommand = &cli.Command{
	Name:   "worker",
	Usage:  "Run the notification dispatch worker",
	Action: runWorker,
}

func runWorker(cCtx *cli.Context) error {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	pool, err := db.Connect(context.Background(), config)
	if err != nil {
		return err
	}
	defer pool.Close()

	processor := notify.NewProcessor(
		logger,
		store.NewPhotoRepository(pool),
		store.NewProfileRepository(pool),
		store.NewActivityRepository(pool),
		store.NewAccountRepository(pool),
		notify.NewMailClient(config.MailAPIURL, config.MailAPIKey, config.MailFrom),
	)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: config.RedisAddr},
		asynq.Config{Concurrency: config.WorkerConcurrency},
	)

	logger.WithField("concurrency", config.WorkerConcurrency).Info("notification worker starting")

	// Run blocks until SIGINT/SIGTERM and drains in-flight tasks.
	return srv.Run(processor.Handler())
}
