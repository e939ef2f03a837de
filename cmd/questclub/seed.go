package main

import (
	"context"
	"fmt"

	"questclub/internal/db"
	"questclub/internal/seed"
	"questclub/internal/storage"
	"questclub/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with development fixtures",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		profileRepo := store.NewProfileRepository(pool)
		activityRepo := store.NewActivityRepository(pool)
		photoRepo := store.NewPhotoRepository(pool)
		objects := storage.NewSupabaseStorage(cfg.SupabaseProjectID, cfg.SupabaseServiceKey, cfg.StorageBucketName)

		logrus.Info("Seeding profiles...")
		if err := seed.SeedProfiles(ctx, profileRepo); err != nil {
			return fmt.Errorf("failed to seed profiles: %w", err)
		}

		logrus.Info("Seeding activities...")
		if err := seed.SeedActivities(ctx, activityRepo); err != nil {
			return fmt.Errorf("failed to seed activities: %w", err)
		}

		logrus.Info("Seeding photos...")
		if err := seed.SeedPhotos(ctx, photoRepo, objects); err != nil {
			return fmt.Errorf("failed to seed photos: %w", err)
		}

		logrus.Info("Fixtures seeded successfully")

		return nil
	},
}
