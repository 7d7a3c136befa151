package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/multierr"

	"github.com/angelmondragon/multistore-admin/internal/marketplace"
	"github.com/angelmondragon/multistore-admin/internal/repo/mongostore"
	"github.com/angelmondragon/multistore-admin/internal/repo/sqlstore"
	"github.com/angelmondragon/multistore-admin/pkg/config"
	"github.com/angelmondragon/multistore-admin/pkg/db"
	"github.com/angelmondragon/multistore-admin/pkg/logger"
	"github.com/angelmondragon/multistore-admin/pkg/migrate"
	pkgmongo "github.com/angelmondragon/multistore-admin/pkg/mongo"
)

type seeder interface {
	Seed(ctx context.Context, data marketplace.Dataset, progress func(collection string, n int)) error
}

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	fixturePath := flag.String("file", "fixtures/marketplace.json", "JSON fixture with vendors, stores, categories, products and orders")
	migrateFirst := flag.Bool("migrate", false, "apply embedded migrations before seeding a sql store")
	flag.Parse()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Format:      cfg.App.LogFormat,
	})
	driver := cfg.Store.Driver()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":     cfg.App.Env,
		"driver":  driver.String(),
		"fixture": *fixturePath,
	})

	file, err := os.Open(*fixturePath)
	requireResource(ctx, logg, "fixture", err)
	data, err := marketplace.LoadDataset(file)
	requireResource(ctx, logg, "fixture", multierr.Append(err, file.Close()))

	target, closeStore, err := openSeeder(ctx, cfg, logg, *migrateFirst)
	requireResource(ctx, logg, "store", err)

	bar := progressbar.Default(int64(data.Size()), "seeding")
	seedErr := target.Seed(ctx, data, func(collection string, n int) {
		bar.Describe(collection)
		_ = bar.Add(n)
	})
	_ = bar.Finish()

	if err := multierr.Append(seedErr, closeStore()); err != nil {
		logg.Error(ctx, "seeding failed", err)
		os.Exit(1)
	}
	logg.Info(logg.WithField(ctx, "records", data.Size()), "seeding completed")
}

func openSeeder(ctx context.Context, cfg *config.Config, logg *logger.Logger, migrateFirst bool) (seeder, func() error, error) {
	driver := cfg.Store.Driver()
	if !driver.IsSQL() {
		client, err := pkgmongo.New(ctx, cfg.Mongo, logg)
		if err != nil {
			return nil, nil, err
		}
		store, err := mongostore.New(client, cfg.Mongo)
		if err != nil {
			return nil, nil, multierr.Append(err, client.Close(context.Background()))
		}
		return store, func() error { return client.Close(context.Background()) }, nil
	}

	client, err := db.New(ctx, driver, cfg.DB, logg)
	if err != nil {
		return nil, nil, err
	}
	if migrateFirst {
		sqlDB, err := client.DB().DB()
		if err == nil {
			err = migrate.UpEmbedded(ctx, sqlDB, driver)
		}
		if err != nil {
			return nil, nil, multierr.Append(fmt.Errorf("migrations: %w", err), client.Close())
		}
	}
	store, err := sqlstore.New(client)
	if err != nil {
		return nil, nil, multierr.Append(err, client.Close())
	}
	return store, client.Close, nil
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
