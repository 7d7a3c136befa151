package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/multistore-admin/pkg/config"
	"github.com/angelmondragon/multistore-admin/pkg/db"
	"github.com/angelmondragon/multistore-admin/pkg/enums"
	"github.com/angelmondragon/multistore-admin/pkg/logger"
	"github.com/angelmondragon/multistore-admin/pkg/migrate"
)

type options struct {
	cmd      string
	dir      string
	name     string
	version  string
	embedded bool
}

// sqlCommand runs against an open connection.
type sqlCommand func(ctx context.Context, sqlDB *sql.DB, driver enums.StoreDriver, opts options) error

var sqlCommands = map[string]sqlCommand{
	"up": func(ctx context.Context, sqlDB *sql.DB, driver enums.StoreDriver, opts options) error {
		if opts.embedded {
			return migrate.UpEmbedded(ctx, sqlDB, driver)
		}
		return migrate.Run(ctx, sqlDB, driver, opts.dir, "up")
	},
	"down": func(ctx context.Context, sqlDB *sql.DB, driver enums.StoreDriver, opts options) error {
		return migrate.Run(ctx, sqlDB, driver, opts.dir, "down")
	},
	"status": func(ctx context.Context, sqlDB *sql.DB, driver enums.StoreDriver, opts options) error {
		return migrate.Run(ctx, sqlDB, driver, opts.dir, "status")
	},
	"version": func(ctx context.Context, sqlDB *sql.DB, driver enums.StoreDriver, opts options) error {
		if opts.version == "" {
			return errors.New("missing -version for version command")
		}
		return migrate.MigrateToVersion(ctx, sqlDB, driver, opts.dir, opts.version)
	},
}

func main() {
	var opts options
	flag.StringVar(&opts.cmd, "cmd", "up", "migration command: up|down|status|version|create|validate")
	flag.StringVar(&opts.dir, "dir", migrate.DefaultDir, "goose migrations directory")
	flag.StringVar(&opts.name, "name", "", "migration name (for create)")
	flag.StringVar(&opts.version, "version", "", "target version (YYYYMMDDHHMMSS) for -cmd=version")
	flag.BoolVar(&opts.embedded, "embedded", false, "apply the migrations compiled into the binary (up only)")
	flag.Parse()

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "migrate %s: %v\n", opts.cmd, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logg := logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Format:      cfg.App.LogFormat,
	})
	driver := cfg.Store.Driver()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":    cfg.App.Env,
		"cmd":    opts.cmd,
		"dir":    opts.dir,
		"driver": driver.String(),
	})

	switch opts.cmd {
	case "create":
		if opts.name == "" {
			return errors.New("missing -name for create")
		}
		path, err := migrate.CreateSQLMigration(opts.dir, opts.name)
		if err != nil {
			return err
		}
		logg.Info(logg.WithField(ctx, "path", path), "migration created")
		return nil
	case "validate":
		if err := migrate.ValidateDir(opts.dir); err != nil {
			return err
		}
		logg.Info(ctx, "migrations valid")
		return nil
	}

	command, ok := sqlCommands[opts.cmd]
	if !ok {
		return fmt.Errorf("unknown -cmd value %q", opts.cmd)
	}
	if !driver.IsSQL() {
		return fmt.Errorf("migrations only apply to sql stores, configured driver is %s", driver)
	}

	dbClient, err := db.New(ctx, driver, cfg.DB, logg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer dbClient.Close()

	sqlDB, err := dbClient.DB().DB()
	if err != nil {
		return fmt.Errorf("sql handle: %w", err)
	}

	if err := command(ctx, sqlDB, driver, opts); err != nil {
		logg.Error(ctx, "migration failed", err)
		return err
	}
	logg.Info(ctx, "migration finished")
	return nil
}
