package config

import (
	"os"
	"testing"
	"time"

	"github.com/angelmondragon/multistore-admin/pkg/enums"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}
	if cfg.Store.Driver() != enums.StoreDriverMongo {
		t.Fatalf("expected mongo driver by default, got %q", cfg.Store.Driver())
	}
	if cfg.Mongo.MainDatabase != "myDBClass" || cfg.Mongo.CatalogDB != "MultiStore" {
		t.Fatalf("unexpected mongo databases %q/%q", cfg.Mongo.MainDatabase, cfg.Mongo.CatalogDB)
	}
	if cfg.Mongo.ItemsColl != "item_record" {
		t.Fatalf("unexpected items collection %q", cfg.Mongo.ItemsColl)
	}
	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}
	if got := cfg.RateLimit.Window; got != time.Minute {
		t.Fatalf("expected rate limit window 1m, got %v", got)
	}
	if cfg.Reports.TopProducts != 3 || cfg.Reports.TopVendors != 5 {
		t.Fatalf("unexpected report defaults %+v", cfg.Reports)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_MongoRequiresURI(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvMongoURI, "")

	if _, err := Load(); err == nil {
		t.Fatal("expected missing mongo uri to fail")
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvStoreDriver, "cassandra")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown driver to fail")
	}
}

func TestLoad_PostgresBuildsLegacyDSN(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvStoreDriver, "postgres")
	t.Setenv(EnvDBHost, "db.internal")
	t.Setenv(EnvDBUser, "admin")
	t.Setenv(EnvDBName, "multistore")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	want := "postgres://admin@db.internal:5432/multistore?sslmode=disable"
	if cfg.DB.DSN != want {
		t.Fatalf("expected dsn %q, got %q", want, cfg.DB.DSN)
	}
}

func TestLoad_PostgresMissingLegacyFields(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvStoreDriver, "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("expected missing dsn pieces to fail")
	}
}

func TestLoad_SQLiteDefaultsDSN(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvStoreDriver, "SQLite")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.DB.DSN != DefaultSQLiteDSN {
		t.Fatalf("expected sqlite default dsn, got %q", cfg.DB.DSN)
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvMongoURI, "mongodb://localhost:27017")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	t.Setenv(EnvStoreDriver, "")
	t.Setenv(EnvDBDSN, "")
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
	if prodConfig.IsDev() {
		t.Fatalf("expected IsDev false for %q", prodConfig.Env)
	}
}
