package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/angelmondragon/multistore-admin/pkg/enums"
)

type Config struct {
	App          AppConfig
	Store        StoreConfig
	Mongo        MongoConfig
	DB           DBConfig
	Redis        RedisConfig
	RateLimit    RateLimitConfig
	Reports      ReportsConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Store.validate(); err != nil {
		return nil, err
	}
	switch {
	case cfg.Store.Driver().IsSQL():
		if err := cfg.DB.ensureDSN(cfg.Store.Driver()); err != nil {
			return nil, err
		}
	case cfg.Mongo.URI == "":
		return nil, fmt.Errorf("%s is required when %s=%s", EnvMongoURI, EnvStoreDriver, enums.StoreDriverMongo)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MULTISTORE_APP_ENV" required:"true"`
	Port         string `envconfig:"MULTISTORE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"MULTISTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MULTISTORE_LOG_WARN_STACK" default:"false"`
	LogFormat    string `envconfig:"MULTISTORE_LOG_FORMAT" default:"json"`
	// CORSOrigins is a comma separated allow-list for the admin frontend.
	CORSOrigins     []string      `envconfig:"MULTISTORE_CORS_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `envconfig:"MULTISTORE_SHUTDOWN_TIMEOUT" default:"15s"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StoreConfig selects the persistence backend used for admin reads and deletes.
type StoreConfig struct {
	RawDriver string `envconfig:"MULTISTORE_STORE_DRIVER" default:"mongo"`
}

// Driver returns the normalized backend driver.
func (s StoreConfig) Driver() enums.StoreDriver {
	raw := strings.ToLower(strings.TrimSpace(s.RawDriver))
	if raw == "" {
		return enums.StoreDriverMongo
	}
	return enums.StoreDriver(raw)
}

func (s StoreConfig) validate() error {
	if !s.Driver().IsValid() {
		return fmt.Errorf("invalid %s %q", EnvStoreDriver, s.RawDriver)
	}
	return nil
}

// MongoConfig points at the two logical databases the marketplace writes to.
// The main database owns users, stores, categories and orders; the catalog
// database owns the product items.
type MongoConfig struct {
	URI            string        `envconfig:"MULTISTORE_MONGO_URI"`
	MainDatabase   string        `envconfig:"MULTISTORE_MONGO_MAIN_DB" default:"myDBClass"`
	CatalogDB      string        `envconfig:"MULTISTORE_MONGO_CATALOG_DB" default:"MultiStore"`
	UsersColl      string        `envconfig:"MULTISTORE_MONGO_USERS_COLLECTION" default:"myCollectionMyDBClass"`
	StoresColl     string        `envconfig:"MULTISTORE_MONGO_STORES_COLLECTION" default:"store_record"`
	CategoriesColl string        `envconfig:"MULTISTORE_MONGO_CATEGORIES_COLLECTION" default:"store_item_category"`
	OrdersColl     string        `envconfig:"MULTISTORE_MONGO_ORDERS_COLLECTION" default:"orders"`
	ItemsColl      string        `envconfig:"MULTISTORE_MONGO_ITEMS_COLLECTION" default:"item_record"`
	MaxPoolSize    uint64        `envconfig:"MULTISTORE_MONGO_MAX_POOL_SIZE" default:"50"`
	MinPoolSize    uint64        `envconfig:"MULTISTORE_MONGO_MIN_POOL_SIZE" default:"5"`
	ConnectTimeout time.Duration `envconfig:"MULTISTORE_MONGO_CONNECT_TIMEOUT" default:"5s"`
	SocketTimeout  time.Duration `envconfig:"MULTISTORE_MONGO_SOCKET_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	DSN string `envconfig:"MULTISTORE_DB_DSN"`

	LegacyHost     string `envconfig:"MULTISTORE_DB_HOST"`
	LegacyPort     int    `envconfig:"MULTISTORE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MULTISTORE_DB_USER"`
	LegacyPassword string `envconfig:"MULTISTORE_DB_PASSWORD"`
	LegacyName     string `envconfig:"MULTISTORE_DB_NAME"`
	LegacySSLMode  string `envconfig:"MULTISTORE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MULTISTORE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MULTISTORE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MULTISTORE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MULTISTORE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
	SlowQuery       time.Duration `envconfig:"MULTISTORE_DB_SLOW_QUERY" default:"500ms"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MULTISTORE_REDIS_URL"`
	Address      string        `envconfig:"MULTISTORE_REDIS_ADDR"`
	Password     string        `envconfig:"MULTISTORE_REDIS_PASSWORD"`
	DB           int           `envconfig:"MULTISTORE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MULTISTORE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MULTISTORE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MULTISTORE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MULTISTORE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MULTISTORE_REDIS_WRITE_TIMEOUT" default:"5s"`
	// KeyPrefix namespaces every key so environments can share one instance.
	KeyPrefix string `envconfig:"MULTISTORE_REDIS_KEY_PREFIX" default:"ms"`
}

// Enabled reports whether a redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type RateLimitConfig struct {
	Window  time.Duration `envconfig:"MULTISTORE_RATE_LIMIT_WINDOW" default:"1m"`
	IPLimit int           `envconfig:"MULTISTORE_RATE_LIMIT_IP_LIMIT" default:"120"`
}

type ReportsConfig struct {
	TopVendors     int           `envconfig:"MULTISTORE_REPORTS_TOP_VENDORS" default:"5"`
	TopCustomers   int           `envconfig:"MULTISTORE_REPORTS_TOP_CUSTOMERS" default:"5"`
	TopProducts    int           `envconfig:"MULTISTORE_REPORTS_TOP_PRODUCTS" default:"3"`
	RequestTimeout time.Duration `envconfig:"MULTISTORE_REPORTS_REQUEST_TIMEOUT" default:"20s"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"MULTISTORE_AUTO_MIGRATE" default:"false"`
	SeedOnBoot  bool `envconfig:"MULTISTORE_SEED_ON_BOOT" default:"false"`
}

func (db *DBConfig) ensureDSN(driver enums.StoreDriver) error {
	if db.DSN != "" {
		return nil
	}
	if driver == enums.StoreDriverSQLite {
		db.DSN = DefaultSQLiteDSN
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
