package config

const (
	EnvPrefix = "MULTISTORE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv      = "MULTISTORE_APP_ENV"
	EnvPort        = "MULTISTORE_APP_PORT"
	EnvStoreDriver = "MULTISTORE_STORE_DRIVER"
	EnvMongoURI    = "MULTISTORE_MONGO_URI"
	EnvRedisURL    = "MULTISTORE_REDIS_URL"

	EnvDBDSN  = "MULTISTORE_DB_DSN"
	EnvDBHost = "MULTISTORE_DB_HOST"
	EnvDBUser = "MULTISTORE_DB_USER"
	EnvDBName = "MULTISTORE_DB_NAME"

	DefaultSQLiteDSN = "file:multistore.db?cache=shared"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
