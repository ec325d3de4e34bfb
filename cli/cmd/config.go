package cmd

import (
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"

	"github.com/malusev998/currency"
	"github.com/malusev998/currency/fetchers"
	"github.com/malusev998/currency/services"
	"github.com/malusev998/currency/storage"
)

type Settings struct {
	Provider       currency.Provider
	FetcherConfig  interface{}
	Storage        storage.Provider
	StorageConfig  interface{}
	CheckFreshness bool
	MaxAge         time.Duration
	MetricsFile    string
	Debug          bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("provider", "exchangeratesapi")
	v.SetDefault("fetchers.timeout", 10*time.Second)
	v.SetDefault("storage", string(storage.File))
	v.SetDefault("cache.freshness", true)
	v.SetDefault("cache.maxage", services.DefaultMaxAge)
	v.SetDefault("databases.mysql.net", "tcp")
	v.SetDefault("databases.mysql.table", "exchange_rates")
	v.SetDefault("databases.mongodb.database", "curr")
	v.SetDefault("databases.mongodb.collection", "rates")
}

func getMysqlDSN(config map[string]string) string {
	mysqlDriverConfig := mysql.NewConfig()
	mysqlDriverConfig.User = config["user"]
	mysqlDriverConfig.Passwd = config["password"]
	mysqlDriverConfig.Addr = config["addr"]
	mysqlDriverConfig.Net = config["net"]
	mysqlDriverConfig.DBName = config["db"]
	mysqlDriverConfig.ParseTime = true

	return mysqlDriverConfig.FormatDSN()
}

// stringMap reads every key under prefix on its own, so defaults, the config
// file and CURR_* environment variables are merged per key.
func stringMap(v *viper.Viper, prefix string, keys ...string) map[string]string {
	values := make(map[string]string, len(keys))

	for _, key := range keys {
		values[key] = v.GetString(prefix + "." + key)
	}

	return values
}

func getConfig(config *Config, v *viper.Viper) (*Settings, error) {
	provider, err := currency.ConvertToProviderFromString(v.GetString("provider"))

	if err != nil {
		return nil, err
	}

	storageProvider, err := storage.ConvertToProviderFromString(v.GetString("storage"))

	if err != nil {
		return nil, err
	}

	maxAge := v.GetDuration("cache.maxage")

	if maxAge <= 0 {
		return nil, fmt.Errorf("cache.maxage must be positive, got %s", v.GetString("cache.maxage"))
	}

	timeout := v.GetDuration("fetchers.timeout")
	storageBaseConfig := storage.BaseConfig{
		Ctx:     config.Ctx,
		Migrate: v.GetBool("migrate"),
	}
	mysqlConfig := stringMap(v, "databases.mysql", "user", "password", "addr", "net", "db", "table")
	mongodbConfig := stringMap(v, "databases.mongodb", "uri", "database", "collection")

	settings := &Settings{
		Provider:       provider,
		Storage:        storageProvider,
		CheckFreshness: v.GetBool("cache.freshness"),
		MaxAge:         maxAge,
		MetricsFile:    v.GetString("metrics.file"),
		Debug:          v.GetBool("debug"),
	}

	switch provider {
	case currency.FreeConvProvider:
		settings.FetcherConfig = fetchers.FreeConvServiceConfig{
			BaseConfig: fetchers.BaseConfig{
				URL:     v.GetString("fetchers.freecurrconv.url"),
				Timeout: timeout,
			},
			APIKey: v.GetString("fetchers.freecurrconv.apikey"),
		}
	case currency.ExchangeRatesAPIProvider:
		settings.FetcherConfig = fetchers.ExchangeRatesAPIConfig{
			BaseConfig: fetchers.BaseConfig{
				URL:     v.GetString("fetchers.exchangeratesapi.url"),
				Timeout: timeout,
			},
			APIKey: v.GetString("fetchers.exchangeratesapi.apikey"),
		}
	}

	switch storageProvider {
	case storage.File:
		settings.StorageConfig = storage.FileConfig{Path: v.GetString("cache.file")}
	case storage.Badger:
		settings.StorageConfig = storage.BadgerConfig{Path: v.GetString("cache.badger")}
	case storage.MySQL:
		settings.StorageConfig = storage.MySQLConfig{
			BaseConfig:       storageBaseConfig,
			ConnectionString: getMysqlDSN(mysqlConfig),
			TableName:        mysqlConfig["table"],
		}
	case storage.MongoDB:
		settings.StorageConfig = storage.MongoDBConfig{
			BaseConfig:       storageBaseConfig,
			ConnectionString: mongodbConfig["uri"],
			Database:         mongodbConfig["database"],
			Collection:       mongodbConfig["collection"],
		}
	}

	return settings, nil
}

func newFetcher(config *Config, settings *Settings) (currency.Fetcher, error) {
	if config.Fetcher != nil {
		return config.Fetcher, nil
	}

	return fetchers.NewCurrencyFetcher(settings.Provider, settings.FetcherConfig)
}

func newStorage(config *Config, settings *Settings) (currency.Storage, error) {
	if config.Storage != nil {
		return config.Storage, nil
	}

	return storage.NewStorage(settings.Storage, settings.StorageConfig)
}
