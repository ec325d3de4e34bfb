package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/malusev998/currency"
)

type (
	Provider   string
	BaseConfig struct {
		Ctx     context.Context
		Migrate bool
	}
	FileConfig struct {
		Path string
	}
	BadgerConfig struct {
		Path string
	}
	MySQLConfig struct {
		BaseConfig
		ConnectionString string
		TableName        string
		IDGenerator      IDGenerator
	}
	MongoDBConfig struct {
		BaseConfig
		ConnectionString string
		Database         string
		Collection       string
	}
)

const (
	File    Provider = "file"
	Badger  Provider = "badger"
	MySQL   Provider = "mysql"
	MongoDB Provider = "mongodb"
	None    Provider = "none"
)

var (
	ErrStorageNotFound = errors.New("storage is not found")
	ErrCorruptCache    = errors.New("rate cache is corrupt")
)

func ConvertToProviderFromString(str string) (Provider, error) {
	switch strings.ToLower(str) {
	case "file":
		return File, nil
	case "badger":
		return Badger, nil
	case "mysql":
		return MySQL, nil
	case "mongodb", "mongo":
		return MongoDB, nil
	case "none":
		return None, nil
	}

	return "", fmt.Errorf("value %s is not valid Provider", str)
}

func NewStorage(provider Provider, config interface{}) (currency.Storage, error) {
	switch provider {
	case File:
		c, _ := config.(FileConfig)
		return NewFileStorage(c.Path), nil
	case Badger:
		c, _ := config.(BadgerConfig)
		return NewBadgerStorage(c.Path)
	case MySQL:
		c, ok := config.(MySQLConfig)
		if !ok {
			return nil, fmt.Errorf("invalid config %T for %s", config, provider)
		}
		return NewMySQLStorage(c)
	case MongoDB:
		c, ok := config.(MongoDBConfig)
		if !ok {
			return nil, fmt.Errorf("invalid config %T for %s", config, provider)
		}
		return NewMongoStorage(c)
	case None:
		return NoopStorage{}, nil
	}

	return nil, ErrStorageNotFound
}

// encodeSnapshot and decodeSnapshot give the file and badger storages one
// binary format: a BSON document holding the ordered rate list.
func encodeSnapshot(rates *currency.RateStore) ([]byte, error) {
	if rates == nil {
		rates = currency.NewRateStore()
	}

	return bson.Marshal(rates)
}

func decodeSnapshot(data []byte) (*currency.RateStore, error) {
	rates := currency.NewRateStore()

	if len(data) == 0 {
		return rates, nil
	}

	if err := bson.Unmarshal(data, rates); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCache, err)
	}

	if rates.Rates == nil {
		rates.Rates = make([]currency.ExchangeRate, 0)
	}

	return rates, nil
}
