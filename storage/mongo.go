package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/malusev998/currency"
)

type (
	// MongoStorage keeps one document per rate record. Every Save writes a new
	// generation before deleting the previous one, so a failed Save leaves the
	// last saved cache in place.
	MongoStorage struct {
		client     *mongo.Client
		collection *mongo.Collection
	}

	mongoRate struct {
		Generation            string    `bson:"generation"`
		SavedAt               time.Time `bson:"savedAt"`
		Position              int       `bson:"position"`
		currency.ExchangeRate `bson:",inline"`
	}
)

var _ currency.Storage = (*MongoStorage)(nil)

func NewMongoStorage(c MongoDBConfig) (*MongoStorage, error) {
	ctx := c.Ctx

	if ctx == nil {
		ctx = context.Background()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.ConnectionString))

	if err != nil {
		return nil, fmt.Errorf("error while connecting to mongodb: %w", err)
	}

	s := &MongoStorage{
		client:     client,
		collection: client.Database(c.Database).Collection(c.Collection),
	}

	if c.Migrate {
		if err := s.Migrate(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
	}

	return s, nil
}

func (m *MongoStorage) Migrate(ctx context.Context) error {
	_, err := m.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "savedAt", Value: -1}, {Key: "position", Value: 1}},
	})

	return err
}

func (m *MongoStorage) Load(ctx context.Context) (*currency.RateStore, error) {
	sort := bson.D{{Key: "savedAt", Value: -1}, {Key: "position", Value: 1}}
	cursor, err := m.collection.Find(ctx, bson.M{}, options.Find().SetSort(sort))

	if err != nil {
		return nil, err
	}

	defer cursor.Close(ctx)

	documents := make([]mongoRate, 0)

	if err := cursor.All(ctx, &documents); err != nil {
		return nil, err
	}

	return fromDocuments(documents), nil
}

// Save replaces the collection contents with rates.
func (m *MongoStorage) Save(ctx context.Context, rates *currency.RateStore) error {
	generation := uuid.NewString()
	documents := toDocuments(rates, generation, time.Now().UTC())

	if len(documents) > 0 {
		if _, err := m.collection.InsertMany(ctx, documents); err != nil {
			_, _ = m.collection.DeleteMany(ctx, bson.M{"generation": generation})
			return fmt.Errorf("error while saving rates to mongodb: %w", err)
		}
	}

	_, err := m.collection.DeleteMany(ctx, bson.M{"generation": bson.M{"$ne": generation}})

	return err
}

func (m *MongoStorage) Drop(ctx context.Context) error {
	return m.collection.Drop(ctx)
}

func (m *MongoStorage) Name() string {
	return string(MongoDB)
}

func (m *MongoStorage) Close() error {
	return m.client.Disconnect(context.Background())
}

func toDocuments(rates *currency.RateStore, generation string, savedAt time.Time) []interface{} {
	if rates == nil {
		return nil
	}

	documents := make([]interface{}, 0, rates.Len())

	for i, rate := range rates.Rates {
		documents = append(documents, mongoRate{
			Generation:   generation,
			SavedAt:      savedAt,
			Position:     i,
			ExchangeRate: rate,
		})
	}

	return documents
}

// fromDocuments keeps only the first generation in documents, which Load
// sorts newest first.
func fromDocuments(documents []mongoRate) *currency.RateStore {
	rates := currency.NewRateStore()

	for _, document := range documents {
		if document.Generation != documents[0].Generation {
			continue
		}

		rate := document.ExchangeRate
		rate.ObtainedAt = rate.ObtainedAt.UTC()
		rates.Rates = append(rates.Rates, rate)
	}

	return rates
}
