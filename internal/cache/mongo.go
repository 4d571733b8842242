package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const cacheCollection = "cache_entries"

// MongoStore is a Store backed by a MongoDB collection, for deployments where
// the cache should survive restarts and be shared between server instances.
type MongoStore struct {
	client *mongo.Client
	dbName string
}

var _ Store = (*MongoStore)(nil)

type mongoEntry struct {
	Key       string    `bson:"_id"`
	Data      string    `bson:"data"`
	Timestamp time.Time `bson:"timestamp"`
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoStore{client: client, dbName: dbName}, nil
}

func (s *MongoStore) collection() *mongo.Collection {
	return s.client.Database(s.dbName).Collection(cacheCollection)
}

// Get returns the entry under key, or nil when the key is absent or the
// stored payload is not valid JSON anymore.
func (s *MongoStore) Get(ctx context.Context, key string) (*Entry, error) {
	var doc mongoEntry
	err := s.collection().FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cache entry %s: %w", key, err)
	}
	if !json.Valid([]byte(doc.Data)) {
		return nil, nil
	}
	return &Entry{Data: json.RawMessage(doc.Data), Timestamp: doc.Timestamp}, nil
}

// Set upserts the entry under key with the current instant.
func (s *MongoStore) Set(ctx context.Context, key string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal cache payload for %s: %w", key, err)
	}
	doc := mongoEntry{Key: key, Data: string(payload), Timestamp: time.Now().UTC()}
	_, err = s.collection().ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("write cache entry %s: %w", key, err)
	}
	return nil
}

// Remove deletes the entry under key; removing a missing key is a no-op.
func (s *MongoStore) Remove(ctx context.Context, key string) error {
	if _, err := s.collection().DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("remove cache entry %s: %w", key, err)
	}
	return nil
}

// Keys lists every stored key.
func (s *MongoStore) Keys(ctx context.Context) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cur, err := s.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list cache keys: %w", err)
	}
	defer cur.Close(ctx)

	var keys []string
	for cur.Next(ctx) {
		var doc struct {
			Key string `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode cache key: %w", err)
		}
		keys = append(keys, doc.Key)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate cache keys: %w", err)
	}
	return keys, nil
}

// Close closes the MongoDB connection.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
