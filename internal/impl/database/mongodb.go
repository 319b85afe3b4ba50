package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoDB holds the MongoDB client and database handle.
// It provides a centralized way to access MongoDB collections across the application.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewMongoDB creates a new MongoDB instance by connecting to the specified URI and database name.
// It pings the server once so an unreachable store fails at startup rather than per request.
func NewMongoDB(uri string, dbName string, logger *zap.Logger) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", zap.Error(err), zap.String("uri", uri))
		return nil, err
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		logger.Error("Failed to ping MongoDB", zap.Error(err), zap.String("uri", uri))
		return nil, err
	}

	logger.Info("Successfully connected to MongoDB", zap.String("database", dbName))

	database := client.Database(dbName)
	return &MongoDB{
		client:   client,
		database: database,
	}, nil
}

// Collection returns a handle to the specified collection in the database.
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

// Kind names the backend for diagnostics.
func (m *MongoDB) Kind() string {
	return "mongo"
}

// Ping verifies the server is still reachable.
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// Collections lists the collections present in the database.
func (m *MongoDB) Collections(ctx context.Context) ([]string, error) {
	return m.database.ListCollectionNames(ctx, bson.D{})
}

// Disconnect closes the MongoDB client connection.
// It should be called when the application is shutting down to release resources.
func (m *MongoDB) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
