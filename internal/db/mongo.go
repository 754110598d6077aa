package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

type Mongo struct {
	client   *mongo.Client
	database *mongo.Database
}

func Connect(ctx context.Context, uri, database string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// Check connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &Mongo{
		client:   client,
		database: client.Database(database),
	}, nil
}

func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

// State reports "connected" or "disconnected" for the health endpoint.
func (m *Mongo) State(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := m.client.Ping(ctx, nil); err != nil {
		return "disconnected"
	}
	return "connected"
}

func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
