package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client           *mongo.Client
	RecipeCollection *mongo.Collection
)

// Connect opens the MongoDB client, pings it, and binds the collection
// handles. Call Disconnect on shutdown.
func Connect(ctx context.Context, uri string) error {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return err
	}
	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return err
	}

	Client = client
	RecipeCollection = client.Database("recipedb").Collection("recipes")
	return nil
}

func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}

// EnsureIndexes creates the text index backing the suggest endpoint and
// single-field indexes on the filterable fields. Safe to call repeatedly.
func EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "cuisine", Value: "text"},
			{Key: "description", Value: "text"},
		}},
		{Keys: bson.D{{Key: "cuisine", Value: 1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}}},
		{Keys: bson.D{{Key: "total_time", Value: 1}}},
	}
	_, err := RecipeCollection.Indexes().CreateMany(ctx, indexes)
	return err
}
