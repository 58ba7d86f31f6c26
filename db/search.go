package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"platter/models"
)

// SearchRecipesByText runs an indexed $text search over the recipe
// collection, best matches first. This is whole-field text search, distinct
// from the substring filters the list endpoints build.
func SearchRecipesByText(ctx context.Context, text string, limit int64) ([]models.Recipe, error) {
	filter := bson.M{"$text": bson.M{"$search": text}}
	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetLimit(limit)

	cursor, err := RecipeCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recipes []models.Recipe
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		recipes = []models.Recipe{}
	}
	return recipes, nil
}
