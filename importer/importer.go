// Package importer performs the destructive full-replace load of the recipe
// dataset: every existing document is deleted before the new set is inserted
// in fixed-size batches.
package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/bson"

	"platter/db"
	"platter/rdx"
	"platter/recipes"
)

const batchSize = 500

// Run loads the dataset at path into the recipe collection, replacing
// whatever is there. Records that fail validation are skipped, not fatal.
func Run(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}

	var raw map[string]Record
	if err := json.Unmarshal(sanitizeNaN(data), &raw); err != nil {
		return fmt.Errorf("decode dataset: %w", err)
	}

	docs := make([]interface{}, 0, len(raw))
	skipped := 0
	for key, rec := range raw {
		recipe, err := Normalize(rec)
		if err != nil {
			log.Printf("[import] skipping record %s: %v", key, err)
			skipped++
			continue
		}
		docs = append(docs, recipe)
	}

	if _, err := db.RecipeCollection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear collection: %w", err)
	}

	inserted := 0
	for start := 0; start < len(docs); start += batchSize {
		end := start + batchSize
		if end > len(docs) {
			end = len(docs)
		}
		res, err := db.RecipeCollection.InsertMany(ctx, docs[start:end])
		if err != nil {
			return fmt.Errorf("insert batch at %d: %w", start, err)
		}
		inserted += len(res.InsertedIDs)
	}

	if err := db.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}
	if rdx.Conn != nil {
		_ = rdx.Conn.Del(ctx, recipes.CuisineCacheKey).Err()
	}

	log.Printf("[import] inserted %d recipes, skipped %d", inserted, skipped)
	return nil
}

// sanitizeNaN rewrites bare NaN value tokens to null so the dataset parses
// as JSON. The raw export writes NaN for missing numerics.
func sanitizeNaN(data []byte) []byte {
	data = bytes.ReplaceAll(data, []byte(": NaN"), []byte(": null"))
	return bytes.ReplaceAll(data, []byte(":NaN"), []byte(":null"))
}
