package recipes

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"

	"platter/db"
	"platter/rdx"
	"platter/utils"
)

// CuisineCacheKey is the Redis key for the cached cuisine list. The importer
// deletes it after a reseed.
const CuisineCacheKey = "recipes:cuisines"

const cuisineCacheTTL = 2 * time.Hour

// GetCuisines returns the distinct cuisine names, cached in Redis. The UI
// uses this to populate its filter dropdown.
func GetCuisines(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if val, err := rdx.Conn.Get(ctx, CuisineCacheKey).Result(); err == nil && val != "" {
		var cuisines []string
		if err := json.Unmarshal([]byte(val), &cuisines); err == nil {
			utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": cuisines})
			return
		}
	}

	raw, err := db.RecipeCollection.Distinct(ctx, "cuisine", bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch cuisines", err)
		return
	}

	cuisines := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			cuisines = append(cuisines, s)
		}
	}
	sort.Strings(cuisines)

	if jsonBytes, err := json.Marshal(cuisines); err == nil {
		_ = rdx.Conn.Set(ctx, CuisineCacheKey, jsonBytes, cuisineCacheTTL).Err()
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": cuisines})
}
