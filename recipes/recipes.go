package recipes

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"platter/db"
	"platter/models"
	"platter/query"
	"platter/utils"
)

const requestTimeout = 5 * time.Second

// findPage runs the count and the bounded fetch for a filter. The count is
// over the whole filter, independent of the page window. The two reads are
// separate operations, so the total can drift from the page contents under
// concurrent writes.
func findPage(ctx context.Context, filter bson.M, sort bson.D, page query.Page) (int64, []models.Recipe, error) {
	total, err := db.RecipeCollection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, nil, err
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := db.RecipeCollection.Find(ctx, filter, opts)
	if err != nil {
		return 0, nil, err
	}
	defer cursor.Close(ctx)

	var recipes []models.Recipe
	if err := cursor.All(ctx, &recipes); err != nil {
		return 0, nil, err
	}
	if len(recipes) == 0 {
		recipes = []models.Recipe{}
	}
	return total, recipes, nil
}

// GetRecipes serves the broad list endpoint: substring search, rating and
// time thresholds, pagination, single-field sort.
func GetRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	params := r.URL.Query()
	page := query.ParsePage(params)

	total, recipes, err := findPage(ctx, query.ListFilter(params), query.ParseSort(params), page)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch recipes", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"page":  page.Number,
		"limit": page.Limit,
		"total": total,
		"data":  recipes,
	})
}

// SearchRecipes serves the operator search endpoint: title/cuisine substring
// plus gte/lte/eq comparisons on rating, calories and total time.
func SearchRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	searchWith(w, r, query.OperatorFilter)
}

// FilterRecipes serves the threshold search endpoint: range-gated minimum
// rating and maximum prep/cook time filters.
func FilterRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	searchWith(w, r, query.ThresholdFilter)
}

func searchWith(w http.ResponseWriter, r *http.Request, build func(params url.Values) bson.M) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	params := r.URL.Query()
	page := query.ParsePage(params)

	total, recipes, err := findPage(ctx, build(params), query.ParseSort(params), page)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to search recipes", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"page":    page.Number,
		"limit":   page.Limit,
		"total":   total,
		"data":    recipes,
	})
}

// GetRecipe returns a single recipe by id for the detail drawer.
func GetRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid recipe ID", err)
		return
	}

	var recipe models.Recipe
	if err := db.RecipeCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Recipe not found", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, recipe)
}

// SuggestRecipes runs the indexed full-text search, best matches first. This
// is the store's whole-field text search, separate from the list filters.
func SuggestRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	text := r.URL.Query().Get("q")
	if text == "" {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": []models.Recipe{}})
		return
	}

	limit := int64(query.ParsePage(r.URL.Query()).Limit)
	recipes, err := db.SearchRecipesByText(ctx, text, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to search recipes", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": recipes})
}
