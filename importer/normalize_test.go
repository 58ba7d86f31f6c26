package importer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaults(t *testing.T) {
	recipe, err := Normalize(Record{Title: "Plain Toast", Cuisine: "Breakfast"})
	require.NoError(t, err)

	assert.Equal(t, "Plain Toast", recipe.Title)
	assert.Equal(t, "Breakfast", recipe.Cuisine)
	assert.Equal(t, 0.0, recipe.Rating)
	assert.Nil(t, recipe.PrepTime)
	assert.Nil(t, recipe.CookTime)
	require.NotNil(t, recipe.TotalTime)
	assert.Equal(t, 0.0, *recipe.TotalTime)
	assert.Equal(t, []string{}, recipe.Ingredients)
	assert.Equal(t, []string{}, recipe.Instructions)
}

func TestNormalizeTotalTimeFromParts(t *testing.T) {
	prep, cook := 10.0, 25.0
	recipe, err := Normalize(Record{
		Title:    "Braised Greens",
		Cuisine:  "Southern",
		PrepTime: Number{&prep},
		CookTime: Number{&cook},
	})
	require.NoError(t, err)
	require.NotNil(t, recipe.TotalTime)
	assert.Equal(t, 35.0, *recipe.TotalTime)
}

func TestNormalizeExplicitTotalTimeKept(t *testing.T) {
	prep, total := 10.0, 90.0
	recipe, err := Normalize(Record{
		Title:     "Slow Roast",
		Cuisine:   "American",
		PrepTime:  Number{&prep},
		TotalTime: Number{&total},
	})
	require.NoError(t, err)
	require.NotNil(t, recipe.TotalTime)
	assert.Equal(t, 90.0, *recipe.TotalTime)
}

func TestNormalizeCuisineDefault(t *testing.T) {
	recipe, err := Normalize(Record{Title: "Mystery Dish"})
	require.NoError(t, err)
	assert.Equal(t, "Uncategorized", recipe.Cuisine)
}

func TestNormalizeRejectsMissingTitle(t *testing.T) {
	_, err := Normalize(Record{Cuisine: "Italian"})
	assert.ErrorIs(t, err, errMissingTitle)

	_, err = Normalize(Record{Title: "   "})
	assert.ErrorIs(t, err, errMissingTitle)
}

func TestNormalizeRejectsOverlongTitle(t *testing.T) {
	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}
	_, err := Normalize(Record{Title: string(long)})
	assert.ErrorIs(t, err, errTitleTooLong)
}

func TestNormalizeNegativeTimesBecomeNull(t *testing.T) {
	neg := -5.0
	recipe, err := Normalize(Record{Title: "Odd Data", PrepTime: Number{&neg}})
	require.NoError(t, err)
	assert.Nil(t, recipe.PrepTime)
}

func TestNumberDecoding(t *testing.T) {
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(`{
		"title": "Casserole",
		"rating": 4.6,
		"prep_time": "15",
		"cook_time": null,
		"total_time": "not a number"
	}`), &rec))

	require.NotNil(t, rec.Rating.Value)
	assert.Equal(t, 4.6, *rec.Rating.Value)
	require.NotNil(t, rec.PrepTime.Value)
	assert.Equal(t, 15.0, *rec.PrepTime.Value)
	assert.Nil(t, rec.CookTime.Value)
	assert.Nil(t, rec.TotalTime.Value)
}

func TestSanitizeNaN(t *testing.T) {
	raw := []byte(`{"0": {"title": "Sweet Potato Pie", "rating": NaN, "prep_time": NaN}}`)

	var data map[string]Record
	require.NoError(t, json.Unmarshal(sanitizeNaN(raw), &data))

	rec := data["0"]
	assert.Nil(t, rec.Rating.Value)
	assert.Nil(t, rec.PrepTime.Value)

	recipe, err := Normalize(rec)
	require.NoError(t, err)
	assert.Equal(t, 0.0, recipe.Rating)
}
