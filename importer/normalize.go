package importer

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"platter/models"
)

// Record is one raw dataset entry. Numeric fields arrive as numbers, numeric
// strings, or garbage; Number swallows all three.
type Record struct {
	Title        string           `json:"title"`
	Cuisine      string           `json:"cuisine"`
	Rating       Number           `json:"rating"`
	PrepTime     Number           `json:"prep_time"`
	CookTime     Number           `json:"cook_time"`
	TotalTime    Number           `json:"total_time"`
	Description  string           `json:"description"`
	Ingredients  []string         `json:"ingredients"`
	Instructions []string         `json:"instructions"`
	Serves       string           `json:"serves"`
	URL          string           `json:"url"`
	Nutrients    models.Nutrients `json:"nutrients"`
}

// Number is a nullable float that never fails to decode: values that do not
// parse as a finite number come out as null.
type Number struct {
	Value *float64
}

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" || s == "undefined" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	n.Value = &v
	return nil
}

var (
	errMissingTitle = errors.New("missing title")
	errTitleTooLong = errors.New("title exceeds 200 characters")
)

// Normalize turns a raw record into a valid Recipe. It is pure: no I/O, no
// mutation of the input. Rules:
//   - title is required and capped at 200 characters
//   - empty cuisine becomes "Uncategorized"
//   - missing rating becomes 0, negative times become null
//   - missing total_time is prep_time + cook_time, absent parts counting as 0
//   - nil ingredient/instruction lists become empty ones
func Normalize(rec Record) (models.Recipe, error) {
	title := strings.TrimSpace(rec.Title)
	if title == "" {
		return models.Recipe{}, errMissingTitle
	}
	if len(title) > 200 {
		return models.Recipe{}, errTitleTooLong
	}

	cuisine := strings.TrimSpace(rec.Cuisine)
	if cuisine == "" {
		cuisine = "Uncategorized"
	}

	rating := 0.0
	if rec.Rating.Value != nil {
		rating = *rec.Rating.Value
	}

	prep := nonNegative(rec.PrepTime.Value)
	cook := nonNegative(rec.CookTime.Value)
	total := nonNegative(rec.TotalTime.Value)
	if total == nil {
		sum := orZero(prep) + orZero(cook)
		total = &sum
	}

	ingredients := rec.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	instructions := rec.Instructions
	if instructions == nil {
		instructions = []string{}
	}

	return models.Recipe{
		Title:        title,
		Cuisine:      cuisine,
		Rating:       rating,
		PrepTime:     prep,
		CookTime:     cook,
		TotalTime:    total,
		Description:  rec.Description,
		Ingredients:  ingredients,
		Instructions: instructions,
		Serves:       rec.Serves,
		URL:          rec.URL,
		Nutrients:    rec.Nutrients,
	}, nil
}

func nonNegative(v *float64) *float64 {
	if v == nil || *v < 0 {
		return nil
	}
	out := *v
	return &out
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
