package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Nutrients holds the fixed set of nutrient values as they appear in the
// source dataset: unit-carrying strings like "389 kcal", each optional.
type Nutrients struct {
	Calories              string `bson:"calories,omitempty" json:"calories,omitempty"`
	CarbohydrateContent   string `bson:"carbohydrateContent,omitempty" json:"carbohydrateContent,omitempty"`
	CholesterolContent    string `bson:"cholesterolContent,omitempty" json:"cholesterolContent,omitempty"`
	FiberContent          string `bson:"fiberContent,omitempty" json:"fiberContent,omitempty"`
	ProteinContent        string `bson:"proteinContent,omitempty" json:"proteinContent,omitempty"`
	SaturatedFatContent   string `bson:"saturatedFatContent,omitempty" json:"saturatedFatContent,omitempty"`
	SodiumContent         string `bson:"sodiumContent,omitempty" json:"sodiumContent,omitempty"`
	SugarContent          string `bson:"sugarContent,omitempty" json:"sugarContent,omitempty"`
	FatContent            string `bson:"fatContent,omitempty" json:"fatContent,omitempty"`
	UnsaturatedFatContent string `bson:"unsaturatedFatContent,omitempty" json:"unsaturatedFatContent,omitempty"`
}

// Recipe is the stored document. Time fields are pointers because the source
// data distinguishes "unknown" from zero minutes.
type Recipe struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Cuisine      string             `bson:"cuisine" json:"cuisine"`
	Rating       float64            `bson:"rating" json:"rating"`
	PrepTime     *float64           `bson:"prep_time" json:"prep_time"`
	CookTime     *float64           `bson:"cook_time" json:"cook_time"`
	TotalTime    *float64           `bson:"total_time" json:"total_time"`
	Description  string             `bson:"description" json:"description"`
	Ingredients  []string           `bson:"ingredients" json:"ingredients"`
	Instructions []string           `bson:"instructions" json:"instructions"`
	Serves       string             `bson:"serves" json:"serves"`
	URL          string             `bson:"url" json:"url"`
	Nutrients    Nutrients          `bson:"nutrients" json:"nutrients"`
}
