// Package query translates untyped request query strings into MongoDB filter,
// sort and page specifications. Everything here is pure: malformed values are
// dropped or defaulted, never rejected.
//
// Recognized parameters and their effect:
//
//	page       positive integer, default 1 (no clamping; see ParsePage)
//	limit      positive integer, default 10
//	sortBy     field name to sort on, default "rating"
//	sortOrder  "asc" for ascending; anything else means descending
//
// List filter (ListFilter):
//
//	q             case-insensitive substring over title, cuisine, description
//	cuisine       case-insensitive substring over cuisine
//	rating        minimum rating, rating >= value
//	maxTotalTime  total_time <= value
//	prep_time     exact equality on prep_time
//	cook_time     exact equality on cook_time
//	total_time    exact equality on total_time; ignored when maxTotalTime is
//	              present so the two never silently overwrite one another
//
// Threshold filter (ThresholdFilter):
//
//	q            case-insensitive substring over title, description
//	cuisine      case-insensitive substring over cuisine
//	minRating    rating >= value, applied only when value is within [1,5]
//	maxPrepTime  prep_time <= value, applied only when value > 0
//	maxCookTime  cook_time <= value, applied only when value > 0
//
// Operator filter (OperatorFilter):
//
//	title        case-insensitive substring over title
//	cuisine      case-insensitive substring over cuisine
//	rating       numeric, comparison chosen by ratingOp (default gte)
//	calories     numeric, against nutrients.calories, chosen by caloriesOp
//	             (default gte)
//	total_time   numeric, comparison chosen by timeOp (default lte)
//
// Each *Op parameter accepts gte, lte or eq; unrecognized operators fall back
// to the field default. Numeric values that do not parse (including the
// literal strings "null" and "undefined") drop the filter entirely.
package query

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	DefaultSort  = "rating"
)

// Page is the requested result window.
type Page struct {
	Number int
	Limit  int
}

// Skip returns the number of documents to skip. Page numbers below 1 are not
// corrected, so the skip can go negative; callers decide what to do with it.
func (p Page) Skip() int64 {
	return int64((p.Number - 1) * p.Limit)
}

// ParsePage reads page and limit, defaulting to 1 and 10 when absent or
// unparsable.
func ParsePage(params url.Values) Page {
	p := Page{Number: DefaultPage, Limit: DefaultLimit}
	if n, err := strconv.Atoi(params.Get("page")); err == nil {
		p.Number = n
	}
	if n, err := strconv.Atoi(params.Get("limit")); err == nil {
		p.Limit = n
	}
	return p
}

// ParseSort reads sortBy and sortOrder. Direction is descending unless
// sortOrder is exactly "asc".
func ParseSort(params url.Values) bson.D {
	field := params.Get("sortBy")
	if field == "" {
		field = DefaultSort
	}
	dir := -1
	if params.Get("sortOrder") == "asc" {
		dir = 1
	}
	return bson.D{{Key: field, Value: dir}}
}

// ListFilter builds the broad list-endpoint filter.
func ListFilter(params url.Values) bson.M {
	filter := bson.M{}

	if q := params.Get("q"); q != "" {
		filter["$or"] = []bson.M{
			{"title": contains(q)},
			{"cuisine": contains(q)},
			{"description": contains(q)},
		}
	}
	if cuisine := params.Get("cuisine"); cuisine != "" {
		filter["cuisine"] = contains(cuisine)
	}
	if v, ok := parseNumber(params.Get("rating")); ok {
		filter["rating"] = bson.M{"$gte": v}
	}
	if v, ok := parseNumber(params.Get("maxTotalTime")); ok {
		filter["total_time"] = bson.M{"$lte": v}
	}

	// Exact-equality matches on the raw time fields. A threshold already set
	// on the same key wins; equality never overwrites it.
	for _, field := range []string{"prep_time", "cook_time", "total_time"} {
		if _, taken := filter[field]; taken {
			continue
		}
		if v, ok := parseNumber(params.Get(field)); ok {
			filter[field] = v
		}
	}

	return filter
}

// ThresholdFilter builds the range-gated search filter.
func ThresholdFilter(params url.Values) bson.M {
	filter := bson.M{}

	if q := params.Get("q"); q != "" {
		filter["$or"] = []bson.M{
			{"title": contains(q)},
			{"description": contains(q)},
		}
	}
	if cuisine := params.Get("cuisine"); cuisine != "" {
		filter["cuisine"] = contains(cuisine)
	}
	if v, ok := parseNumber(params.Get("minRating")); ok && v >= 1 && v <= 5 {
		filter["rating"] = bson.M{"$gte": v}
	}
	if v, ok := parseNumber(params.Get("maxPrepTime")); ok && v > 0 {
		filter["prep_time"] = bson.M{"$lte": v}
	}
	if v, ok := parseNumber(params.Get("maxCookTime")); ok && v > 0 {
		filter["cook_time"] = bson.M{"$lte": v}
	}

	return filter
}

// OperatorFilter builds the operator-driven search filter.
func OperatorFilter(params url.Values) bson.M {
	filter := bson.M{}

	if title := params.Get("title"); title != "" {
		filter["title"] = contains(title)
	}
	if cuisine := params.Get("cuisine"); cuisine != "" {
		filter["cuisine"] = contains(cuisine)
	}
	if v, ok := parseNumber(params.Get("rating")); ok {
		filter["rating"] = compare(v, params.Get("ratingOp"), "$gte")
	}
	if v, ok := parseNumber(params.Get("calories")); ok {
		filter["nutrients.calories"] = compare(v, params.Get("caloriesOp"), "$gte")
	}
	if v, ok := parseNumber(params.Get("total_time")); ok {
		filter["total_time"] = compare(v, params.Get("timeOp"), "$lte")
	}

	return filter
}

// compare maps an op name to a comparison document, falling back to the
// field's default operator when the op is missing or unrecognized.
func compare(v float64, op, def string) interface{} {
	switch op {
	case "eq":
		return v
	case "gte":
		return bson.M{"$gte": v}
	case "lte":
		return bson.M{"$lte": v}
	default:
		return bson.M{def: v}
	}
}

// contains is an unanchored case-insensitive substring match.
func contains(s string) bson.M {
	return bson.M{"$regex": s, "$options": "i"}
}

// parseNumber coerces a parameter to a float. The strings "null" and
// "undefined" mean the value is absent, not a filter for literal null.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" || s == "undefined" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
