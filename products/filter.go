package products

import (
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// buildFilter translates storefront listing query params into a Mongo filter.
// "all" disables the collection/category filters; comma-separated values
// become $in sets; search matches name, description and tags
// case-insensitively.
func buildFilter(q url.Values) bson.M {
	filter := bson.M{}

	if v := q.Get("collection"); v != "" && strings.ToLower(v) != "all" {
		filter["collections"] = v
	}
	if v := q.Get("category"); v != "" && strings.ToLower(v) != "all" {
		filter["category"] = v
	}
	if v := q.Get("material"); v != "" {
		filter["material"] = bson.M{"$in": strings.Split(v, ",")}
	}
	if v := q.Get("size"); v != "" {
		filter["sizes"] = bson.M{"$in": strings.Split(v, ",")}
	}
	if v := q.Get("color"); v != "" {
		filter["colors"] = bson.M{"$in": strings.Split(v, ",")}
	}
	if v := q.Get("gender"); v != "" {
		filter["gender"] = v
	}
	if v := q.Get("brand"); v != "" {
		filter["brand"] = bson.M{"$in": strings.Split(v, ",")}
	}
	if v := q.Get("search"); v != "" {
		regex := bson.M{"$regex": v, "$options": "i"}
		filter["$or"] = []bson.M{
			{"name": regex},
			{"description": regex},
			{"tags": regex},
		}
	}

	price := bson.M{}
	if v := q.Get("minPrice"); v != "" {
		if f, ok := parsePrice(v); ok {
			price["$gte"] = f
		}
	}
	if v := q.Get("maxPrice"); v != "" {
		if f, ok := parsePrice(v); ok {
			price["$lte"] = f
		}
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	return filter
}

// sortOption maps the sortBy param to a Mongo sort document; unknown values
// leave the ordering unspecified.
func sortOption(sortBy string) bson.D {
	switch sortBy {
	case "priceAsc":
		return bson.D{{Key: "price", Value: 1}}
	case "priceDesc":
		return bson.D{{Key: "price", Value: -1}}
	case "popularity":
		return bson.D{{Key: "rating", Value: -1}}
	}
	return nil
}
