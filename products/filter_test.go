package products

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildFilterEmpty(t *testing.T) {
	assert.Empty(t, buildFilter(url.Values{}))
}

func TestBuildFilterAllDisablesCollectionAndCategory(t *testing.T) {
	q := url.Values{}
	q.Set("collection", "All")
	q.Set("category", "all")
	assert.Empty(t, buildFilter(q))
}

func TestBuildFilterMultiValueParams(t *testing.T) {
	q := url.Values{}
	q.Set("size", "S,M,L")
	q.Set("brand", "acme")

	f := buildFilter(q)
	assert.Equal(t, bson.M{"$in": []string{"S", "M", "L"}}, f["sizes"])
	assert.Equal(t, bson.M{"$in": []string{"acme"}}, f["brand"])
}

func TestBuildFilterSearch(t *testing.T) {
	q := url.Values{}
	q.Set("search", "shirt")

	f := buildFilter(q)
	or, ok := f["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 3)
	assert.Equal(t, bson.M{"$regex": "shirt", "$options": "i"}, or[0]["name"])
}

func TestBuildFilterPriceRange(t *testing.T) {
	q := url.Values{}
	q.Set("minPrice", "10")
	q.Set("maxPrice", "50.5")

	f := buildFilter(q)
	assert.Equal(t, bson.M{"$gte": 10.0, "$lte": 50.5}, f["price"])

	q = url.Values{}
	q.Set("minPrice", "not-a-number")
	f = buildFilter(q)
	assert.NotContains(t, f, "price")
}

func TestSortOption(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, sortOption("priceAsc"))
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, sortOption("priceDesc"))
	assert.Equal(t, bson.D{{Key: "rating", Value: -1}}, sortOption("popularity"))
	assert.Nil(t, sortOption(""))
	assert.Nil(t, sortOption("newest"))
}
