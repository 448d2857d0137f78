package products

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"mercato/db"
	"mercato/models"
	"mercato/rdx"
	"mercato/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	newArrivalsCacheKey = "products:new-arrivals"
	bestSellerCacheKey  = "products:best-seller"
	listingCacheTTL     = 5 * time.Minute
)

func parsePrice(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

// GetProducts lists products with optional query filters and sorting.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	q := r.URL.Query()
	opts := options.Find()
	if sort := sortOption(q.Get("sortBy")); sort != nil {
		opts.SetSort(sort)
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			opts.SetLimit(n)
		}
	}

	cursor, err := db.ProductCollection.Find(ctx, buildFilter(q), opts)
	if err != nil {
		log.Println("GetProducts find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetProducts cursor error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if list == nil {
		list = []models.Product{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "products": list})
}

// GetBestSeller returns the top-rated product, served from redis when warm.
func GetBestSeller(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if cached, err := rdx.RdxGet(bestSellerCacheKey); err == nil && cached != "" {
		var p models.Product
		if json.Unmarshal([]byte(cached), &p) == nil {
			utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "bestSeller": p})
			return
		}
	}

	opts := options.FindOne().SetSort(bson.M{"rating": -1})
	var p models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{}, opts).Decode(&p)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "No best seller found")
		return
	}
	if err != nil {
		log.Println("GetBestSeller error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if data, err := json.Marshal(p); err == nil {
		if err := rdx.SetWithExpiry(bestSellerCacheKey, string(data), listingCacheTTL); err != nil {
			log.Println("GetBestSeller cache write error:", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "bestSeller": p})
}

// GetNewArrivals returns the eight most recent products, redis-cached.
func GetNewArrivals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if cached, err := rdx.RdxGet(newArrivalsCacheKey); err == nil && cached != "" {
		var list []models.Product
		if json.Unmarshal([]byte(cached), &list) == nil {
			utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "newArrivals": list})
			return
		}
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(8)
	cursor, err := db.ProductCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("GetNewArrivals find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetNewArrivals cursor error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if list == nil {
		list = []models.Product{}
	}

	if data, err := json.Marshal(list); err == nil {
		if err := rdx.SetWithExpiry(newArrivalsCacheKey, string(data), listingCacheTTL); err != nil {
			log.Println("GetNewArrivals cache write error:", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "newArrivals": list})
}

// GetSimilarProducts lists up to four products sharing the gender and
// category of the given product, excluding the product itself.
func GetSimilarProducts(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id := ps.ByName("id")
	var p models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{"productId": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Println("GetSimilarProducts lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	filter := bson.M{
		"productId": bson.M{"$ne": id},
		"gender":    p.Gender,
		"category":  p.Category,
	}
	cursor, err := db.ProductCollection.Find(ctx, filter, options.Find().SetLimit(4))
	if err != nil {
		log.Println("GetSimilarProducts find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetSimilarProducts cursor error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if list == nil {
		list = []models.Product{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "similarProducts": list})
}

// GetProduct returns one product by id.
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var p models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{"productId": ps.ByName("id")}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Println("GetProduct error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "product": p})
}
