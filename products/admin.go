package products

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mercato/db"
	"mercato/models"
	"mercato/mq"
	"mercato/rdx"
	"mercato/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// invalidateListingCaches drops the cached best-seller and new-arrival
// listings after any catalog mutation.
func invalidateListingCaches() {
	if err := rdx.RdxDel(newArrivalsCacheKey); err != nil {
		log.Println("cache invalidate error:", err)
	}
	if err := rdx.RdxDel(bestSellerCacheKey); err != nil {
		log.Println("cache invalidate error:", err)
	}
}

// CreateProduct adds a catalog entry. Admin only.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Println("CreateProduct decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if p.Name == "" || p.Price <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing or invalid fields")
		return
	}

	now := time.Now()
	p.ProductID = "p_" + utils.GenerateRandomString(12)
	p.CreatedBy = utils.GetUserIDFromRequest(r)
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := db.ProductCollection.InsertOne(ctx, p); err != nil {
		log.Println("CreateProduct insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	invalidateListingCaches()
	mq.Emit(ctx, "product-created", p.ProductID, p.CreatedBy)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"message": "Product created successfully",
		"product": p,
	})
}

// UpdateProduct applies a partial update: zero-valued request fields keep the
// stored values.
func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req models.Product
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("UpdateProduct decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	var p models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{"productId": ps.ByName("id")}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Println("UpdateProduct lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	applyProductUpdate(&p, req)
	p.UpdatedAt = time.Now()

	if _, err := db.ProductCollection.ReplaceOne(ctx, bson.M{"productId": p.ProductID}, p); err != nil {
		log.Println("UpdateProduct replace error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	invalidateListingCaches()

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Product updated successfully",
		"product": p,
	})
}

// applyProductUpdate copies non-zero request fields onto the stored product.
// The two bool toggles always apply since "false" is a meaningful update.
func applyProductUpdate(p *models.Product, req models.Product) {
	if req.Name != "" {
		p.Name = req.Name
	}
	if req.Description != "" {
		p.Description = req.Description
	}
	if req.Price > 0 {
		p.Price = req.Price
	}
	if req.DiscountPrice > 0 {
		p.DiscountPrice = req.DiscountPrice
	}
	if req.CountInStock > 0 {
		p.CountInStock = req.CountInStock
	}
	if req.Category != "" {
		p.Category = req.Category
	}
	if req.Brand != "" {
		p.Brand = req.Brand
	}
	if len(req.Sizes) > 0 {
		p.Sizes = req.Sizes
	}
	if len(req.Colors) > 0 {
		p.Colors = req.Colors
	}
	if req.Collections != "" {
		p.Collections = req.Collections
	}
	if req.Material != "" {
		p.Material = req.Material
	}
	if req.Gender != "" {
		p.Gender = req.Gender
	}
	if len(req.Images) > 0 {
		p.Images = req.Images
	}
	if len(req.Tags) > 0 {
		p.Tags = req.Tags
	}
	if req.SKU != "" {
		p.SKU = req.SKU
	}
	p.IsFeatured = req.IsFeatured
	p.IsPublished = req.IsPublished
}

// DeleteProduct removes a catalog entry. Admin only.
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.ProductCollection.DeleteOne(ctx, bson.M{"productId": ps.ByName("id")})
	if err != nil {
		log.Println("DeleteProduct error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	invalidateListingCaches()

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Product deleted successfully",
	})
}

// GetAllProducts lists the entire catalog for the admin dashboard, published
// or not.
func GetAllProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.ProductCollection.Find(ctx, bson.M{})
	if err != nil {
		log.Println("GetAllProducts find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetAllProducts cursor error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if list == nil {
		list = []models.Product{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "products": list})
}
