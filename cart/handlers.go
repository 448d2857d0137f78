package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mercato/db"
	"mercato/models"
	"mercato/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type cartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	UserID    string `json:"userId"`
	GuestID   string `json:"guestId"`
}

// identity picks the authenticated user id when present, else the guest id
// from the request body.
func (req cartItemRequest) identity(r *http.Request) (userID, guestID string) {
	if uid := utils.GetUserIDFromRequest(r); uid != "" {
		return uid, ""
	}
	if req.UserID != "" {
		return req.UserID, ""
	}
	return "", req.GuestID
}

// AddToCart adds a product line to the identity's cart, creating the cart on
// first add. A matching (productId, size, color) line increments instead of
// duplicating. Name, image and unit price are snapshotted from the catalog.
func AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("AddToCart decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.ProductID == "" || req.Quantity <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing or invalid fields")
		return
	}

	var product models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{"productId": req.ProductID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Println("AddToCart product lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	userID, guestID := req.identity(r)

	existing, err := resolveCart(ctx, userID, guestID)
	switch err {
	case nil:
		if i := FindLineItem(existing.Products, req.ProductID, req.Size, req.Color); i > -1 {
			existing.Products[i].Quantity += req.Quantity
		} else {
			existing.Products = append(existing.Products, newLineItem(product, req))
		}
		if err := saveCart(ctx, &existing); err != nil {
			log.Println("AddToCart save error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, existing)

	case ErrCartNotFound, ErrNoIdentity:
		if userID == "" && guestID == "" {
			guestID = NewGuestID()
		}
		now := time.Now()
		newCart := models.Cart{
			CartID:    "c_" + utils.GenerateRandomString(12),
			UserID:    userID,
			GuestID:   guestID,
			Products:  []models.CartItem{newLineItem(product, req)},
			CreatedAt: now,
			UpdatedAt: now,
		}
		newCart.TotalPrice = ComputeTotal(newCart.Products)
		if _, err := db.CartCollection.InsertOne(ctx, newCart); err != nil {
			log.Println("AddToCart insert error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
			return
		}
		utils.RespondWithJSON(w, http.StatusCreated, newCart)

	default:
		log.Println("AddToCart resolve error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
	}
}

func newLineItem(p models.Product, req cartItemRequest) models.CartItem {
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0].URL
	}
	return models.CartItem{
		ProductID: p.ProductID,
		Name:      p.Name,
		Image:     image,
		Price:     p.Price,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	}
}

// GetCart returns the cart for ?userId= or ?guestId=.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := r.URL.Query().Get("userId")
	guestID := r.URL.Query().Get("guestId")

	c, err := resolveCart(ctx, userID, guestID)
	switch err {
	case nil:
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "cart": c})
	case ErrCartNotFound, ErrNoIdentity:
		utils.RespondWithError(w, http.StatusNotFound, "Cart not found")
	default:
		log.Println("GetCart error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
	}
}

// UpdateCartItem sets the quantity of a matching line; quantity zero removes
// the line. The total is recomputed on every save.
func UpdateCartItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("UpdateCartItem decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Quantity < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Quantity must not be negative")
		return
	}

	userID, guestID := req.identity(r)
	c, err := resolveCart(ctx, userID, guestID)
	if err == ErrCartNotFound || err == ErrNoIdentity {
		utils.RespondWithError(w, http.StatusNotFound, "Cart not found")
		return
	}
	if err != nil {
		log.Println("UpdateCartItem resolve error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	i := FindLineItem(c.Products, req.ProductID, req.Size, req.Color)
	if i < 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found in cart")
		return
	}
	if req.Quantity == 0 {
		c.Products = append(c.Products[:i], c.Products[i+1:]...)
	} else {
		c.Products[i].Quantity = req.Quantity
	}

	if err := saveCart(ctx, &c); err != nil {
		log.Println("UpdateCartItem save error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "cart": c})
}

// RemoveFromCart deletes a matching line outright.
func RemoveFromCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("RemoveFromCart decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	userID, guestID := req.identity(r)
	c, err := resolveCart(ctx, userID, guestID)
	if err == ErrCartNotFound || err == ErrNoIdentity {
		utils.RespondWithError(w, http.StatusNotFound, "Cart not found")
		return
	}
	if err != nil {
		log.Println("RemoveFromCart resolve error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	i := FindLineItem(c.Products, req.ProductID, req.Size, req.Color)
	if i < 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found in cart")
		return
	}
	c.Products = append(c.Products[:i], c.Products[i+1:]...)

	if err := saveCart(ctx, &c); err != nil {
		log.Println("RemoveFromCart save error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "cart": c})
}
