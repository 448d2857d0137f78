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

// MergeCarts folds a guest cart into the authenticated user's cart. When the
// user has no cart yet the guest cart is reassigned in place; otherwise
// quantities add per (productId, size, color) and the guest cart is deleted.
// The merge is one-shot: a repeat with the same guestId finds no guest cart.
func MergeCarts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		GuestID string `json:"guestId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("MergeCarts decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.GuestID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "guestId is required")
		return
	}

	guestCart, userCart, err := lookupBothCarts(ctx, userID, req.GuestID)
	if err != nil {
		log.Println("MergeCarts lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if guestCart == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Guest cart not found")
		return
	}
	if len(guestCart.Products) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Guest cart is empty")
		return
	}

	if userCart == nil {
		// Reassign ownership in place; no new record.
		guestCart.UserID = userID
		guestCart.GuestID = ""
		guestCart.UpdatedAt = time.Now()
		_, err := db.CartCollection.ReplaceOne(ctx, bson.M{"cartId": guestCart.CartID}, guestCart)
		if err != nil {
			log.Println("MergeCarts reassign error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"success": true,
			"message": "Guest cart assigned to user",
			"cart":    guestCart,
		})
		return
	}

	userCart.Products = MergeItems(userCart.Products, guestCart.Products)
	if err := saveCart(ctx, userCart); err != nil {
		log.Println("MergeCarts save error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if _, err := db.CartCollection.DeleteOne(ctx, bson.M{"guestId": req.GuestID}); err != nil {
		log.Println("MergeCarts guest cart delete error:", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Guest cart merged into user cart",
		"cart":    userCart,
	})
}

// lookupBothCarts runs the guest and user lookups concurrently; the two reads
// are independent. A missing cart is a nil pointer, not an error.
func lookupBothCarts(ctx context.Context, userID, guestID string) (guest, user *models.Cart, err error) {
	type result struct {
		cart *models.Cart
		err  error
	}

	find := func(filter bson.M, out chan<- result) {
		var c models.Cart
		e := db.CartCollection.FindOne(ctx, filter).Decode(&c)
		if e == mongo.ErrNoDocuments {
			out <- result{nil, nil}
			return
		}
		if e != nil {
			out <- result{nil, e}
			return
		}
		out <- result{&c, nil}
	}

	guestCh := make(chan result, 1)
	userCh := make(chan result, 1)
	go find(bson.M{"guestId": guestID}, guestCh)
	go find(bson.M{"userId": userID}, userCh)

	g, u := <-guestCh, <-userCh
	if g.err != nil {
		return nil, nil, g.err
	}
	if u.err != nil {
		return nil, nil, u.err
	}
	return g.cart, u.cart, nil
}
