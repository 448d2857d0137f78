package checkout

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mercato/db"
	"mercato/models"
	"mercato/mq"
	"mercato/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateCheckout opens a session from a cart snapshot.
func CreateCheckout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		CheckoutItems   []models.CartItem      `json:"checkoutItems"`
		ShippingAddress models.ShippingAddress `json:"shippingAddress"`
		PaymentMethod   string                 `json:"paymentMethod"`
		TotalPrice      float64                `json:"totalPrice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("CreateCheckout decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if len(req.CheckoutItems) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No items in checkout")
		return
	}

	session := models.CheckoutSession{
		CheckoutID:      "chk_" + utils.GenerateRandomString(12),
		UserID:          userID,
		CheckoutItems:   req.CheckoutItems,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		TotalPrice:      req.TotalPrice,
		CreatedAt:       time.Now(),
	}

	if _, err := db.CheckoutCollection.InsertOne(ctx, session); err != nil {
		log.Println("CreateCheckout insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	log.Printf("Checkout created for user %s", userID)
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success":         true,
		"message":         "Checkout session created successfully",
		"checkoutSession": session,
	})
}

// PayCheckout marks the session paid after payment confirmation. Only a
// paymentStatus of "paid" is accepted; anything else leaves the session
// untouched.
func PayCheckout(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req struct {
		PaymentStatus  string         `json:"paymentStatus"`
		PaymentDetails map[string]any `json:"paymentDetails"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("PayCheckout decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	session, err := findSession(ctx, ps.ByName("id"))
	if err == ErrSessionNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Checkout not found")
		return
	}
	if err != nil {
		log.Println("PayCheckout lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if err := markPaid(&session, req.PaymentStatus, req.PaymentDetails, time.Now()); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid Payment Status")
		return
	}

	update := bson.M{"$set": bson.M{
		"isPaid":         session.IsPaid,
		"paymentStatus":  session.PaymentStatus,
		"paymentDetails": session.PaymentDetails,
		"paidAt":         session.PaidAt,
	}}
	if _, err := db.CheckoutCollection.UpdateOne(ctx, bson.M{"checkoutId": session.CheckoutID}, update); err != nil {
		log.Println("PayCheckout update error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":  true,
		"message":  "Payment successful",
		"checkout": session,
	})
}

// FinalizeCheckout converts a paid session into an order, marks the session
// finalized and clears the user's carts. The order insert happens first: if
// it fails the session is left unfinalized. The session update and the cart
// cleanup that follow are separate writes; a crash between them leaves a
// detectable inconsistency (finalized session with carts still present),
// which is accepted and logged rather than hidden.
func FinalizeCheckout(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session, err := findSession(ctx, ps.ByName("id"))
	if err == ErrSessionNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Checkout not found")
		return
	}
	if err != nil {
		log.Println("FinalizeCheckout lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	switch canFinalize(&session) {
	case ErrAlreadyFinalized:
		utils.RespondWithError(w, http.StatusBadRequest, "Checkout session already finalized")
		return
	case ErrNotPaid:
		utils.RespondWithError(w, http.StatusBadRequest, "Checkout not paid")
		return
	}

	now := time.Now()
	order := orderFromSession(&session, "ord_"+utils.GenerateRandomString(12), now)

	if _, err := db.OrderCollection.InsertOne(ctx, order); err != nil {
		log.Println("FinalizeCheckout order insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	update := bson.M{"$set": bson.M{"isFinalized": true, "finalizedAt": now}}
	if _, err := db.CheckoutCollection.UpdateOne(ctx, bson.M{"checkoutId": session.CheckoutID}, update); err != nil {
		// Order exists but the session is not marked; surface the failure.
		log.Println("FinalizeCheckout session update error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if _, err := db.CartCollection.DeleteMany(ctx, bson.M{"userId": session.UserID}); err != nil {
		log.Println("FinalizeCheckout cart cleanup error:", err)
	}

	mq.Emit(ctx, "order-created", order.OrderID, order.UserID)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success":    true,
		"message":    "Checkout finalized and order created successfully",
		"finalOrder": order,
	})
}

func findSession(ctx context.Context, id string) (models.CheckoutSession, error) {
	var s models.CheckoutSession
	err := db.CheckoutCollection.FindOne(ctx, bson.M{"checkoutId": id}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return models.CheckoutSession{}, ErrSessionNotFound
	}
	if err != nil {
		return models.CheckoutSession{}, err
	}
	return s, nil
}
