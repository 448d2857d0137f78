package orders

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

// GetAllOrders lists every order for the admin dashboard.
func GetAllOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.OrderCollection.Find(ctx, bson.M{})
	if err != nil {
		log.Println("GetAllOrders find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		log.Println("GetAllOrders cursor error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "orders": orders})
}

// UpdateOrderStatus sets the fulfillment status. The status enum is the only
// admin-mutable field; payment state never changes here.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("UpdateOrderStatus decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	now := time.Now()
	res := db.OrderCollection.FindOneAndUpdate(ctx,
		bson.M{"orderId": ps.ByName("id")},
		bson.M{"$set": bson.M{"status": req.Status, "updatedAt": now}},
	)
	var order models.Order
	if err := res.Decode(&order); err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	} else if err != nil {
		log.Println("UpdateOrderStatus error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"order": utils.M{
			"id":        order.OrderID,
			"status":    req.Status,
			"updatedAt": now,
		},
	})
}

// DeleteOrder removes an order outright. Admin only; the one path that ever
// deletes an order.
func DeleteOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.OrderCollection.DeleteOne(ctx, bson.M{"orderId": ps.ByName("id")})
	if err != nil {
		log.Println("DeleteOrder error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Order removed"})
}
