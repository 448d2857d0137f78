package orders

import (
	"context"
	"log"
	"net/http"
	"time"

	"mercato/db"
	"mercato/models"
	"mercato/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetMyOrders returns the caller's orders, newest first.
func GetMyOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := db.OrderCollection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		log.Println("GetMyOrders find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		log.Println("GetMyOrders cursor error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "orders": orders})
}

// GetOrder returns one order; only its owner or an admin may read it.
func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := findOrder(ctx, ps.ByName("id"))
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		log.Println("GetOrder find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if order.UserID != userID && utils.GetRoleFromRequest(r) != "admin" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "order": order})
}

func findOrder(ctx context.Context, id string) (models.Order, error) {
	var o models.Order
	err := db.OrderCollection.FindOne(ctx, bson.M{"orderId": id}).Decode(&o)
	return o, err
}
