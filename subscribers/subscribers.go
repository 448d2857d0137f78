package subscribers

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

// Subscribe records a newsletter signup.
func Subscribe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if !utils.ValidEmail(req.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	email := utils.NormalizeEmail(req.Email)
	err := db.SubscriberCollection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Email already subscribed")
		return
	}
	if err != mongo.ErrNoDocuments {
		log.Println("Subscribe lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	sub := models.Subscriber{Email: email, SubscribedAt: time.Now()}
	if _, err := db.SubscriberCollection.InsertOne(ctx, sub); err != nil {
		log.Println("Subscribe insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"message": "Successfully Subscribed to the Newsletter",
	})
}
