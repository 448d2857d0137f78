package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mercato/db"
	"mercato/models"
	"mercato/rdx"
	"mercato/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Register creates an account and returns a signed token.
func Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if !utils.ValidEmail(req.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid email address")
		return
	}
	if len(req.Password) < 6 {
		utils.RespondWithError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	email := utils.NormalizeEmail(req.Email)
	err := db.UserCollection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "User already exists")
		return
	}
	if err != mongo.ErrNoDocuments {
		log.Println("Register lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Register: failed to hash password for %s: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	now := time.Now()
	user := models.User{
		UserID:    "u_" + utils.GenerateRandomString(10),
		Name:      req.Name,
		Email:     email,
		Password:  string(hashed),
		Role:      "user",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		log.Println("Register insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	token, err := generateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	if err := rdx.RdxHset(sessionsHash, user.UserID, token); err != nil {
		log.Printf("Register: token cache failed: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"message": "User registered successfully",
		"user":    user.SafeView(),
		"token":   token,
	})
}

// Login verifies credentials and returns a signed token.
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"email": utils.NormalizeEmail(req.Email)}).Decode(&user)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := generateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	if _, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userId": user.UserID},
		bson.M{"$set": bson.M{"lastLogin": time.Now()}},
	); err != nil {
		log.Println("Login lastLogin update error:", err)
	}
	if err := rdx.RdxHset(sessionsHash, user.UserID, token); err != nil {
		log.Printf("Login: token cache failed: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "User logged in successfully",
		"token":   token,
		"user":    user.SafeView(),
	})
}

// Logout drops the cached session token.
func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if _, err := rdx.RdxHdel(sessionsHash, userID); err != nil {
		log.Printf("Logout: failed to drop cached token: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "User logged out successfully",
	})
}
