package admin

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
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// GetUsers lists all accounts for the admin dashboard.
func GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.UserCollection.Find(ctx, bson.M{})
	if err != nil {
		log.Println("GetUsers find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		log.Println("GetUsers cursor error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if users == nil {
		users = []models.User{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "users": users})
}

// CreateUser adds an account, optionally with the admin role.
func CreateUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		IsAdmin  bool   `json:"isAdmin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Please fill in all fields")
		return
	}

	email := utils.NormalizeEmail(req.Email)
	err := db.UserCollection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "User already exists")
		return
	}
	if err != mongo.ErrNoDocuments {
		log.Println("CreateUser lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	role := "user"
	if req.IsAdmin {
		role = "admin"
	}

	now := time.Now()
	user := models.User{
		UserID:    "u_" + utils.GenerateRandomString(10),
		Name:      req.Name,
		Email:     email,
		Password:  string(hashed),
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		log.Println("CreateUser insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"message": "User created successfully",
		"user":    user.SafeView(),
	})
}

// UpdateUser changes account details or role.
func UpdateUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		IsAdmin  bool   `json:"isAdmin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Email != "" {
		set["email"] = utils.NormalizeEmail(req.Email)
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
			return
		}
		set["password"] = string(hashed)
	}
	if req.IsAdmin {
		set["role"] = "admin"
	} else {
		set["role"] = "user"
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	res := db.UserCollection.FindOneAndUpdate(ctx, bson.M{"userId": ps.ByName("id")}, bson.M{"$set": set}, opts)
	var user models.User
	if err := res.Decode(&user); err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	} else if err != nil {
		log.Println("UpdateUser error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "User updated successfully",
		"user":    user.SafeView(),
	})
}

// DeleteUser removes an account.
func DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.UserCollection.DeleteOne(ctx, bson.M{"userId": ps.ByName("id")})
	if err != nil {
		log.Println("DeleteUser error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "User deleted successfully",
	})
}
