package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection       *mongo.Collection
	ProductCollection    *mongo.Collection
	CartCollection       *mongo.Collection
	CheckoutCollection   *mongo.Collection
	OrderCollection      *mongo.Collection
	SubscriberCollection *mongo.Collection
	Client               *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	UserCollection = Client.Database("shopdb").Collection("users")
	ProductCollection = Client.Database("shopdb").Collection("products")
	CartCollection = Client.Database("shopdb").Collection("carts")
	CheckoutCollection = Client.Database("shopdb").Collection("checkouts")
	OrderCollection = Client.Database("shopdb").Collection("orders")
	SubscriberCollection = Client.Database("shopdb").Collection("subscribers")
}
