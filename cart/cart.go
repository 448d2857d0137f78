package cart

import (
	"context"
	"errors"
	"math"
	"time"

	"mercato/db"
	"mercato/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNoIdentity   = errors.New("userId or guestId is required")
	ErrCartNotFound = errors.New("cart not found")
)

// NewGuestID generates an identifier for an anonymous browser session. It is
// a package variable so the API boundary can inject a deterministic generator
// in tests.
var NewGuestID = func() string {
	return "guest_" + uuid.NewString()
}

// FindLineItem returns the index of the line matching (productId, size,
// color), or -1. The product id alone is not a line identity: the same
// product in another size or color is a distinct line.
func FindLineItem(items []models.CartItem, productID, size, color string) int {
	for i, it := range items {
		if it.ProductID == productID && it.Size == size && it.Color == color {
			return i
		}
	}
	return -1
}

// ComputeTotal sums unit price times quantity over all lines, rounded to two
// decimal places. The rounded value is what gets persisted on every save.
func ComputeTotal(items []models.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return math.Round(total*100) / 100
}

// MergeItems folds guest lines into user lines: quantities add on a
// (productId, size, color) match, unmatched guest lines append.
func MergeItems(userItems, guestItems []models.CartItem) []models.CartItem {
	merged := make([]models.CartItem, len(userItems))
	copy(merged, userItems)
	for _, g := range guestItems {
		if i := FindLineItem(merged, g.ProductID, g.Size, g.Color); i > -1 {
			merged[i].Quantity += g.Quantity
		} else {
			merged = append(merged, g)
		}
	}
	return merged
}

// resolveCart looks up the unique cart for an identity. The authenticated
// user id takes precedence; the guest id only applies when no user id is
// present.
func resolveCart(ctx context.Context, userID, guestID string) (models.Cart, error) {
	var filter bson.M
	switch {
	case userID != "":
		filter = bson.M{"userId": userID}
	case guestID != "":
		filter = bson.M{"guestId": guestID}
	default:
		return models.Cart{}, ErrNoIdentity
	}

	var c models.Cart
	err := db.CartCollection.FindOne(ctx, filter).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return models.Cart{}, ErrCartNotFound
	}
	if err != nil {
		return models.Cart{}, err
	}
	return c, nil
}

// saveCart recomputes the total and replaces the stored document.
func saveCart(ctx context.Context, c *models.Cart) error {
	c.TotalPrice = ComputeTotal(c.Products)
	c.UpdatedAt = time.Now()
	_, err := db.CartCollection.ReplaceOne(ctx, bson.M{"cartId": c.CartID}, c)
	return err
}
