package models

import "time"

// CartItem is one line in a cart. Name, image and unit price are captured
// when the item is added and are not re-synced from the product catalog.
type CartItem struct {
	ProductID string  `json:"productId" bson:"productId"`
	Name      string  `json:"name" bson:"name"`
	Image     string  `json:"image" bson:"image"`
	Price     float64 `json:"price" bson:"price"`
	Size      string  `json:"size" bson:"size"`
	Color     string  `json:"color" bson:"color"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// Cart belongs to exactly one of UserID or GuestID.
type Cart struct {
	CartID     string     `json:"cartId" bson:"cartId"`
	UserID     string     `json:"userId,omitempty" bson:"userId,omitempty"`
	GuestID    string     `json:"guestId,omitempty" bson:"guestId,omitempty"`
	Products   []CartItem `json:"products" bson:"products"`
	TotalPrice float64    `json:"totalPrice" bson:"totalPrice"`
	CreatedAt  time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt" bson:"updatedAt"`
}
