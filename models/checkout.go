package models

import "time"

// ShippingAddress is the delivery destination captured at checkout.
type ShippingAddress struct {
	FirstName  string `json:"firstName" bson:"firstName"`
	LastName   string `json:"lastName" bson:"lastName"`
	Address    string `json:"address" bson:"address"`
	City       string `json:"city" bson:"city"`
	PostalCode string `json:"postalCode" bson:"postalCode"`
	Country    string `json:"country" bson:"country"`
	Phone      string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// CheckoutSession bridges a cart snapshot and a finalized order. It moves
// through created -> paid -> finalized and is immutable after finalization.
type CheckoutSession struct {
	CheckoutID      string          `json:"checkoutId" bson:"checkoutId"`
	UserID          string          `json:"userId" bson:"userId"`
	CheckoutItems   []CartItem      `json:"checkoutItems" bson:"checkoutItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress" bson:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod" bson:"paymentMethod"`
	TotalPrice      float64         `json:"totalPrice" bson:"totalPrice"`
	IsPaid          bool            `json:"isPaid" bson:"isPaid"`
	PaymentStatus   string          `json:"paymentStatus,omitempty" bson:"paymentStatus,omitempty"`
	PaymentDetails  map[string]any  `json:"paymentDetails,omitempty" bson:"paymentDetails,omitempty"`
	PaidAt          time.Time       `json:"paidAt,omitempty" bson:"paidAt,omitempty"`
	IsFinalized     bool            `json:"isFinalized" bson:"isFinalized"`
	FinalizedAt     time.Time       `json:"finalizedAt,omitempty" bson:"finalizedAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt" bson:"createdAt"`
}
