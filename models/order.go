package models

import "time"

// Order fulfillment statuses. Status is admin-controlled and independent of
// payment state.
const (
	OrderProcessing = "Processing"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"
)

// ValidOrderStatus reports whether s is one of the fulfillment statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order is the terminal record produced by checkout finalization.
type Order struct {
	OrderID         string          `json:"orderId" bson:"orderId"`
	UserID          string          `json:"userId" bson:"userId"`
	OrderItems      []CartItem      `json:"orderItems" bson:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress" bson:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod" bson:"paymentMethod"`
	TotalPrice      float64         `json:"totalPrice" bson:"totalPrice"`
	IsPaid          bool            `json:"isPaid" bson:"isPaid"`
	PaidAt          time.Time       `json:"paidAt,omitempty" bson:"paidAt,omitempty"`
	PaymentStatus   string          `json:"paymentStatus,omitempty" bson:"paymentStatus,omitempty"`
	PaymentDetails  map[string]any  `json:"paymentDetails,omitempty" bson:"paymentDetails,omitempty"`
	Status          string          `json:"status" bson:"status"`
	CreatedAt       time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt" bson:"updatedAt"`
}
