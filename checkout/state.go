package checkout

import (
	"errors"
	"time"

	"mercato/models"
)

// Payment status value accepted by the pay transition. Anything else is
// rejected without mutating the session.
const StatusPaid = "paid"

var (
	ErrSessionNotFound      = errors.New("checkout not found")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrAlreadyFinalized     = errors.New("checkout session already finalized")
	ErrNotPaid              = errors.New("checkout not paid")
)

// markPaid applies the created -> paid transition. The session is only
// mutated when the transition is legal.
func markPaid(s *models.CheckoutSession, paymentStatus string, paymentDetails map[string]any, now time.Time) error {
	if paymentStatus != StatusPaid {
		return ErrInvalidPaymentStatus
	}
	s.IsPaid = true
	s.PaymentStatus = paymentStatus
	s.PaymentDetails = paymentDetails
	s.PaidAt = now
	return nil
}

// canFinalize validates the paid -> finalized transition preconditions.
func canFinalize(s *models.CheckoutSession) error {
	if s.IsFinalized {
		return ErrAlreadyFinalized
	}
	if !s.IsPaid {
		return ErrNotPaid
	}
	return nil
}

// orderFromSession copies the session snapshot into the terminal order
// record. Fulfillment starts at Processing regardless of payment state.
func orderFromSession(s *models.CheckoutSession, orderID string, now time.Time) models.Order {
	paidAt := s.PaidAt
	if paidAt.IsZero() {
		paidAt = now
	}
	return models.Order{
		OrderID:         orderID,
		UserID:          s.UserID,
		OrderItems:      s.CheckoutItems,
		ShippingAddress: s.ShippingAddress,
		PaymentMethod:   s.PaymentMethod,
		TotalPrice:      s.TotalPrice,
		IsPaid:          true,
		PaidAt:          paidAt,
		PaymentStatus:   s.PaymentStatus,
		PaymentDetails:  s.PaymentDetails,
		Status:          models.OrderProcessing,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
