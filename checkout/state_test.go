package checkout

import (
	"testing"
	"time"

	"mercato/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession() models.CheckoutSession {
	return models.CheckoutSession{
		CheckoutID: "chk_test",
		UserID:     "u1",
		CheckoutItems: []models.CartItem{
			{ProductID: "p1", Name: "Shirt", Price: 20.00, Size: "M", Color: "Red", Quantity: 1},
		},
		PaymentMethod: "card",
		TotalPrice:    20.00,
		CreatedAt:     time.Now(),
	}
}

func TestMarkPaid(t *testing.T) {
	s := newSession()
	now := time.Now()
	details := map[string]any{"transactionId": "txn_1"}

	require.NoError(t, markPaid(&s, "paid", details, now))
	assert.True(t, s.IsPaid)
	assert.Equal(t, "paid", s.PaymentStatus)
	assert.Equal(t, details, s.PaymentDetails)
	assert.Equal(t, now, s.PaidAt)
}

func TestMarkPaidRejectsOtherStatuses(t *testing.T) {
	for _, status := range []string{"", "pending", "failed", "PAID", "Paid"} {
		s := newSession()
		err := markPaid(&s, status, nil, time.Now())
		assert.ErrorIs(t, err, ErrInvalidPaymentStatus, "status %q", status)

		// rejected transition must not mutate the session
		assert.False(t, s.IsPaid)
		assert.Empty(t, s.PaymentStatus)
		assert.True(t, s.PaidAt.IsZero())
	}
}

func TestCanFinalizeRequiresPaid(t *testing.T) {
	s := newSession()
	assert.ErrorIs(t, canFinalize(&s), ErrNotPaid)

	require.NoError(t, markPaid(&s, "paid", nil, time.Now()))
	assert.NoError(t, canFinalize(&s))
}

func TestCanFinalizeRejectsRepeat(t *testing.T) {
	s := newSession()
	require.NoError(t, markPaid(&s, "paid", nil, time.Now()))
	require.NoError(t, canFinalize(&s))

	s.IsFinalized = true
	assert.ErrorIs(t, canFinalize(&s), ErrAlreadyFinalized)
}

func TestOrderFromSession(t *testing.T) {
	s := newSession()
	paidAt := time.Now().Add(-time.Minute)
	require.NoError(t, markPaid(&s, "paid", map[string]any{"ref": "abc"}, paidAt))

	now := time.Now()
	order := orderFromSession(&s, "ord_1", now)

	assert.Equal(t, "ord_1", order.OrderID)
	assert.Equal(t, s.UserID, order.UserID)
	assert.Equal(t, s.CheckoutItems, order.OrderItems)
	assert.Equal(t, s.TotalPrice, order.TotalPrice)
	assert.Equal(t, s.PaymentMethod, order.PaymentMethod)
	assert.True(t, order.IsPaid)
	assert.Equal(t, paidAt, order.PaidAt)
	assert.Equal(t, "paid", order.PaymentStatus)
	assert.Equal(t, models.OrderProcessing, order.Status)
}

func TestOrderFromSessionFallsBackToNowForPaidAt(t *testing.T) {
	s := newSession()
	s.IsPaid = true // paid flag set without a timestamp

	now := time.Now()
	order := orderFromSession(&s, "ord_2", now)
	assert.Equal(t, now, order.PaidAt)
}
