package cart

import (
	"strings"
	"testing"

	"mercato/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(productID, size, color string, qty int, price float64) models.CartItem {
	return models.CartItem{
		ProductID: productID,
		Name:      "item " + productID,
		Price:     price,
		Size:      size,
		Color:     color,
		Quantity:  qty,
	}
}

func TestFindLineItem(t *testing.T) {
	items := []models.CartItem{
		line("p1", "M", "Red", 1, 20),
		line("p1", "L", "Red", 2, 20),
		line("p2", "M", "Blue", 1, 35),
	}

	assert.Equal(t, 0, FindLineItem(items, "p1", "M", "Red"))
	assert.Equal(t, 1, FindLineItem(items, "p1", "L", "Red"))
	assert.Equal(t, 2, FindLineItem(items, "p2", "M", "Blue"))

	// same product, different size or color is a different line
	assert.Equal(t, -1, FindLineItem(items, "p1", "S", "Red"))
	assert.Equal(t, -1, FindLineItem(items, "p1", "M", "Blue"))
	assert.Equal(t, -1, FindLineItem(nil, "p1", "M", "Red"))
}

func TestComputeTotal(t *testing.T) {
	assert.Equal(t, 0.0, ComputeTotal(nil))

	items := []models.CartItem{
		line("p1", "M", "Red", 3, 19.99),
		line("p2", "L", "Blue", 2, 5.25),
	}
	// 59.97 + 10.50
	assert.Equal(t, 70.47, ComputeTotal(items))
}

func TestComputeTotalRoundsToTwoDecimals(t *testing.T) {
	// 3 * 0.1 is not representable exactly in binary floating point
	items := []models.CartItem{line("p1", "M", "Red", 3, 0.1)}
	assert.Equal(t, 0.3, ComputeTotal(items))

	items = []models.CartItem{
		line("p1", "M", "Red", 7, 1.115),
		line("p2", "M", "Red", 1, 0.005),
	}
	total := ComputeTotal(items)
	assert.InDelta(t, 7.81, total, 0.005)
	assert.Equal(t, total, float64(int(total*100+0.5))/100, "total must carry at most two decimals")
}

func TestMergeItemsSumsOverlappingQuantities(t *testing.T) {
	user := []models.CartItem{
		line("p1", "M", "Red", 1, 20),
		line("p2", "L", "Blue", 2, 10),
	}
	guest := []models.CartItem{
		line("p1", "M", "Red", 3, 20),  // overlaps
		line("p3", "S", "Green", 1, 5), // new line
	}

	merged := MergeItems(user, guest)
	require.Len(t, merged, 3)
	assert.Equal(t, 4, merged[0].Quantity)
	assert.Equal(t, 2, merged[1].Quantity)
	assert.Equal(t, "p3", merged[2].ProductID)
	assert.Equal(t, 1, merged[2].Quantity)
}

func TestMergeItemsDoesNotMutateInputs(t *testing.T) {
	user := []models.CartItem{line("p1", "M", "Red", 1, 20)}
	guest := []models.CartItem{line("p1", "M", "Red", 2, 20)}

	_ = MergeItems(user, guest)
	assert.Equal(t, 1, user[0].Quantity)
	assert.Equal(t, 2, guest[0].Quantity)
}

func TestMergeItemsIntoEmptyUserCart(t *testing.T) {
	guest := []models.CartItem{
		line("p1", "M", "Red", 2, 20),
		line("p1", "L", "Red", 1, 20),
	}

	merged := MergeItems(nil, guest)
	require.Len(t, merged, 2)
	assert.Equal(t, 60.0, ComputeTotal(merged))
}

func TestNewGuestIDShape(t *testing.T) {
	a, b := NewGuestID(), NewGuestID()
	assert.True(t, strings.HasPrefix(a, "guest_"))
	assert.NotEqual(t, a, b)
}
