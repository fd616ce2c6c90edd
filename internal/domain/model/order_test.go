package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderTotal(t *testing.T) {
	items := []OrderItem{
		{UnitPriceSnapshot: 1000, Quantity: 2},
		{UnitPriceSnapshot: 500, Quantity: 1},
	}
	assert.Equal(t, int64(2500), OrderTotal(items))
}

// 明細なしなら合計は0
func TestOrderTotal_Empty(t *testing.T) {
	assert.Equal(t, int64(0), OrderTotal(nil))
	assert.Equal(t, int64(0), OrderTotal([]OrderItem{}))
}

func TestIsValidOrderStatus(t *testing.T) {
	assert.True(t, IsValidOrderStatus("PENDING"))
	assert.True(t, IsValidOrderStatus("IN_PREPARATION"))
	assert.True(t, IsValidOrderStatus("SERVED"))
	// 小文字や未知の値は不可
	assert.False(t, IsValidOrderStatus("pending"))
	assert.False(t, IsValidOrderStatus("CANCELLED"))
	assert.False(t, IsValidOrderStatus(""))
}
