package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"shipped", "SHIPPED", "Shipped", "sHiPpEd"} {
		st, err := ParseOrderStatus(s)
		require.NoError(t, err, s)
		assert.Equal(t, OrderStatusShipped, st)
	}

	for _, s := range []string{"", "bogus", "SHIPPED ", "DELIVERED"} {
		_, err := ParseOrderStatus(s)
		assert.Error(t, err, s)
	}
}

func TestParseDeliveryStatus(t *testing.T) {
	for _, s := range []string{"delivered", "DELIVERED", "Delivered"} {
		st, err := ParseDeliveryStatus(s)
		require.NoError(t, err, s)
		assert.Equal(t, DeliveryStatusDelivered, st)
	}

	// 两台状态机各自独立：订单侧的值不自动适用于明细侧
	_, err := ParseDeliveryStatus("PAID")
	assert.Error(t, err)
	_, err = ParseDeliveryStatus("")
	assert.Error(t, err)
}
