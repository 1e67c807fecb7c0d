package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddMergesIdenticalLines(t *testing.T) {
	var cart Cart

	var id string
	for range 3 {
		cart, id = cart.Add("Raw Honey", 1250)
	}

	require.Len(t, cart, 1)
	assert.Equal(t, LineID("Raw Honey", 1250), id)
	assert.Equal(t, 3, cart[0].Quantity)
}

func TestCart_AddDistinguishesByPrice(t *testing.T) {
	var cart Cart
	cart, _ = cart.Add("Widget", 500)
	cart, _ = cart.Add("Widget", 700)

	require.Len(t, cart, 2)
	assert.NotEqual(t, cart[0].ID, cart[1].ID)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, 1, cart[1].Quantity)
}

func TestCart_ChangeQuantityRemovesAtZero(t *testing.T) {
	var cart Cart
	cart, id := cart.Add("Beeswax Candle", 899)
	cart = cart.ChangeQuantity(id, 2)
	require.Equal(t, 3, cart.Find(id).Quantity)

	cart = cart.ChangeQuantity(id, -3)

	assert.Nil(t, cart.Find(id))
	assert.Empty(t, cart)
}

func TestCart_ChangeQuantityBelowZeroRemoves(t *testing.T) {
	var cart Cart
	cart, id := cart.Add("Honeycomb", 1500)

	cart = cart.ChangeQuantity(id, -5)

	assert.Nil(t, cart.Find(id))
}

func TestCart_ChangeQuantityUnknownIDIsNoop(t *testing.T) {
	var cart Cart
	cart, _ = cart.Add("Honeycomb", 1500)

	cart = cart.ChangeQuantity("missing__1", 1)

	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestCart_Remove(t *testing.T) {
	var cart Cart
	cart, first := cart.Add("Honey Dipper", 450)
	cart, second := cart.Add("Bee Pollen", 1899)

	cart = cart.Remove(first)

	assert.Nil(t, cart.Find(first))
	require.NotNil(t, cart.Find(second))
	assert.Equal(t, "Bee Pollen", cart.Find(second).Name)
}

func TestCart_SubtotalCents(t *testing.T) {
	var cart Cart
	assert.Zero(t, cart.SubtotalCents())

	cart, _ = cart.Add("Raw Honey", 1250)
	cart, id := cart.Add("Beeswax Candle", 899)
	cart = cart.ChangeQuantity(id, 1)

	assert.Equal(t, int64(1250+2*899), cart.SubtotalCents())
	assert.Equal(t, 3, cart.TotalCount())
}
