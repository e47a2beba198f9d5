package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddAccumulatesUnits(t *testing.T) {
	var cart Cart
	cart.Add(1, 2)
	cart.Add(2, 1)
	cart.Add(1, 1)

	assert.Equal(t, 4, cart.Size())
	assert.Equal(t, Cart{1, 1, 2, 1}, cart)
}

func TestCartAddZeroOrNegativeAppendsNothing(t *testing.T) {
	var cart Cart
	cart.Add(1, 0)
	cart.Add(1, -3)

	assert.Equal(t, 0, cart.Size())
}

func TestCartRemoveAllDeletesEveryUnit(t *testing.T) {
	cart := Cart{1, 2, 1, 3, 1}
	cart.RemoveAll(1)
	assert.Equal(t, Cart{2, 3}, cart)

	// absent id is a no-op
	cart.RemoveAll(9)
	assert.Equal(t, Cart{2, 3}, cart)
}

func TestCartUpdateReplacesQuantityAtTail(t *testing.T) {
	cart := Cart{1, 2, 1}
	require.NoError(t, cart.Update(1, 3))
	assert.Equal(t, Cart{2, 1, 1, 1}, cart)
}

func TestCartUpdateRejectsQuantityBelowOne(t *testing.T) {
	cart := Cart{1}
	err := cart.Update(1, 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, Cart{1}, cart)

	err = cart.Update(1, -2)
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestCartClear(t *testing.T) {
	cart := Cart{1, 2, 2}
	cart.Clear()
	assert.Equal(t, 0, cart.Size())
}

func TestCartSizeCountsUnitsNotProducts(t *testing.T) {
	cart := Cart{1, 1, 1, 2}
	assert.Equal(t, 4, cart.Size())
}
