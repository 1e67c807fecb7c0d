package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

func TestCartService_AddMergesIdenticalLines(t *testing.T) {
	env := newTestEnv(nil)
	ctx := context.Background()

	input := usecase.AddItemInput{Name: "Honey Jar", Price: "$12.50"}
	_, err := env.cart.AddItem(ctx, input)
	require.NoError(t, err)
	_, err = env.cart.AddItem(ctx, input)
	require.NoError(t, err)

	view, err := env.cart.AddItem(ctx, input)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.Equal(t, 3, view.TotalCount)
	assert.Equal(t, int64(3750), view.SubtotalCents)
}

func TestCartService_DistinctPriceDistinctLines(t *testing.T) {
	env := newTestEnv(nil)
	ctx := context.Background()

	_, err := env.cart.AddItem(ctx, usecase.AddItemInput{Name: "Widget", Price: "$5.00"})
	require.NoError(t, err)

	view, err := env.cart.AddItem(ctx, usecase.AddItemInput{Name: "Widget", Price: "$7.00"})
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.NotEqual(t, view.Items[0].ID, view.Items[1].ID)
	assert.Equal(t, int64(1200), view.SubtotalCents)
}

func TestCartService_AddByProductID(t *testing.T) {
	env := newTestEnv(nil)
	ctx := context.Background()

	view, err := env.cart.AddItem(ctx, usecase.AddItemInput{ProductID: "honey-jar"})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Honey Jar", view.Items[0].Name)
	assert.Equal(t, int64(1250), view.Items[0].UnitPriceCents)

	_, err = env.cart.AddItem(ctx, usecase.AddItemInput{ProductID: "no-such-product"})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_MalformedPriceParsesToZero(t *testing.T) {
	env := newTestEnv(nil)
	ctx := context.Background()

	view, err := env.cart.AddItem(ctx, usecase.AddItemInput{Name: "Mystery Box", Price: "free!!"})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, int64(0), view.Items[0].UnitPriceCents)
	assert.False(t, view.CheckoutEnabled)
}

func TestCartService_ChangeQuantityToZeroRemovesLine(t *testing.T) {
	env := newTestEnv(nil)
	ctx := context.Background()

	view, err := env.cart.AddItem(ctx, usecase.AddItemInput{Name: "Honey Jar", Price: "$12.50"})
	require.NoError(t, err)
	lineID := view.Items[0].ID

	view, err = env.cart.ChangeQuantity(ctx, usecase.ChangeQuantityInput{LineID: lineID, Delta: -1})
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, int64(0), view.SubtotalCents)
}

func TestCartService_RemoveUnknownLineIsNoop(t *testing.T) {
	env := newTestEnv(nil)
	ctx := context.Background()

	_, err := env.cart.AddItem(ctx, usecase.AddItemInput{Name: "Honey Jar", Price: "$12.50"})
	require.NoError(t, err)

	view, err := env.cart.RemoveItem(ctx, "missing__0")
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
}

func TestCartService_ViewSurvivesRestartOfService(t *testing.T) {
	env := newTestEnv(nil)
	ctx := context.Background()

	_, err := env.cart.AddItem(ctx, usecase.AddItemInput{Name: "Honey Jar", Price: "$12.50"})
	require.NoError(t, err)
	_, err = env.cart.AddItem(ctx, usecase.AddItemInput{Name: "Beeswax Candle", Price: "$8.00"})
	require.NoError(t, err)

	// A fresh repository over the same store sees the identical cart.
	reloaded, err := env.cartRepo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded, 2)
	assert.Equal(t, "Honey Jar", reloaded[0].Name)
	assert.Equal(t, int64(2050), reloaded.SubtotalCents())
}
