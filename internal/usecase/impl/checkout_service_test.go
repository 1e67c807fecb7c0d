package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

func TestCheckoutService_EmptyCart(t *testing.T) {
	env := newTestEnv(nil)
	ctx := context.Background()

	_, err := env.auth.Register(ctx, usecase.RegisterInput{Name: "Maya", Email: "maya@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = env.checkout.Checkout(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_AnonymousNeverReachesLedger(t *testing.T) {
	env := newTestEnv(nil)
	ctx := context.Background()

	_, err := env.cart.AddItem(ctx, usecase.AddItemInput{Name: "Honey Jar", Price: "$12.50"})
	require.NoError(t, err)

	_, err = env.checkout.Checkout(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrLoginRequired)

	records, err := env.purchaseRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Empty(t, env.publisher.events)
}

func TestCheckoutService_RecordsPurchase(t *testing.T) {
	env := newTestEnv(nil)
	ctx := context.Background()

	_, err := env.auth.Register(ctx, usecase.RegisterInput{Name: "Maya", Email: "maya@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = env.cart.AddItem(ctx, usecase.AddItemInput{Name: "Honey Jar", Price: "$12.50"})
	require.NoError(t, err)
	_, err = env.cart.AddItem(ctx, usecase.AddItemInput{Name: "Honey Jar", Price: "$12.50"})
	require.NoError(t, err)

	out, err := env.checkout.Checkout(ctx)
	require.NoError(t, err)
	require.NotNil(t, out.Record)
	require.NotNil(t, out.Record.User)
	assert.Equal(t, "maya@example.com", out.Record.User.Email)
	assert.Equal(t, int64(2500), out.Record.SubtotalCents)
	require.Len(t, out.Record.Items, 1)
	assert.Equal(t, 2, out.Record.Items[0].Quantity)

	records, err := env.purchaseRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, out.Record.ID, records[0].ID)

	// The cart is left intact after checkout.
	view, err := env.cart.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, view.TotalCount)

	require.Len(t, env.publisher.events, 1)
	event := env.publisher.events[0]
	assert.Equal(t, out.Record.ID.String(), event.PurchaseID)
	assert.Equal(t, "maya@example.com", event.Email)
	assert.Equal(t, int64(2500), event.SubtotalCents)
}

func TestCheckoutService_RepeatedCheckoutAppends(t *testing.T) {
	env := newTestEnv(nil)
	ctx := context.Background()

	_, err := env.auth.Register(ctx, usecase.RegisterInput{Name: "Maya", Email: "maya@example.com", Password: "secret1"})
	require.NoError(t, err)
	_, err = env.cart.AddItem(ctx, usecase.AddItemInput{Name: "Honey Jar", Price: "$12.50"})
	require.NoError(t, err)

	first, err := env.checkout.Checkout(ctx)
	require.NoError(t, err)
	second, err := env.checkout.Checkout(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.Record.ID, second.Record.ID)

	records, err := env.purchaseRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
