package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

func TestCartRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(NewMemoryStore())

	cart, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)

	cart, _ = cart.Add("Honey Jar", 1250)
	cart, _ = cart.Add("Honey Jar", 1250)
	cart, _ = cart.Add("Beeswax Candle", 800)
	require.NoError(t, repo.Save(ctx, cart))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Honey Jar", loaded[0].Name)
	assert.Equal(t, 2, loaded[0].Quantity)
	assert.Equal(t, int64(3300), loaded.SubtotalCents())
}

func TestCartRepository_MalformedPayloadResets(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, repository.KeyCart, []byte("{not json")))

	cart, err := NewCartRepository(store).Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewMemoryStore())

	require.NoError(t, repo.Append(ctx, entity.User{Name: "Maya", Email: "maya@example.com", PasswordHash: "x"}))

	user, err := repo.FindByEmail(ctx, "  MAYA@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "Maya", user.Name)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestSessionRepository_SetCurrentClear(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(NewMemoryStore())

	session, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	require.NoError(t, repo.Set(ctx, &entity.Session{Email: "maya@example.com", Name: "Maya"}))

	session, err = repo.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "maya@example.com", session.Email)

	require.NoError(t, repo.Clear(ctx))

	session, err = repo.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestPurchaseRepository_AppendPreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewPurchaseRepository(NewMemoryStore())

	cart := entity.Cart{{ID: "Honey Jar__1250", Name: "Honey Jar", UnitPriceCents: 1250, Quantity: 1}}
	first := entity.NewPurchaseRecord(cart, &entity.Session{Email: "a@example.com", Name: "A"})
	second := entity.NewPurchaseRecord(cart, &entity.Session{Email: "b@example.com", Name: "B"})

	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first.ID, records[0].ID)
	assert.Equal(t, "b@example.com", records[1].User.Email)
	assert.Equal(t, int64(1250), records[1].SubtotalCents)
}
