package impl

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

func seedPurchase(t *testing.T, env *testEnv, email, password string) {
	t.Helper()
	ctx := context.Background()

	if email != "" {
		_, err := env.auth.Register(ctx, usecase.RegisterInput{Name: "Maya", Email: email, Password: password})
		require.NoError(t, err)
	}
	_, err := env.cart.AddItem(ctx, usecase.AddItemInput{Name: "Honey Jar", Price: "$12.50"})
	require.NoError(t, err)
	_, err = env.checkout.Checkout(ctx)
	require.NoError(t, err)
}

func TestAdminService_UserRows(t *testing.T) {
	env := newTestEnv(nil)
	ctx := context.Background()

	rows, err := env.admin.UserRows(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = env.auth.Register(ctx, usecase.RegisterInput{Name: "Maya", Email: "maya@example.com", Password: "secret1"})
	require.NoError(t, err)

	rows, err = env.admin.UserRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, usecase.UserRow{Name: "Maya", Email: "maya@example.com", Status: "Registered"}, rows[0])
}

func TestAdminService_PurchaseRows(t *testing.T) {
	env := newTestEnv(nil)
	seedPurchase(t, env, "maya@example.com", "secret1")

	rows, err := env.admin.PurchaseRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Maya (maya@example.com)", rows[0].Customer)
	assert.Equal(t, "Honey Jar x1", rows[0].Items)
	assert.Equal(t, "$12.50", rows[0].Total)
	assert.NotEmpty(t, rows[0].Date)
}

func TestAdminService_ExportCustomers(t *testing.T) {
	env := newTestEnv(nil)
	ctx := context.Background()

	_, err := env.auth.Register(ctx, usecase.RegisterInput{Name: "Maya", Email: "maya@example.com", Password: "secret1"})
	require.NoError(t, err)

	result, err := env.admin.Export(ctx, usecase.ExportKindCustomers)
	require.NoError(t, err)
	assert.Equal(t, "customers.txt", result.Filename)

	content := env.sink.files["customers.txt"]
	assert.Equal(t, "Registered Customers\nFormat: Name | Email\nMaya | maya@example.com", content)
}

func TestAdminService_ExportProducts(t *testing.T) {
	env := newTestEnv(nil)

	_, err := env.admin.Export(context.Background(), usecase.ExportKindProducts)
	require.NoError(t, err)

	lines := strings.Split(env.sink.files["products.txt"], "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "TopBrandSuppliers - Bee MyLyf Products", lines[0])
	assert.Equal(t, "Format: Name | Price", lines[1])
	assert.Equal(t, "Honey Jar | $12.50", lines[2])
}

func TestAdminService_ExportPurchases(t *testing.T) {
	env := newTestEnv(nil)
	seedPurchase(t, env, "maya@example.com", "secret1")

	_, err := env.admin.Export(context.Background(), usecase.ExportKindPurchases)
	require.NoError(t, err)

	lines := strings.Split(env.sink.files["purchases.txt"], "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Purchases", lines[0])
	assert.Equal(t, "Format: ISO Date | Email | Name | Item x Qty @ Price | Subtotal", lines[1])
	assert.Contains(t, lines[2], " | maya@example.com | Maya | Honey Jar x1 @ $12.50 | $12.50")
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z \|`, lines[2])
}

func TestAdminService_ExportAdmins(t *testing.T) {
	env := newTestEnv(nil)

	_, err := env.admin.Export(context.Background(), usecase.ExportKindAdmins)
	require.NoError(t, err)

	assert.Equal(t, "Admins\nFormat: Name | Username\nAdmin | admin", env.sink.files["admins.txt"])
}

func TestAdminService_ExportUnknownKind(t *testing.T) {
	env := newTestEnv(nil)

	_, err := env.admin.Export(context.Background(), "inventory")
	assert.ErrorIs(t, err, domainerrors.ErrExportUnknownKind)
	assert.Empty(t, env.sink.files)
}
