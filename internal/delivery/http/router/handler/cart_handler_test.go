package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/usecase"
)

// stubCartUsecase records the last input and returns a fixed view.
type stubCartUsecase struct {
	lastAdd usecase.AddItemInput
	view    *usecase.CartView
}

func (s *stubCartUsecase) AddItem(_ context.Context, input usecase.AddItemInput) (*usecase.CartView, error) {
	s.lastAdd = input

	return s.view, nil
}

func (s *stubCartUsecase) RemoveItem(context.Context, string) (*usecase.CartView, error) {
	return s.view, nil
}

func (s *stubCartUsecase) ChangeQuantity(context.Context, usecase.ChangeQuantityInput) (*usecase.CartView, error) {
	return s.view, nil
}

func (s *stubCartUsecase) View(context.Context) (*usecase.CartView, error) {
	return s.view, nil
}

func TestCartHandler_AddItem(t *testing.T) {
	stub := &stubCartUsecase{view: &usecase.CartView{
		Items:           []usecase.CartLineView{{ID: "Honey Jar__1250", Name: "Honey Jar", Quantity: 1}},
		TotalCount:      1,
		SubtotalCents:   1250,
		Subtotal:        "$12.50",
		CheckoutEnabled: true,
	}}
	handler := NewCartHandler(stub)

	e := echo.New()
	body := `{"name":"Honey Jar","price":"$12.50"}`
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.AddItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Honey Jar", stub.lastAdd.Name)
	assert.Equal(t, "$12.50", stub.lastAdd.Price)
	assert.Contains(t, rec.Body.String(), `"subtotalCents":1250`)
	assert.Contains(t, rec.Body.String(), `"checkoutEnabled":true`)
}

func TestCartHandler_AddItemRejectsBadJSON(t *testing.T) {
	handler := NewCartHandler(&stubCartUsecase{view: &usecase.CartView{}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.AddItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}
