package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// AdminHandler holds dependencies for admin-only handlers.
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Users renders the registered users table.
func (h *AdminHandler) Users(c echo.Context) error {
	rows, err := h.uc.UserRows(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "")
}

// Purchases renders the purchase ledger table.
func (h *AdminHandler) Purchases(c echo.Context) error {
	rows, err := h.uc.PurchaseRows(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "")
}

// Export writes one of the text exports through the export sink.
func (h *AdminHandler) Export(c echo.Context) error {
	result, err := h.uc.Export(c.Request().Context(), c.Param("kind"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Export written")
}
