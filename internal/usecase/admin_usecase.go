package usecase

import "context"

// Export kinds accepted by AdminUsecase.Export.
const (
	ExportKindProducts  = "products"
	ExportKindCustomers = "customers"
	ExportKindPurchases = "purchases"
	ExportKindAdmins    = "admins"
)

// UserRow is one row of the admin users table.
type UserRow struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// PurchaseRow is one row of the admin purchases table.
type PurchaseRow struct {
	Date     string `json:"date"`
	Customer string `json:"customer"`
	Items    string `json:"items"`
	Total    string `json:"total"`
}

// ExportResult describes a written export file.
type ExportResult struct {
	Filename string `json:"filename"`
	Lines    int    `json:"lines"`
}

// AdminUsecase provides the read-only admin projections and text exports.
// Access control is enforced by the delivery layer.
type AdminUsecase interface {
	UserRows(ctx context.Context) ([]UserRow, error)
	PurchaseRows(ctx context.Context) ([]PurchaseRow, error)
	Export(ctx context.Context, kind string) (*ExportResult, error)
}
