package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// Timestamps in the purchases export use millisecond precision in UTC,
// the same shape browsers emit for ISO dates.
const exportTimeLayout = "2006-01-02T15:04:05.000Z"

// adminService implements the AdminUsecase interface.
type adminService struct {
	userRepo     repository.UserRepository
	purchaseRepo repository.PurchaseRepository
	catalogRepo  repository.CatalogRepository
	sink         service.ExportSink
	adminName    string
	adminLogin   string
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	PurchaseRepo repository.PurchaseRepository
	CatalogRepo  repository.CatalogRepository
	Sink         service.ExportSink
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	adminName := "Admin"
	adminLogin := "admin"
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.Admin.Name != "" {
			adminName = params.Config.Auth.Admin.Name
		}
		if len(params.Config.Auth.Admin.Identities) > 0 {
			adminLogin = params.Config.Auth.Admin.Identities[0]
		}
	}

	return &adminService{
		userRepo:     params.UserRepo,
		purchaseRepo: params.PurchaseRepo,
		catalogRepo:  params.CatalogRepo,
		sink:         params.Sink,
		adminName:    adminName,
		adminLogin:   adminLogin,
		logger:       params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UserRows projects the registered users for the admin table.
func (srv *adminService) UserRows(ctx context.Context) ([]usecase.UserRow, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}

	rows := make([]usecase.UserRow, 0, len(users))
	for _, user := range users {
		name := user.Name
		if name == "" {
			name = "N/A"
		}
		rows = append(rows, usecase.UserRow{Name: name, Email: user.Email, Status: "Registered"})
	}

	return rows, nil
}

// PurchaseRows projects the ledger for the admin table.
func (srv *adminService) PurchaseRows(ctx context.Context) ([]usecase.PurchaseRow, error) {
	purchases, err := srv.purchaseRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list purchases")
	}

	rows := make([]usecase.PurchaseRow, 0, len(purchases))
	for _, purchase := range purchases {
		customer := "Guest"
		if purchase.User != nil {
			name := purchase.User.Name
			if name == "" {
				name = "N/A"
			}
			customer = fmt.Sprintf("%s (%s)", name, purchase.User.Email)
		}

		items := make([]string, 0, len(purchase.Items))
		for _, item := range purchase.Items {
			items = append(items, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
		}

		rows = append(rows, usecase.PurchaseRow{
			Date:     purchase.At.UTC().Format("2006-01-02"),
			Customer: customer,
			Items:    strings.Join(items, ", "),
			Total:    entity.FormatCents(purchase.SubtotalCents),
		})
	}

	return rows, nil
}

// Export writes the requested text export through the sink and reports
// the file written.
func (srv *adminService) Export(ctx context.Context, kind string) (*usecase.ExportResult, error) {
	var (
		lines []string
		err   error
	)

	switch kind {
	case usecase.ExportKindProducts:
		lines, err = srv.productLines(ctx)
	case usecase.ExportKindCustomers:
		lines, err = srv.customerLines(ctx)
	case usecase.ExportKindPurchases:
		lines, err = srv.purchaseLines(ctx)
	case usecase.ExportKindAdmins:
		lines = []string{"Admins", "Format: Name | Username", fmt.Sprintf("%s | %s", srv.adminName, srv.adminLogin)}
	default:
		return nil, domainerrors.ErrExportUnknownKind
	}
	if err != nil {
		return nil, err
	}

	filename := kind + ".txt"
	if err := srv.sink.Write(ctx, filename, strings.Join(lines, "\n")); err != nil {
		return nil, errors.Wrapf(err, "write %s", filename)
	}

	srv.log(ctx).Info("Wrote export", slog.String("filename", filename), slog.Int("lines", len(lines)))

	return &usecase.ExportResult{Filename: filename, Lines: len(lines)}, nil
}

func (srv *adminService) productLines(ctx context.Context) ([]string, error) {
	products, err := srv.catalogRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	lines := []string{"TopBrandSuppliers - Bee MyLyf Products", "Format: Name | Price"}
	for _, product := range products {
		lines = append(lines, fmt.Sprintf("%s | %s", product.Name, product.DisplayPrice))
	}

	return lines, nil
}

func (srv *adminService) customerLines(ctx context.Context) ([]string, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}

	lines := []string{"Registered Customers", "Format: Name | Email"}
	for _, user := range users {
		lines = append(lines, fmt.Sprintf("%s | %s", user.Name, user.Email))
	}

	return lines, nil
}

func (srv *adminService) purchaseLines(ctx context.Context) ([]string, error) {
	purchases, err := srv.purchaseRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list purchases")
	}

	lines := []string{"Purchases", "Format: ISO Date | Email | Name | Item x Qty @ Price | Subtotal"}
	for _, purchase := range purchases {
		user := "guest |"
		if purchase.User != nil {
			user = fmt.Sprintf("%s | %s", purchase.User.Email, purchase.User.Name)
		}

		items := make([]string, 0, len(purchase.Items))
		for _, item := range purchase.Items {
			items = append(items, fmt.Sprintf("%s x%d @ %s", item.Name, item.Quantity, entity.FormatCents(item.UnitPriceCents)))
		}

		lines = append(lines, fmt.Sprintf("%s | %s | %s | %s",
			purchase.At.UTC().Format(exportTimeLayout),
			user,
			strings.Join(items, ", "),
			entity.FormatCents(purchase.SubtotalCents),
		))
	}

	return lines, nil
}
