package impl

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{catalogRepo: params.CatalogRepo}
}

func (srv *catalogService) Products(ctx context.Context) ([]usecase.ProductView, error) {
	products, err := srv.catalogRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	views := make([]usecase.ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, usecase.ProductView{
			ID:         product.ID,
			Name:       product.Name,
			PriceCents: product.PriceCents,
			Price:      displayPrice(product),
		})
	}

	return views, nil
}

// displayPrice prefers the configured display text, deriving it from
// cents when absent.
func displayPrice(product entity.Product) string {
	if product.DisplayPrice != "" {
		return product.DisplayPrice
	}

	return entity.FormatCents(product.PriceCents)
}
