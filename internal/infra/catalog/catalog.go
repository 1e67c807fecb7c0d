// Package catalog provides the configuration-sourced product catalog.
package catalog

import (
	"context"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// defaultProducts is served when no catalog is configured.
var defaultProducts = []entity.Product{
	entity.NewProduct("honey-jar", "Honey Jar", "$12.50"),
	entity.NewProduct("beeswax-candle", "Beeswax Candle", "$8.00"),
	entity.NewProduct("pollinator-seed-mix", "Pollinator Seed Mix", "$6.75"),
	entity.NewProduct("bee-hotel", "Bee Hotel", "$24.00"),
}

type configCatalog struct {
	products []entity.Product
}

// NewCatalogRepository builds the catalog from configuration, falling back
// to the default product list when none is configured.
func NewCatalogRepository(cfg *config.Config) repository.CatalogRepository {
	if cfg == nil || len(cfg.Catalog) == 0 {
		return &configCatalog{products: defaultProducts}
	}

	products := make([]entity.Product, 0, len(cfg.Catalog))
	for _, item := range cfg.Catalog {
		products = append(products, entity.NewProduct(item.ID, item.Name, item.Price))
	}

	return &configCatalog{products: products}
}

func (c *configCatalog) List(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, len(c.products))
	copy(out, c.products)

	return out, nil
}

func (c *configCatalog) FindByID(_ context.Context, id string) (*entity.Product, error) {
	for i := range c.products {
		if c.products[i].ID == id {
			product := c.products[i]

			return &product, nil
		}
	}

	return nil, repository.ErrProductNotFound
}
