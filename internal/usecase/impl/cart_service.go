package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	lock        *StateLock
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	CatalogRepo repository.CatalogRepository
	Lock        *StateLock
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		catalogRepo: params.CatalogRepo,
		lock:        params.Lock,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem resolves the line to add and merges it into the cart.
func (srv *cartService) AddItem(ctx context.Context, input usecase.AddItemInput) (*usecase.CartView, error) {
	name, priceCents, err := srv.resolveLine(ctx, input)
	if err != nil {
		return nil, err
	}

	srv.lock.Lock()
	defer srv.lock.Unlock()

	cart, err := srv.cartRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}

	cart, lineID := cart.Add(name, priceCents)
	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "save cart")
	}

	srv.log(ctx).Info("Added cart line",
		slog.String("line_id", lineID),
		slog.Int("total_count", cart.TotalCount()),
	)

	return srv.reload(ctx)
}

// RemoveItem drops a line from the cart. Unknown ids leave the cart unchanged.
func (srv *cartService) RemoveItem(ctx context.Context, lineID string) (*usecase.CartView, error) {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	cart, err := srv.cartRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}

	cart = cart.Remove(lineID)
	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "save cart")
	}

	srv.log(ctx).Info("Removed cart line", slog.String("line_id", lineID))

	return srv.reload(ctx)
}

// ChangeQuantity applies a signed delta to a line; a result of zero or
// less removes the line.
func (srv *cartService) ChangeQuantity(ctx context.Context, input usecase.ChangeQuantityInput) (*usecase.CartView, error) {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	cart, err := srv.cartRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}

	cart = cart.ChangeQuantity(input.LineID, input.Delta)
	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "save cart")
	}

	return srv.reload(ctx)
}

// View renders the current cart without mutating it.
func (srv *cartService) View(ctx context.Context) (*usecase.CartView, error) {
	return srv.reload(ctx)
}

// reload re-reads the persisted cart so the view reflects exactly what
// the store holds.
func (srv *cartService) reload(ctx context.Context) (*usecase.CartView, error) {
	cart, err := srv.cartRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "reload cart")
	}

	return usecase.NewCartView(cart), nil
}

func (srv *cartService) resolveLine(ctx context.Context, input usecase.AddItemInput) (string, int64, error) {
	if input.ProductID != "" {
		product, err := srv.catalogRepo.FindByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return "", 0, domainerrors.ErrProductNotFound
			}

			return "", 0, errors.Wrap(err, "find product")
		}

		return product.Name, product.PriceCents, nil
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return "", 0, domainerrors.ErrProductNotFound
	}

	// Malformed price text parses to zero rather than failing.
	return name, entity.ParsePriceCents(input.Price), nil
}
