package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	cartRepo     repository.CartRepository
	sessionRepo  repository.SessionRepository
	purchaseRepo repository.PurchaseRepository
	publisher    service.EventPublisher
	lock         *StateLock
	logger       *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	CartRepo     repository.CartRepository
	SessionRepo  repository.SessionRepository
	PurchaseRepo repository.PurchaseRepository
	Publisher    service.EventPublisher
	Lock         *StateLock
	Logger       *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		cartRepo:     params.CartRepo,
		sessionRepo:  params.SessionRepo,
		purchaseRepo: params.PurchaseRepo,
		publisher:    params.Publisher,
		lock:         params.Lock,
		logger:       params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout snapshots the cart and session into the purchase ledger.
// An empty cart or an anonymous caller never reaches the ledger, and
// the cart is left intact afterwards.
func (srv *checkoutService) Checkout(ctx context.Context) (*usecase.CheckoutOutput, error) {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	cart, err := srv.cartRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}
	if cart.SubtotalCents() <= 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	session, err := srv.sessionRepo.Current(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "read session")
	}
	if session == nil {
		return nil, domainerrors.ErrLoginRequired
	}

	record := entity.NewPurchaseRecord(cart, session)
	if err := srv.purchaseRepo.Append(ctx, record); err != nil {
		return nil, errors.Wrap(err, "append purchase")
	}

	srv.log(ctx).Info("Recorded purchase",
		slog.String("purchase_id", record.ID.String()),
		slog.String("email", session.Email),
		slog.Int64("subtotal_cents", record.SubtotalCents),
	)

	srv.publish(ctx, &record, session)

	return &usecase.CheckoutOutput{
		Record: &record,
		Cart:   usecase.NewCartView(cart),
	}, nil
}

// publish emits the checkout event. Publishing is best-effort; the
// purchase is already persisted when it runs.
func (srv *checkoutService) publish(ctx context.Context, record *entity.PurchaseRecord, session *entity.Session) {
	event := &service.CheckoutEvent{
		PurchaseID:    record.ID.String(),
		Email:         session.Email,
		ItemCount:     len(record.Items),
		SubtotalCents: record.SubtotalCents,
		At:            record.At,
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
	}

	if err := srv.publisher.PublishCheckoutEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish checkout event",
			slog.String("purchase_id", event.PurchaseID),
			slog.Any("error", err),
		)
	}
}
