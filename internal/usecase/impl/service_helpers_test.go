package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/catalog"
	"storefront/internal/infra/persistence/kv"
	"storefront/internal/usecase"
)

// staticTokenService avoids real signing in tests that only need a token to exist.
type staticTokenService struct{}

func (staticTokenService) GenerateToken(session *entity.Session) (string, error) {
	return "token-" + session.Email, nil
}

func (staticTokenService) ValidateToken(string) (*service.Claims, error) {
	return nil, nil
}

func (staticTokenService) AccessTokenDuration() time.Duration {
	return time.Minute
}

// recordingPublisher captures published checkout events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.CheckoutEvent
}

func (p *recordingPublisher) PublishCheckoutEvent(_ context.Context, event *service.CheckoutEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

// recordingSink captures exports written by the admin service.
type recordingSink struct {
	files map[string]string
}

func (s *recordingSink) Write(_ context.Context, filename, content string) error {
	if s.files == nil {
		s.files = map[string]string{}
	}
	s.files[filename] = content

	return nil
}

// testEnv wires every service against a shared in-memory store.
type testEnv struct {
	store        repository.KeyValueStore
	cartRepo     repository.CartRepository
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	purchaseRepo repository.PurchaseRepository
	catalogRepo  repository.CatalogRepository
	publisher    *recordingPublisher
	sink         *recordingSink

	cart     usecase.CartUsecase
	auth     usecase.AuthUsecase
	checkout usecase.CheckoutUsecase
	admin    usecase.AdminUsecase
}

func newTestEnv(cfg *config.Config) *testEnv {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if cfg.Auth == nil {
		cfg.Auth = &config.AuthConfig{
			MinPasswordLength: 6,
			Admin: config.AdminConfig{
				Identities: []string{"admin", "admin@local"},
				Password:   "123456789",
				Name:       "Admin",
			},
		}
	}

	env := &testEnv{
		store:     kv.NewMemoryStore(),
		publisher: &recordingPublisher{},
		sink:      &recordingSink{},
	}
	env.cartRepo = kv.NewCartRepository(env.store)
	env.userRepo = kv.NewUserRepository(env.store)
	env.sessionRepo = kv.NewSessionRepository(env.store)
	env.purchaseRepo = kv.NewPurchaseRepository(env.store)
	env.catalogRepo = catalog.NewCatalogRepository(cfg)

	lock := NewStateLock()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	env.cart = NewCartService(CartServiceParams{
		CartRepo:    env.cartRepo,
		CatalogRepo: env.catalogRepo,
		Lock:        lock,
		Logger:      logger,
	})
	env.auth = NewAuthService(AuthServiceParams{
		UserRepo:    env.userRepo,
		SessionRepo: env.sessionRepo,
		Hasher:      auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Tokens:      staticTokenService{},
		Lock:        lock,
		Config:      cfg,
		Logger:      logger,
	})
	env.checkout = NewCheckoutService(CheckoutServiceParams{
		CartRepo:     env.cartRepo,
		SessionRepo:  env.sessionRepo,
		PurchaseRepo: env.purchaseRepo,
		Publisher:    env.publisher,
		Lock:         lock,
		Logger:       logger,
	})
	env.admin = NewAdminService(AdminServiceParams{
		UserRepo:     env.userRepo,
		PurchaseRepo: env.purchaseRepo,
		CatalogRepo:  env.catalogRepo,
		Sink:         env.sink,
		Config:       cfg,
		Logger:       logger,
	})

	return env
}
