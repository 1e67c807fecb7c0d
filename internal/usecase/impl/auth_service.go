package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

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

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	lock        *StateLock
	minPassword int
	admin       config.AdminConfig
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	Lock        *StateLock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	minPassword := 6
	var admin config.AdminConfig
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.MinPasswordLength > 0 {
			minPassword = params.Config.Auth.MinPasswordLength
		}
		admin = params.Config.Auth.Admin
	}

	return &authService{
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		lock:        params.Lock,
		minPassword: minPassword,
		admin:       admin,
		logger:      params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a customer account and signs it in.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if name == "" || email == "" || utf8.RuneCountInString(input.Password) < srv.minPassword {
		return nil, domainerrors.ErrValidationFailed
	}

	srv.lock.Lock()
	defer srv.lock.Unlock()

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "look up email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := srv.userRepo.Append(ctx, user); err != nil {
		return nil, errors.Wrap(err, "append user")
	}

	session := &entity.Session{Email: email, Name: name, Role: entity.RoleCustomer}
	if err := srv.sessionRepo.Set(ctx, session); err != nil {
		return nil, errors.Wrap(err, "set session")
	}

	srv.log(ctx).Info("Registered customer", slog.String("email", email))

	return srv.issue(session)
}

// Login signs a user in. The configured admin identities bypass the
// registry entirely and yield the admin session.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	identity := strings.ToLower(strings.TrimSpace(input.Email))

	srv.lock.Lock()
	defer srv.lock.Unlock()

	if session := srv.adminBypass(identity, input.Password); session != nil {
		if err := srv.sessionRepo.Set(ctx, session); err != nil {
			return nil, errors.Wrap(err, "set session")
		}

		srv.log(ctx).Info("Admin signed in", slog.String("identity", identity))

		return srv.issue(session)
	}

	user, err := srv.userRepo.FindByEmail(ctx, identity)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "look up email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	session := &entity.Session{Email: user.Email, Name: user.Name, Role: entity.RoleCustomer}
	if err := srv.sessionRepo.Set(ctx, session); err != nil {
		return nil, errors.Wrap(err, "set session")
	}

	srv.log(ctx).Info("Customer signed in", slog.String("email", user.Email))

	return srv.issue(session)
}

// Logout clears the session. Logging out while anonymous is a no-op.
func (srv *authService) Logout(ctx context.Context) error {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	return errors.Wrap(srv.sessionRepo.Clear(ctx), "clear session")
}

// CurrentUser returns the active session, or nil when anonymous.
func (srv *authService) CurrentUser(ctx context.Context) (*entity.Session, error) {
	session, err := srv.sessionRepo.Current(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "read session")
	}

	return session, nil
}

// adminBypass returns the admin session when the identity and password
// match the configured bypass credentials, nil otherwise.
func (srv *authService) adminBypass(identity, password string) *entity.Session {
	if srv.admin.Password == "" || password != srv.admin.Password {
		return nil
	}

	for _, candidate := range srv.admin.Identities {
		if identity == strings.ToLower(candidate) {
			return &entity.Session{
				Email: srv.admin.Identities[0],
				Name:  srv.admin.Name,
				Role:  entity.RoleAdmin,
			}
		}
	}

	return nil
}

func (srv *authService) issue(session *entity.Session) (*usecase.AuthOutput, error) {
	token, err := srv.tokens.GenerateToken(session)
	if err != nil {
		return nil, errors.Wrap(err, "generate access token")
	}

	return &usecase.AuthOutput{Session: session, AccessToken: token}, nil
}
