package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"washdesk/internal/domain/user"
	reqdto "washdesk/internal/handler/dto/request"
	"washdesk/internal/infra"
	"washdesk/internal/pkg/errs"
	"washdesk/internal/pkg/jwt"
	"washdesk/internal/pkg/password"
	"washdesk/internal/usecase/queries"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailAlreadyUsed     = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.AuthorizedUserView, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.AuthorizedUserView, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if _, err := user.NewPassword(req.Password); err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	role := user.RoleStaff
	if req.Role != "" {
		role, err = user.NewRole(req.Role)
		if err != nil {
			return nil, errs.Mark(err, ErrAuthenticationFailed)
		}
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	entity := user.NewUser(email, hash, req.Name, role)
	if err := a.userRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyUsed
		}
		return nil, err
	}

	return &queries.AuthorizedUserView{
		ID:       entity.ID(),
		Email:    entity.Email().Value(),
		Name:     entity.Name(),
		Role:     entity.Role().String(),
		IsActive: entity.IsActive(),
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userView, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(userView.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.userRepo.UpdateLastLogin(ctx, userView.ID); err != nil {
		// Not critical, login already succeeded
		slog.Warn("failed to update last login", "user_id", userView.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      userView.ID,
		AccessToken: token,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	userView, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if userView == nil {
		return nil, ErrUserNotFound
	}

	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userView, nil
}
