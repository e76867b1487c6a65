package commands

import (
	"context"

	domuser "bookswap/internal/domain/user"
	"bookswap/internal/infra"
	"bookswap/internal/pkg/errs"
	"bookswap/internal/pkg/jwt"
	"bookswap/internal/pkg/password"
	"bookswap/internal/usecase/queries"
	"bookswap/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrUserInactive       = errs.New("user account is inactive")
	ErrEmailTaken         = errs.New("email already registered")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type RegisterResult struct {
	UserID      uuid.UUID
	AccessToken string
}

type RegisterRequest struct {
	Email    string
	Username string
	Password string
}

// UserReadStore is the credential-side read the auth commands need.
type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error)
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)
	Login(ctx context.Context, credentials domuser.Credentials) (string, *queries.UserView, error)
}

type authUseCaseImpl struct {
	uow        shared.UnitOfWork
	userReads  UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, userReads UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{
		uow:        uow,
		userReads:  userReads,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	email, err := domuser.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	username, err := domuser.NewUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if _, err = domuser.NewPassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := domuser.NewUser(email, username, hash)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Users().Create(ctx, tx.DB(), u); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrEmailTaken)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(u.ID())
	if err != nil {
		return nil, ErrTokenGeneration
	}

	return &RegisterResult{UserID: u.ID(), AccessToken: token}, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials domuser.Credentials) (string, *queries.UserView, error) {
	view, hash, err := a.userReads.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !view.IsActive {
		return "", nil, ErrUserInactive
	}

	if err := password.ComparePassword(hash, credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(view.ID)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, view, nil
}
