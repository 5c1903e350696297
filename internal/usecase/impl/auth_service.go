// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "raidhub/internal/delivery/context"
	"raidhub/internal/domain/entity"
	domainerrors "raidhub/internal/domain/errors"
	"raidhub/internal/domain/repository"
	"raidhub/internal/domain/service"
	"raidhub/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	tokenSvc  service.TokenService
	logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager: txManager,
		tokenSvc:  tokenSvc,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoginWithLine upserts the user keyed by their LINE user id and mints a
// fresh access token. The upsert runs in one transaction so a first login and
// a concurrent retry cannot both create the user.
func (srv *authService) LoginWithLine(ctx context.Context, input *usecase.LineLoginInput) (*usecase.LineLoginResult, error) {
	if input == nil || strings.TrimSpace(input.LineUserID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("lineUserId is required")
	}

	srv.log(ctx).Debug("Logging in with LINE", slog.String("line_user_id", input.LineUserID))

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// 1. Look up the user by their external id
		found, err := userRepo.FindByLineUserID(ctx, input.LineUserID)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by LINE user ID")
		}

		// 2. First login creates the user
		if found == nil {
			user = &entity.User{
				LineUserID: input.LineUserID,
				Name:       input.Name,
				Picture:    input.Picture,
			}

			return userRepo.Create(ctx, user)
		}

		// 3. Later logins refresh the profile fields
		found.Name = input.Name
		found.Picture = input.Picture
		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update user profile")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenSvc.Issue(user.ID, user.LineUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Info("User logged in",
		slog.Int64("user_id", user.ID),
		slog.String("line_user_id", user.LineUserID),
	)

	return &usecase.LineLoginResult{
		Token: token,
		User:  user,
	}, nil
}
