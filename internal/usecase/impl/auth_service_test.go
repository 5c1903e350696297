package impl

import (
	"context"
	"testing"

	"raidhub/internal/domain/entity"
	domainerrors "raidhub/internal/domain/errors"
	"raidhub/internal/domain/repository"
	mockRepo "raidhub/internal/mocks/repository"
	mockSvc "raidhub/internal/mocks/service"
	"raidhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_LoginWithLine_FirstLoginCreatesUser(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := NewAuthService(txManager, tokenSvc, newDiscardLogger())

	ctx := context.Background()
	input := &usecase.LineLoginInput{
		LineUserID: "U1234567890",
		Name:       "Alice",
		Picture:    "https://example.com/alice.png",
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByLineUserID(ctx, "U1234567890").
				Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = 42
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	tokenSvc.EXPECT().
		Issue(int64(42), "U1234567890").
		Return("signed-token", nil)

	result, err := service.LoginWithLine(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, int64(42), result.User.ID)
	assert.Equal(t, "Alice", result.User.Name)
}

func TestAuthService_LoginWithLine_RepeatLoginRefreshesProfile(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := NewAuthService(txManager, tokenSvc, newDiscardLogger())

	ctx := context.Background()
	input := &usecase.LineLoginInput{
		LineUserID: "U1234567890",
		Name:       "Alice Renamed",
		Picture:    "https://example.com/new.png",
	}
	existing := &entity.User{
		ID:         7,
		LineUserID: "U1234567890",
		Name:       "Alice",
		Picture:    "https://example.com/old.png",
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByLineUserID(ctx, "U1234567890").
				Return(existing, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	tokenSvc.EXPECT().
		Issue(int64(7), "U1234567890").
		Return("signed-token", nil)

	result, err := service.LoginWithLine(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Alice Renamed", result.User.Name)
	assert.Equal(t, "https://example.com/new.png", result.User.Picture)
}

func TestAuthService_LoginWithLine_EmptyLineUserID(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := NewAuthService(txManager, tokenSvc, newDiscardLogger())

	ctx := context.Background()

	result, err := service.LoginWithLine(ctx, &usecase.LineLoginInput{LineUserID: "   "})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_LoginWithLine_FindError(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := NewAuthService(txManager, tokenSvc, newDiscardLogger())

	ctx := context.Background()
	dbError := errors.New("db error")

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByLineUserID(ctx, "U1234567890").
				Return(nil, dbError)

			return fn(mockFactory)
		})

	result, err := service.LoginWithLine(ctx, &usecase.LineLoginInput{LineUserID: "U1234567890"})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to find user by LINE user ID")
}

func TestAuthService_LoginWithLine_IssueError(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := NewAuthService(txManager, tokenSvc, newDiscardLogger())

	ctx := context.Background()
	existing := &entity.User{ID: 7, LineUserID: "U1234567890"}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByLineUserID(ctx, "U1234567890").
				Return(existing, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	tokenSvc.EXPECT().
		Issue(int64(7), "U1234567890").
		Return("", errors.New("signing key unavailable"))

	result, err := service.LoginWithLine(ctx, &usecase.LineLoginInput{LineUserID: "U1234567890"})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to issue access token")
}
