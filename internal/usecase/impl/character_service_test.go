package impl

import (
	"context"
	"testing"

	"raidhub/internal/domain/entity"
	domainerrors "raidhub/internal/domain/errors"
	"raidhub/internal/domain/repository"
	mockRepo "raidhub/internal/mocks/repository"
	"raidhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCharacterService_ListCharacters_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCharacterService(txManager, newDiscardLogger())

	ctx := context.Background()
	userID := int64(1)
	expected := []*entity.Character{
		{ID: 10, UserID: userID, Name: "Tank", IsDefault: true},
		{ID: 11, UserID: userID, Name: "Healer"},
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCharacterRepo := mockRepo.NewMockCharacterRepository(t)

			mockFactory.EXPECT().NewCharacterRepository().Return(mockCharacterRepo)
			mockCharacterRepo.EXPECT().FindByUserID(ctx, userID).Return(expected, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	characters, err := service.ListCharacters(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, characters)
}

func TestCharacterService_CreateCharacter_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCharacterService(txManager, newDiscardLogger())

	ctx := context.Background()
	userID := int64(1)
	level := 30
	input := &usecase.CreateCharacterInput{
		Name:  "  Tank  ",
		Job:   "Paladin",
		Level: &level,
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCharacterRepo := mockRepo.NewMockCharacterRepository(t)

			mockFactory.EXPECT().NewCharacterRepository().Return(mockCharacterRepo)
			mockCharacterRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Character")).
				Run(func(ctx context.Context, character *entity.Character) {
					character.ID = 10
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	character, err := service.CreateCharacter(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, int64(10), character.ID)
	assert.Equal(t, "Tank", character.Name)
	assert.Equal(t, userID, character.UserID)
	assert.False(t, character.IsDefault)
}

func TestCharacterService_CreateCharacter_DefaultReplacesPrevious(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCharacterService(txManager, newDiscardLogger())

	ctx := context.Background()
	userID := int64(1)
	input := &usecase.CreateCharacterInput{
		Name:      "Main",
		IsDefault: true,
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCharacterRepo := mockRepo.NewMockCharacterRepository(t)

			mockFactory.EXPECT().NewCharacterRepository().Return(mockCharacterRepo)

			mockCharacterRepo.EXPECT().AcquireOwnerLock(ctx, userID).Return(nil)
			mockCharacterRepo.EXPECT().UnsetDefaultForUser(ctx, userID).Return(nil)
			mockCharacterRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Character")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	character, err := service.CreateCharacter(ctx, userID, input)

	require.NoError(t, err)
	assert.True(t, character.IsDefault)
}

func TestCharacterService_CreateCharacter_EmptyName(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCharacterService(txManager, newDiscardLogger())

	ctx := context.Background()

	character, err := service.CreateCharacter(ctx, 1, &usecase.CreateCharacterInput{Name: "   "})

	assert.Error(t, err)
	assert.Nil(t, character)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCharacterName))
}

func TestCharacterService_CreateCharacter_NegativeLevel(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCharacterService(txManager, newDiscardLogger())

	ctx := context.Background()
	level := -1

	character, err := service.CreateCharacter(ctx, 1, &usecase.CreateCharacterInput{Name: "Tank", Level: &level})

	assert.Error(t, err)
	assert.Nil(t, character)
	assert.True(t, errors.Is(err, domainerrors.ErrNegativeLevel))
}

func TestCharacterService_UpdateCharacter_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCharacterService(txManager, newDiscardLogger())

	ctx := context.Background()
	userID := int64(1)
	characterID := int64(10)
	newName := "Renamed"
	existing := &entity.Character{ID: characterID, UserID: userID, Name: "Tank", Job: "Paladin"}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCharacterRepo := mockRepo.NewMockCharacterRepository(t)

			mockFactory.EXPECT().NewCharacterRepository().Return(mockCharacterRepo)

			mockCharacterRepo.EXPECT().FindByID(ctx, characterID).Return(existing, nil)
			mockCharacterRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Character")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	character, err := service.UpdateCharacter(ctx, userID, characterID, &usecase.UpdateCharacterInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", character.Name)
	assert.Equal(t, "Paladin", character.Job)
}

func TestCharacterService_UpdateCharacter_SetDefault(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCharacterService(txManager, newDiscardLogger())

	ctx := context.Background()
	userID := int64(1)
	characterID := int64(10)
	isDefault := true
	existing := &entity.Character{ID: characterID, UserID: userID, Name: "Tank"}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCharacterRepo := mockRepo.NewMockCharacterRepository(t)

			mockFactory.EXPECT().NewCharacterRepository().Return(mockCharacterRepo)

			mockCharacterRepo.EXPECT().FindByID(ctx, characterID).Return(existing, nil)
			mockCharacterRepo.EXPECT().AcquireOwnerLock(ctx, userID).Return(nil)
			mockCharacterRepo.EXPECT().UnsetDefaultForUser(ctx, userID).Return(nil)
			mockCharacterRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Character")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	character, err := service.UpdateCharacter(ctx, userID, characterID, &usecase.UpdateCharacterInput{IsDefault: &isDefault})

	require.NoError(t, err)
	assert.True(t, character.IsDefault)
}

func TestCharacterService_UpdateCharacter_NotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCharacterService(txManager, newDiscardLogger())

	ctx := context.Background()
	newName := "Renamed"

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCharacterRepo := mockRepo.NewMockCharacterRepository(t)

			mockFactory.EXPECT().NewCharacterRepository().Return(mockCharacterRepo)
			mockCharacterRepo.EXPECT().
				FindByID(ctx, int64(999)).
				Return(nil, repository.ErrCharacterNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrCharacterNotFound)

	character, err := service.UpdateCharacter(ctx, 1, 999, &usecase.UpdateCharacterInput{Name: &newName})

	assert.Error(t, err)
	assert.Nil(t, character)
	assert.True(t, errors.Is(err, domainerrors.ErrCharacterNotFound))
}

func TestCharacterService_UpdateCharacter_OwnershipViolation(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCharacterService(txManager, newDiscardLogger())

	ctx := context.Background()
	characterID := int64(10)
	newName := "Renamed"
	otherOwners := &entity.Character{ID: characterID, UserID: 2, Name: "Tank"}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCharacterRepo := mockRepo.NewMockCharacterRepository(t)

			mockFactory.EXPECT().NewCharacterRepository().Return(mockCharacterRepo)
			mockCharacterRepo.EXPECT().FindByID(ctx, characterID).Return(otherOwners, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrCharacterOwnership)

	character, err := service.UpdateCharacter(ctx, 1, characterID, &usecase.UpdateCharacterInput{Name: &newName})

	assert.Error(t, err)
	assert.Nil(t, character)
	assert.True(t, errors.Is(err, domainerrors.ErrCharacterOwnership))
}

func TestCharacterService_DeleteCharacter_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCharacterService(txManager, newDiscardLogger())

	ctx := context.Background()
	userID := int64(1)
	characterID := int64(10)
	existing := &entity.Character{ID: characterID, UserID: userID, Name: "Tank"}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCharacterRepo := mockRepo.NewMockCharacterRepository(t)

			mockFactory.EXPECT().NewCharacterRepository().Return(mockCharacterRepo)

			mockCharacterRepo.EXPECT().FindByID(ctx, characterID).Return(existing, nil)
			mockCharacterRepo.EXPECT().HasActiveSignups(ctx, characterID).Return(false, nil)
			mockCharacterRepo.EXPECT().Delete(ctx, characterID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := service.DeleteCharacter(ctx, userID, characterID)

	require.NoError(t, err)
}

func TestCharacterService_DeleteCharacter_HasActiveSignups(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCharacterService(txManager, newDiscardLogger())

	ctx := context.Background()
	userID := int64(1)
	characterID := int64(10)
	existing := &entity.Character{ID: characterID, UserID: userID, Name: "Tank"}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCharacterRepo := mockRepo.NewMockCharacterRepository(t)

			mockFactory.EXPECT().NewCharacterRepository().Return(mockCharacterRepo)

			mockCharacterRepo.EXPECT().FindByID(ctx, characterID).Return(existing, nil)
			mockCharacterRepo.EXPECT().HasActiveSignups(ctx, characterID).Return(true, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrCharacterHasSignups)

	err := service.DeleteCharacter(ctx, userID, characterID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCharacterHasSignups))
}

func TestCharacterService_SetDefaultCharacter_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCharacterService(txManager, newDiscardLogger())

	ctx := context.Background()
	userID := int64(1)
	characterID := int64(10)
	existing := &entity.Character{ID: characterID, UserID: userID, Name: "Tank"}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCharacterRepo := mockRepo.NewMockCharacterRepository(t)

			mockFactory.EXPECT().NewCharacterRepository().Return(mockCharacterRepo)

			mockCharacterRepo.EXPECT().FindByID(ctx, characterID).Return(existing, nil)
			mockCharacterRepo.EXPECT().AcquireOwnerLock(ctx, userID).Return(nil)
			mockCharacterRepo.EXPECT().UnsetDefaultForUser(ctx, userID).Return(nil)
			mockCharacterRepo.EXPECT().SetDefault(ctx, characterID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	character, err := service.SetDefaultCharacter(ctx, userID, characterID)

	require.NoError(t, err)
	assert.True(t, character.IsDefault)
}

func TestCharacterService_SetDefaultCharacter_NotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCharacterService(txManager, newDiscardLogger())

	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCharacterRepo := mockRepo.NewMockCharacterRepository(t)

			mockFactory.EXPECT().NewCharacterRepository().Return(mockCharacterRepo)
			mockCharacterRepo.EXPECT().
				FindByID(ctx, int64(999)).
				Return(nil, repository.ErrCharacterNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrCharacterNotFound)

	character, err := service.SetDefaultCharacter(ctx, 1, 999)

	assert.Error(t, err)
	assert.Nil(t, character)
	assert.True(t, errors.Is(err, domainerrors.ErrCharacterNotFound))
}
