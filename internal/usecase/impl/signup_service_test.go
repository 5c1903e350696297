package impl

import (
	"context"
	"testing"
	"time"

	"raidhub/internal/domain/entity"
	domainerrors "raidhub/internal/domain/errors"
	"raidhub/internal/domain/repository"
	"raidhub/internal/domain/service"
	mockRepo "raidhub/internal/mocks/repository"
	mockSvc "raidhub/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSignupService_ListSignups_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewSignupService(txManager, eventPublisher, newTestConfig(6), newDiscardLogger())

	ctx := context.Background()
	raidID := int64(5)
	raid := &entity.Raid{ID: raidID, Title: "Weekly Clear"}
	expected := []*entity.SignupDetail{
		{SignupID: 1, CharacterID: 10, CharacterName: "Tank", UserID: 1, UserName: "Alice"},
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRaidRepo := mockRepo.NewMockRaidRepository(t)
			mockSignupRepo := mockRepo.NewMockSignupRepository(t)

			mockFactory.EXPECT().NewRaidRepository().Return(mockRaidRepo)
			mockFactory.EXPECT().NewSignupRepository().Return(mockSignupRepo)

			mockRaidRepo.EXPECT().FindByID(ctx, raidID).Return(raid, nil)
			mockSignupRepo.EXPECT().FindDetailsByRaid(ctx, raidID).Return(expected, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	details, err := svc.ListSignups(ctx, raidID)

	require.NoError(t, err)
	assert.Equal(t, expected, details)
}

func TestSignupService_ListSignups_RaidNotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewSignupService(txManager, eventPublisher, newTestConfig(6), newDiscardLogger())

	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRaidRepo := mockRepo.NewMockRaidRepository(t)

			mockFactory.EXPECT().NewRaidRepository().Return(mockRaidRepo)
			mockRaidRepo.EXPECT().FindByID(ctx, int64(999)).Return(nil, repository.ErrRaidNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrRaidNotFound)

	details, err := svc.ListSignups(ctx, 999)

	assert.Error(t, err)
	assert.Nil(t, details)
	assert.True(t, errors.Is(err, domainerrors.ErrRaidNotFound))
}

func TestSignupService_CreateSignup_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewSignupService(txManager, eventPublisher, newTestConfig(6), newDiscardLogger())

	ctx := context.Background()
	userID := int64(1)
	raidID := int64(5)
	characterID := int64(10)
	level := 60
	raid := &entity.Raid{ID: raidID, Title: "Weekly Clear", StartTime: time.Now().Add(24 * time.Hour)}
	character := &entity.Character{ID: characterID, UserID: userID, Name: "Tank", Job: "Paladin", Level: &level}
	actor := &entity.User{ID: userID, Name: "Alice"}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRaidRepo := mockRepo.NewMockRaidRepository(t)
			mockCharacterRepo := mockRepo.NewMockCharacterRepository(t)
			mockSignupRepo := mockRepo.NewMockSignupRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewRaidRepository().Return(mockRaidRepo)
			mockFactory.EXPECT().NewCharacterRepository().Return(mockCharacterRepo)
			mockFactory.EXPECT().NewSignupRepository().Return(mockSignupRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockRaidRepo.EXPECT().FindByID(ctx, raidID).Return(raid, nil)
			mockCharacterRepo.EXPECT().FindByID(ctx, characterID).Return(character, nil)
			mockSignupRepo.EXPECT().AcquireRaidLock(ctx, raidID).Return(nil)
			mockSignupRepo.EXPECT().ExistsByRaidAndCharacter(ctx, raidID, characterID).Return(false, nil)
			mockSignupRepo.EXPECT().CountByRaid(ctx, raidID).Return(int64(2), nil)
			mockSignupRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Signup")).
				Run(func(ctx context.Context, signup *entity.Signup) {
					signup.ID = 100
				}).
				Return(nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(actor, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	published := make(chan *service.RaidEvent, 1)
	eventPublisher.EXPECT().
		PublishRaidEvent(mock.Anything, mock.AnythingOfType("*service.RaidEvent")).
		Run(func(ctx context.Context, event *service.RaidEvent) {
			published <- event
		}).
		Return(nil)

	signup, err := svc.CreateSignup(ctx, userID, raidID, characterID)

	require.NoError(t, err)
	assert.Equal(t, int64(100), signup.ID)
	assert.Equal(t, entity.SignupStatusConfirmed, signup.Status)

	event := <-published
	assert.Equal(t, service.EventSignupCreated, event.Type)
	assert.Equal(t, raidID, event.RaidID)
	assert.Equal(t, "Alice", event.ActorName)
	assert.Equal(t, "Tank", event.CharacterName)
	assert.Equal(t, 3, event.CurrentCount)
	assert.Equal(t, 6, event.Capacity)
}

func TestSignupService_CreateSignup_Duplicate(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewSignupService(txManager, eventPublisher, newTestConfig(6), newDiscardLogger())

	ctx := context.Background()
	userID := int64(1)
	raidID := int64(5)
	characterID := int64(10)
	raid := &entity.Raid{ID: raidID, Title: "Weekly Clear"}
	character := &entity.Character{ID: characterID, UserID: userID, Name: "Tank"}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRaidRepo := mockRepo.NewMockRaidRepository(t)
			mockCharacterRepo := mockRepo.NewMockCharacterRepository(t)
			mockSignupRepo := mockRepo.NewMockSignupRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewRaidRepository().Return(mockRaidRepo)
			mockFactory.EXPECT().NewCharacterRepository().Return(mockCharacterRepo)
			mockFactory.EXPECT().NewSignupRepository().Return(mockSignupRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockRaidRepo.EXPECT().FindByID(ctx, raidID).Return(raid, nil)
			mockCharacterRepo.EXPECT().FindByID(ctx, characterID).Return(character, nil)
			mockSignupRepo.EXPECT().AcquireRaidLock(ctx, raidID).Return(nil)
			mockSignupRepo.EXPECT().ExistsByRaidAndCharacter(ctx, raidID, characterID).Return(true, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrDuplicateSignup)

	signup, err := svc.CreateSignup(ctx, userID, raidID, characterID)

	assert.Error(t, err)
	assert.Nil(t, signup)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateSignup))
}

func TestSignupService_CreateSignup_RaidFull(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewSignupService(txManager, eventPublisher, newTestConfig(2), newDiscardLogger())

	ctx := context.Background()
	userID := int64(1)
	raidID := int64(5)
	characterID := int64(10)
	raid := &entity.Raid{ID: raidID, Title: "Weekly Clear"}
	character := &entity.Character{ID: characterID, UserID: userID, Name: "Tank"}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRaidRepo := mockRepo.NewMockRaidRepository(t)
			mockCharacterRepo := mockRepo.NewMockCharacterRepository(t)
			mockSignupRepo := mockRepo.NewMockSignupRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewRaidRepository().Return(mockRaidRepo)
			mockFactory.EXPECT().NewCharacterRepository().Return(mockCharacterRepo)
			mockFactory.EXPECT().NewSignupRepository().Return(mockSignupRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockRaidRepo.EXPECT().FindByID(ctx, raidID).Return(raid, nil)
			mockCharacterRepo.EXPECT().FindByID(ctx, characterID).Return(character, nil)
			mockSignupRepo.EXPECT().AcquireRaidLock(ctx, raidID).Return(nil)
			mockSignupRepo.EXPECT().ExistsByRaidAndCharacter(ctx, raidID, characterID).Return(false, nil)
			mockSignupRepo.EXPECT().CountByRaid(ctx, raidID).Return(int64(2), nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrRaidFull)

	signup, err := svc.CreateSignup(ctx, userID, raidID, characterID)

	assert.Error(t, err)
	assert.Nil(t, signup)
	assert.True(t, errors.Is(err, domainerrors.ErrRaidFull))
}

func TestSignupService_CreateSignup_RaidNotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewSignupService(txManager, eventPublisher, newTestConfig(6), newDiscardLogger())

	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRaidRepo := mockRepo.NewMockRaidRepository(t)
			mockCharacterRepo := mockRepo.NewMockCharacterRepository(t)
			mockSignupRepo := mockRepo.NewMockSignupRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewRaidRepository().Return(mockRaidRepo)
			mockFactory.EXPECT().NewCharacterRepository().Return(mockCharacterRepo)
			mockFactory.EXPECT().NewSignupRepository().Return(mockSignupRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockRaidRepo.EXPECT().FindByID(ctx, int64(999)).Return(nil, repository.ErrRaidNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrRaidNotFound)

	signup, err := svc.CreateSignup(ctx, 1, 999, 10)

	assert.Error(t, err)
	assert.Nil(t, signup)
	assert.True(t, errors.Is(err, domainerrors.ErrRaidNotFound))
}

func TestSignupService_CreateSignup_CharacterOwnership(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewSignupService(txManager, eventPublisher, newTestConfig(6), newDiscardLogger())

	ctx := context.Background()
	raidID := int64(5)
	characterID := int64(10)
	raid := &entity.Raid{ID: raidID, Title: "Weekly Clear"}
	otherOwners := &entity.Character{ID: characterID, UserID: 2, Name: "Tank"}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRaidRepo := mockRepo.NewMockRaidRepository(t)
			mockCharacterRepo := mockRepo.NewMockCharacterRepository(t)
			mockSignupRepo := mockRepo.NewMockSignupRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewRaidRepository().Return(mockRaidRepo)
			mockFactory.EXPECT().NewCharacterRepository().Return(mockCharacterRepo)
			mockFactory.EXPECT().NewSignupRepository().Return(mockSignupRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockRaidRepo.EXPECT().FindByID(ctx, raidID).Return(raid, nil)
			mockCharacterRepo.EXPECT().FindByID(ctx, characterID).Return(otherOwners, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrCharacterOwnership)

	signup, err := svc.CreateSignup(ctx, 1, raidID, characterID)

	assert.Error(t, err)
	assert.Nil(t, signup)
	assert.True(t, errors.Is(err, domainerrors.ErrCharacterOwnership))
}

func TestSignupService_CreateSignupWithoutNotification_SkipsEvent(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewSignupService(txManager, eventPublisher, newTestConfig(6), newDiscardLogger())

	ctx := context.Background()
	userID := int64(1)
	raidID := int64(5)
	characterID := int64(10)
	raid := &entity.Raid{ID: raidID, Title: "Weekly Clear"}
	character := &entity.Character{ID: characterID, UserID: userID, Name: "Tank"}
	actor := &entity.User{ID: userID, Name: "Alice"}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRaidRepo := mockRepo.NewMockRaidRepository(t)
			mockCharacterRepo := mockRepo.NewMockCharacterRepository(t)
			mockSignupRepo := mockRepo.NewMockSignupRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewRaidRepository().Return(mockRaidRepo)
			mockFactory.EXPECT().NewCharacterRepository().Return(mockCharacterRepo)
			mockFactory.EXPECT().NewSignupRepository().Return(mockSignupRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockRaidRepo.EXPECT().FindByID(ctx, raidID).Return(raid, nil)
			mockCharacterRepo.EXPECT().FindByID(ctx, characterID).Return(character, nil)
			mockSignupRepo.EXPECT().AcquireRaidLock(ctx, raidID).Return(nil)
			mockSignupRepo.EXPECT().ExistsByRaidAndCharacter(ctx, raidID, characterID).Return(false, nil)
			mockSignupRepo.EXPECT().CountByRaid(ctx, raidID).Return(int64(0), nil)
			mockSignupRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Signup")).Return(nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(actor, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	// No PublishRaidEvent expectation: publishing here would fail the test.
	signup, err := svc.CreateSignupWithoutNotification(ctx, userID, raidID, characterID)

	require.NoError(t, err)
	assert.NotNil(t, signup)
}

func TestSignupService_CancelSignup_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewSignupService(txManager, eventPublisher, newTestConfig(6), newDiscardLogger())

	ctx := context.Background()
	userID := int64(1)
	raidID := int64(5)
	raid := &entity.Raid{ID: raidID, Title: "Weekly Clear", StartTime: time.Now().Add(24 * time.Hour)}
	details := []*entity.SignupDetail{
		{SignupID: 100, CharacterID: 10, CharacterName: "Tank", Job: "Paladin", UserID: userID, UserName: "Alice"},
		{SignupID: 101, CharacterID: 20, CharacterName: "Healer", UserID: 2, UserName: "Bob"},
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRaidRepo := mockRepo.NewMockRaidRepository(t)
			mockSignupRepo := mockRepo.NewMockSignupRepository(t)

			mockFactory.EXPECT().NewRaidRepository().Return(mockRaidRepo)
			mockFactory.EXPECT().NewSignupRepository().Return(mockSignupRepo)

			mockRaidRepo.EXPECT().FindByID(ctx, raidID).Return(raid, nil)
			mockSignupRepo.EXPECT().FindDetailsByRaid(ctx, raidID).Return(details, nil)
			mockSignupRepo.EXPECT().DeleteByID(ctx, int64(100)).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	published := make(chan *service.RaidEvent, 1)
	eventPublisher.EXPECT().
		PublishRaidEvent(mock.Anything, mock.AnythingOfType("*service.RaidEvent")).
		Run(func(ctx context.Context, event *service.RaidEvent) {
			published <- event
		}).
		Return(nil)

	err := svc.CancelSignup(ctx, userID, raidID)

	require.NoError(t, err)

	event := <-published
	assert.Equal(t, service.EventSignupCancelled, event.Type)
	assert.Equal(t, "Alice", event.ActorName)
	assert.Equal(t, "Tank", event.CharacterName)
	assert.Equal(t, 1, event.CurrentCount)
}

func TestSignupService_CancelSignup_NotSignedUp(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewSignupService(txManager, eventPublisher, newTestConfig(6), newDiscardLogger())

	ctx := context.Background()
	raidID := int64(5)
	raid := &entity.Raid{ID: raidID, Title: "Weekly Clear"}
	details := []*entity.SignupDetail{
		{SignupID: 101, CharacterID: 20, CharacterName: "Healer", UserID: 2, UserName: "Bob"},
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRaidRepo := mockRepo.NewMockRaidRepository(t)
			mockSignupRepo := mockRepo.NewMockSignupRepository(t)

			mockFactory.EXPECT().NewRaidRepository().Return(mockRaidRepo)
			mockFactory.EXPECT().NewSignupRepository().Return(mockSignupRepo)

			mockRaidRepo.EXPECT().FindByID(ctx, raidID).Return(raid, nil)
			mockSignupRepo.EXPECT().FindDetailsByRaid(ctx, raidID).Return(details, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrSignupNotFound)

	err := svc.CancelSignup(ctx, 1, raidID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSignupNotFound))
}
