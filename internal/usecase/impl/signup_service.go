package impl

import (
	"context"
	"log/slog"
	"time"

	"raidhub/config"
	deliverycontext "raidhub/internal/delivery/context"
	"raidhub/internal/domain/entity"
	domainerrors "raidhub/internal/domain/errors"
	"raidhub/internal/domain/repository"
	"raidhub/internal/domain/service"
	"raidhub/internal/usecase"

	"github.com/pkg/errors"
)

const eventPublishTimeout = 10 * time.Second

// signupService implements the SignupUsecase interface.
type signupService struct {
	txManager      repository.TransactionManager
	eventPublisher service.EventPublisher
	config         *config.Config
	logger         *slog.Logger
}

// NewSignupService is the constructor for signupService.
func NewSignupService(
	txManager repository.TransactionManager,
	eventPublisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SignupUsecase {
	return &signupService{
		txManager:      txManager,
		eventPublisher: eventPublisher,
		config:         cfg,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *signupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSignups retrieves a raid's roster, oldest signup first.
func (srv *signupService) ListSignups(ctx context.Context, raidID int64) ([]*entity.SignupDetail, error) {
	var details []*entity.SignupDetail

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findRaid(ctx, repoFactory.NewRaidRepository(), raidID); err != nil {
			return err
		}

		found, err := repoFactory.NewSignupRepository().FindDetailsByRaid(ctx, raidID)
		if err != nil {
			return errors.Wrap(err, "failed to list signups")
		}
		details = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return details, nil
}

// CreateSignup signs a character up for a raid and publishes a
// signup.created event once the transaction has committed.
func (srv *signupService) CreateSignup(ctx context.Context, userID, raidID, characterID int64) (*entity.Signup, error) {
	signup, event, err := srv.createSignup(ctx, userID, raidID, characterID)
	if err != nil {
		return nil, err
	}

	event.Type = service.EventSignupCreated
	srv.publishEvent(ctx, event)

	return signup, nil
}

// CreateSignupWithoutNotification behaves like CreateSignup but skips the
// event, for callers that publish their own combined event.
func (srv *signupService) CreateSignupWithoutNotification(ctx context.Context, userID, raidID, characterID int64) (*entity.Signup, error) {
	signup, _, err := srv.createSignup(ctx, userID, raidID, characterID)
	if err != nil {
		return nil, err
	}

	return signup, nil
}

// createSignup runs the signup protocol in one transaction. The per-raid
// advisory lock makes the duplicate and capacity checks atomic with the
// insert; the unique index on (raid_id, character_id) is the backstop.
func (srv *signupService) createSignup(ctx context.Context, userID, raidID, characterID int64) (*entity.Signup, *service.RaidEvent, error) {
	signup := &entity.Signup{
		RaidID:      raidID,
		CharacterID: characterID,
		Status:      entity.SignupStatusConfirmed,
	}
	event := &service.RaidEvent{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		raidRepo := repoFactory.NewRaidRepository()
		characterRepo := repoFactory.NewCharacterRepository()
		signupRepo := repoFactory.NewSignupRepository()
		userRepo := repoFactory.NewUserRepository()

		// 1. The raid must exist
		raid, err := findRaid(ctx, raidRepo, raidID)
		if err != nil {
			return err
		}

		// 2. The character must exist and 3. be owned by the caller
		character, err := findOwnedCharacter(ctx, characterRepo, userID, characterID)
		if err != nil {
			return err
		}

		// 4. Serialize the rest of the protocol per raid
		if err := signupRepo.AcquireRaidLock(ctx, raidID); err != nil {
			return err
		}

		// 5. No duplicate signup for this (raid, character) pair
		exists, err := signupRepo.ExistsByRaidAndCharacter(ctx, raidID, characterID)
		if err != nil {
			return err
		}
		if exists {
			return domainerrors.ErrDuplicateSignup
		}

		// 6. Capacity check under the same lock
		count, err := signupRepo.CountByRaid(ctx, raidID)
		if err != nil {
			return err
		}
		if count >= int64(srv.config.Raid.Capacity) {
			return domainerrors.ErrRaidFull
		}

		// 7. Insert
		if err := signupRepo.Create(ctx, signup); err != nil {
			if errors.Is(err, repository.ErrDuplicateSignup) {
				return domainerrors.ErrDuplicateSignup
			}

			return err
		}

		actor, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find acting user")
		}

		startTime := raid.StartTime
		*event = service.RaidEvent{
			RaidID:         raid.ID,
			RaidTitle:      raid.Title,
			RaidSubtitle:   raid.Subtitle,
			StartTime:      &startTime,
			ActorName:      actor.Name,
			CharacterName:  character.Name,
			CharacterJob:   character.Job,
			CharacterLevel: character.Level,
			CurrentCount:   int(count) + 1,
			Capacity:       srv.config.Raid.Capacity,
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	srv.log(ctx).Info("Signup created",
		slog.Int64("user_id", userID),
		slog.Int64("raid_id", raidID),
		slog.Int64("character_id", characterID),
	)

	return signup, event, nil
}

// CancelSignup removes the caller's signup for the raid, whichever of their
// characters holds it.
func (srv *signupService) CancelSignup(ctx context.Context, userID, raidID int64) error {
	event := &service.RaidEvent{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		raidRepo := repoFactory.NewRaidRepository()
		signupRepo := repoFactory.NewSignupRepository()

		raid, err := findRaid(ctx, raidRepo, raidID)
		if err != nil {
			return err
		}

		details, err := signupRepo.FindDetailsByRaid(ctx, raidID)
		if err != nil {
			return errors.Wrap(err, "failed to load raid roster")
		}

		var mine *entity.SignupDetail
		for _, detail := range details {
			if detail.UserID == userID {
				mine = detail

				break
			}
		}
		if mine == nil {
			return domainerrors.ErrSignupNotFound
		}

		if err := signupRepo.DeleteByID(ctx, mine.SignupID); err != nil {
			return errors.Wrap(err, "failed to delete signup")
		}

		startTime := raid.StartTime
		*event = service.RaidEvent{
			Type:          service.EventSignupCancelled,
			RaidID:        raid.ID,
			RaidTitle:     raid.Title,
			RaidSubtitle:  raid.Subtitle,
			StartTime:     &startTime,
			ActorName:     mine.UserName,
			CharacterName: mine.CharacterName,
			CharacterJob:  mine.Job,
			CurrentCount:  len(details) - 1,
			Capacity:      srv.config.Raid.Capacity,
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Signup cancelled",
		slog.Int64("user_id", userID),
		slog.Int64("raid_id", raidID),
	)

	srv.publishEvent(ctx, event)

	return nil
}

// publishEvent fires the event without letting a publish failure surface to
// the caller. The committed state change is the source of truth; the event is
// best effort.
func (srv *signupService) publishEvent(ctx context.Context, event *service.RaidEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	logger := srv.log(ctx)

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)
	go func() {
		defer cancel()

		if err := srv.eventPublisher.PublishRaidEvent(publishCtx, event); err != nil {
			logger.Warn("Failed to publish raid event",
				slog.String("event_type", event.Type),
				slog.Int64("raid_id", event.RaidID),
				slog.String("error", err.Error()),
			)
		}
	}()
}

// findRaid loads a raid, mapping the repository sentinel to the domain error.
func findRaid(ctx context.Context, raidRepo repository.RaidRepository, raidID int64) (*entity.Raid, error) {
	raid, err := raidRepo.FindByID(ctx, raidID)
	if err != nil {
		if errors.Is(err, repository.ErrRaidNotFound) {
			return nil, domainerrors.ErrRaidNotFound
		}

		return nil, errors.Wrap(err, "failed to find raid")
	}

	return raid, nil
}
