package impl

import (
	"context"
	"log/slog"
	"strings"
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

// raidService implements the RaidUsecase interface.
type raidService struct {
	txManager      repository.TransactionManager
	signupUsecase  usecase.SignupUsecase
	eventPublisher service.EventPublisher
	config         *config.Config
	logger         *slog.Logger
}

// NewRaidService is the constructor for raidService.
func NewRaidService(
	txManager repository.TransactionManager,
	signupUsecase usecase.SignupUsecase,
	eventPublisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RaidUsecase {
	return &raidService{
		txManager:      txManager,
		signupUsecase:  signupUsecase,
		eventPublisher: eventPublisher,
		config:         cfg,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *raidService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListRaids retrieves raids that have not started yet, ascending by start
// time, with creator display names.
func (srv *raidService) ListRaids(ctx context.Context) ([]*entity.RaidDetail, error) {
	var raids []*entity.RaidDetail

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewRaidRepository().ListUpcoming(ctx, time.Now())
		if err != nil {
			return errors.Wrap(err, "failed to list raids")
		}
		raids = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return raids, nil
}

// CreateRaid creates a raid and, when a character id is supplied, signs that
// character up right away. The auto-signup is best effort: its failure is
// logged and the raid creation still succeeds.
func (srv *raidService) CreateRaid(ctx context.Context, userID int64, input *usecase.CreateRaidInput) (*usecase.CreateRaidResult, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrEmptyRaidTitle
	}
	if input.StartTime.Before(time.Now().Add(-srv.config.Raid.StartGracePeriod)) {
		return nil, domainerrors.ErrStartTimeTooFarInPast
	}

	raid := &entity.Raid{
		Title:     strings.TrimSpace(input.Title),
		Subtitle:  input.Subtitle,
		Boss:      input.Boss,
		StartTime: input.StartTime,
		CreatedBy: userID,
	}
	var creator *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find raid creator")
		}
		creator = found

		return repoFactory.NewRaidRepository().Create(ctx, raid)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Raid created",
		slog.Int64("user_id", userID),
		slog.Int64("raid_id", raid.ID),
	)

	result := &usecase.CreateRaidResult{Raid: raid}

	event := &service.RaidEvent{
		Type:         service.EventRaidCreated,
		RaidID:       raid.ID,
		RaidTitle:    raid.Title,
		RaidSubtitle: raid.Subtitle,
		StartTime:    &raid.StartTime,
		ActorName:    creator.Name,
		CreatorName:  creator.Name,
		Capacity:     srv.config.Raid.Capacity,
	}

	// Auto-signup for the creator's character, best effort
	if input.CharacterID != nil {
		signup, err := srv.signupUsecase.CreateSignupWithoutNotification(ctx, userID, raid.ID, *input.CharacterID)
		if err != nil {
			srv.log(ctx).Warn("Auto-signup on raid creation failed",
				slog.Int64("raid_id", raid.ID),
				slog.Int64("character_id", *input.CharacterID),
				slog.String("error", err.Error()),
			)
		} else {
			result.Signup = signup
			event.CurrentCount = 1
		}
	}

	srv.publishEvent(ctx, event)

	return result, nil
}

// DeleteRaid removes a raid and all of its signups in one transaction. Only
// the creator may delete a raid.
func (srv *raidService) DeleteRaid(ctx context.Context, userID, raidID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		raidRepo := repoFactory.NewRaidRepository()
		signupRepo := repoFactory.NewSignupRepository()

		// 1. The raid must exist and 2. the caller must be its creator
		raid, err := findRaid(ctx, raidRepo, raidID)
		if err != nil {
			return err
		}
		if raid.CreatedBy != userID {
			return domainerrors.ErrRaidDeleteForbidden
		}

		// 3. Cascade: signups first, then the raid itself
		if err := signupRepo.DeleteByRaid(ctx, raidID); err != nil {
			return err
		}

		return raidRepo.Delete(ctx, raidID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Raid deleted",
		slog.Int64("user_id", userID),
		slog.Int64("raid_id", raidID),
	)

	return nil
}

// publishEvent fires the event without letting a publish failure surface to
// the caller.
func (srv *raidService) publishEvent(ctx context.Context, event *service.RaidEvent) {
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
