package usecases

import (
	"context"

	"gantry/internal/domain/ratelimit"
	apperrors "gantry/internal/shared/errors"
	"gantry/internal/shared/logger"
)

// DeleteUserOverrideUseCase removes one per-user rule; an absent target
// fails without writing.
type DeleteUserOverrideUseCase struct {
	repo     ratelimit.PolicyRepository
	notifier ratelimit.ChangeNotifier
	logger   logger.Interface
}

func NewDeleteUserOverrideUseCase(
	repo ratelimit.PolicyRepository,
	notifier ratelimit.ChangeNotifier,
	logger logger.Interface,
) *DeleteUserOverrideUseCase {
	return &DeleteUserOverrideUseCase{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *DeleteUserOverrideUseCase) Execute(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.NewValidationError("user_id is required")
	}

	doc, err := uc.repo.Get(ctx)
	if err != nil {
		return err
	}

	if err := doc.RemoveUserOverride(userID); err != nil {
		return mapDomainError(err)
	}

	if err := uc.repo.Save(ctx, doc); err != nil {
		return err
	}

	notify(ctx, uc.notifier, uc.logger, ratelimit.ChangeEvent{
		Type:   ratelimit.ChangeUserOverrideDeleted,
		UserID: userID,
	})

	uc.logger.Infow("user override deleted", "user_id", userID)
	return nil
}
