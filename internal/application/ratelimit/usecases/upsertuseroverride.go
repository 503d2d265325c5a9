package usecases

import (
	"context"

	"gantry/internal/application/ratelimit/dto"
	"gantry/internal/domain/ratelimit"
	apperrors "gantry/internal/shared/errors"
	"gantry/internal/shared/logger"
)

type UpsertUserOverrideCommand struct {
	UserID            string
	RequestsPerMinute any
	BurstSize         any
}

// UpsertUserOverrideUseCase merges one per-user rule into the document,
// with the same validation and burst defaulting as endpoint rules.
type UpsertUserOverrideUseCase struct {
	repo     ratelimit.PolicyRepository
	notifier ratelimit.ChangeNotifier
	logger   logger.Interface
}

func NewUpsertUserOverrideUseCase(
	repo ratelimit.PolicyRepository,
	notifier ratelimit.ChangeNotifier,
	logger logger.Interface,
) *UpsertUserOverrideUseCase {
	return &UpsertUserOverrideUseCase{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *UpsertUserOverrideUseCase) Execute(ctx context.Context, cmd UpsertUserOverrideCommand) (*dto.RuleDTO, error) {
	if cmd.UserID == "" {
		return nil, apperrors.NewValidationError("user_id is required")
	}

	doc, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	rule, err := ratelimit.NewRule(cmd.RequestsPerMinute, cmd.BurstSize, doc.DefaultBurstSize)
	if err != nil {
		return nil, mapDomainError(err)
	}

	doc.SetUserOverride(cmd.UserID, rule)

	if err := uc.repo.Save(ctx, doc); err != nil {
		return nil, err
	}

	notify(ctx, uc.notifier, uc.logger, ratelimit.ChangeEvent{
		Type:   ratelimit.ChangeUserOverrideUpserted,
		UserID: cmd.UserID,
		Rule:   &rule,
	})

	uc.logger.Infow("user override upserted",
		"user_id", cmd.UserID,
		"rpm", rule.RequestsPerMinute,
		"burst", rule.BurstSize,
	)

	result := dto.RuleFromDomain(rule)
	return &result, nil
}
