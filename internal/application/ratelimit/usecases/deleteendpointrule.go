package usecases

import (
	"context"

	"gantry/internal/domain/ratelimit"
	apperrors "gantry/internal/shared/errors"
	"gantry/internal/shared/logger"
)

// DeleteEndpointRuleUseCase removes one endpoint+method rule. When the last
// method of a path is removed the path entry goes with it. A delete
// targeting an absent rule fails without writing.
type DeleteEndpointRuleUseCase struct {
	repo     ratelimit.PolicyRepository
	notifier ratelimit.ChangeNotifier
	logger   logger.Interface
}

func NewDeleteEndpointRuleUseCase(
	repo ratelimit.PolicyRepository,
	notifier ratelimit.ChangeNotifier,
	logger logger.Interface,
) *DeleteEndpointRuleUseCase {
	return &DeleteEndpointRuleUseCase{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *DeleteEndpointRuleUseCase) Execute(ctx context.Context, path, method string) error {
	if path == "" {
		return apperrors.NewValidationError("endpoint path is required")
	}
	if method == "" {
		return apperrors.NewValidationError("method is required")
	}

	doc, err := uc.repo.Get(ctx)
	if err != nil {
		return err
	}

	if err := doc.RemoveEndpointRule(path, method); err != nil {
		return mapDomainError(err)
	}

	if err := uc.repo.Save(ctx, doc); err != nil {
		return err
	}

	notify(ctx, uc.notifier, uc.logger, ratelimit.ChangeEvent{
		Type:   ratelimit.ChangeEndpointRuleDeleted,
		Path:   path,
		Method: method,
	})

	uc.logger.Infow("endpoint rule deleted", "path", path, "method", method)
	return nil
}
