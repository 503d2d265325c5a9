package usecases

import (
	"context"

	"gantry/internal/application/ratelimit/dto"
	"gantry/internal/domain/ratelimit"
	apperrors "gantry/internal/shared/errors"
	"gantry/internal/shared/logger"
)

// UpsertEndpointRuleCommand carries the raw request values. Rate and burst
// arrive as decoded JSON values (number or numeric string) and are parsed
// into a typed rule before any store write.
type UpsertEndpointRuleCommand struct {
	Path              string
	Method            string
	RequestsPerMinute any
	BurstSize         any
}

// UpsertEndpointRuleUseCase merges one endpoint+method rule into the
// document, leaving unrelated endpoints and overrides untouched.
type UpsertEndpointRuleUseCase struct {
	repo     ratelimit.PolicyRepository
	notifier ratelimit.ChangeNotifier
	logger   logger.Interface
}

func NewUpsertEndpointRuleUseCase(
	repo ratelimit.PolicyRepository,
	notifier ratelimit.ChangeNotifier,
	logger logger.Interface,
) *UpsertEndpointRuleUseCase {
	return &UpsertEndpointRuleUseCase{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *UpsertEndpointRuleUseCase) Execute(ctx context.Context, cmd UpsertEndpointRuleCommand) (*dto.RuleDTO, error) {
	if cmd.Path == "" {
		return nil, apperrors.NewValidationError("endpoint path is required")
	}
	if cmd.Method == "" {
		return nil, apperrors.NewValidationError("method is required")
	}

	doc, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	rule, err := ratelimit.NewRule(cmd.RequestsPerMinute, cmd.BurstSize, doc.DefaultBurstSize)
	if err != nil {
		return nil, mapDomainError(err)
	}

	doc.SetEndpointRule(cmd.Path, cmd.Method, rule)

	if err := uc.repo.Save(ctx, doc); err != nil {
		return nil, err
	}

	notify(ctx, uc.notifier, uc.logger, ratelimit.ChangeEvent{
		Type:   ratelimit.ChangeEndpointRuleUpserted,
		Path:   cmd.Path,
		Method: cmd.Method,
		Rule:   &rule,
	})

	uc.logger.Infow("endpoint rule upserted",
		"path", cmd.Path,
		"method", cmd.Method,
		"rpm", rule.RequestsPerMinute,
		"burst", rule.BurstSize,
	)

	result := dto.RuleFromDomain(rule)
	return &result, nil
}
