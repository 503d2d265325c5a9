package usecases

import (
	"context"

	"gantry/internal/application/ratelimit/dto"
	"gantry/internal/domain/ratelimit"
	"gantry/internal/shared/logger"
)

// ReplacePolicyUseCase overwrites the whole policy document. This is the
// only operation that replaces rather than merges; it validates the document
// in full, nested rules included, before touching the store.
type ReplacePolicyUseCase struct {
	repo     ratelimit.PolicyRepository
	notifier ratelimit.ChangeNotifier
	logger   logger.Interface
}

func NewReplacePolicyUseCase(
	repo ratelimit.PolicyRepository,
	notifier ratelimit.ChangeNotifier,
	logger logger.Interface,
) *ReplacePolicyUseCase {
	return &ReplacePolicyUseCase{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *ReplacePolicyUseCase) Execute(ctx context.Context, document dto.PolicyDocumentDTO) error {
	doc := document.ToDomain()
	if err := doc.Validate(); err != nil {
		return mapDomainError(err)
	}
	doc.Normalize()

	if err := uc.repo.Save(ctx, doc); err != nil {
		return err
	}

	uc.notify(ctx, ratelimit.ChangeEvent{Type: ratelimit.ChangeFullConfigReplaced})

	uc.logger.Infow("policy document replaced",
		"default_rpm", doc.DefaultRequestsPerMinute,
		"endpoints", len(doc.Endpoints),
		"user_overrides", len(doc.UserOverrides),
	)
	return nil
}

func (uc *ReplacePolicyUseCase) notify(ctx context.Context, event ratelimit.ChangeEvent) {
	notify(ctx, uc.notifier, uc.logger, event)
}

// notify publishes a change event and swallows failures: a missed
// notification never fails or rolls back a persisted mutation.
func notify(ctx context.Context, notifier ratelimit.ChangeNotifier, log logger.Interface, event ratelimit.ChangeEvent) {
	if notifier == nil {
		return
	}
	if err := notifier.NotifyChange(ctx, event); err != nil {
		log.Warnw("failed to publish change event",
			"type", event.Type,
			"error", err,
		)
	}
}
