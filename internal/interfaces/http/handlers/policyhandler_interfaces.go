package handlers

import (
	"context"

	"gantry/internal/application/ratelimit/dto"
	"gantry/internal/application/ratelimit/usecases"
)

// Use case interfaces consumed by the handlers; satisfied by the concrete
// use cases and by test doubles.

type policyReader interface {
	Execute(ctx context.Context) (*dto.PolicyDocumentDTO, error)
}

type policyReplacer interface {
	Execute(ctx context.Context, document dto.PolicyDocumentDTO) error
}

type endpointRuleUpserter interface {
	Execute(ctx context.Context, cmd usecases.UpsertEndpointRuleCommand) (*dto.RuleDTO, error)
}

type endpointRuleDeleter interface {
	Execute(ctx context.Context, path, method string) error
}

type userOverrideUpserter interface {
	Execute(ctx context.Context, cmd usecases.UpsertUserOverrideCommand) (*dto.RuleDTO, error)
}

type userOverrideDeleter interface {
	Execute(ctx context.Context, userID string) error
}

type statsWindowReader interface {
	Execute(ctx context.Context, n int) (*dto.StatsWindowDTO, error)
}
