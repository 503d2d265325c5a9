// Package usecases contains the application services mutating and reading
// the rate-limit policy document. Every mutation follows the same sequence:
// load the current document, apply a validated merge, persist, then publish
// a change event best-effort.
package usecases

import (
	"context"
	"errors"

	"gantry/internal/application/ratelimit/dto"
	"gantry/internal/domain/ratelimit"
	apperrors "gantry/internal/shared/errors"
)

// GetPolicyUseCase reads the current policy document. Reads bypass the
// mutation path entirely; a store holding no document yields the built-in
// default.
type GetPolicyUseCase struct {
	repo ratelimit.PolicyRepository
}

func NewGetPolicyUseCase(repo ratelimit.PolicyRepository) *GetPolicyUseCase {
	return &GetPolicyUseCase{repo: repo}
}

func (uc *GetPolicyUseCase) Execute(ctx context.Context) (*dto.PolicyDocumentDTO, error) {
	doc, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return dto.DocumentFromDomain(doc), nil
}

// mapDomainError translates domain sentinels into the application error
// taxonomy surfaced to callers.
func mapDomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ratelimit.ErrRuleNotFound),
		errors.Is(err, ratelimit.ErrOverrideNotFound):
		return apperrors.NewNotFoundError(err.Error())
	case errors.Is(err, ratelimit.ErrInvalidDefaultRate),
		errors.Is(err, ratelimit.ErrMissingEndpoints),
		errors.Is(err, ratelimit.ErrNonPositiveRate),
		errors.Is(err, ratelimit.ErrNegativeBurst),
		errors.Is(err, ratelimit.ErrEmptyPath),
		errors.Is(err, ratelimit.ErrEmptyMethod),
		errors.Is(err, ratelimit.ErrEmptyUserID):
		return apperrors.NewValidationError(err.Error())
	default:
		return err
	}
}
