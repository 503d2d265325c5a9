// Package store implements the redis-backed ports: the policy document
// store and the per-minute stats reader.
package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"gantry/internal/domain/ratelimit"
	apperrors "gantry/internal/shared/errors"
	"gantry/internal/shared/logger"
)

// PolicyDocumentKey is the well-known key the serialized policy document
// lives under. The enforcement gateway reads the same key.
const PolicyDocumentKey = "rate_limit_config"

// RedisPolicyStore persists the policy document as a single JSON record.
//
// There is no transaction spanning Get and Save: concurrent mutators race
// and the later Save overwrites the whole document (last-writer-wins).
type RedisPolicyStore struct {
	client *redis.Client
	logger logger.Interface
}

var _ ratelimit.PolicyRepository = (*RedisPolicyStore)(nil)

func NewRedisPolicyStore(client *redis.Client, logger logger.Interface) *RedisPolicyStore {
	return &RedisPolicyStore{
		client: client,
		logger: logger,
	}
}

// Get returns the persisted document, or the built-in default when the key
// does not exist. A missing document is not an error.
func (s *RedisPolicyStore) Get(ctx context.Context) (*ratelimit.PolicyDocument, error) {
	data, err := s.client.Get(ctx, PolicyDocumentKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ratelimit.DefaultPolicyDocument(), nil
		}
		return nil, apperrors.NewStoreError("failed to read policy document", err.Error())
	}

	var doc ratelimit.PolicyDocument
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		s.logger.Errorw("stored policy document is not valid JSON", "error", err)
		return nil, apperrors.NewInternalError("stored policy document is corrupted")
	}

	doc.Normalize()
	return &doc, nil
}

// Save serializes the document and writes it under its key in one atomic
// SET. The write is not retried; store failures surface to the caller.
func (s *RedisPolicyStore) Save(ctx context.Context, doc *ratelimit.PolicyDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return apperrors.NewInternalError("failed to serialize policy document", err.Error())
	}

	if err := s.client.Set(ctx, PolicyDocumentKey, data, 0).Err(); err != nil {
		return apperrors.NewStoreError("failed to persist policy document", err.Error())
	}

	return nil
}
