package repository

import (
	"context"

	"therapy-booking-service/internal/domain/entity"
)

// DraftRepository persists in-progress form drafts keyed by form identity.
// FindByKey returns (nil, nil) when no draft exists.
type DraftRepository interface {
	Save(ctx context.Context, key string, draft *entity.LocalDraft) error
	FindByKey(ctx context.Context, key string) (*entity.LocalDraft, error)
	Delete(ctx context.Context, key string) error
}
