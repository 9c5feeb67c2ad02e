package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"therapy-booking-service/internal/domain/entity"
	"therapy-booking-service/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const draftKeyPrefix = "draft:"

type draftRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDraftRepository(client *redis.Client, ttl time.Duration) repository.DraftRepository {
	return &draftRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *draftRepository) Save(ctx context.Context, key string, draft *entity.LocalDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}

	if err := r.client.Set(ctx, draftKeyPrefix+key, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}

	return nil
}

func (r *draftRepository) FindByKey(ctx context.Context, key string) (*entity.LocalDraft, error) {
	payload, err := r.client.Get(ctx, draftKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read draft: %w", err)
	}

	var draft entity.LocalDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}

	return &draft, nil
}

func (r *draftRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, draftKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
