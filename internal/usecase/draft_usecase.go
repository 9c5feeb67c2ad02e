package usecase

import (
	"context"
	"errors"
	"time"

	"therapy-booking-service/internal/converter"
	"therapy-booking-service/internal/delivery/dto"
	"therapy-booking-service/internal/domain/entity"
	"therapy-booking-service/internal/service"

	"github.com/sirupsen/logrus"
)

var ErrDraftNotFound = errors.New("draft not found")

type DraftUsecase interface {
	// SaveDraft persists a snapshot. Returns scheduled=true when the save
	// was queued behind the settle window rather than written immediately.
	SaveDraft(ctx context.Context, key string, req *dto.SaveDraftRequest) (scheduled bool, err error)
	RestoreDraft(ctx context.Context, key string) (*dto.DraftResponse, error)
	DiscardDraft(ctx context.Context, key string) error
}

type draftUsecase struct {
	log      *logrus.Logger
	autosave *service.DraftAutosaveService
	now      func() time.Time
}

func NewDraftUsecase(log *logrus.Logger, autosave *service.DraftAutosaveService) DraftUsecase {
	return &draftUsecase{
		log:      log,
		autosave: autosave,
		now:      time.Now,
	}
}

func (u *draftUsecase) SaveDraft(ctx context.Context, key string, req *dto.SaveDraftRequest) (bool, error) {
	draft := entity.NewLocalDraft()
	for name, value := range req.Fields {
		draft.Fields[name] = value
	}
	for name, checked := range req.Checkboxes {
		draft.Checkboxes[name] = checked
	}
	draft.UpdatedAt = u.now()

	if req.Immediate {
		return false, u.autosave.Flush(ctx, key, draft)
	}

	u.autosave.Schedule(key, draft)
	return true, nil
}

func (u *draftUsecase) RestoreDraft(ctx context.Context, key string) (*dto.DraftResponse, error) {
	draft, err := u.autosave.Restore(ctx, key)
	if err != nil {
		u.log.Warnf("Failed to restore draft %s: %+v", key, err)
		return nil, err
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}

	return converter.DraftToResponse(key, draft), nil
}

func (u *draftUsecase) DiscardDraft(ctx context.Context, key string) error {
	return u.autosave.Discard(ctx, key)
}
