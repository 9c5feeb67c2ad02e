package service

import (
	"context"
	"sync"
	"time"

	"therapy-booking-service/internal/domain/entity"
	"therapy-booking-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// Timeout for a single deferred draft write
const draftSaveTimeout = 5 * time.Second

// DraftAutosaveService coalesces rapid draft saves into one write per form.
//
// Keystroke saves go through Schedule, which arms a timer per draft key;
// each new edit cancels the prior pending save before arming a new one, so
// only the latest snapshot within the settle window is written.
// Blur/change saves go through Flush and write immediately, cancelling any
// pending timer for the same key. Last write wins; drafts have a single
// foreground writer so no further coordination is needed.
type DraftAutosaveService struct {
	draftRepo repository.DraftRepository
	log       *logrus.Logger
	settle    time.Duration

	mu      sync.Mutex
	pending map[string]*pendingSave
	stopped bool
}

// pendingSave is the cancellation token for one scheduled write
type pendingSave struct {
	timer *time.Timer
	draft *entity.LocalDraft
}

func NewDraftAutosaveService(draftRepo repository.DraftRepository, log *logrus.Logger, settle time.Duration) *DraftAutosaveService {
	return &DraftAutosaveService{
		draftRepo: draftRepo,
		log:       log,
		settle:    settle,
		pending:   make(map[string]*pendingSave),
	}
}

// Schedule queues a debounced save for the draft, replacing any save
// already pending for the same key.
func (s *DraftAutosaveService) Schedule(key string, draft *entity.LocalDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	if prev, ok := s.pending[key]; ok {
		prev.timer.Stop()
	}

	save := &pendingSave{draft: draft}
	save.timer = time.AfterFunc(s.settle, func() {
		s.commit(key, save)
	})
	s.pending[key] = save
}

// Flush writes the draft immediately, cancelling any pending save for the
// same key.
func (s *DraftAutosaveService) Flush(ctx context.Context, key string, draft *entity.LocalDraft) error {
	s.cancel(key)
	return s.draftRepo.Save(ctx, key, draft)
}

// Restore returns the most recent snapshot for the key: a pending unsaved
// draft if one exists, otherwise whatever the store holds. Returns
// (nil, nil) when there is no draft at all.
func (s *DraftAutosaveService) Restore(ctx context.Context, key string) (*entity.LocalDraft, error) {
	s.mu.Lock()
	if save, ok := s.pending[key]; ok {
		draft := save.draft
		s.mu.Unlock()
		return draft, nil
	}
	s.mu.Unlock()

	return s.draftRepo.FindByKey(ctx, key)
}

// Discard drops the draft, pending or persisted.
func (s *DraftAutosaveService) Discard(ctx context.Context, key string) error {
	s.cancel(key)
	return s.draftRepo.Delete(ctx, key)
}

// Stop flushes every pending save synchronously. Call during graceful
// shutdown so debounced edits are not lost.
func (s *DraftAutosaveService) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	remaining := s.pending
	s.pending = make(map[string]*pendingSave)
	s.mu.Unlock()

	for key, save := range remaining {
		save.timer.Stop()
		s.persist(key, save.draft)
	}

	s.log.Info("DraftAutosaveService stopped")
}

// commit runs when a settle timer fires. The token comparison guards
// against a timer that fired while its save was being replaced.
func (s *DraftAutosaveService) commit(key string, save *pendingSave) {
	s.mu.Lock()
	current, ok := s.pending[key]
	if !ok || current != save {
		s.mu.Unlock()
		return
	}
	delete(s.pending, key)
	s.mu.Unlock()

	s.persist(key, save.draft)
}

func (s *DraftAutosaveService) persist(key string, draft *entity.LocalDraft) {
	ctx, cancel := context.WithTimeout(context.Background(), draftSaveTimeout)
	defer cancel()

	if err := s.draftRepo.Save(ctx, key, draft); err != nil {
		s.log.Warnf("Failed to autosave draft %s: %+v", key, err)
	}
}

// cancel removes any pending save for the key
func (s *DraftAutosaveService) cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if save, ok := s.pending[key]; ok {
		save.timer.Stop()
		delete(s.pending, key)
	}
}
