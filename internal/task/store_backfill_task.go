package task

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"eatda/internal/apperr"
	"eatda/internal/model"
	"eatda/internal/repository"
	"eatda/pkg/metrics"
)

// StoreRegistrar resolves a place through the map provider and stores it.
type StoreRegistrar interface {
	RegisterFromSearch(ctx context.Context, query, kakaoID string) (*model.Store, error)
}

type StoreBackfillConfig struct {
	Cron        string // seconds-field cron spec
	BatchSize   int
	Concurrency int
	Timeout     time.Duration
	// RetryBackoff is the wait after a place's first failed lookup. It doubles per
	// further failure up to MaxRetryBackoff.
	RetryBackoff    time.Duration
	MaxRetryBackoff time.Duration
}

func DefaultStoreBackfillConfig() StoreBackfillConfig {
	return StoreBackfillConfig{
		Cron:            "0 */30 * * * *",
		BatchSize:       50,
		Concurrency:     4,
		Timeout:         5 * time.Minute,
		RetryBackoff:    6 * time.Hour,
		MaxRetryBackoff: 7 * 24 * time.Hour,
	}
}

// BackfillResult counts the outcome of one run.
type BackfillResult struct {
	Created  int
	NotFound int
	Failed   int
}

// StoreBackfillTask creates store rows for places that only stories reference,
// so story detail can link to a store page.
type StoreBackfillTask struct {
	storyRepo repository.StoryRepository
	attempts  repository.BackfillAttemptRepository
	stores    StoreRegistrar
	cfg       StoreBackfillConfig
	cron      *cron.Cron
	now       func() time.Time
}

func NewStoreBackfillTask(
	storyRepo repository.StoryRepository,
	attempts repository.BackfillAttemptRepository,
	stores StoreRegistrar,
	cfg StoreBackfillConfig,
) *StoreBackfillTask {
	def := DefaultStoreBackfillConfig()
	if cfg.Cron == "" {
		cfg.Cron = def.Cron
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = def.Concurrency
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = def.RetryBackoff
	}
	if cfg.MaxRetryBackoff < cfg.RetryBackoff {
		cfg.MaxRetryBackoff = max(def.MaxRetryBackoff, cfg.RetryBackoff)
	}
	return &StoreBackfillTask{
		storyRepo: storyRepo,
		attempts:  attempts,
		stores:    stores,
		cfg:       cfg,
		cron:      cron.New(cron.WithSeconds()),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Start runs once immediately in the background and then on the cron schedule.
func (t *StoreBackfillTask) Start() error {
	if _, err := t.cron.AddFunc(t.cfg.Cron, t.runWithTimeout); err != nil {
		return fmt.Errorf("schedule store backfill %q: %w", t.cfg.Cron, err)
	}

	go func() {
		zap.L().Info("[Task] running initial store backfill")
		t.runWithTimeout()
	}()

	t.cron.Start()
	zap.L().Info("[Task] store backfill scheduled", zap.String("cron", t.cfg.Cron))
	return nil
}

// Stop waits for a running job to finish.
func (t *StoreBackfillTask) Stop() {
	<-t.cron.Stop().Done()
}

func (t *StoreBackfillTask) runWithTimeout() {
	ctx, cancel := context.WithTimeout(context.Background(), t.cfg.Timeout)
	defer cancel()

	if _, err := t.RunOnce(ctx); err != nil {
		zap.L().Error("[Task] store backfill failed", zap.Error(err))
	}
}

// RunOnce processes one batch. Per-place failures are counted and backed off, not returned.
func (t *StoreBackfillTask) RunOnce(ctx context.Context) (BackfillResult, error) {
	now := t.now()
	places, err := t.storyRepo.FindPlacesWithoutStore(ctx, now, t.cfg.BatchSize)
	if err != nil {
		return BackfillResult{}, fmt.Errorf("query places without store: %w", err)
	}
	if len(places) == 0 {
		return BackfillResult{}, nil
	}

	var (
		mu     sync.Mutex
		result BackfillResult
		wg     sync.WaitGroup
		sem    = make(chan struct{}, t.cfg.Concurrency)
	)

	zap.L().Info("[Task] store backfill started", zap.Int("places", len(places)))

	for _, place := range places {
		select {
		case <-ctx.Done():
			wg.Wait()
			zap.L().Warn("[Task] store backfill stopped", zap.Error(ctx.Err()))
			return result, nil
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(p repository.StoryPlace) {
			defer wg.Done()
			defer func() { <-sem }()

			outcome := t.backfill(ctx, p)
			metrics.ObserveBackfill(outcome)
			t.recordOutcome(ctx, p.StoreKakaoID, outcome, now)

			mu.Lock()
			defer mu.Unlock()
			switch outcome {
			case "created":
				result.Created++
			case "not_found":
				result.NotFound++
			default:
				result.Failed++
			}
		}(place)
	}

	wg.Wait()
	zap.L().Info("[Task] store backfill finished",
		zap.Int("created", result.Created),
		zap.Int("not_found", result.NotFound),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

func (t *StoreBackfillTask) backfill(ctx context.Context, p repository.StoryPlace) string {
	_, err := t.stores.RegisterFromSearch(ctx, p.StoreName, p.StoreKakaoID)
	switch {
	case err == nil:
		return "created"
	case apperr.Is(err, apperr.StoreNotFound):
		zap.L().Debug("[Task] place no longer searchable", zap.String("kakao_id", p.StoreKakaoID))
		return "not_found"
	default:
		zap.L().Warn("[Task] backfill place failed",
			zap.String("kakao_id", p.StoreKakaoID),
			zap.String("name", p.StoreName),
			zap.Error(err),
		)
		return "error"
	}
}

// recordOutcome clears the attempt of a created place and backs off a failed one.
func (t *StoreBackfillTask) recordOutcome(ctx context.Context, kakaoID, outcome string, now time.Time) {
	var err error
	if outcome == "created" {
		err = t.attempts.Delete(ctx, kakaoID)
	} else {
		_, err = t.attempts.RecordFailure(ctx, kakaoID, outcome, now, t.retryBackoff)
	}
	if err != nil {
		zap.L().Warn("[Task] record backfill attempt failed", zap.String("kakao_id", kakaoID), zap.Error(err))
	}
}

func (t *StoreBackfillTask) retryBackoff(attempts int) time.Duration {
	wait := t.cfg.RetryBackoff
	for i := 1; i < attempts && wait < t.cfg.MaxRetryBackoff; i++ {
		wait *= 2
	}
	return min(wait, t.cfg.MaxRetryBackoff)
}
