package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mailclassifier-backend/internal/classify/classifier"
	"mailclassifier-backend/internal/classify/domain"
	"mailclassifier-backend/internal/classify/repository"
	"mailclassifier-backend/pkg/nlp"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SyncConfig tunes one mailbox sync worker.
type SyncConfig struct {
	ProfileID          string
	Profile            *domain.Profile
	ProductiveFolder   string
	UnproductiveFolder string
	Interval           time.Duration
}

// SyncService classifies unread messages from a mail source and files each
// one into a folder derived from its category. Messages are processed
// strictly sequentially within one run, and every failure is isolated to the
// message that caused it: one poison message never aborts the batch.
type SyncService struct {
	source     domain.MailSource
	tokenizer  *nlp.Tokenizer
	classifier classifier.Classifier
	logs       repository.LogRepository
	cfg        SyncConfig
	logger     *zap.Logger

	mu   sync.Mutex
	cron *cron.Cron
}

func NewSyncService(
	source domain.MailSource,
	tokenizer *nlp.Tokenizer,
	cls classifier.Classifier,
	logs repository.LogRepository,
	cfg SyncConfig,
	logger *zap.Logger,
) *SyncService {
	if cfg.ProfileID == "" {
		cfg.ProfileID = domain.DefaultProfileID
	}
	if cfg.ProductiveFolder == "" {
		cfg.ProductiveFolder = "Produtivos"
	}
	if cfg.UnproductiveFolder == "" {
		cfg.UnproductiveFolder = "Improdutivos"
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	return &SyncService{
		source:     source,
		tokenizer:  tokenizer,
		classifier: cls,
		logs:       logs,
		cfg:        cfg,
		logger:     logger,
	}
}

// Run processes the current unread set once. No retries happen within a run;
// already-moved messages will not reappear in the unread set, so repeated
// runs converge.
func (s *SyncService) Run(ctx context.Context) error {
	messages, err := s.source.FetchUnread(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch unread messages: %w", err)
	}

	s.logger.Info("mailbox sync started",
		zap.Int("unread", len(messages)),
		zap.String("profile_id", s.cfg.ProfileID))

	for _, msg := range messages {
		s.processMessage(ctx, msg)
	}
	return nil
}

func (s *SyncService) processMessage(ctx context.Context, msg domain.UnreadMessage) {
	tokens := s.tokenizer.Tokenize(s.tokenizer.Preprocess(msg.Email.Body))

	opts := classifier.Options{}
	if s.cfg.Profile != nil {
		opts.Mood = s.cfg.Profile.Mood
		opts.PriorityKeywords = s.cfg.Profile.PriorityKeywords
	}

	result, err := s.classifier.Classify(ctx, msg.Email, tokens, opts)
	if err != nil {
		s.logger.Error("failed to classify message, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		return
	}

	folder := s.cfg.UnproductiveFolder
	if result.Category == domain.CategoryProductive {
		folder = s.cfg.ProductiveFolder
	}
	result = result.
		WithExtra(domain.ExtraMovedTo, folder).
		WithExtra(domain.ExtraProfileID, s.cfg.ProfileID)

	// Log write and mailbox move are not transactional with each other; a
	// failure on either side is reported and the batch continues.
	_, err = s.logs.Save(ctx, &domain.ClassificationLog{
		Source:           domain.SourceIMAP,
		Subject:          msg.Email.Subject,
		BodyExcerpt:      domain.Excerpt(msg.Email.Body),
		Sender:           msg.Email.Sender,
		ProfileID:        s.cfg.ProfileID,
		Category:         string(result.Category),
		Reason:           result.Reason,
		SuggestedReply:   result.SuggestedReply,
		UsedModel:        result.UsedModel,
		PromptTokens:     result.PromptTokens,
		CompletionTokens: result.CompletionTokens,
		TotalTokens:      result.TotalTokens,
		Status:           domain.StatusOK,
		Extra:            domain.JSONMap(result.Extra),
	})
	if err != nil {
		s.logger.Error("failed to save sync log",
			zap.String("message_id", msg.ID),
			zap.Error(err))
	}

	if err := s.source.MoveToFolder(ctx, msg.ID, folder); err != nil {
		s.logger.Warn("failed to move message",
			zap.String("message_id", msg.ID),
			zap.String("folder", folder),
			zap.Error(err))
		return
	}

	s.logger.Info("message filed",
		zap.String("message_id", msg.ID),
		zap.String("category", string(result.Category)),
		zap.String("folder", folder))
}

// Start schedules Run on the configured interval. It is a no-op when the
// worker is already running.
func (s *SyncService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return
	}

	c := cron.New()
	_, err := c.AddFunc(fmt.Sprintf("@every %s", s.cfg.Interval), func() {
		if err := s.Run(context.Background()); err != nil {
			s.logger.Error("mailbox sync run failed", zap.Error(err))
		}
	})
	if err != nil {
		s.logger.Error("failed to schedule mailbox sync", zap.Error(err))
		return
	}
	c.Start()
	s.cron = c
}

// Stop halts the schedule; an in-flight run finishes its current message
// sequence.
func (s *SyncService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron == nil {
		return
	}
	s.cron.Stop()
	s.cron = nil
}

// Running reports whether the periodic schedule is active.
func (s *SyncService) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cron != nil
}

// ProfileID exposes the active profile for the status endpoint.
func (s *SyncService) ProfileID() string {
	return s.cfg.ProfileID
}
