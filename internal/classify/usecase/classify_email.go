package usecase

import (
	"context"
	"strings"
	"time"

	"mailclassifier-backend/internal/classify/classifier"
	"mailclassifier-backend/internal/classify/domain"
	"mailclassifier-backend/internal/classify/repository"
	"mailclassifier-backend/pkg/extractor"
	"mailclassifier-backend/pkg/nlp"

	"go.uber.org/zap"
)

// classifyUsecase implements ClassifyUsecase. It is stateless across calls:
// each request builds its own email, token and result values, so concurrent
// invocations only share the injected collaborators.
type classifyUsecase struct {
	fileFacade *extractor.Facade
	tokenizer  *nlp.Tokenizer
	classifier classifier.Classifier
	responder  *classifier.Responder
	profiles   repository.ProfileStore
	logs       repository.LogRepository
	provider   string
	costPer1K  float64
	logger     *zap.Logger
}

func NewClassifyUsecase(
	fileFacade *extractor.Facade,
	tokenizer *nlp.Tokenizer,
	cls classifier.Classifier,
	responder *classifier.Responder,
	profiles repository.ProfileStore,
	logs repository.LogRepository,
	provider string,
	costPer1K float64,
	logger *zap.Logger,
) ClassifyUsecase {
	return &classifyUsecase{
		fileFacade: fileFacade,
		tokenizer:  tokenizer,
		classifier: cls,
		responder:  responder,
		profiles:   profiles,
		logs:       logs,
		provider:   provider,
		costPer1K:  costPer1K,
		logger:     logger,
	}
}

// ExecuteFromText validates the request, classifies the email and records one
// audit log entry. The log write is best-effort: a persistence failure is
// reported but never overrides the computed result.
func (u *classifyUsecase) ExecuteFromText(ctx context.Context, in TextInput) (domain.ClassificationResult, error) {
	if strings.TrimSpace(in.Body) == "" {
		return domain.ClassificationResult{}, domain.NewBadRequest("body must not be empty")
	}

	profileID := in.ProfileID
	if profileID == "" {
		profileID = domain.DefaultProfileID
	}
	profile, err := u.profiles.GetProfile(profileID)
	if err != nil {
		return domain.ClassificationResult{}, err
	}
	if profile == nil {
		return domain.ClassificationResult{}, domain.NewBadRequest("unknown profile: %s", profileID)
	}

	email := domain.Email{Subject: in.Subject, Body: in.Body, Sender: in.Sender}
	tokens := u.tokenizer.Tokenize(u.tokenizer.Preprocess(email.Body))
	opts := classifier.Options{Mood: profile.Mood, PriorityKeywords: profile.PriorityKeywords}

	start := time.Now()
	result, err := u.classifier.Classify(ctx, email, tokens, opts)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		u.saveLog(ctx, &domain.ClassificationLog{
			Source:      in.Source,
			Subject:     email.Subject,
			BodyExcerpt: domain.Excerpt(email.Body),
			Sender:      email.Sender,
			FileName:    in.FileName,
			ProfileID:   profileID,
			LatencyMs:   latency,
			Status:      domain.StatusError,
			Error:       err.Error(),
		})
		return domain.ClassificationResult{}, err
	}

	reply := u.responder.Suggest(result, email)
	final := result.WithReply(reply)

	u.saveLog(ctx, &domain.ClassificationLog{
		Source:           in.Source,
		Subject:          email.Subject,
		BodyExcerpt:      domain.Excerpt(email.Body),
		Sender:           email.Sender,
		FileName:         in.FileName,
		ProfileID:        profileID,
		Category:         string(final.Category),
		Reason:           final.Reason,
		SuggestedReply:   final.SuggestedReply,
		UsedModel:        final.UsedModel,
		Provider:         u.providerFor(final),
		PromptTokens:     final.PromptTokens,
		CompletionTokens: final.CompletionTokens,
		TotalTokens:      final.TotalTokens,
		CostUSD:          u.cost(final.TotalTokens),
		LatencyMs:        latency,
		Status:           domain.StatusOK,
		Extra:            domain.JSONMap(final.Extra),
	})

	return final, nil
}

// ExecuteFromFile extracts text from the upload and delegates to the text path.
func (u *classifyUsecase) ExecuteFromFile(ctx context.Context, fileName string, raw []byte, in TextInput) (domain.ClassificationResult, error) {
	text, err := u.fileFacade.Extract(fileName, raw)
	if err != nil {
		return domain.ClassificationResult{}, domain.NewBadRequest("%s", err.Error())
	}

	in.Body = text
	in.Source = domain.SourceFile
	in.FileName = fileName
	return u.ExecuteFromText(ctx, in)
}

func (u *classifyUsecase) ListLogs(ctx context.Context, limit int) ([]*domain.ClassificationLog, error) {
	return u.logs.ListRecent(ctx, limit)
}

func (u *classifyUsecase) GetLog(ctx context.Context, id string) (*domain.ClassificationLog, error) {
	return u.logs.GetByID(ctx, id)
}

func (u *classifyUsecase) saveLog(ctx context.Context, log *domain.ClassificationLog) {
	if _, err := u.logs.Save(ctx, log); err != nil {
		u.logger.Error("failed to save classification log",
			zap.String("source", log.Source),
			zap.Error(err))
	}
}

func (u *classifyUsecase) providerFor(result domain.ClassificationResult) string {
	if result.UsedModel != "" {
		return u.provider
	}
	return "rule-based"
}

func (u *classifyUsecase) cost(totalTokens int) float64 {
	if totalTokens == 0 || u.costPer1K == 0 {
		return 0
	}
	return float64(totalTokens) / 1000 * u.costPer1K
}
