package main

import (
	api "mailclassifier-backend/cmd/api"
	"mailclassifier-backend/internal/classify/classifier"
	"mailclassifier-backend/internal/classify/domain"
	"mailclassifier-backend/internal/classify/repository"
	"mailclassifier-backend/internal/classify/usecase"
	"mailclassifier-backend/pkg/config"
	"mailclassifier-backend/pkg/database"
	"mailclassifier-backend/pkg/extractor"
	"mailclassifier-backend/pkg/llm"
	"mailclassifier-backend/pkg/logger"
	"mailclassifier-backend/pkg/nlp"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&domain.ClassificationLog{}); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	// Initialize repositories (dependency injection)
	logRepo := repository.NewLogRepository(db)
	profileStore, err := repository.NewJSONProfileStore(cfg.ProfilesPath)
	if err != nil {
		log.Fatal("failed to load profiles", zap.Error(err))
	}

	// Classification pipeline
	tokenizer := nlp.NewTokenizer(cfg.TokenizerLang)
	ruleBased := classifier.NewRuleBased(tokenizer)

	// The LLM escalator only runs with a configured credential. Without one
	// the hybrid classifier answers with the rule-based result alone.
	var escalator *classifier.LLMEscalator
	if cfg.LLMAPIKey != "" {
		client := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMTimeout)
		escalator = classifier.NewLLMEscalator(client, cfg.LLMModel)
		log.Info("llm escalation enabled", zap.String("provider", cfg.LLMProvider), zap.String("model", cfg.LLMModel))
	} else {
		log.Info("llm escalation disabled, running rule-based only")
	}
	hybrid := classifier.NewHybrid(ruleBased, escalator, cfg.RuleBasedMinConfidence)
	responder := classifier.NewResponder()

	// Initialize use cases (dependency injection)
	classifyUc := usecase.NewClassifyUsecase(
		extractor.NewFacade(),
		tokenizer,
		hybrid,
		responder,
		profileStore,
		logRepo,
		cfg.LLMProvider,
		cfg.LLMCostPer1K,
		log,
	)

	// Initialize HTTP handler
	handler := api.NewHandler(classifyUc, tokenizer, hybrid, profileStore, logRepo, cfg, log)

	// Start server
	log.Info("server starting", zap.String("port", cfg.Port))
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
