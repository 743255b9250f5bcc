package api

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"mailclassifier-backend/internal/classify/classifier"
	"mailclassifier-backend/internal/classify/domain"
	"mailclassifier-backend/internal/classify/dto"
	"mailclassifier-backend/internal/classify/repository"
	"mailclassifier-backend/internal/classify/usecase"
	"mailclassifier-backend/pkg/config"
	"mailclassifier-backend/pkg/imap"
	"mailclassifier-backend/pkg/nlp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	classifyUc usecase.ClassifyUsecase
	tokenizer  *nlp.Tokenizer
	classifier classifier.Classifier
	profiles   repository.ProfileStore
	logs       repository.LogRepository
	config     *config.Config
	logger     *zap.Logger

	// The active mailbox sync worker, owned by the IMAP endpoints.
	syncMu sync.Mutex
	sync   *usecase.SyncService
}

func NewHandler(
	classifyUc usecase.ClassifyUsecase,
	tokenizer *nlp.Tokenizer,
	cls classifier.Classifier,
	profiles repository.ProfileStore,
	logs repository.LogRepository,
	cfg *config.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		classifyUc: classifyUc,
		tokenizer:  tokenizer,
		classifier: cls,
		profiles:   profiles,
		logs:       logs,
		config:     cfg,
		logger:     logger,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	SetupRoutes(r, h)
	return r.Run(addr)
}

// Classify accepts either a JSON payload or a multipart upload carrying a
// .pdf/.txt/.eml file.
func (h *Handler) Classify(c *gin.Context) {
	contentType := c.ContentType()

	switch {
	case contentType == "application/json":
		var req dto.ClassifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		result, err := h.classifyUc.ExecuteFromText(c.Request.Context(), usecase.TextInput{
			Subject:   req.Subject,
			Body:      req.Body,
			Sender:    req.Sender,
			ProfileID: req.ProfileID,
			Source:    domain.SourceJSON,
		})
		if err != nil {
			h.renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewClassifyResponse(result, h.cost(result)))

	case contentType == "multipart/form-data":
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "send 'file' (.pdf/.txt/.eml)"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload"})
			return
		}
		defer file.Close()

		raw, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload"})
			return
		}

		result, err := h.classifyUc.ExecuteFromFile(c.Request.Context(), fileHeader.Filename, raw, usecase.TextInput{
			Subject:   c.PostForm("subject"),
			Sender:    c.PostForm("sender"),
			ProfileID: firstNonEmpty(c.PostForm("profile_id"), c.Query("profile_id")),
		})
		if err != nil {
			h.renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewClassifyResponse(result, h.cost(result)))

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "use JSON or multipart/form-data"})
	}
}

func (h *Handler) ListLogs(c *gin.Context) {
	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	logs, err := h.classifyUc.ListLogs(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.LogsResponse{Logs: logs, Limit: limit})
}

func (h *Handler) GetLog(c *gin.Context) {
	log, err := h.classifyUc.GetLog(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if log == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "log not found"})
		return
	}
	c.JSON(http.StatusOK, log)
}

// ConfigureIMAP replaces the active mailbox sync worker with one built from
// the request.
func (h *Handler) ConfigureIMAP(c *gin.Context) {
	var req dto.ImapConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profileID := req.ProfileID
	if profileID == "" {
		profileID = domain.DefaultProfileID
	}
	profile, err := h.profiles.GetProfile(profileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if profile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown profile: " + profileID})
		return
	}

	interval := h.config.SyncInterval
	if req.Interval > 0 {
		interval = time.Duration(req.Interval) * time.Second
	}

	source := imap.NewSource(req.Host, req.Port, req.User, req.Password, req.Mailbox)
	service := usecase.NewSyncService(source, h.tokenizer, h.classifier, h.logs, usecase.SyncConfig{
		ProfileID:          profileID,
		Profile:            profile,
		ProductiveFolder:   h.config.ProductiveFolder,
		UnproductiveFolder: h.config.UnproductiveFolder,
		Interval:           interval,
	}, h.logger)

	h.syncMu.Lock()
	if h.sync != nil {
		h.sync.Stop()
	}
	h.sync = service
	h.syncMu.Unlock()

	service.Start()
	go func() {
		if err := service.Run(context.Background()); err != nil {
			h.logger.Error("initial mailbox sync failed", zap.Error(err))
		}
	}()

	c.JSON(http.StatusOK, gin.H{"status": "imap started", "profile_id": profileID})
}

func (h *Handler) IMAPStatus(c *gin.Context) {
	h.syncMu.Lock()
	service := h.sync
	h.syncMu.Unlock()

	if service == nil || !service.Running() {
		c.JSON(http.StatusOK, gin.H{"status": "not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "running", "profile_id": service.ProfileID()})
}

func (h *Handler) StopIMAP(c *gin.Context) {
	h.syncMu.Lock()
	service := h.sync
	h.sync = nil
	h.syncMu.Unlock()

	if service == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no IMAP sync running"})
		return
	}
	service.Stop()
	c.JSON(http.StatusOK, gin.H{"status": "imap stopped"})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	if domain.IsBadRequest(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (h *Handler) cost(result domain.ClassificationResult) float64 {
	if result.TotalTokens == 0 || h.config.LLMCostPer1K == 0 {
		return 0
	}
	return float64(result.TotalTokens) / 1000 * h.config.LLMCostPer1K
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
