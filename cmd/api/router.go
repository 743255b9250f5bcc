package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.POST("/classify", h.Classify)

		logs := api.Group("/logs")
		{
			logs.GET("", h.ListLogs)
			logs.GET("/:id", h.GetLog)
		}

		// Mailbox sync worker control
		imap := api.Group("/imap")
		{
			imap.POST("/config", h.ConfigureIMAP)
			imap.GET("/status", h.IMAPStatus)
			imap.POST("/stop", h.StopIMAP)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/llm", h.GetLLMSettings)
			settings.POST("/llm/test", h.TestLLMConnection)
		}
	}
}
