package handler

import (
	"context"
	"io"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/quizzme-server/internal/logger"
	"github.com/dtroode/quizzme-server/internal/model"
)

type ExportService interface {
	ExportDeck(ctx context.Context, owner, name string) (string, error)
	OpenExport(ctx context.Context, owner, key string) (io.ReadCloser, error)
}

// Export handles deck exports to object storage.
type Export struct {
	exportService  ExportService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewExport(exportService ExportService, contextManager model.ContextManager, logger *logger.Logger) *Export {
	return &Export{
		exportService:  exportService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Create exports the deck named by the id query parameter.
func (h *Export) Create(c *gin.Context) {
	owner, ok := requireOwner(c, h.contextManager)
	if !ok {
		return
	}

	key, err := h.exportService.ExportDeck(c.Request.Context(), owner, c.Query("id"))
	if err != nil {
		h.logger.Error("Export handler: export failed",
			"owner", owner,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"key": key})
}

// Download streams the export named by the key query parameter.
func (h *Export) Download(c *gin.Context) {
	owner, ok := requireOwner(c, h.contextManager)
	if !ok {
		return
	}

	key := c.Query("key")
	rc, err := h.exportService.OpenExport(c.Request.Context(), owner, key)
	if err != nil {
		handleError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="`+path.Base(key)+`"`)
	c.DataFromReader(http.StatusOK, -1, "application/json", rc, nil)
}
