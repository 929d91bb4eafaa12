package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mireku/crimesift-api/internal/model"
	"github.com/mireku/crimesift-api/internal/service"
)

// CrawlHandler exposes the crawl trigger boundary.
type CrawlHandler struct {
	crawlService service.CrawlService
}

func NewCrawlHandler(svc service.CrawlService) *CrawlHandler {
	return &CrawlHandler{crawlService: svc}
}

// Run triggers a crawl over the supplied seed URLs and blocks until every
// site completes. Request cancellation aborts the run at its next fetch or
// delay boundary.
func (h *CrawlHandler) Run(c *gin.Context) {
	var in model.CrawlRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	summary, err := h.crawlService.Run(c.Request.Context(), &in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "crawl complete",
		"summary": summary,
	})
}

// RegisterRoutes mounts the crawl endpoints on the given router group.
func (h *CrawlHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/crawl", h.Run)
}
