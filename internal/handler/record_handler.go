package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mireku/crimesift-api/internal/service"
)

// RecordHandler serves read access to persisted page records.
type RecordHandler struct {
	recordService service.RecordService
}

func NewRecordHandler(svc service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: svc}
}

// List returns all stored records in insertion order.
func (h *RecordHandler) List(c *gin.Context) {
	recs, err := h.recordService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read records"})
		return
	}
	c.JSON(http.StatusOK, recs)
}

// Get returns the record for one URL, passed as the "url" query parameter.
func (h *RecordHandler) Get(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing url parameter"})
		return
	}
	rec, err := h.recordService.Get(rawURL)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read record"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// RegisterRoutes mounts the data endpoints on the given router group.
func (h *RecordHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/data", h.List)
	rg.GET("/data/record", h.Get)
}
