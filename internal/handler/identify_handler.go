package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mireku/crimesift-api/internal/model"
	"github.com/mireku/crimesift-api/internal/service"
)

// IdentifyHandler exposes the mocked name identification endpoint.
type IdentifyHandler struct {
	identifyService service.IdentifyService
}

func NewIdentifyHandler(svc service.IdentifyService) *IdentifyHandler {
	return &IdentifyHandler{identifyService: svc}
}

// ByName looks a name up in the stored candidate names.
func (h *IdentifyHandler) ByName(c *gin.Context) {
	var in model.IdentifyNameInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	ident, err := h.identifyService.ByName(in.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "identification failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"identification": ident})
}

// RegisterRoutes mounts the identify endpoints on the given router group.
func (h *IdentifyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/identify/name", h.ByName)
}
