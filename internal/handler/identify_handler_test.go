package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mireku/crimesift-api/internal/handler"
	"github.com/mireku/crimesift-api/internal/model"
)

// dummyIdentifyService implements service.IdentifyService for unit testing.
type dummyIdentifyService struct {
	ident *model.IdentificationDTO
}

func (d *dummyIdentifyService) ByName(name string) (*model.IdentificationDTO, error) {
	return d.ident, nil
}

func TestIdentifyHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(svc *dummyIdentifyService) *gin.Engine {
		h := handler.NewIdentifyHandler(svc)
		r := gin.New()
		r.POST("/identify/name", h.ByName)
		return r
	}

	t.Run("Known Name", func(t *testing.T) {
		router := newRouter(&dummyIdentifyService{ident: &model.IdentificationDTO{
			Name:    "John Smith",
			Details: "appears in 1 stored record(s)",
			Sources: []string{"https://example.test/crime"},
		}})

		body, _ := json.Marshal(model.IdentifyNameInput{Name: "John Smith"})
		req := httptest.NewRequest(http.MethodPost, "/identify/name", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]model.IdentificationDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "John Smith", resp["identification"].Name)
	})

	t.Run("Missing Name Is Bad Request", func(t *testing.T) {
		router := newRouter(&dummyIdentifyService{})

		req := httptest.NewRequest(http.MethodPost, "/identify/name", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
