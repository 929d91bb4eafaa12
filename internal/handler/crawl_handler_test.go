package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mireku/crimesift-api/internal/handler"
	"github.com/mireku/crimesift-api/internal/model"
)

// dummyCrawlService implements service.CrawlService for unit testing.
type dummyCrawlService struct {
	summary *model.CrawlSummary
	err     error
	gotIn   *model.CrawlRequest
}

func (d *dummyCrawlService) Run(_ context.Context, in *model.CrawlRequest) (*model.CrawlSummary, error) {
	d.gotIn = in
	if d.err != nil {
		return nil, d.err
	}
	return d.summary, nil
}

func TestCrawlHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(svc *dummyCrawlService) *gin.Engine {
		h := handler.NewCrawlHandler(svc)
		r := gin.New()
		r.POST("/crawl", h.Run)
		return r
	}

	t.Run("Valid Request Returns Summary", func(t *testing.T) {
		svc := &dummyCrawlService{summary: &model.CrawlSummary{
			Sites:           []model.SiteResultDTO{{Site: "https://example.test/crime", Attempts: 2, PagesSaved: 2}},
			TotalAttempts:   2,
			TotalPagesSaved: 2,
		}}
		router := newRouter(svc)

		body, _ := json.Marshal(model.CrawlRequest{
			SeedURLs:        []string{"https://example.test/crime"},
			MaxPagesPerSite: 2,
		})
		req := httptest.NewRequest(http.MethodPost, "/crawl", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "crawl complete", resp["status"])
		require.NotNil(t, svc.gotIn)
		assert.Equal(t, 2, svc.gotIn.MaxPagesPerSite)
	})

	t.Run("Missing Seeds Is Bad Request", func(t *testing.T) {
		router := newRouter(&dummyCrawlService{})

		req := httptest.NewRequest(http.MethodPost, "/crawl", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Invalid Seed URL Is Bad Request", func(t *testing.T) {
		router := newRouter(&dummyCrawlService{})

		req := httptest.NewRequest(http.MethodPost, "/crawl",
			bytes.NewBufferString(`{"seed_urls":["not a url"]}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Service Error Is Bad Request", func(t *testing.T) {
		router := newRouter(&dummyCrawlService{err: errors.New("seed list is empty")})

		req := httptest.NewRequest(http.MethodPost, "/crawl",
			bytes.NewBufferString(`{"seed_urls":["https://example.test"]}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "seed list is empty")
	})
}
