package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mireku/crimesift-api/internal/model"
	"github.com/mireku/crimesift-api/internal/service"
)

func TestRecordService(t *testing.T) {
	repo := newStubRepo()
	require.NoError(t, repo.Upsert(&model.PageRecord{
		URL:      "https://example.test/crime",
		Site:     "https://example.test/crime",
		Headings: []string{"Reports"},
	}))
	require.NoError(t, repo.Upsert(&model.PageRecord{
		URL:  "https://example.test/crime/p2",
		Site: "https://example.test/crime",
	}))

	svc := service.NewRecordService(repo)

	t.Run("List Returns All In Order", func(t *testing.T) {
		recs, err := svc.List()
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "https://example.test/crime", recs[0].URL)
		assert.Equal(t, []string{"Reports"}, recs[0].Headings)
	})

	t.Run("Get Known URL", func(t *testing.T) {
		rec, err := svc.Get("https://example.test/crime/p2")
		require.NoError(t, err)
		assert.Equal(t, "https://example.test/crime/p2", rec.URL)
	})

	t.Run("Get Unknown URL Errors", func(t *testing.T) {
		_, err := svc.Get("https://example.test/missing")
		assert.Error(t, err)
	})
}

func TestIdentifyService(t *testing.T) {
	repo := newStubRepo()
	require.NoError(t, repo.Upsert(&model.PageRecord{
		URL:            "https://example.test/crime",
		CandidateNames: []string{"John Smith", "Jane Doe"},
	}))
	require.NoError(t, repo.Upsert(&model.PageRecord{
		URL:            "https://example.test/crime/p2",
		CandidateNames: []string{"John Smith"},
	}))

	svc := service.NewIdentifyService(repo)

	t.Run("Match Collects Source URLs", func(t *testing.T) {
		ident, err := svc.ByName("john smith")
		require.NoError(t, err)
		assert.Equal(t, "john smith", ident.Name)
		assert.Len(t, ident.Sources, 2)
		assert.Contains(t, ident.Details, "2 stored record(s)")
	})

	t.Run("No Match", func(t *testing.T) {
		ident, err := svc.ByName("Nobody Here")
		require.NoError(t, err)
		assert.Empty(t, ident.Sources)
		assert.Contains(t, ident.Details, "no match")
	})
}

func TestHealthService(t *testing.T) {
	t.Run("Nil DB Is Unhealthy", func(t *testing.T) {
		svc := service.NewHealthService(nil, newStubRepo(), "CrimeSift API")
		stat := svc.Check()
		assert.False(t, stat.Healthy)
		assert.Equal(t, "disconnected", stat.Database)
		assert.Equal(t, "CrimeSift API", stat.Service)
	})
}
