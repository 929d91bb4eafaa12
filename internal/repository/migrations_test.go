package repository_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mireku/crimesift-api/internal/model"
	"github.com/mireku/crimesift-api/internal/repository"
)

// fakeMigrator implements repository.Migrator for testing.
type fakeMigrator struct {
	migrated []any
	err      error
}

func (m *fakeMigrator) AutoMigrate(dst ...any) error {
	if m.err != nil {
		return m.err
	}
	m.migrated = append(m.migrated, dst...)
	return nil
}

func TestMigrate(t *testing.T) {
	t.Run("Migrates All Registered Models", func(t *testing.T) {
		m := &fakeMigrator{}
		err := repository.Migrate(m)
		assert.NoError(t, err)
		assert.Len(t, m.migrated, len(model.AllModels))
	})

	t.Run("Propagates Migration Error", func(t *testing.T) {
		m := &fakeMigrator{err: errors.New("boom")}
		err := repository.Migrate(m)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "auto-migrate")
	})
}
