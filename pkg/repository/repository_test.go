package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()

	// create temp file for test database
	tmpFile, err := os.CreateTemp(t.TempDir(), "test-*.db")
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	repos, err := NewRepositories(context.Background(), Config{
		DSN: "file:" + tmpFile.Name() + "?mode=rwc",
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, repos.Close())
	})

	return repos
}

func TestNewRepositories(t *testing.T) {
	repos := setupTestRepos(t)

	assert.NotNil(t, repos.Feedback)
	assert.NotNil(t, repos.Example)
	assert.NotNil(t, repos.Insight)
	require.NoError(t, repos.Ping(context.Background()))
}

func TestNewRepositories_SchemaIdempotent(t *testing.T) {
	repos := setupTestRepos(t)

	// applying the schema twice must not fail
	require.NoError(t, initSchema(context.Background(), repos.DB))
}

func TestIsLockError(t *testing.T) {
	assert.False(t, isLockError(nil))
	assert.False(t, isLockError(assert.AnError))
	assert.True(t, isLockError(errLock("database is locked")))
	assert.True(t, isLockError(errLock("SQLITE_BUSY: resource busy")))
	assert.True(t, isLockError(errLock("database table is locked")))
}

type errLock string

func (e errLock) Error() string { return string(e) }
