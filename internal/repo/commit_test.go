package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codebird/pkg/errors"
)

func TestNewCommit(t *testing.T) {
	now := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)

	commit, err := newCommit("main", []string{"a.txt", "b.txt"}, now)
	require.NoError(t, err)

	assert.Equal(t, "Modified files: a.txt b.txt", commit.Message)
	assert.Equal(t, "Modified a.txt, b.txt", commit.Changes)
	assert.Equal(t, "2026-08-25T10:30:00Z", commit.Timestamp)
	assert.Equal(t, "main", commit.Branch)
	assert.Len(t, commit.ID, 64)
}

func TestNewCommitSingleFile(t *testing.T) {
	commit, err := newCommit("main", []string{"a.txt"}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Modified files: a.txt", commit.Message)
	assert.Equal(t, "Modified a.txt", commit.Changes)
}

func TestNewCommitEmptyChangeSet(t *testing.T) {
	_, err := newCommit("main", nil, time.Now())
	assert.True(t, errors.IsCode(err, errors.ErrCodeEmptyChangeSet))
}

func TestCommitIDStructural(t *testing.T) {
	base := commitID("Modified files: a.txt", "Modified a.txt", "main", "2026-08-25T10:30:00Z")

	// Deterministic over the same payload
	assert.Equal(t, base, commitID("Modified files: a.txt", "Modified a.txt", "main", "2026-08-25T10:30:00Z"))

	// Any field change produces a different id
	assert.NotEqual(t, base, commitID("Modified files: b.txt", "Modified a.txt", "main", "2026-08-25T10:30:00Z"))
	assert.NotEqual(t, base, commitID("Modified files: a.txt", "Modified b.txt", "main", "2026-08-25T10:30:00Z"))
	assert.NotEqual(t, base, commitID("Modified files: a.txt", "Modified a.txt", "feature", "2026-08-25T10:30:00Z"))
	assert.NotEqual(t, base, commitID("Modified files: a.txt", "Modified a.txt", "main", "2026-08-25T10:30:01Z"))
}
