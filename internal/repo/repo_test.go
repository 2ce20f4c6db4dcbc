package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codebird/internal/store"
	"codebird/pkg/errors"
	"codebird/pkg/models"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	r := New(store.NewMemoryStore())
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestInitAndOpen(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsInitialized(dir))

	r, err := Init(dir)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.True(t, IsInitialized(dir))

	// A second init must fail and leave the repository intact
	_, err = Init(dir)
	assert.True(t, errors.IsCode(err, errors.ErrCodeAlreadyInitialized))

	r, err = Open(dir)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	status, err := r.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultBranch, status.Branch)
	assert.Zero(t, status.Commits)
}

func TestOpenNotInitialized(t *testing.T) {
	_, err := Open(t.TempDir())
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotInitialized))
}

type brokenStore struct{}

func (brokenStore) Load(context.Context) (*models.State, error) {
	return nil, errors.New(errors.ErrCodeIO, "state unavailable")
}

func (brokenStore) Save(context.Context, *models.State) error {
	return errors.New(errors.ErrCodeIO, "state unavailable")
}

func (brokenStore) Close() error { return nil }

func TestInitCleansUpOnFailure(t *testing.T) {
	orig := openStore
	t.Cleanup(func() { openStore = orig })

	t.Run("open fails", func(t *testing.T) {
		dir := t.TempDir()
		openStore = func(string) (store.Store, error) {
			return nil, errors.New(errors.ErrCodeIO, "no database")
		}

		_, err := Init(dir)
		require.Error(t, err)
		assert.False(t, IsInitialized(dir))
	})

	t.Run("seeding fails", func(t *testing.T) {
		dir := t.TempDir()
		openStore = func(string) (store.Store, error) {
			return brokenStore{}, nil
		}

		_, err := Init(dir)
		require.Error(t, err)
		assert.False(t, IsInitialized(dir))
	})

	t.Run("init succeeds after a failed attempt", func(t *testing.T) {
		dir := t.TempDir()
		openStore = func(string) (store.Store, error) {
			return nil, errors.New(errors.ErrCodeIO, "no database")
		}
		_, err := Init(dir)
		require.Error(t, err)

		openStore = orig
		r, err := Init(dir)
		require.NoError(t, err)
		require.NoError(t, r.Close())
		assert.True(t, IsInitialized(dir))
	})
}

func TestAddFileIdempotent(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	added, err := r.AddFile(ctx, "b.txt")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = r.AddFile(ctx, "a.txt")
	require.NoError(t, err)
	assert.True(t, added)

	// Re-adding is not an error, it just reports no change
	added, err = r.AddFile(ctx, "b.txt")
	require.NoError(t, err)
	assert.False(t, added)

	status, err := r.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, status.TrackedFiles)
}

func TestAddFileEmptyPath(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.AddFile(context.Background(), "  ")
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidInput))
}

func TestCommitAppendsToCurrentBranchOnly(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	first, err := r.Commit(ctx, []string{"a.txt"})
	require.NoError(t, err)
	assert.Equal(t, "main", first.Branch)

	require.NoError(t, r.CreateBranch(ctx, "feature"))
	require.NoError(t, r.SwitchBranch(ctx, "feature"))

	second, err := r.Commit(ctx, []string{"b.txt", "c.txt"})
	require.NoError(t, err)
	assert.Equal(t, "feature", second.Branch)
	assert.Equal(t, "Modified b.txt, c.txt", second.Changes)

	branch, commits, err := r.Log(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "feature", branch)
	require.Len(t, commits, 1)
	assert.Equal(t, second.ID, commits[0].ID)

	require.NoError(t, r.SwitchBranch(ctx, "main"))
	_, commits, err = r.Log(ctx, 0)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, first.ID, commits[0].ID)
}

func TestCommitEmptyChangeSet(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.Commit(ctx, nil)
	assert.True(t, errors.IsCode(err, errors.ErrCodeEmptyChangeSet))

	_, commits, err := r.Log(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, commits)
}

func TestLogChronologicalOrder(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	files := [][]string{{"a.txt"}, {"b.txt"}, {"c.txt"}}
	ids := make([]string, 0, len(files))
	for _, fs := range files {
		commit, err := r.Commit(ctx, fs)
		require.NoError(t, err)
		ids = append(ids, commit.ID)
	}

	_, commits, err := r.Log(ctx, 0)
	require.NoError(t, err)
	require.Len(t, commits, 3)
	for i, commit := range commits {
		assert.Equal(t, ids[i], commit.ID)
	}

	// A positive limit keeps only the most recent commits, still in order
	_, commits, err = r.Log(ctx, 2)
	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.Equal(t, ids[1], commits[0].ID)
	assert.Equal(t, ids[2], commits[1].ID)
}

func TestCreateBranchDuplicate(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.CreateBranch(ctx, "feature"))

	err := r.CreateBranch(ctx, "feature")
	assert.True(t, errors.IsCode(err, errors.ErrCodeBranchExists))

	summaries, err := r.Branches(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
}

func TestCreateBranchBlankName(t *testing.T) {
	r := newTestRepo(t)

	err := r.CreateBranch(context.Background(), "")
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidInput))
}

func TestCreateBranchDoesNotSwitch(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.CreateBranch(ctx, "feature"))

	status, err := r.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "main", status.Branch)
}

func TestSwitchBranchNotFound(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	err := r.SwitchBranch(ctx, "ghost")
	assert.True(t, errors.IsCode(err, errors.ErrCodeBranchNotFound))

	status, err := r.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "main", status.Branch)
}

func TestStatePersistsAcrossHandles(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	r, err := Init(dir)
	require.NoError(t, err)

	_, err = r.AddFile(ctx, "a.txt")
	require.NoError(t, err)
	commit, err := r.Commit(ctx, []string{"a.txt"})
	require.NoError(t, err)
	require.NoError(t, r.CreateBranch(ctx, "feature"))
	require.NoError(t, r.SwitchBranch(ctx, "feature"))
	require.NoError(t, r.Close())

	// Everything must survive into a fresh handle
	r, err = Open(dir)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	status, err := r.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "feature", status.Branch)
	assert.Equal(t, []string{"a.txt"}, status.TrackedFiles)

	require.NoError(t, r.SwitchBranch(ctx, "main"))
	_, commits, err := r.Log(ctx, 0)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, commit.ID, commits[0].ID)
	assert.Equal(t, commit.Timestamp, commits[0].Timestamp)
}

func TestBranchesSummaries(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	commit, err := r.Commit(ctx, []string{"a.txt"})
	require.NoError(t, err)
	require.NoError(t, r.CreateBranch(ctx, "feature"))

	summaries, err := r.Branches(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "feature", summaries[0].Name)
	assert.Zero(t, summaries[0].Commits)
	assert.Nil(t, summaries[0].LastCommit)
	assert.False(t, summaries[0].Current)

	assert.Equal(t, "main", summaries[1].Name)
	assert.Equal(t, 1, summaries[1].Commits)
	require.NotNil(t, summaries[1].LastCommit)
	assert.Equal(t, commit.ID, summaries[1].LastCommit.ID)
	assert.True(t, summaries[1].Current)
}
