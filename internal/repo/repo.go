// Package repo implements the version-control engine: branch management,
// commit creation, and conflict-aware merging over persisted state.
package repo

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"codebird/internal/common"
	"codebird/internal/store"
	"codebird/pkg/errors"
	"codebird/pkg/models"
)

const (
	// MarkerDir is the repository-local directory holding all persisted state
	MarkerDir = ".cbird"

	dbFile = "repo.db"
)

// Repository is an explicit handle to one repository. Every operation loads
// the persisted state, mutates it in memory, and saves it back; read-only
// operations skip the save.
type Repository struct {
	store    store.Store
	detector Detector
	log      *zap.Logger
}

// Option customizes a Repository handle.
type Option func(*Repository)

// WithDetector substitutes the conflict detection policy.
func WithDetector(d Detector) Option {
	return func(r *Repository) {
		r.detector = d
	}
}

// WithLogger attaches a diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Repository) {
		r.log = l
	}
}

// New wraps an existing store in a Repository handle.
func New(st store.Store, opts ...Option) *Repository {
	r := &Repository{
		store:    st,
		detector: NewChangeOverlapDetector(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// openStore creates the backing store for a repository database file.
var openStore = func(path string) (store.Store, error) {
	return store.OpenBolt(path)
}

// Init creates a new repository under dir. It fails when the repository
// marker already exists. A failed init removes the marker again so a later
// attempt does not find a half-created repository.
func Init(dir string, opts ...Option) (*Repository, error) {
	marker := filepath.Join(dir, MarkerDir)
	if _, err := os.Stat(marker); err == nil {
		return nil, errors.AlreadyInitializedError(dir)
	}
	if err := os.MkdirAll(marker, common.DirPermissionSecure); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeIO, "failed to create repository directory")
	}

	st, err := openStore(filepath.Join(marker, dbFile))
	if err != nil {
		_ = os.RemoveAll(marker)
		return nil, err
	}
	r := New(st, opts...)

	// Seed the database so the default branch survives before any commit
	if err := st.Save(context.Background(), models.NewState()); err != nil {
		_ = st.Close()
		_ = os.RemoveAll(marker)
		return nil, err
	}
	r.log.Debug("repository initialized", zap.String("dir", dir))
	return r, nil
}

// Open opens an existing repository under dir. It fails when dir has not
// been initialized.
func Open(dir string, opts ...Option) (*Repository, error) {
	marker := filepath.Join(dir, MarkerDir)
	if _, err := os.Stat(marker); err != nil {
		return nil, errors.NotInitializedError(dir)
	}

	st, err := openStore(filepath.Join(marker, dbFile))
	if err != nil {
		return nil, err
	}
	return New(st, opts...), nil
}

// IsInitialized reports whether dir contains a repository marker.
func IsInitialized(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, MarkerDir))
	return err == nil
}

// Close releases the underlying store.
func (r *Repository) Close() error {
	return r.store.Close()
}

// AddFile registers a file path in the tracked set. Re-adding an already
// tracked path is not an error; the returned flag reports whether the set
// actually changed.
func (r *Repository) AddFile(ctx context.Context, path string) (bool, error) {
	if strings.TrimSpace(path) == "" {
		return false, errors.ValidationError("file", "path must not be empty")
	}

	state, err := r.store.Load(ctx)
	if err != nil {
		return false, err
	}
	added := state.TrackFile(path)
	if !added {
		return false, nil
	}
	if err := r.store.Save(ctx, state); err != nil {
		return false, err
	}
	r.log.Debug("file tracked", zap.String("path", path))
	return true, nil
}

// Commit appends a commit covering the given file list to the current
// branch. The change-set must be non-empty.
func (r *Repository) Commit(ctx context.Context, files []string) (models.Commit, error) {
	state, err := r.store.Load(ctx)
	if err != nil {
		return models.Commit{}, err
	}

	current := state.Current()
	commit, err := newCommit(current.Name, files, time.Now())
	if err != nil {
		return models.Commit{}, err
	}
	current.History = append(current.History, commit)

	if err := r.store.Save(ctx, state); err != nil {
		return models.Commit{}, err
	}
	r.log.Debug("commit appended",
		zap.String("branch", current.Name),
		zap.String("id", commit.ID))
	return commit, nil
}

// Log returns the current branch's commits in chronological order. A
// positive limit restricts the result to the most recent commits.
func (r *Repository) Log(ctx context.Context, limit int) (string, []models.Commit, error) {
	state, err := r.store.Load(ctx)
	if err != nil {
		return "", nil, err
	}

	history := state.Current().History
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}
	commits := make([]models.Commit, len(history))
	copy(commits, history)
	return state.CurrentBranch, commits, nil
}

// Status summarizes the repository at a point in time.
type Status struct {
	Branch       string
	Commits      int
	TrackedFiles []string
}

// Status reports the current branch, its commit count, and the tracked set.
func (r *Repository) Status(ctx context.Context) (*Status, error) {
	state, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Status{
		Branch:       state.CurrentBranch,
		Commits:      len(state.Current().History),
		TrackedFiles: state.TrackedFiles,
	}, nil
}
