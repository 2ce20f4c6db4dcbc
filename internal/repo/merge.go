package repo

import (
	"context"

	"go.uber.org/zap"

	"codebird/pkg/errors"
	"codebird/pkg/models"
)

// MergeResult reports the outcome of merging one branch into another.
// Conflict results carry the repository-wide tracked-file set as the list
// of files needing manual resolution.
type MergeResult struct {
	Source        string
	Target        string
	Conflict      bool
	ConflictFiles []string
	MergedCommits int
}

// Merge merges the named branch into the current branch. On conflict the
// returned result has Conflict set and no history is modified or persisted.
// On success the source history is appended, in order, to the current
// branch's history and the state is saved in a single transaction.
func (r *Repository) Merge(ctx context.Context, source string) (*MergeResult, error) {
	state, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	result, err := mergeBranches(state, source, r.detector)
	if err != nil {
		return nil, err
	}
	if result.Conflict {
		r.log.Debug("merge conflict detected",
			zap.String("source", result.Source),
			zap.String("target", result.Target),
			zap.Int("conflict_files", len(result.ConflictFiles)))
		return result, nil
	}

	if err := r.store.Save(ctx, state); err != nil {
		return nil, err
	}
	r.log.Debug("merge completed",
		zap.String("source", result.Source),
		zap.String("target", result.Target),
		zap.Int("merged_commits", result.MergedCommits))
	return result, nil
}

// mergeBranches performs the in-memory merge step against a loaded state.
// Either both histories are untouched (conflict) or the concatenation
// completes before the state is handed back for persistence.
func mergeBranches(state *models.State, source string, detector Detector) (*MergeResult, error) {
	sourceBranch, ok := state.Branch(source)
	if !ok {
		return nil, errors.BranchNotFoundError(source)
	}
	target := state.Current()

	ours := changeDescriptions(target.History)
	theirs := changeDescriptions(sourceBranch.History)

	if detector.HasConflict(ours, theirs) {
		files := make([]string, len(state.TrackedFiles))
		copy(files, state.TrackedFiles)
		return &MergeResult{
			Source:        source,
			Target:        target.Name,
			Conflict:      true,
			ConflictFiles: files,
		}, nil
	}

	target.History = append(target.History, sourceBranch.History...)
	return &MergeResult{
		Source:        source,
		Target:        target.Name,
		MergedCommits: len(sourceBranch.History),
	}, nil
}

func changeDescriptions(history []models.Commit) []string {
	changes := make([]string, 0, len(history))
	for _, commit := range history {
		changes = append(changes, commit.Changes)
	}
	return changes
}
