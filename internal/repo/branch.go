package repo

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"codebird/pkg/errors"
	"codebird/pkg/models"
)

// BranchSummary describes one branch for listing purposes.
type BranchSummary struct {
	Name       string
	Commits    int
	LastCommit *models.Commit
	Current    bool
}

// CreateBranch adds a new empty branch. The new branch does not become
// current.
func (r *Repository) CreateBranch(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.ValidationError("branch", "name must not be empty")
	}

	state, err := r.store.Load(ctx)
	if err != nil {
		return err
	}
	if _, ok := state.Branch(name); ok {
		return errors.BranchExistsError(name)
	}
	state.AddBranch(name)

	if err := r.store.Save(ctx, state); err != nil {
		return err
	}
	r.log.Debug("branch created", zap.String("name", name))
	return nil
}

// SwitchBranch makes the named branch current.
func (r *Repository) SwitchBranch(ctx context.Context, name string) error {
	state, err := r.store.Load(ctx)
	if err != nil {
		return err
	}
	if _, ok := state.Branch(name); !ok {
		return errors.BranchNotFoundError(name)
	}
	state.CurrentBranch = name

	if err := r.store.Save(ctx, state); err != nil {
		return err
	}
	r.log.Debug("switched branch", zap.String("name", name))
	return nil
}

// Branches lists every branch sorted by name.
func (r *Repository) Branches(ctx context.Context) ([]BranchSummary, error) {
	state, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]BranchSummary, 0, len(state.Branches))
	for _, name := range state.BranchNames() {
		branch := state.Branches[name]
		summaries = append(summaries, BranchSummary{
			Name:       name,
			Commits:    len(branch.History),
			LastCommit: branch.LastCommit(),
			Current:    name == state.CurrentBranch,
		})
	}
	return summaries, nil
}
