package models

import "sort"

// DefaultBranch is created when a repository is initialized and can never be
// removed.
const DefaultBranch = "main"

// Branch is a named, linear sequence of commits in insertion order
type Branch struct {
	Name    string   `json:"name"`
	History []Commit `json:"history"`
}

// LastCommit returns the most recent commit on the branch, or nil for an
// empty history
func (b *Branch) LastCommit() *Commit {
	if len(b.History) == 0 {
		return nil
	}
	return &b.History[len(b.History)-1]
}

// State is the full persisted repository state: the branch table, the
// repository-wide tracked file set, and the active branch name.
type State struct {
	CurrentBranch string             `json:"current_branch"`
	Branches      map[string]*Branch `json:"branches"`
	TrackedFiles  []string           `json:"tracked_files"`
}

// NewState returns the initial repository state: a single empty default
// branch, set as current.
func NewState() *State {
	return &State{
		CurrentBranch: DefaultBranch,
		Branches: map[string]*Branch{
			DefaultBranch: {Name: DefaultBranch},
		},
	}
}

// Branch looks up a branch by name
func (s *State) Branch(name string) (*Branch, bool) {
	b, ok := s.Branches[name]
	return b, ok
}

// Current returns the active branch. CurrentBranch always references an
// existing branch table entry.
func (s *State) Current() *Branch {
	return s.Branches[s.CurrentBranch]
}

// AddBranch inserts a new empty branch. Callers are expected to have checked
// for an existing entry first.
func (s *State) AddBranch(name string) *Branch {
	b := &Branch{Name: name}
	s.Branches[name] = b
	return b
}

// BranchNames returns all branch names in sorted order
func (s *State) BranchNames() []string {
	names := make([]string, 0, len(s.Branches))
	for name := range s.Branches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TrackFile registers a file path in the tracked set, keeping the set sorted.
// Returns false when the path was already tracked.
func (s *State) TrackFile(path string) bool {
	i := sort.SearchStrings(s.TrackedFiles, path)
	if i < len(s.TrackedFiles) && s.TrackedFiles[i] == path {
		return false
	}
	s.TrackedFiles = append(s.TrackedFiles, "")
	copy(s.TrackedFiles[i+1:], s.TrackedFiles[i:])
	s.TrackedFiles[i] = path
	return true
}

// IsTracked reports whether a file path has been registered
func (s *State) IsTracked(path string) bool {
	i := sort.SearchStrings(s.TrackedFiles, path)
	return i < len(s.TrackedFiles) && s.TrackedFiles[i] == path
}

// Clone returns a deep copy of the state
func (s *State) Clone() *State {
	out := &State{
		CurrentBranch: s.CurrentBranch,
		Branches:      make(map[string]*Branch, len(s.Branches)),
	}
	if s.TrackedFiles != nil {
		out.TrackedFiles = append([]string(nil), s.TrackedFiles...)
	}
	for name, b := range s.Branches {
		nb := &Branch{Name: b.Name}
		if b.History != nil {
			nb.History = append([]Commit(nil), b.History...)
		}
		out.Branches[name] = nb
	}
	return out
}
