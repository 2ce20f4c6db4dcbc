package repo

// Detector decides whether two branches' change-sets overlap. Implementations
// receive the ordered .Changes descriptions of each history, ours being the
// merge target and theirs the merge source.
type Detector interface {
	HasConflict(ours, theirs []string) bool
}

// changeOverlapDetector flags a conflict when any change description appears
// verbatim in both histories. Comparison is on the whole description string,
// not on individual file names, so near-duplicate change-sets do not collide.
type changeOverlapDetector struct{}

// NewChangeOverlapDetector returns the default whole-string detector.
func NewChangeOverlapDetector() Detector {
	return changeOverlapDetector{}
}

func (changeOverlapDetector) HasConflict(ours, theirs []string) bool {
	if len(ours) == 0 || len(theirs) == 0 {
		return false
	}
	seen := make(map[string]struct{}, len(theirs))
	for _, change := range theirs {
		seen[change] = struct{}{}
	}
	for _, change := range ours {
		if _, ok := seen[change]; ok {
			return true
		}
	}
	return false
}
