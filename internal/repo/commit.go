package repo

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"codebird/pkg/errors"
	"codebird/pkg/models"
)

// newCommit builds an immutable commit record for the given change-set.
// The id is a structural hash over the full payload; it is opaque and
// collision-resistant in practice but not guaranteed globally unique.
func newCommit(branch string, files []string, now time.Time) (models.Commit, error) {
	if len(files) == 0 {
		return models.Commit{}, errors.EmptyChangeSetError()
	}

	message := "Modified files: " + strings.Join(files, " ")
	changes := "Modified " + strings.Join(files, ", ")
	timestamp := now.UTC().Format(time.RFC3339Nano)

	return models.Commit{
		ID:        commitID(message, changes, branch, timestamp),
		Message:   message,
		Timestamp: timestamp,
		Changes:   changes,
		Branch:    branch,
	}, nil
}

func commitID(message, changes, branch, timestamp string) string {
	payload := strings.Join([]string{
		message,
		changes,
		branch,
		timestamp,
	}, "\n")
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
