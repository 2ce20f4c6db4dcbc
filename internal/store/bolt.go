package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	bolt "go.etcd.io/bbolt"

	"codebird/internal/common"
	"codebird/pkg/errors"
	"codebird/pkg/models"
)

const (
	metaBucket     = "meta"
	branchesBucket = "branches"
	filesBucket    = "files"

	metaCurrentBranch = "current_branch"
	metaFormatVersion = "format_version"
	metaCreatedAt     = "created_at"
)

// BoltStore keeps the whole repository inside a single BoltDB file.
type BoltStore struct {
	db   *bolt.DB
	once sync.Once
}

// OpenBolt opens (or creates) the repository database at the provided path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, common.FilePermissionSecure, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeIO, "failed to open repository database")
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{metaBucket, branchesBucket, filesBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, errors.ErrCodeIO, "failed to initialize repository database")
	}

	return &BoltStore{db: db}, nil
}

// Load reads the full repository state in one read transaction.
func (s *BoltStore) Load(ctx context.Context) (*models.State, error) {
	state := models.NewState()

	err := s.db.View(func(tx *bolt.Tx) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		meta := tx.Bucket([]byte(metaBucket))
		if meta == nil {
			return errors.New(errors.ErrCodeStateCorrupt, "meta bucket missing")
		}
		if version := meta.Get([]byte(metaFormatVersion)); version != nil && string(version) != FormatVersion {
			return errors.New(errors.ErrCodeStateCorrupt,
				fmt.Sprintf("unsupported repository format version %q", string(version)))
		}
		if current := meta.Get([]byte(metaCurrentBranch)); current != nil {
			state.CurrentBranch = string(current)
		}

		branches := tx.Bucket([]byte(branchesBucket))
		if branches == nil {
			return errors.New(errors.ErrCodeStateCorrupt, "branches bucket missing")
		}
		if err := branches.ForEach(func(k, v []byte) error {
			var history []models.Commit
			if err := jsoniter.Unmarshal(v, &history); err != nil {
				return errors.Wrap(err, errors.ErrCodeStateCorrupt,
					fmt.Sprintf("failed to decode history for branch %q", string(k)))
			}
			state.Branches[string(k)] = &models.Branch{Name: string(k), History: history}
			return nil
		}); err != nil {
			return err
		}

		files := tx.Bucket([]byte(filesBucket))
		if files == nil {
			return errors.New(errors.ErrCodeStateCorrupt, "files bucket missing")
		}
		return files.ForEach(func(k, _ []byte) error {
			state.TrackFile(string(k))
			return nil
		})
	})
	if err != nil {
		if _, ok := err.(*errors.AppError); ok {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.ErrCodeIO, "failed to load repository state")
	}

	// A database written before any commit still has the default branch
	if _, ok := state.Branches[state.CurrentBranch]; !ok {
		state.AddBranch(state.CurrentBranch)
	}
	return state, nil
}

// Save rewrites the full repository state in one write transaction.
func (s *BoltStore) Save(ctx context.Context, state *models.State) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		meta := tx.Bucket([]byte(metaBucket))
		if err := meta.Put([]byte(metaFormatVersion), []byte(FormatVersion)); err != nil {
			return err
		}
		if err := meta.Put([]byte(metaCurrentBranch), []byte(state.CurrentBranch)); err != nil {
			return err
		}
		if meta.Get([]byte(metaCreatedAt)) == nil {
			stamp := time.Now().UTC().Format(time.RFC3339Nano)
			if err := meta.Put([]byte(metaCreatedAt), []byte(stamp)); err != nil {
				return err
			}
		}

		// Deleted-and-rewritten so removed branches do not linger
		if err := tx.DeleteBucket([]byte(branchesBucket)); err != nil {
			return err
		}
		branches, err := tx.CreateBucket([]byte(branchesBucket))
		if err != nil {
			return err
		}
		for name, branch := range state.Branches {
			data, err := jsoniter.Marshal(branch.History)
			if err != nil {
				return err
			}
			if err := branches.Put([]byte(name), data); err != nil {
				return err
			}
		}

		if err := tx.DeleteBucket([]byte(filesBucket)); err != nil {
			return err
		}
		files, err := tx.CreateBucket([]byte(filesBucket))
		if err != nil {
			return err
		}
		for _, path := range state.TrackedFiles {
			if err := files.Put([]byte(path), []byte{}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeIO, "failed to save repository state")
	}
	return nil
}

// Close shuts down the underlying database.
func (s *BoltStore) Close() error {
	var err error
	s.once.Do(func() {
		err = s.db.Close()
	})
	return err
}
