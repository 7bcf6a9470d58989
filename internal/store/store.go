package store

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketLines = "lines"

// openTimeout bounds how long Open waits for the database file lock,
// so a second process using the same history file fails fast.
const openTimeout = time.Second

// Store is a bbolt-backed log of submitted lines.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if necessary) the line store at path. Parent
// directories are created as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketLines))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add appends a line to the store and returns its sequence number.
func (s *Store) Add(line string) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketLines))
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(line))
	})
	if err != nil {
		return 0, fmt.Errorf("adding line: %w", err)
	}
	return int(seq), nil
}

// List returns up to max stored lines, oldest first. max <= 0 returns
// everything.
func (s *Store) List(max int) ([]string, error) {
	var lines []string
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketLines)).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if max > 0 && len(lines) == max {
				break
			}
			lines = append(lines, string(v))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing lines: %w", err)
	}

	// Collected newest-first; callers want insertion order.
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines, nil
}

// Len returns the number of stored lines.
func (s *Store) Len() (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(bucketLines)).Stats().KeyN
		return nil
	})
	return n, err
}

func marshalSeq(seq uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, seq)
	return buf
}
