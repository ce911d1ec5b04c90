package history

import (
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Store abstracts the durable registry blob. Implementations keep one
// opaque value under one fixed key, replaced wholesale on every Save.
type Store interface {
	Load() ([]byte, error)
	Save(blob []byte) error
}

var (
	bucketName = []byte("history")
	blobKey    = []byte("conversations")
)

// BoltStore keeps the registry blob in a bbolt file: a single bucket
// with a single key. The process is the only writer.
type BoltStore struct {
	path string
}

// NewBoltStore ensures the parent directory exists and returns a store
// for the given database path.
func NewBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &BoltStore{path: path}, nil
}

// Load reads the registry blob. A missing file or bucket yields nil.
func (s *BoltStore) Load() ([]byte, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var blob []byte
	err = db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		if v := b.Get(blobKey); v != nil {
			blob = make([]byte, len(v))
			copy(blob, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return blob, nil
}

// Save replaces the registry blob.
func (s *BoltStore) Save(blob []byte) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		return b.Put(blobKey, blob)
	})
}

func (s *BoltStore) open() (*bolt.DB, error) {
	return bolt.Open(s.path, 0o600, &bolt.Options{Timeout: time.Second})
}
