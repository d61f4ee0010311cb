package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

const keyPreferences = "preferences"

// Preferences stores the board settings restored at startup.
type Preferences struct {
	Flipped    bool      `json:"flipped"`
	Theme      string    `json:"theme"`
	SquareSize int       `json:"square_size"`
	LastPlayed time.Time `json:"last_played"`
}

// DefaultPreferences returns the settings used on first launch.
func DefaultPreferences() Preferences {
	return Preferences{
		Flipped:    false,
		Theme:      "classic",
		SquareSize: 80,
		LastPlayed: time.Now(),
	}
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage(logger *zap.SugaredLogger) (*Storage, error) {
	dbDir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return NewStorageAt(dbDir, logger)
}

// NewStorageAt opens the database in the given directory.
func NewStorageAt(dir string, logger *zap.SugaredLogger) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = badgerLogger{logger}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences writes the preferences.
func (s *Storage) SavePreferences(prefs Preferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences reads the preferences, returning defaults if none are
// stored yet.
func (s *Storage) LoadPreferences() (Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &prefs)
		})
	})

	return prefs, err
}

// badgerLogger routes badger's internal logging through zap.
type badgerLogger struct {
	log *zap.SugaredLogger
}

func (bl badgerLogger) Errorf(format string, args ...interface{}) {
	bl.log.Errorf(format, args...)
}

func (bl badgerLogger) Warningf(format string, args ...interface{}) {
	bl.log.Warnf(format, args...)
}

func (bl badgerLogger) Infof(format string, args ...interface{}) {
	bl.log.Debugf(format, args...)
}

func (bl badgerLogger) Debugf(format string, args ...interface{}) {
	bl.log.Debugf(format, args...)
}
