package kvstore

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

const transactionCountKey = "transactionCount"

var ErrKeyNotFound = errors.New("key not found")

// Store is a small string key-value store on top of BadgerDB.
type Store struct {
	db   *badger.DB
	logs *zap.SugaredLogger
}

// Open opens the store in dir. An empty dir keeps everything in memory.
func Open(dir string, logger *zap.SugaredLogger) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(badgerLogger{logger})
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return &Store{
		db:   db,
		logs: logger,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(key string) (string, error) {
	var value []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("get %q: %w", key, err)
	}

	return string(value), nil
}

func (s *Store) Set(key, value string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}

	return nil
}

// LoadTransactionCount returns the stored count and whether one was stored.
func (s *Store) LoadTransactionCount() (uint64, bool, error) {
	value, err := s.Get(transactionCountKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}

	count, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse transaction count %q: %w", value, err)
	}

	return count, true, nil
}

func (s *Store) SaveTransactionCount(count uint64) error {
	if err := s.Set(transactionCountKey, strconv.FormatUint(count, 10)); err != nil {
		return err
	}

	s.logs.Infow("transaction count stored", "count", count)
	return nil
}

// badgerLogger routes badger's internal logging to zap.
type badgerLogger struct {
	logs *zap.SugaredLogger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.logs.Errorf(format, args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.logs.Warnf(format, args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.logs.Debugf(format, args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.logs.Debugf(format, args...)
}
