// Package cache はBadgerDBを使用した有効期限付きキャッシュを提供します
package cache

import (
	"errors"
	"time"

	badger "github.com/dgraph-io/badger/v4"
)

// ErrDirRequired はディスクモードでディレクトリが指定されていない場合のエラー
var ErrDirRequired = errors.New("cache: directory is required for on-disk mode")

// Options はStoreの設定
type Options struct {
	// Dir はデータファイルのディレクトリ。InMemoryでない場合は必須
	Dir string

	// InMemory はディスクに保存せずメモリ上のみで動作させます
	InMemory bool

	// TTL はエントリの有効期限。0以下の場合は期限なし
	TTL time.Duration

	// Logger はbadgerのログ出力先。nilの場合は出力しません
	Logger badger.Logger
}

// Store はキーバリューキャッシュ
type Store struct {
	db  *badger.DB
	ttl time.Duration
}

// Open は新しいStoreを開きます
func Open(opts Options) (*Store, error) {
	if !opts.InMemory && opts.Dir == "" {
		return nil, ErrDirRequired
	}
	dbOpts := badger.DefaultOptions(opts.Dir)
	if opts.InMemory {
		dbOpts = badger.DefaultOptions("").WithInMemory(true)
	}
	dbOpts = dbOpts.WithLogger(opts.Logger)

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, ttl: opts.TTL}, nil
}

// Get はキーに対応する値を返します。期限切れまたは存在しない場合はfalse
func (s *Store) Get(key string) ([]byte, bool, error) {
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Set はキーに値を保存します
func (s *Store) Set(key string, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), value)
		if s.ttl > 0 {
			entry = entry.WithTTL(s.ttl)
		}
		return txn.SetEntry(entry)
	})
}

// Delete はキーを削除します
func (s *Store) Delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Close はデータベースを閉じます
func (s *Store) Close() error {
	return s.db.Close()
}
