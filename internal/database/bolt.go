package database

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"time"

	"github.com/inovacc/catalogr/internal/model"
	"github.com/inovacc/catalogr/internal/params"
	"go.etcd.io/bbolt"
)

const (
	boltBucketSession = "session" // key: "session" -> Session JSON
	boltBucketConfig  = "config"  // key: "config" -> Config JSON

	sessionKey = "session"
	configKey  = "config"
)

type Bolt struct {
	db *bbolt.DB
}

func initDB() (Store, error) {
	path := filepath.Join(params.AppdataDir, "catalogr.bolt")

	return newBolt(path)
}

func newBolt(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketSession)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketConfig)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Ping() error {
	return b.db.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

// GetSession returns the persisted session, or nil when none is stored.
func (b *Bolt) GetSession() (*model.Session, error) {
	var sess *model.Session

	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketSession))

		v := bucket.Get([]byte(sessionKey))
		if v == nil {
			return nil
		}

		var s model.Session
		if err := json.Unmarshal(v, &s); err != nil {
			return err
		}

		sess = &s

		return nil
	})

	return sess, err
}

func (b *Bolt) SaveSession(s *model.Session) error {
	if s == nil {
		return errors.New("session is required")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketSession))

		return bucket.Put([]byte(sessionKey), data)
	})
}

func (b *Bolt) DeleteSession() error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketSession))

		return bucket.Delete([]byte(sessionKey))
	})
}

func (b *Bolt) GetConfig() (*model.Config, error) {
	var cfg *model.Config

	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketConfig))

		v := bucket.Get([]byte(configKey))
		if v == nil {
			// Return default config if not found
			defaultCfg := model.DefaultConfig()
			cfg = &defaultCfg

			return nil
		}

		var c model.Config
		if err := json.Unmarshal(v, &c); err != nil {
			return err
		}

		cfg = &c

		return nil
	})

	return cfg, err
}

func (b *Bolt) SaveConfig(cfg *model.Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketConfig))

		return bucket.Put([]byte(configKey), data)
	})
}

// Close releases the underlying bolt file. Only used by tests; the
// process-wide store lives for the life of the process.
func (b *Bolt) Close() error {
	return b.db.Close()
}
