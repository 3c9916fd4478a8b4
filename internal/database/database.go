package database

import (
	"sync"

	"github.com/inovacc/catalogr/internal/model"
)

// Store defines the persistence operations used by the app.
type Store interface {
	Ping() error
	GetSession() (*model.Session, error)
	SaveSession(s *model.Session) error
	DeleteSession() error
	GetConfig() (*model.Config, error)
	SaveConfig(cfg *model.Config) error
}

var (
	once sync.Once
	db   Store
)

// GetDB returns the initialized database store.
func GetDB() Store {
	once.Do(func() {
		var err error

		db, err = initDB()
		if err != nil {
			panic(err)
		}
	})

	return db
}
