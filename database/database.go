package database

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fulldump/villagerdb/villagers"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

type Config struct {
	DataFile string
	Logger   *zap.Logger
}

// Database tracks the lifecycle of the villagers data file. Records are never
// kept in memory, every query reads the file again.
type Database struct {
	config *Config
	status string
	mutex  sync.RWMutex
	exit   chan struct{}
	once   sync.Once
}

func NewDatabase(config *Config) *Database {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &Database{
		config: config,
		status: StatusOpening,
		exit:   make(chan struct{}),
	}
}

func (db *Database) Filename() string {
	return db.config.DataFile
}

func (db *Database) GetStatus() string {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	return db.status
}

func (db *Database) setStatus(status string) {
	db.mutex.Lock()
	db.status = status
	db.mutex.Unlock()
}

// Load checks the data file can be read and parsed.
func (db *Database) Load() error {

	l := db.config.Logger.With(zap.String("file", db.config.DataFile))
	l.Info("loading data file")

	t0 := time.Now()
	records, err := villagers.Parse(db.config.DataFile)
	if err != nil {
		l.Error("load data file", zap.Error(err))
		db.setStatus(StatusClosing)
		return fmt.Errorf("load: %w", err)
	}
	l.Info("data file ready",
		zap.Int("records", len(records)),
		zap.Duration("elapsed", time.Since(t0)))

	db.mutex.Lock()
	if db.status != StatusClosing {
		db.status = StatusOperating
	}
	db.mutex.Unlock()

	return nil
}

func (db *Database) Start() error {

	err := db.Load()
	if err != nil {
		return err
	}

	<-db.exit

	return nil
}

func (db *Database) Stop() error {

	db.setStatus(StatusClosing)
	db.once.Do(func() {
		close(db.exit)
	})
	db.config.Logger.Info("database stopped")

	return nil
}
