// Package journal persists a play session's notifications through gorm
// sqlite is the default driver; postgres is available for shared storage
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pipejesus/chill-out/event"
)

var (
	ErrClosed = errors.New("journal closed")
	ErrDriver = errors.New("unknown journal driver")
)

type Config struct {
	// sqlite or postgres
	Driver string

	// File path for sqlite (empty = in memory), connection string for postgres
	DSN string
}

// Session is one run of the game
type Session struct {
	ID        string `gorm:"primaryKey;size:36"`
	StartedAt time.Time
	EndedAt   *time.Time
	Frames    int64
	Entries   int64
}

// Entry is one drained notification
type Entry struct {
	ID        uint           `gorm:"primaryKey"`
	SessionID string         `gorm:"size:36;index"`
	Frame     int64          `gorm:"index"`
	Type      string         `gorm:"size:32;index"`
	Origin    string         `gorm:"size:64"`
	Payload   datatypes.JSON `json:"payload"`
	CreatedAt time.Time
}

// Journal implements engine.Recorder
type Journal struct {
	mu      sync.Mutex
	db      *gorm.DB
	session Session
	closed  bool
	log     zerolog.Logger
}

// Open connects, migrates the schema and starts a new session
func Open(cfg Config, log zerolog.Logger) (*Journal, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("journal: open %s: %w", cfg.Driver, err)
	}

	if err := db.AutoMigrate(&Session{}, &Entry{}); err != nil {
		return nil, fmt.Errorf("journal: migrate: %w", err)
	}

	j := &Journal{
		db: db,
		session: Session{
			ID:        uuid.NewString(),
			StartedAt: time.Now().UTC(),
		},
		log: log.With().Str("component", "journal").Logger(),
	}
	if err := db.Create(&j.session).Error; err != nil {
		return nil, fmt.Errorf("journal: create session: %w", err)
	}

	j.log.Info().Str("driver", dialector.Name()).Str("session", j.session.ID).Msg("journal session started")
	return j, nil
}

func dialectorFor(cfg Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", "sqlite":
		dsn := cfg.DSN
		if dsn == "" {
			// Named shared-cache memory DB so every pooled connection sees the same tables
			dsn = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
		}
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.New(postgres.Config{
			DSN:                  cfg.DSN,
			PreferSimpleProtocol: true,
		}), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrDriver, cfg.Driver)
}

// Record appends n to the session
func (j *Journal) Record(frame int64, n event.Notification) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return ErrClosed
	}

	entry := Entry{
		SessionID: j.session.ID,
		Frame:     frame,
		Type:      string(n.Type),
		Origin:    n.Origin,
	}
	// nil payloads are stored as JSON null
	b, err := json.Marshal(n.Payload)
	if err != nil {
		return fmt.Errorf("journal: encode %s payload: %w", n.Type, err)
	}
	entry.Payload = datatypes.JSON(b)

	if err := j.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("journal: insert: %w", err)
	}
	j.session.Entries++
	if frame > j.session.Frames {
		j.session.Frames = frame
	}
	return nil
}

// SessionID returns the current session's uuid
func (j *Journal) SessionID() string {
	return j.session.ID
}

// Entries returns the session's entries in insertion order
func (j *Journal) Entries() ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return nil, ErrClosed
	}
	var out []Entry
	err := j.db.Where("session_id = ?", j.session.ID).Order("id").Find(&out).Error
	return out, err
}

// Sessions lists every recorded session, newest first
func (j *Journal) Sessions() ([]Session, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return nil, ErrClosed
	}
	var out []Session
	err := j.db.Order("started_at desc").Find(&out).Error
	return out, err
}

// Close stamps the session end and releases the connection
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return ErrClosed
	}
	j.closed = true

	ended := time.Now().UTC()
	j.session.EndedAt = &ended
	err := j.db.Model(&Session{ID: j.session.ID}).Updates(map[string]any{
		"ended_at": ended,
		"frames":   j.session.Frames,
		"entries":  j.session.Entries,
	}).Error

	if sqlDB, dbErr := j.db.DB(); dbErr == nil {
		err = errors.Join(err, sqlDB.Close())
	}

	j.log.Info().
		Str("session", j.session.ID).
		Int64("entries", j.session.Entries).
		Int64("frames", j.session.Frames).
		Msg("journal session closed")
	return err
}
