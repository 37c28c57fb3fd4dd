// Package session holds the operator's credentials for the remote gateway.
// The token and minimal profile are persisted in a small local sqlite file
// so a restart does not log the operator out. Everything reads the token
// through a single accessor; nothing caches it across a logout.
package session

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Session is the single persisted row: the bearer token plus the profile
// fields the header displays. No expiry is tracked; the guard checks token
// presence only.
type Session struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"not null"`
	Email     string
	FirstName string
	LastName  string
	UpdatedAt time.Time
}

type Store struct {
	db *gorm.DB

	mu      sync.RWMutex
	current *Session
}

// Open connects to the session database, migrates it and loads a previously
// persisted session, if any, into memory.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}
	if err := db.AutoMigrate(&Session{}); err != nil {
		return nil, fmt.Errorf("migrating session db: %w", err)
	}

	s := &Store{db: db}
	var persisted Session
	if err := db.First(&persisted, 1).Error; err == nil && persisted.Token != "" {
		s.current = &persisted
	}
	return s, nil
}

// SignIn persists the session and makes it the process-wide current one.
func (s *Store) SignIn(token, email, firstName, lastName string) error {
	sess := Session{ID: 1, Token: token, Email: email, FirstName: firstName, LastName: lastName}
	if err := s.db.Save(&sess).Error; err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()
	return nil
}

// SignOut tears down the session, both persisted and in memory.
func (s *Store) SignOut() error {
	if err := s.db.Delete(&Session{}, 1).Error; err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return nil
}

// Token is the single accessor the gateway adapter reads at call time.
// It returns "" when no operator is signed in.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Current returns a copy of the signed-in session, if any.
func (s *Store) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}
