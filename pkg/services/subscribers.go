package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
)

var (
	ErrInvalidEmail      = errors.New("subscribers: invalid email address")
	ErrAlreadySubscribed = errors.New("subscribers: already subscribed")
	ErrNotSubscribed     = errors.New("subscribers: email not found")
)

// No whitespace or extra @ in the local part or domain, and the domain
// must contain a dot. Mailbox existence is never checked.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SubscriberStore keeps the mailing list as a pretty-printed JSON array of
// email addresses in a single file. Entries are unique (exact string
// match) and keep insertion order. The mutex is held across the whole
// read-modify-write so concurrent Add/Remove calls cannot lose updates.
type SubscriberStore struct {
	path string
	mu   sync.Mutex
}

func NewSubscriberStore(path string) *SubscriberStore {
	return &SubscriberStore{path: path}
}

// List returns the current subscribers in insertion order. A missing file
// is bootstrapped to an empty persisted list, never an error.
func (s *SubscriberStore) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add validates the address, rejects duplicates, then appends and persists
// the full list.
func (s *SubscriberStore) Add(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subscribers, err := s.load()
	if err != nil {
		return err
	}

	for _, existing := range subscribers {
		if existing == email {
			return ErrAlreadySubscribed
		}
	}

	return s.save(append(subscribers, email))
}

// Remove deletes the exact address from the list and persists the result.
func (s *SubscriberStore) Remove(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subscribers, err := s.load()
	if err != nil {
		return err
	}

	filtered := subscribers[:0]
	for _, existing := range subscribers {
		if existing != email {
			filtered = append(filtered, existing)
		}
	}

	if len(filtered) == len(subscribers) {
		return ErrNotSubscribed
	}

	return s.save(filtered)
}

func (s *SubscriberStore) load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		if err := s.save([]string{}); err != nil {
			return nil, err
		}
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read subscribers file: %w", err)
	}

	var subscribers []string
	if err := json.Unmarshal(data, &subscribers); err != nil {
		return nil, fmt.Errorf("parse subscribers file: %w", err)
	}
	if subscribers == nil {
		subscribers = []string{}
	}
	return subscribers, nil
}

func (s *SubscriberStore) save(subscribers []string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create subscribers dir: %w", err)
	}

	data, err := json.MarshalIndent(subscribers, "", "  ")
	if err != nil {
		return fmt.Errorf("encode subscribers: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write subscribers file: %w", err)
	}
	return nil
}
