package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/tekelala/jtbd-interview-agent/pkg/interview"
)

// InMemoryStore provides an in-memory implementation of StoreInterface for
// testing and for running without a database
type InMemoryStore struct {
	interviews map[string]string // id -> JSON document
	mutex      sync.RWMutex
}

// NewInMemoryStore creates a new in-memory interview store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		interviews: make(map[string]string),
	}
}

// Save stores an interview, replacing any existing record with the same ID
func (s *InMemoryStore) Save(_ context.Context, stored *interview.StoredInterview) error {
	if stored.ID == "" {
		return fmt.Errorf("interview id cannot be empty")
	}

	// Serialize to avoid shared references with the caller
	document, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to encode interview document: %w", err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.interviews[stored.ID] = string(document)
	return nil
}

// Load retrieves an interview by ID. A missing ID returns nil without error.
func (s *InMemoryStore) Load(_ context.Context, id string) (*interview.StoredInterview, error) {
	if id == "" {
		return nil, fmt.Errorf("interview id cannot be empty")
	}

	s.mutex.RLock()
	document, exists := s.interviews[id]
	s.mutex.RUnlock()

	if !exists {
		return nil, nil
	}

	var stored interview.StoredInterview
	if err := json.Unmarshal([]byte(document), &stored); err != nil {
		return nil, fmt.Errorf("failed to decode interview document: %w", err)
	}

	return &stored, nil
}

// List returns the list projection of all interviews, newest first
func (s *InMemoryStore) List(_ context.Context) ([]*interview.InterviewListItem, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	items := make([]*interview.InterviewListItem, 0, len(s.interviews))
	for _, document := range s.interviews {
		var stored interview.StoredInterview
		if err := json.Unmarshal([]byte(document), &stored); err != nil {
			return nil, fmt.Errorf("failed to decode interview document: %w", err)
		}
		items = append(items, stored.ListItem())
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return items, nil
}

// Delete removes an interview by ID. Deleting a missing ID returns false
// without error.
func (s *InMemoryStore) Delete(_ context.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("interview id cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.interviews[id]; !exists {
		return false, nil
	}

	delete(s.interviews, id)
	return true, nil
}
