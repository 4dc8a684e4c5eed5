// Package registry tracks live interview sessions for the API. Each
// session owns one interview engine; the registry hands out sessions by ID
// and reaps ones that have gone idle.
package registry

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/tekelala/jtbd-interview-agent/pkg/interview"
)

// DefaultIdleTimeout is how long a session may sit without activity before
// the janitor reaps it
const DefaultIdleTimeout = 2 * time.Hour

// reapSchedule is how often the janitor sweeps for idle sessions
const reapSchedule = "@every 10m"

// Session is one live interview tracked by the registry. Mu serializes all
// engine access for the session; the engine itself is not safe for
// concurrent use.
type Session struct {
	Mu sync.Mutex

	ID          string
	Interviewer *interview.Interviewer
	Config      interview.Config
	CreatedAt   time.Time

	// activeMu guards lastActive separately from Mu so the janitor can
	// inspect idleness without contending with in-flight engine calls
	activeMu   sync.Mutex
	lastActive time.Time
}

// Touch records activity on the session
func (s *Session) Touch() {
	s.activeMu.Lock()
	defer s.activeMu.Unlock()

	s.lastActive = time.Now()
}

// idleSince reports whether the session has seen no activity since cutoff
func (s *Session) idleSince(cutoff time.Time) bool {
	s.activeMu.Lock()
	defer s.activeMu.Unlock()

	return s.lastActive.Before(cutoff)
}

// Registry holds the live sessions and reaps idle ones on a schedule
type Registry struct {
	sessions    map[string]*Session
	mutex       sync.RWMutex
	idleTimeout time.Duration
	cron        *cron.Cron
}

// RegistryOptions contains configuration options for the Registry
type RegistryOptions struct {
	// IdleTimeout overrides DefaultIdleTimeout when positive
	IdleTimeout time.Duration
}

// NewRegistry creates a session registry and starts its janitor
func NewRegistry(opts *RegistryOptions) *Registry {
	idleTimeout := DefaultIdleTimeout
	if opts != nil && opts.IdleTimeout > 0 {
		idleTimeout = opts.IdleTimeout
	}

	r := &Registry{
		sessions:    make(map[string]*Session),
		idleTimeout: idleTimeout,
		cron:        cron.New(),
	}

	if _, err := r.cron.AddFunc(reapSchedule, r.ReapIdle); err != nil {
		log.Fatalf("[REGISTRY]: unable to schedule session janitor (%v)", err)
	}
	r.cron.Start()

	return r
}

// Stop gracefully stops the registry's janitor
func (r *Registry) Stop() {
	r.cron.Stop()
}

// Create registers a new session for the given engine and returns it
func (r *Registry) Create(interviewer *interview.Interviewer, config interview.Config) *Session {
	now := time.Now()
	session := &Session{
		ID:          uuid.NewString(),
		Interviewer: interviewer,
		Config:      config,
		CreatedAt:   now,
		lastActive:  now,
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.sessions[session.ID] = session
	return session
}

// Get retrieves a session by ID
func (r *Registry) Get(id string) (*Session, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	session, exists := r.sessions[id]
	return session, exists
}

// Remove drops a session by ID, reporting whether it existed
func (r *Registry) Remove(id string) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.sessions[id]; !exists {
		return false
	}

	delete(r.sessions, id)
	return true
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.sessions)
}

// ReapIdle drops every session whose last activity is older than the idle
// timeout. Abandoned interviews are discarded, not persisted; only an
// explicit end call stores a session. The sweep never takes Session.Mu:
// handlers hold it across engine calls and may re-enter the registry, so
// idleness is read through the session's own activity lock instead.
func (r *Registry) ReapIdle() {
	cutoff := time.Now().Add(-r.idleTimeout)

	r.mutex.Lock()
	defer r.mutex.Unlock()

	for id, session := range r.sessions {
		if session.idleSince(cutoff) {
			log.Printf("[REGISTRY]: reaping idle session %s", id)
			delete(r.sessions, id)
		}
	}
}
