/*
 * Nuts docket
 * Copyright (C) 2026. Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/nuts-foundation/nuts-docket/logging"
	"github.com/nuts-foundation/nuts-docket/pkg/capture"
	"github.com/nuts-foundation/nuts-docket/pkg/document"
	"github.com/nuts-foundation/nuts-docket/pkg/notice"
)

// DefaultMaxInflight is the default amount of backend calls that may run at the same time
const DefaultMaxInflight = 16

// ManagerConfig holds the settings shared by all sessions of a Manager
type ManagerConfig struct {
	Loader         document.Loader
	Sink           document.Sink
	Pad            capture.PadConfig
	NoticeDuration time.Duration
	MaxInflight    int64

	// Capture creates the signature surface of a new session, it defaults to a Pad with the Pad config
	Capture func() capture.Capture
}

// Manager keeps track of the live signing sessions and of their background backend calls
type Manager struct {
	config   ManagerConfig
	limiter  *semaphore.Weighted
	mu       sync.RWMutex
	sessions map[string]*Session
	closed   bool
	inflight sync.WaitGroup
}

// NewManager creates a Manager without sessions
func NewManager(config ManagerConfig) *Manager {
	if config.MaxInflight <= 0 {
		config.MaxInflight = DefaultMaxInflight
	}
	if config.Capture == nil {
		pad := config.Pad
		config.Capture = func() capture.Capture {
			return capture.NewPad(pad)
		}
	}
	return &Manager{
		config:   config,
		limiter:  semaphore.NewWeighted(config.MaxInflight),
		sessions: map[string]*Session{},
	}
}

// Open creates a session for a document and starts loading the document in the background
func (m *Manager) Open(documentID string, kind document.Kind) (*Session, error) {
	if strings.TrimSpace(documentID) == "" {
		return nil, ErrInvalidDocumentID
	}

	s := New(documentID, kind, Config{
		ID:      uuid.New().String(),
		Loader:  m.config.Loader,
		Sink:    m.config.Sink,
		Capture: m.config.Capture(),
		Notices: notice.NewBoard(m.config.NoticeDuration),
		Limiter: m.limiter,
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrManagerClosed
	}
	m.sessions[s.ID()] = s
	m.background(func() {
		_ = s.Load(context.Background())
	})
	logging.Log().Debugf("signing session %s opened for document %s", s.ID(), documentID)
	return s, nil
}

// Get returns the session with the given identifier
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Submit validates the session and resolves the submission in the background. Validation errors are
// returned directly, the outcome of the sink ends up in the session state.
// The signature is exported without holding the manager lock, other sessions are not held up by it.
func (m *Manager) Submit(id string) error {
	m.mu.RLock()
	if m.closed {
		m.mu.RUnlock()
		return ErrManagerClosed
	}
	s, ok := m.sessions[id]
	if !ok {
		m.mu.RUnlock()
		return ErrSessionNotFound
	}
	// registered before the lock is released so Shutdown waits for this submission
	m.inflight.Add(1)
	m.mu.RUnlock()

	outcome, err := s.SubmitAsync(context.Background())
	if err != nil {
		m.inflight.Done()
		return err
	}
	go func() {
		defer m.inflight.Done()
		<-outcome
	}()
	return nil
}

// Close tears down a session. Backend calls still running for it resolve against the discarded session.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	s.Close()
	logging.Log().Debugf("signing session %s closed", id)
	return nil
}

// Count returns the amount of live sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Wait blocks until all background backend calls have resolved
func (m *Manager) Wait() {
	m.inflight.Wait()
}

// Shutdown refuses new sessions, waits for running backend calls and tears down all sessions
func (m *Manager) Shutdown() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	m.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		s.Close()
		delete(m.sessions, id)
	}
}

// background runs f in a tracked goroutine. Callers must hold the lock so Shutdown can not miss it.
func (m *Manager) background(f func()) {
	m.inflight.Add(1)
	go func() {
		defer m.inflight.Done()
		f()
	}()
}
