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

package notice

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind tells if a notice reports a success or an error
type Kind string

const (
	// Success is used for notices which confirm an action
	Success Kind = "success"
	// Error is used for notices which report a failure
	Error Kind = "error"
)

// DefaultDuration is how long a notice stays visible when nothing else is configured
const DefaultDuration = 5 * time.Second

// NowFunc returns the current time, it can be replaced in tests
var NowFunc = time.Now

// Notice is a short-lived message for the user
type Notice struct {
	ID        string        `json:"id"`
	Kind      Kind          `json:"type"`
	Message   string        `json:"message"`
	CreatedAt time.Time     `json:"createdAt"`
	Duration  time.Duration `json:"-"`
}

// ExpiresAt returns the moment the notice disappears by itself
func (n Notice) ExpiresAt() time.Time {
	return n.CreatedAt.Add(n.Duration)
}

// Board holds at most one live notice. Raising a notice replaces the current one and restarts the expiry timer.
type Board struct {
	mu       sync.Mutex
	duration time.Duration
	current  *Notice
	timer    *time.Timer
	closed   bool
}

// NewBoard creates a Board on which notices expire after the given duration
func NewBoard(duration time.Duration) *Board {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Board{duration: duration}
}

// Raise shows a new notice. The previous notice and its timer are discarded.
func (b *Board) Raise(kind Kind, message string) Notice {
	n := Notice{
		ID:        uuid.New().String(),
		Kind:      kind,
		Message:   message,
		CreatedAt: NowFunc(),
		Duration:  b.duration,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return n
	}
	b.stopTimer()
	b.current = &n
	id := n.ID
	b.timer = time.AfterFunc(b.duration, func() {
		b.expire(id)
	})
	return n
}

// Current returns the live notice
func (b *Board) Current() (Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return Notice{}, false
	}
	return *b.current, true
}

// Dismiss removes the live notice before it expires
func (b *Board) Dismiss() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopTimer()
	b.current = nil
}

// Close dismisses the live notice and ignores all notices raised afterwards
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopTimer()
	b.current = nil
	b.closed = true
}

// expire only clears the notice it was scheduled for, a timer that already fired may race with a replacement
func (b *Board) expire(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current != nil && b.current.ID == id {
		b.current = nil
		b.timer = nil
	}
}

func (b *Board) stopTimer() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
