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

package pkg

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/nuts-foundation/nuts-docket/logging"
	"github.com/nuts-foundation/nuts-docket/pkg/capture"
	"github.com/nuts-foundation/nuts-docket/pkg/document"
	"github.com/nuts-foundation/nuts-docket/pkg/notice"
	"github.com/nuts-foundation/nuts-docket/pkg/services/dummy"
	"github.com/nuts-foundation/nuts-docket/pkg/session"
)

// ErrInvalidConfig is returned by Configure when a setting is out of range
var ErrInvalidConfig = errors.New("invalid signing config")

// ErrNotConfigured is returned when the engine is used before Configure succeeded
var ErrNotConfigured = errors.New("signing engine is not configured")

// SigningClient is the interface the API and CLI use to drive signing sessions
type SigningClient interface {
	// OpenSession creates a session for a document, the document is loaded in the background
	OpenSession(documentID string, kind document.Kind) (*session.Session, error)
	Session(id string) (*session.Session, error)
	// SubmitSession starts the submission of a session. The outcome ends up in the session state.
	SubmitSession(id string) error
	CloseSession(id string) error
	Demos() []DemoEntry
	// DemoURL is the address at which the demo entry points are listed
	DemoURL() string
}

// Signing is the engine that owns the session manager and its backend
type Signing struct {
	Config     SigningConfig
	configOnce sync.Once
	configDone bool
	manager    *session.Manager
	// Loader and Sink default to the dummy backend when not set before Configure
	Loader document.Loader
	Sink   document.Sink
}

var instance *Signing
var oneBackend sync.Once

// DefaultSigningConfig returns the settings used when nothing is configured
func DefaultSigningConfig() SigningConfig {
	pad := capture.DefaultPadConfig()
	return SigningConfig{
		Address:        "localhost:1323",
		PublicURL:      "http://localhost:1323",
		LoadDelay:      dummy.DefaultLoadDelay,
		SubmitDelay:    dummy.DefaultSubmitDelay,
		NoticeDuration: notice.DefaultDuration,
		PenWidth:       pad.PenWidth,
		CanvasWidth:    pad.Width,
		CanvasHeight:   pad.Height,
		MaxInflight:    session.DefaultMaxInflight,
	}
}

// SigningInstance returns the process wide engine
func SigningInstance() *Signing {
	oneBackend.Do(func() {
		instance = NewSigningInstance(DefaultSigningConfig())
	})
	return instance
}

// NewSigningInstance creates an unconfigured engine
func NewSigningInstance(config SigningConfig) *Signing {
	return &Signing{Config: config}
}

// Configure checks the config and sets up the session manager. Only the first call has effect.
func (s *Signing) Configure() (err error) {
	s.configOnce.Do(func() {
		if err = s.Config.Validate(); err != nil {
			return
		}
		backend := dummy.New(s.Config.LoadDelay, s.Config.SubmitDelay)
		if s.Loader == nil {
			s.Loader = backend
		}
		if s.Sink == nil {
			s.Sink = backend
		}
		s.manager = session.NewManager(session.ManagerConfig{
			Loader: s.Loader,
			Sink:   s.Sink,
			Pad: capture.PadConfig{
				Width:    s.Config.CanvasWidth,
				Height:   s.Config.CanvasHeight,
				Ratio:    1,
				PenWidth: s.Config.PenWidth,
			},
			NoticeDuration: s.Config.NoticeDuration,
			MaxInflight:    s.Config.MaxInflight,
		})
		s.configDone = true
		logging.Log().Debugf("signing engine configured, max inflight backend calls: %d", s.Config.MaxInflight)
	})
	return err
}

// Validate checks that all settings are in range
func (c SigningConfig) Validate() error {
	switch {
	case strings.TrimSpace(c.Address) == "":
		return fmt.Errorf("%w: %s is required", ErrInvalidConfig, ConfAddress)
	case c.LoadDelay < 0:
		return fmt.Errorf("%w: %s can not be negative", ErrInvalidConfig, ConfLoadDelay)
	case c.SubmitDelay < 0:
		return fmt.Errorf("%w: %s can not be negative", ErrInvalidConfig, ConfSubmitDelay)
	case c.NoticeDuration <= 0:
		return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, ConfNoticeDuration)
	case c.PenWidth <= 0:
		return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, ConfPenWidth)
	case c.CanvasWidth <= 0 || c.CanvasHeight <= 0:
		return fmt.Errorf("%w: canvas must be at least 1x1, got %dx%d", ErrInvalidConfig, c.CanvasWidth, c.CanvasHeight)
	case c.MaxInflight < 0:
		return fmt.Errorf("%w: %s can not be negative", ErrInvalidConfig, ConfMaxInflight)
	}
	return nil
}

// Shutdown waits for running backend calls and tears down all sessions
func (s *Signing) Shutdown() {
	if s.manager != nil {
		s.manager.Shutdown()
	}
}

// OpenSession creates a session for the document and starts loading it
func (s *Signing) OpenSession(documentID string, kind document.Kind) (*session.Session, error) {
	if !s.configDone {
		return nil, ErrNotConfigured
	}
	return s.manager.Open(documentID, kind)
}

// Session returns a live session
func (s *Signing) Session(id string) (*session.Session, error) {
	if !s.configDone {
		return nil, ErrNotConfigured
	}
	return s.manager.Get(id)
}

// SubmitSession validates the session and submits it in the background
func (s *Signing) SubmitSession(id string) error {
	if !s.configDone {
		return ErrNotConfigured
	}
	return s.manager.Submit(id)
}

// CloseSession tears a session down
func (s *Signing) CloseSession(id string) error {
	if !s.configDone {
		return ErrNotConfigured
	}
	return s.manager.Close(id)
}

// Demos lists the documents of the demo backend
func (s *Signing) Demos() []DemoEntry {
	entries := make([]DemoEntry, 0, len(dummy.Demos))
	for _, d := range dummy.Demos {
		entries = append(entries, DemoEntry{
			DocumentID: d.DocumentID,
			Kind:       string(d.Kind),
			Label:      d.Label,
		})
	}
	return entries
}

// DemoURL returns the public address of the demo listing
func (s *Signing) DemoURL() string {
	return strings.TrimRight(s.Config.PublicURL, "/") + "/signing/demo"
}

// Wait blocks until all background backend calls have resolved
func (s *Signing) Wait() {
	if s.manager != nil {
		s.manager.Wait()
	}
}

var _ SigningClient = (*Signing)(nil)
