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
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/nuts-foundation/nuts-docket/mock"
	"github.com/nuts-foundation/nuts-docket/pkg/capture"
	"github.com/nuts-foundation/nuts-docket/pkg/document"
	"github.com/nuts-foundation/nuts-docket/pkg/session"
)

func testConfig() SigningConfig {
	config := DefaultSigningConfig()
	config.LoadDelay = 0
	config.SubmitDelay = 0
	config.NoticeDuration = time.Minute
	return config
}

func configured(t *testing.T) *Signing {
	t.Helper()
	s := NewSigningInstance(testConfig())
	if err := s.Configure(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Shutdown)
	return s
}

func TestSigningInstance(t *testing.T) {
	assert.Same(t, SigningInstance(), SigningInstance())
	assert.Equal(t, DefaultSigningConfig(), SigningInstance().Config)
}

func TestDefaultSigningConfig(t *testing.T) {
	config := DefaultSigningConfig()

	assert.Equal(t, "localhost:1323", config.Address)
	assert.Equal(t, 1000*time.Millisecond, config.LoadDelay)
	assert.Equal(t, 1500*time.Millisecond, config.SubmitDelay)
	assert.Equal(t, 5*time.Second, config.NoticeDuration)
	assert.NoError(t, config.Validate())
}

func TestSigningConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *SigningConfig)
	}{
		{"no address", func(c *SigningConfig) { c.Address = " " }},
		{"negative load delay", func(c *SigningConfig) { c.LoadDelay = -1 }},
		{"negative submit delay", func(c *SigningConfig) { c.SubmitDelay = -1 }},
		{"no notice duration", func(c *SigningConfig) { c.NoticeDuration = 0 }},
		{"no pen", func(c *SigningConfig) { c.PenWidth = 0 }},
		{"no canvas", func(c *SigningConfig) { c.CanvasHeight = 0 }},
		{"negative inflight", func(c *SigningConfig) { c.MaxInflight = -1 }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := DefaultSigningConfig()
			test.modify(&config)
			assert.True(t, errors.Is(config.Validate(), ErrInvalidConfig))
		})
	}
}

func TestSigning_Configure(t *testing.T) {
	t.Run("invalid config is rejected", func(t *testing.T) {
		config := testConfig()
		config.PenWidth = -1
		s := NewSigningInstance(config)

		err := s.Configure()

		assert.True(t, errors.Is(err, ErrInvalidConfig))
		_, err = s.OpenSession("H-123", document.Primary)
		assert.Equal(t, ErrNotConfigured, err)
	})

	t.Run("only the first call has effect", func(t *testing.T) {
		s := configured(t)
		manager := s.manager

		assert.NoError(t, s.Configure())
		assert.Same(t, manager, s.manager)
	})

	t.Run("a configured backend is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		loader := mock.NewMockLoader(ctrl)
		loader.EXPECT().Load(gomock.Any(), "H-123", document.Primary).Return(&document.Record{DocumentID: "H-123"}, nil)
		s := NewSigningInstance(testConfig())
		s.Loader = loader
		assert.NoError(t, s.Configure())
		defer s.Shutdown()

		_, err := s.OpenSession("H-123", document.Primary)
		s.Wait()

		assert.NoError(t, err)
	})
}

func TestSigning_NotConfigured(t *testing.T) {
	s := NewSigningInstance(testConfig())

	_, err := s.Session("id")
	assert.Equal(t, ErrNotConfigured, err)
	assert.Equal(t, ErrNotConfigured, s.SubmitSession("id"))
	assert.Equal(t, ErrNotConfigured, s.CloseSession("id"))
	s.Shutdown()
	s.Wait()
}

func TestSigning_Sessions(t *testing.T) {
	s := configured(t)

	opened, err := s.OpenSession("H-123_Docket_2024-07-29", document.Primary)
	if !assert.NoError(t, err) {
		return
	}
	s.Wait()

	found, err := s.Session(opened.ID())
	assert.NoError(t, err)
	assert.Equal(t, session.Loaded, found.View().LoadState)

	found.EditApproverName("Alice")
	assert.NoError(t, found.Draw(capture.Stroke{{X: 1, Y: 1}, {X: 20, Y: 20}}))
	assert.NoError(t, found.AcceptSignature())
	assert.NoError(t, s.SubmitSession(opened.ID()))
	s.Wait()
	assert.Equal(t, session.Succeeded, found.View().Submission)

	assert.NoError(t, s.CloseSession(opened.ID()))
	_, err = s.Session(opened.ID())
	assert.Equal(t, session.ErrSessionNotFound, err)
}

func TestSigning_Demos(t *testing.T) {
	s := NewSigningInstance(testConfig())
	s.Config.PublicURL = "https://docket.example.com/"

	demos := s.Demos()

	if assert.Len(t, demos, 2) {
		assert.Equal(t, DemoEntry{DocumentID: "H-123_Docket_2024-07-29", Kind: "docket", Label: "Load Supervisor Docket"}, demos[0])
		assert.Equal(t, "crew", demos[1].Kind)
	}
	assert.Equal(t, "https://docket.example.com/signing/demo", s.DemoURL())
}
