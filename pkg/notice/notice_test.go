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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBoard_Raise(t *testing.T) {
	t.Run("it shows the raised notice", func(t *testing.T) {
		b := NewBoard(time.Minute)
		defer b.Close()

		n := b.Raise(Error, "Please sign before accepting.")

		current, ok := b.Current()
		assert.True(t, ok)
		assert.Equal(t, n, current)
		assert.Equal(t, Error, current.Kind)
		assert.Equal(t, "Please sign before accepting.", current.Message)
		assert.Equal(t, time.Minute, current.Duration)
		assert.NotEmpty(t, current.ID)
	})

	t.Run("a new notice replaces the previous one", func(t *testing.T) {
		b := NewBoard(time.Minute)
		defer b.Close()

		first := b.Raise(Error, "first")
		second := b.Raise(Success, "second")

		current, _ := b.Current()
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, second, current)
	})

	t.Run("a notice expires after the configured duration", func(t *testing.T) {
		b := NewBoard(20 * time.Millisecond)
		defer b.Close()

		b.Raise(Error, "short lived")

		assert.Eventually(t, func() bool {
			_, ok := b.Current()
			return !ok
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("replacing a notice restarts the timer", func(t *testing.T) {
		b := NewBoard(80 * time.Millisecond)
		defer b.Close()

		b.Raise(Error, "first")
		time.Sleep(50 * time.Millisecond)
		second := b.Raise(Error, "second")
		time.Sleep(50 * time.Millisecond)

		// the timer of the first notice would have fired by now
		current, ok := b.Current()
		assert.True(t, ok)
		assert.Equal(t, second.ID, current.ID)
	})

	t.Run("a non-positive duration uses the default", func(t *testing.T) {
		b := NewBoard(0)
		defer b.Close()
		n := b.Raise(Success, "ok")
		assert.Equal(t, DefaultDuration, n.Duration)
	})
}

func TestNotice_ExpiresAt(t *testing.T) {
	created := time.Date(2024, 7, 29, 12, 0, 0, 0, time.UTC)
	n := Notice{CreatedAt: created, Duration: 5 * time.Second}
	assert.Equal(t, created.Add(5*time.Second), n.ExpiresAt())
}

func TestBoard_Dismiss(t *testing.T) {
	b := NewBoard(time.Minute)
	defer b.Close()

	b.Raise(Error, "oops")
	b.Dismiss()

	_, ok := b.Current()
	assert.False(t, ok)
}

func TestBoard_Close(t *testing.T) {
	b := NewBoard(time.Minute)
	b.Raise(Error, "oops")

	b.Close()
	_, ok := b.Current()
	assert.False(t, ok)

	b.Raise(Error, "after close")
	_, ok = b.Current()
	assert.False(t, ok)
}
