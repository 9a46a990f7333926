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

package dummy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nuts-foundation/nuts-docket/pkg/document"
)

func fixedNow() time.Time {
	return time.Date(2024, 7, 29, 9, 30, 0, 0, time.UTC)
}

func instant() *Dummy {
	d := New(0, 0)
	d.NowFunc = fixedNow
	return d
}

func TestDummy_Load(t *testing.T) {
	t.Run("it loads a supervisor docket", func(t *testing.T) {
		record, err := instant().Load(context.Background(), "H-123_Docket_2024-07-29", document.Primary)

		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "H-123_Docket_2024-07-29", record.DocumentID)
		assert.Equal(t, document.Primary, record.Kind)
		assert.Equal(t, "Western Freeway Upgrade", record.ProjectName)
		assert.Equal(t, "John Doe", record.OwnerName)
		assert.Equal(t, "client.contact@majorroads.gov", record.ApproverEmail)
		assert.Equal(t, "29/07/2024", record.IssueDate)
		assert.Len(t, record.LineItems, 3)
		assert.Equal(t, document.Materials, record.LineItems[2].ResourceType)
		assert.NotEmpty(t, record.OwnerSignatureImage)
	})

	t.Run("it loads a crew timesheet", func(t *testing.T) {
		record, err := instant().Load(context.Background(), "P-456_CREW_Docket_2024-07-29", document.Delegated)

		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "City Tunnel Project", record.ProjectName)
		assert.Equal(t, "Crew Team Alpha", record.OwnerName)
		assert.Equal(t, "approver@clientcorp.com", record.ApproverEmail)
		assert.Len(t, record.LineItems, 3)
		assert.Equal(t, "Jane Smith", record.LineItems[0].ResourceID)
	})

	t.Run("line items are not shared between documents", func(t *testing.T) {
		d := instant()
		first, _ := d.Load(context.Background(), "a", document.Primary)
		first.LineItems[0].Quantity = "999"

		second, _ := d.Load(context.Background(), "b", document.Primary)
		assert.Equal(t, "8", second.LineItems[0].Quantity)
	})

	t.Run("a failure marker in the identifier fails the load", func(t *testing.T) {
		record, err := instant().Load(context.Background(), "X-FAIL", document.Primary)

		assert.Nil(t, record)
		assert.True(t, errors.Is(err, ErrLoadFailed))
		assert.Equal(t, "This is a simulated failure to fetch docket data.", err.Error())
	})

	t.Run("a cancelled context stops the delay", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New(time.Hour, 0).Load(ctx, "H-123", document.Primary)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestDummy_Submit(t *testing.T) {
	t.Run("it confirms the submission", func(t *testing.T) {
		msg, err := instant().Submit(context.Background(), "H-123_Docket_2024-07-29", "Alice")

		assert.NoError(t, err)
		assert.Equal(t, "Thank you, Alice. The docket H-123_Docket_2024-07-29 has been successfully signed and submitted. A confirmation email has been sent.", msg)
	})

	t.Run("names are not escaped", func(t *testing.T) {
		msg, err := instant().Submit(context.Background(), "H-1", "O'Brien & Sons")

		assert.NoError(t, err)
		assert.Contains(t, msg, "O'Brien & Sons")
	})

	t.Run("a failure marker in the name fails the submission", func(t *testing.T) {
		for _, name := range []string{"fail-test", "FAIL", "Mr Failsafe"} {
			_, err := instant().Submit(context.Background(), "H-123", name)
			assert.True(t, errors.Is(err, ErrSubmitFailed), name)
		}
	})

	t.Run("it waits for the configured delay", func(t *testing.T) {
		d := New(0, 30*time.Millisecond)
		start := time.Now()
		_, err := d.Submit(context.Background(), "H-123", "Alice")
		assert.NoError(t, err)
		assert.True(t, time.Since(start) >= 30*time.Millisecond)
	})
}
