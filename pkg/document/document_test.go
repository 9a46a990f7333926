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

package document

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	t.Run("it parses known kinds", func(t *testing.T) {
		k, err := ParseKind("docket")
		assert.NoError(t, err)
		assert.Equal(t, Primary, k)

		k, err = ParseKind(" CREW ")
		assert.NoError(t, err)
		assert.Equal(t, Delegated, k)
	})

	t.Run("it returns an error for unknown kinds", func(t *testing.T) {
		_, err := ParseKind("invoice")
		assert.True(t, errors.Is(err, ErrUnknownKind))
		assert.Contains(t, err.Error(), "invoice")
	})
}

func TestKind_Labels(t *testing.T) {
	assert.Equal(t, "Supervisor", Primary.OwnerLabel())
	assert.Equal(t, "Your", Primary.ApproverPossessive())
	assert.Equal(t, "Supervisor Docket", Primary.Title())

	assert.Equal(t, "Employee", Delegated.OwnerLabel())
	assert.Equal(t, "Approver's", Delegated.ApproverPossessive())
	assert.Equal(t, "Crew Timesheet", Delegated.Title())
}

func TestRecord_JSON(t *testing.T) {
	r := Record{DocumentID: "H-123_Docket_2024-07-29", Kind: Primary, IssueDate: "2024-07-29", OwnerSignatureImage: "data:image/png;base64,"}

	bytes, err := json.Marshal(r)

	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"documentId": "H-123_Docket_2024-07-29",
		"kind": "docket",
		"projectName": "",
		"date": "2024-07-29",
		"ownerName": "",
		"approverEmail": "",
		"ownerSignature": "data:image/png;base64,",
		"lineItems": null
	}`, string(bytes))
}
