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
	"context"
	"errors"
	"fmt"
	"strings"
)

// Kind tells which of the two document flows a record belongs to. It drives the labels shown to the approver.
type Kind string

const (
	// Primary is a docket drawn up and signed by a supervisor
	Primary Kind = "docket"
	// Delegated is a crew timesheet drawn up on behalf of employees
	Delegated Kind = "crew"
)

// ParseKind converts the external representation of a kind into a Kind.
func ParseKind(raw string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(raw))) {
	case Primary:
		return Primary, nil
	case Delegated:
		return Delegated, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, raw)
}

// OwnerLabel returns the role name of the party who drew up the document
func (k Kind) OwnerLabel() string {
	if k == Delegated {
		return "Employee"
	}
	return "Supervisor"
}

// ApproverPossessive returns the possessive used when addressing the approver, e.g. "Your Signature"
func (k Kind) ApproverPossessive() string {
	if k == Delegated {
		return "Approver's"
	}
	return "Your"
}

// Title returns the human readable document title
func (k Kind) Title() string {
	if k == Delegated {
		return "Crew Timesheet"
	}
	return "Supervisor Docket"
}

// ResourceType classifies a line item
type ResourceType string

const (
	People    ResourceType = "People"
	Plant     ResourceType = "Plant"
	Materials ResourceType = "Materials"
	Other     ResourceType = "Other"
)

// LineItem is a single row of the document. Line items are values and never change after loading.
type LineItem struct {
	ResourceType      ResourceType `json:"resourceType"`
	ResourceID        string       `json:"resourceId"`
	RoleOrDescription string       `json:"role"`
	Quantity          string       `json:"quantity"`
	UnitOfMeasure     string       `json:"uom"`
	ScopeNote         string       `json:"scope"`
}

// Record is a loaded document. LineItems are kept in display order and may be empty.
type Record struct {
	DocumentID    string `json:"documentId"`
	Kind          Kind   `json:"kind"`
	ProjectName   string `json:"projectName"`
	IssueDate     string `json:"date"`
	OwnerName     string `json:"ownerName"`
	ApproverEmail string `json:"approverEmail"`

	// OwnerSignatureImage holds the already present signature of the owner as an image data URL
	OwnerSignatureImage string     `json:"ownerSignature"`
	LineItems           []LineItem `json:"lineItems"`
}

// Loader retrieves documents which are up for signing
type Loader interface {
	// Load returns the document with the given identifier. Errors carry a human readable reason.
	Load(ctx context.Context, documentID string, kind Kind) (*Record, error)
}

// Sink receives signed documents
type Sink interface {
	// Submit registers the signature of the approver and returns a confirmation message
	Submit(ctx context.Context, documentID string, approverName string) (string, error)
}

// ErrUnknownKind is returned when a document kind can not be parsed
var ErrUnknownKind = errors.New("unknown document kind")
